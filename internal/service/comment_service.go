package service

import (
	"context"
	"strings"
	"time"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, authorID uint64, text string) error
	GetCommentsByPost(ctx context.Context, postID uint64) ([]*dto.CommentView, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment 给帖子追加评论。帖子不存在返回 ErrPostNotFound；
// 正文为空或超长返回校验错误，由调用方决定是否静默丢弃。
func (s *commentServiceImpl) AddComment(ctx context.Context, postID, authorID uint64, text string) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if strings.TrimSpace(text) == "" {
		return ErrTextRequired
	}
	if len([]rune(text)) > model.CommentMaxLength {
		return ErrTextTooLong
	}

	comment := &model.Comment{
		PostID:    postID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	return s.commentRepo.CreateComment(ctx, comment)
}

func (s *commentServiceImpl) GetCommentsByPost(ctx context.Context, postID uint64) ([]*dto.CommentView, error) {
	comments, err := s.commentRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, &dto.CommentView{
			ID:             c.ID,
			Text:           c.Text,
			CreatedAt:      c.CreatedAt.Format(createdAtLayout),
			AuthorUsername: c.Author.Username,
		})
	}
	return views, nil
}
