package service

import (
	"context"
	"time"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/pagination"
	"yatube/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, userID uint64, authorUsername string) (*model.User, error)
	Unfollow(ctx context.Context, userID uint64, authorUsername string) (*model.User, error)
	IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error)
	Feed(ctx context.Context, userID uint64, pageNum, pageSize int) (string, *dto.PostPage, error)
}

type followServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
	postRepo   repository.PostRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo, postRepo repository.PostRepo) FollowService {
	return &followServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

// Follow 订阅作者。作者不存在返回 ErrUserNotFound；订阅自己返回
// ErrFollowSelf；已订阅时重复调用是空操作。
func (s *followServiceImpl) Follow(ctx context.Context, userID uint64, authorUsername string) (*model.User, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	if author.ID == userID {
		return author, ErrFollowSelf
	}

	err = s.followRepo.CreateFollow(ctx, &model.Follow{
		UserID:    userID,
		AuthorID:  author.ID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

// Unfollow 退订作者，没有订阅关系时也视为成功
func (s *followServiceImpl) Unfollow(ctx context.Context, userID uint64, authorUsername string) (*model.User, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	if author.ID == userID {
		return author, nil
	}

	err = s.followRepo.DeleteFollow(ctx, &model.Follow{UserID: userID, AuthorID: author.ID})
	if err != nil {
		return nil, err
	}
	return author, nil
}

func (s *followServiceImpl) IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	follow, err := s.followRepo.GetFollow(ctx, userID, authorID)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}

// Feed 订阅流。三种状态:没有订阅任何作者、订阅的作者都没有帖子、
// 有帖子时返回按时间倒序的分页结果。
func (s *followServiceImpl) Feed(ctx context.Context, userID uint64, pageNum, pageSize int) (string, *dto.PostPage, error) {
	authorIDs, err := s.followRepo.GetFollowedAuthorIDs(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if len(authorIDs) == 0 {
		return consts.FeedStateZeroAuthors, nil, nil
	}

	total, err := s.postRepo.CountPostsByAuthors(ctx, authorIDs)
	if err != nil {
		return "", nil, err
	}
	if total == 0 {
		return consts.FeedStateZeroPosts, nil, nil
	}

	page := pagination.New(total, pageSize, pageNum)
	posts, err := s.postRepo.GetPostsByAuthors(ctx, authorIDs, page.PageSize, page.Offset())
	if err != nil {
		return "", nil, err
	}

	return consts.FeedStatePostsFound, &dto.PostPage{Posts: toPostViews(posts), Page: page}, nil
}
