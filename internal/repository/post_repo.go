package repository

import (
	"context"
	"errors"
	"yatube/internal/model"

	"gorm.io/gorm"
)

type PostRepo interface {
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetAllPosts(ctx context.Context, limit, offset int) ([]*model.Post, error)
	GetPostsByGroup(ctx context.Context, groupID uint64, limit, offset int) ([]*model.Post, error)
	GetPostsByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error)
	GetPostsByAuthors(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*model.Post, error)
	CountAllPosts(ctx context.Context) (int64, error)
	CountPostsByGroup(ctx context.Context, groupID uint64) (int64, error)
	CountPostsByAuthor(ctx context.Context, authorID uint64) (int64, error)
	CountPostsByAuthors(ctx context.Context, authorIDs []uint64) (int64, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// 所有列表统一按创建时间倒序，新帖在前
func (s *PostRepoImpl) listQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Order("created_at desc, id desc")
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		First(post, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

func (s *PostRepoImpl) GetAllPosts(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.listQuery(ctx).
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPostsByGroup(ctx context.Context, groupID uint64, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.listQuery(ctx).
		Where("group_id = ?", groupID).
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPostsByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.listQuery(ctx).
		Where("author_id = ?", authorID).
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPostsByAuthors(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.listQuery(ctx).
		Where("author_id IN ?", authorIDs).
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) CountAllPosts(ctx context.Context) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.Post{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *PostRepoImpl) CountPostsByGroup(ctx context.Context, groupID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("group_id = ?", groupID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *PostRepoImpl) CountPostsByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("author_id = ?", authorID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *PostRepoImpl) CountPostsByAuthors(ctx context.Context, authorIDs []uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("author_id IN ?", authorIDs).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// UpdatePost 只更新可编辑字段，创建时间保持不变
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{ID: post.ID}).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

// DeletePost 删除帖子，评论由外键级联清理
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}
