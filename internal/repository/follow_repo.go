package repository

import (
	"context"
	"errors"
	"yatube/internal/model"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	GetFollow(ctx context.Context, userID, authorID uint64) (*model.Follow, error)
	GetFollowedAuthorIDs(ctx context.Context, userID uint64) ([]uint64, error)
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, follow *model.Follow) error
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// GetFollow 获取订阅关系，不存在时返回 nil
func (s *FollowRepoImpl) GetFollow(ctx context.Context, userID, authorID uint64) (*model.Follow, error) {
	var follow model.Follow
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

// GetFollowedAuthorIDs 当前用户订阅的全部作者
func (s *FollowRepoImpl) GetFollowedAuthorIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// CreateFollow 创建订阅关系。唯一性由复合主键保证，并发下输掉的
// 写入者会收到唯一键冲突，这里把它当作成功的空操作。
func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error

	if isDuplicateKey(err) {
		return nil
	}
	return err
}

// DeleteFollow 删除订阅关系，不存在时也不报错
func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", follow.UserID, follow.AuthorID).
		Delete(&model.Follow{}).Error
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
