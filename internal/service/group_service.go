package service

import (
	"context"
	"yatube/internal/model"
	"yatube/internal/repository"
)

type GroupService interface {
	GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error)
	GetAllGroups(ctx context.Context) ([]*model.Group, error)
	CreateGroup(ctx context.Context, group *model.Group) error
	DeleteGroup(ctx context.Context, id uint64) error
}

type groupServiceImpl struct {
	groupRepo repository.GroupRepo
}

func NewGroupService(groupRepo repository.GroupRepo) GroupService {
	return &groupServiceImpl{groupRepo: groupRepo}
}

func (s *groupServiceImpl) GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group, err := s.groupRepo.GetGroupBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

func (s *groupServiceImpl) GetAllGroups(ctx context.Context) ([]*model.Group, error) {
	return s.groupRepo.GetAllGroups(ctx)
}

func (s *groupServiceImpl) CreateGroup(ctx context.Context, group *model.Group) error {
	return s.groupRepo.CreateGroup(ctx, group)
}

// DeleteGroup 删除小组。小组下的帖子保留，group_id 被置空。
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, id uint64) error {
	return s.groupRepo.DeleteGroup(ctx, id)
}
