package service

import (
	"context"
	"time"
	"yatube/internal/api/config"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/redis"
	"yatube/internal/pkg/security"
	"yatube/internal/repository"
)

type UserService interface {
	Signup(ctx context.Context, form *dto.SignupForm) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) Signup(ctx context.Context, form *dto.SignupForm) (*model.User, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, form.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExist
	}

	hash, err := security.HashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  form.Username,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  hash,
		CreatedAt: time.Now(),
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验凭据并签发会话 Token
func (s *userServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err = security.CheckPasswordHash(password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(user.ID, user.Username)
}

// Logout 把 Token 签名加入失效名单，有效期与 Token 剩余寿命同阶
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	if redis.GetRdbClient() == nil {
		return nil
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil
	}
	ttl := time.Duration(config.Cfg.Auth.TokenTTL) * time.Hour
	return redis.SetWithExpiration(ctx, consts.AuthTokenDenyKey+signature, "1", ttl)
}

func (s *userServiceImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteUser 删除用户，帖子、评论、订阅关系级联清理
func (s *userServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUser(ctx, id)
}
