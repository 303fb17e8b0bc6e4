package service

import (
	"context"
	"testing"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/security"
	"yatube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) UserService {
	return NewUserService(repository.NewUserRepo(db))
}

func TestSignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user, err := svc.Signup(ctx, &dto.SignupForm{
		Username:  "leo",
		Email:     "leo@example.com",
		FirstName: "Лев",
		Password:  "secret123",
		Password2: "secret123",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.Password) // 存的是哈希

	token, err := svc.Login(ctx, "leo", "secret123")
	require.NoError(t, err)

	claims, err := security.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "leo", claims.Username)
}

func TestSignupDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	form := &dto.SignupForm{Username: "leo", Email: "leo@example.com", Password: "secret123", Password2: "secret123"}
	_, err := svc.Signup(ctx, form)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, form)
	assert.ErrorIs(t, err, ErrUserExist)
}

func TestLoginFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupForm{Username: "leo", Email: "leo@example.com", Password: "secret123", Password2: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "leo", "wrong")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = svc.Login(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	postSvc := newPostService(db)
	followSvc := newFollowService(db)
	commentSvc := NewCommentService(repository.NewCommentRepo(db), repository.NewPostRepository(db))
	ctx := context.Background()

	leo := createTestUser(t, db, "leo")
	mia := createTestUser(t, db, "mia")

	post, err := postSvc.CreatePost(ctx, leo.ID, &dto.PostForm{Text: "пост"}, "")
	require.NoError(t, err)
	require.NoError(t, commentSvc.AddComment(ctx, post.ID, mia.ID, "коммент"))
	_, err = followSvc.Follow(ctx, mia.ID, "leo")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, leo.ID))

	// 再删一次：用户已经不存在
	assert.ErrorIs(t, svc.DeleteUser(ctx, leo.ID), ErrUserNotFound)

	var posts, comments, follows int64
	require.NoError(t, db.Model(&model.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&model.Comment{}).Count(&comments).Error)
	require.NoError(t, db.Model(&model.Follow{}).Count(&follows).Error)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
	assert.Zero(t, follows)
}
