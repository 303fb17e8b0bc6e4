package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
	"yatube/internal/api/config"
	"yatube/internal/model"
	"yatube/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	config.Cfg = &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			TokenTTL:   1,
			CookieName: "yatube_session",
			LoginPath:  "/auth/login/",
		},
		Pagination: config.PaginationConfig{Index: 10, Group: 10, Profile: 10, Feed: 10},
		Cache:      config.CacheConfig{IndexTTL: 20},
	}
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := &model.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hash",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repository.NewUserRepo(db).CreateUser(context.Background(), user))
	return user
}

func createTestGroup(t *testing.T, db *gorm.DB, slug string) *model.Group {
	t.Helper()

	group := &model.Group{
		Title:       "Группа " + slug,
		Slug:        slug,
		Description: "Тестовое сообщество",
	}
	require.NoError(t, repository.NewGroupRepo(db).CreateGroup(context.Background(), group))
	return group
}

func newPostService(db *gorm.DB) PostService {
	return NewPostService(
		repository.NewPostRepository(db),
		repository.NewGroupRepo(db),
		repository.NewUserRepo(db),
	)
}
