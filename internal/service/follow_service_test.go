package service

import (
	"context"
	"testing"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/consts"
	"yatube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFollowService(db *gorm.DB) FollowService {
	return NewFollowService(
		repository.NewFollowRepo(db),
		repository.NewUserRepo(db),
		repository.NewPostRepository(db),
	)
}

func TestFollowSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)
	ctx := context.Background()

	leo := createTestUser(t, db, "leo")

	_, err := svc.Follow(ctx, leo.ID, "leo")
	assert.ErrorIs(t, err, ErrFollowSelf)

	var count int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)
	ctx := context.Background()

	leo := createTestUser(t, db, "leo")
	mia := createTestUser(t, db, "mia")

	_, err := svc.Follow(ctx, leo.ID, "mia")
	require.NoError(t, err)

	// 重复订阅不报错也不产生新行
	_, err = svc.Follow(ctx, leo.ID, "mia")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	following, err := svc.IsFollowing(ctx, leo.ID, mia.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowUnknownAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)

	leo := createTestUser(t, db, "leo")

	_, err := svc.Follow(context.Background(), leo.ID, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUnfollow(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)
	ctx := context.Background()

	leo := createTestUser(t, db, "leo")
	mia := createTestUser(t, db, "mia")

	_, err := svc.Follow(ctx, leo.ID, "mia")
	require.NoError(t, err)

	_, err = svc.Unfollow(ctx, leo.ID, "mia")
	require.NoError(t, err)

	following, err := svc.IsFollowing(ctx, leo.ID, mia.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// 没有订阅关系时退订也成功
	_, err = svc.Unfollow(ctx, leo.ID, "mia")
	assert.NoError(t, err)
}

func TestFeedStates(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)
	postSvc := newPostService(db)
	ctx := context.Background()

	leo := createTestUser(t, db, "leo")
	mia := createTestUser(t, db, "mia")
	noah := createTestUser(t, db, "noah")

	// 没订阅任何人
	state, page, err := svc.Feed(ctx, leo.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, consts.FeedStateZeroAuthors, state)
	assert.Nil(t, page)

	// 订阅的作者还没有发帖
	_, err = svc.Follow(ctx, leo.ID, "mia")
	require.NoError(t, err)
	state, page, err = svc.Feed(ctx, leo.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, consts.FeedStateZeroPosts, state)
	assert.Nil(t, page)

	// 只看到订阅作者的帖子
	_, err = postSvc.CreatePost(ctx, mia.ID, &dto.PostForm{Text: "от mia"}, "")
	require.NoError(t, err)
	_, err = postSvc.CreatePost(ctx, noah.ID, &dto.PostForm{Text: "от noah"}, "")
	require.NoError(t, err)

	state, page, err = svc.Feed(ctx, leo.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, consts.FeedStatePostsFound, state)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "от mia", page.Posts[0].Text)
}
