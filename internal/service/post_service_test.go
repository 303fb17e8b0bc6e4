package service

import (
	"context"
	"fmt"
	"testing"
	"yatube/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetPost(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "leo")
	group := createTestGroup(t, db, "cats")

	created, err := svc.CreatePost(ctx, author.ID, &dto.PostForm{Text: "Первый пост", GroupID: &group.ID}, "")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	view, authorTotal, err := svc.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Первый пост", view.Text)
	assert.Equal(t, "leo", view.AuthorUsername)
	assert.Equal(t, group.Title, view.GroupTitle)
	assert.Equal(t, group.Slug, view.GroupSlug)
	assert.Equal(t, int64(1), authorTotal)
}

func TestCreatePostValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "leo")

	_, err := svc.CreatePost(ctx, author.ID, &dto.PostForm{Text: "   "}, "")
	assert.ErrorIs(t, err, ErrTextRequired)

	missing := uint64(999)
	_, err = svc.CreatePost(ctx, author.ID, &dto.PostForm{Text: "текст", GroupID: &missing}, "")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGetPostNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)

	_, _, err := svc.GetPost(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdatePostOnlyAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "leo")
	other := createTestUser(t, db, "mia")

	created, err := svc.CreatePost(ctx, author.ID, &dto.PostForm{Text: "оригинал"}, "")
	require.NoError(t, err)

	err = svc.UpdatePost(ctx, created.ID, other.ID, &dto.PostForm{Text: "взлом"}, "")
	assert.ErrorIs(t, err, ErrNotAuthor)

	view, _, err := svc.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "оригинал", view.Text)

	require.NoError(t, svc.UpdatePost(ctx, created.ID, author.ID, &dto.PostForm{Text: "правка"}, ""))
	view, _, err = svc.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "правка", view.Text)
}

func TestUpdatePostMovesBetweenGroups(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "leo")
	groupA := createTestGroup(t, db, "cats")
	groupB := createTestGroup(t, db, "dogs")

	created, err := svc.CreatePost(ctx, author.ID, &dto.PostForm{Text: "пост", GroupID: &groupA.ID}, "")
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePost(ctx, created.ID, author.ID, &dto.PostForm{Text: "пост", GroupID: &groupB.ID}, ""))

	_, pageA, err := svc.ListByGroup(ctx, "cats", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, pageA.Posts)

	_, pageB, err := svc.ListByGroup(ctx, "dogs", 1, 10)
	require.NoError(t, err)
	require.Len(t, pageB.Posts, 1)
	assert.Equal(t, created.ID, pageB.Posts[0].ID)

	// 退组：group 置空
	require.NoError(t, svc.UpdatePost(ctx, created.ID, author.ID, &dto.PostForm{Text: "пост"}, ""))
	_, pageB, err = svc.ListByGroup(ctx, "dogs", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, pageB.Posts)
}

func TestListAllPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "leo")
	for i := 1; i <= 13; i++ {
		_, err := svc.CreatePost(ctx, author.ID, &dto.PostForm{Text: fmt.Sprintf("пост %d", i)}, "")
		require.NoError(t, err)
	}

	page1, err := svc.ListAll(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1.Posts, 10)
	assert.Equal(t, "пост 13", page1.Posts[0].Text) // 新帖在前
	assert.True(t, page1.Page.HasNext)

	page2, err := svc.ListAll(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, page2.Posts, 3)
	assert.Equal(t, "пост 1", page2.Posts[2].Text)

	// 超出范围的页号落到最后一页
	clamped, err := svc.ListAll(ctx, 99, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, clamped.Page.Number)
	assert.Len(t, clamped.Posts, 3)
}

func TestListByAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	leo := createTestUser(t, db, "leo")
	mia := createTestUser(t, db, "mia")

	_, err := svc.CreatePost(ctx, leo.ID, &dto.PostForm{Text: "от leo"}, "")
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, mia.ID, &dto.PostForm{Text: "от mia"}, "")
	require.NoError(t, err)

	author, page, total, err := svc.ListByAuthor(ctx, "leo", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, leo.ID, author.ID)
	assert.Equal(t, int64(1), total)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "от leo", page.Posts[0].Text)

	_, _, _, err = svc.ListByAuthor(ctx, "nobody", 1, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListByGroupNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)

	_, _, err := svc.ListByGroup(context.Background(), "missing", 1, 10)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestDeletePost(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "leo")
	other := createTestUser(t, db, "mia")

	created, err := svc.CreatePost(ctx, author.ID, &dto.PostForm{Text: "пост"}, "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePost(ctx, created.ID, other.ID), ErrNotAuthor)
	require.NoError(t, svc.DeletePost(ctx, created.ID, author.ID))

	_, _, err = svc.GetPost(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
