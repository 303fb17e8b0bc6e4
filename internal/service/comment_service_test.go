package service

import (
	"context"
	"strings"
	"testing"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	db := setupTestDB(t)
	postSvc := newPostService(db)
	svc := NewCommentService(repository.NewCommentRepo(db), repository.NewPostRepository(db))
	ctx := context.Background()

	author := createTestUser(t, db, "leo")
	reader := createTestUser(t, db, "mia")

	post, err := postSvc.CreatePost(ctx, author.ID, &dto.PostForm{Text: "пост"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.AddComment(ctx, post.ID, reader.ID, "отличный пост"))

	comments, err := svc.GetCommentsByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "отличный пост", comments[0].Text)
	assert.Equal(t, "mia", comments[0].AuthorUsername)
}

func TestAddCommentValidation(t *testing.T) {
	db := setupTestDB(t)
	postSvc := newPostService(db)
	svc := NewCommentService(repository.NewCommentRepo(db), repository.NewPostRepository(db))
	ctx := context.Background()

	author := createTestUser(t, db, "leo")
	post, err := postSvc.CreatePost(ctx, author.ID, &dto.PostForm{Text: "пост"}, "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.AddComment(ctx, post.ID, author.ID, "   "), ErrTextRequired)

	tooLong := strings.Repeat("я", model.CommentMaxLength+1)
	assert.ErrorIs(t, svc.AddComment(ctx, post.ID, author.ID, tooLong), ErrTextTooLong)

	// 长度上限按字符数算，正好到上限的评论可以通过
	exact := strings.Repeat("я", model.CommentMaxLength)
	assert.NoError(t, svc.AddComment(ctx, post.ID, author.ID, exact))

	assert.ErrorIs(t, svc.AddComment(ctx, 999, author.ID, "текст"), ErrPostNotFound)

	comments, err := svc.GetCommentsByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
