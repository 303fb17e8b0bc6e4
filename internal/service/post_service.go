package service

import (
	"context"
	"strings"
	"time"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/pagination"
	"yatube/internal/repository"

	"github.com/jinzhu/copier"
)

const createdAtLayout = "2006-01-02 15:04"

type PostService interface {
	ListAll(ctx context.Context, pageNum, pageSize int) (*dto.PostPage, error)
	ListByGroup(ctx context.Context, slug string, pageNum, pageSize int) (*model.Group, *dto.PostPage, error)
	ListByAuthor(ctx context.Context, username string, pageNum, pageSize int) (*model.User, *dto.PostPage, int64, error)
	GetPost(ctx context.Context, postID uint64) (*dto.PostView, int64, error)
	CreatePost(ctx context.Context, authorID uint64, form *dto.PostForm, image string) (*model.Post, error)
	UpdatePost(ctx context.Context, postID, editorID uint64, form *dto.PostForm, image string) error
	DeletePost(ctx context.Context, postID, editorID uint64) error
}

type postServiceImpl struct {
	postRepo  repository.PostRepo
	groupRepo repository.GroupRepo
	userRepo  repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, groupRepo repository.GroupRepo, userRepo repository.UserRepo) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// ListAll 首页列表，新帖在前
func (s *postServiceImpl) ListAll(ctx context.Context, pageNum, pageSize int) (*dto.PostPage, error) {
	total, err := s.postRepo.CountAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	page := pagination.New(total, pageSize, pageNum)
	posts, err := s.postRepo.GetAllPosts(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	return &dto.PostPage{Posts: toPostViews(posts), Page: page}, nil
}

// ListByGroup 小组列表，slug 不存在时返回 ErrGroupNotFound
func (s *postServiceImpl) ListByGroup(ctx context.Context, slug string, pageNum, pageSize int) (*model.Group, *dto.PostPage, error) {
	group, err := s.groupRepo.GetGroupBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}

	total, err := s.postRepo.CountPostsByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}

	page := pagination.New(total, pageSize, pageNum)
	posts, err := s.postRepo.GetPostsByGroup(ctx, group.ID, page.PageSize, page.Offset())
	if err != nil {
		return nil, nil, err
	}

	return group, &dto.PostPage{Posts: toPostViews(posts), Page: page}, nil
}

// ListByAuthor 个人主页列表，附带该作者的帖子总数
func (s *postServiceImpl) ListByAuthor(ctx context.Context, username string, pageNum, pageSize int) (*model.User, *dto.PostPage, int64, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, 0, err
	}
	if author == nil {
		return nil, nil, 0, ErrUserNotFound
	}

	total, err := s.postRepo.CountPostsByAuthor(ctx, author.ID)
	if err != nil {
		return nil, nil, 0, err
	}

	page := pagination.New(total, pageSize, pageNum)
	posts, err := s.postRepo.GetPostsByAuthor(ctx, author.ID, page.PageSize, page.Offset())
	if err != nil {
		return nil, nil, 0, err
	}

	return author, &dto.PostPage{Posts: toPostViews(posts), Page: page}, total, nil
}

// GetPost 单帖详情，附带作者的帖子总数
func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostView, int64, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	if post == nil {
		return nil, 0, ErrPostNotFound
	}

	authorTotal, err := s.postRepo.CountPostsByAuthor(ctx, post.AuthorID)
	if err != nil {
		return nil, 0, err
	}

	return toPostView(post), authorTotal, nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, authorID uint64, form *dto.PostForm, image string) (*model.Post, error) {
	if strings.TrimSpace(form.Text) == "" {
		return nil, ErrTextRequired
	}

	groupID, err := s.resolveGroup(ctx, form.GroupID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Text:      form.Text,
		AuthorID:  authorID,
		GroupID:   groupID,
		Image:     image,
		CreatedAt: time.Now(),
	}

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost 只有作者本人可以修改，创建时间保持不变
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID, editorID uint64, form *dto.PostForm, image string) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != editorID {
		return ErrNotAuthor
	}
	if strings.TrimSpace(form.Text) == "" {
		return ErrTextRequired
	}

	groupID, err := s.resolveGroup(ctx, form.GroupID)
	if err != nil {
		return err
	}

	post.Text = form.Text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
	}

	return s.postRepo.UpdatePost(ctx, post)
}

func (s *postServiceImpl) DeletePost(ctx context.Context, postID, editorID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != editorID {
		return ErrNotAuthor
	}
	return s.postRepo.DeletePost(ctx, postID)
}

func (s *postServiceImpl) resolveGroup(ctx context.Context, groupID *uint64) (*uint64, error) {
	if groupID == nil || *groupID == 0 {
		return nil, nil
	}
	group, err := s.groupRepo.GetGroupByID(ctx, *groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	id := group.ID
	return &id, nil
}

func toPostViews(posts []*model.Post) []*dto.PostView {
	views := make([]*dto.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, toPostView(p))
	}
	return views
}

func toPostView(post *model.Post) *dto.PostView {
	view := &dto.PostView{}
	_ = copier.Copy(view, post)
	view.CreatedAt = post.CreatedAt.Format(createdAtLayout)
	view.AuthorUsername = post.Author.Username
	if post.Group != nil {
		view.GroupTitle = post.Group.Title
		view.GroupSlug = post.Group.Slug
	}
	return view
}
