package dto

// PostView 列表页与详情页使用的帖子视图
type PostView struct {
	ID             uint64
	Text           string
	Image          string
	CreatedAt      string
	AuthorID       uint64
	AuthorUsername string
	GroupTitle     string
	GroupSlug      string
}

// PostForm 发帖/编辑帖子表单
type PostForm struct {
	Text    string  `form:"text" validate:"required,min=1"`
	GroupID *uint64 `form:"group"`
}
