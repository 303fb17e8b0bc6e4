package dto

// CommentView 详情页评论视图
type CommentView struct {
	ID             uint64
	Text           string
	CreatedAt      string
	AuthorUsername string
}

// CommentForm 评论表单
type CommentForm struct {
	Text string `form:"text" validate:"required,min=1,max=20000"`
}
