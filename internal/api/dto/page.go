package dto

import (
	"yatube/internal/pkg/pagination"
)

// PostPage 一页帖子加上导航元信息
type PostPage struct {
	Posts []*PostView
	Page  *pagination.Page
}
