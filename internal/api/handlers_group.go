package api

import (
	"yatube/internal/api/handler"
)

// HandlersGroup 汇总所有 Handler，便于统一装配路由
type HandlersGroup struct {
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	FollowHandler  *handler.FollowHandler
	UserHandler    *handler.UserHandler
}
