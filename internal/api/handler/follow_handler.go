package handler

import (
	"net/http"
	"yatube/internal/api/config"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/pagination"
	"yatube/internal/pkg/render"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
	renderer  *render.Renderer
}

func NewFollowHandler(followSvc service.FollowService, renderer *render.Renderer) *FollowHandler {
	return &FollowHandler{followSvc: followSvc, renderer: renderer}
}

// FeedIndex 订阅流，三种状态：没有订阅 / 订阅了但没帖子 / 有帖子
func (s *FollowHandler) FeedIndex(c *gin.Context) {
	pageNum := pagination.ParsePageParam(c.Query("page"))
	userID := c.GetUint64(consts.CtxUserID)

	state, postPage, err := s.followSvc.Feed(c.Request.Context(), userID, pageNum, config.Cfg.Pagination.Feed)
	if err != nil {
		s.renderer.InternalError(c, err)
		return
	}

	s.renderer.HTML(c, http.StatusOK, "follow.html", gin.H{
		"State":   state,
		"PageObj": postPage,
	})
}

// Follow 订阅作者后跳回其主页。关注自己不是错误，直接跳转。
func (s *FollowHandler) Follow(c *gin.Context) {
	username := c.Param("username")

	_, err := s.followSvc.Follow(c.Request.Context(), c.GetUint64(consts.CtxUserID), username)
	switch err {
	case nil, service.ErrFollowSelf:
		c.Redirect(http.StatusFound, "/profile/"+username+"/")
	case service.ErrUserNotFound:
		s.renderer.NotFound(c)
	default:
		s.renderer.InternalError(c, err)
	}
}

// Unfollow 取消订阅，未订阅时也照常跳转
func (s *FollowHandler) Unfollow(c *gin.Context) {
	username := c.Param("username")

	_, err := s.followSvc.Unfollow(c.Request.Context(), c.GetUint64(consts.CtxUserID), username)
	switch err {
	case nil:
		c.Redirect(http.StatusFound, "/profile/"+username+"/")
	case service.ErrUserNotFound:
		s.renderer.NotFound(c)
	default:
		s.renderer.InternalError(c, err)
	}
}
