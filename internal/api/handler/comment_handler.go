package handler

import (
	log "log/slog"
	"net/http"
	"strconv"
	"yatube/internal/api/dto"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/render"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
	renderer   *render.Renderer
}

func NewCommentHandler(commentSvc service.CommentService, renderer *render.Renderer) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc, renderer: renderer}
}

// AddComment 提交评论。无效输入不报错，直接跳回详情页。
func (s *CommentHandler) AddComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderer.NotFound(c)
		return
	}
	detailURL := "/posts/" + c.Param("id") + "/"

	var form dto.CommentForm
	if err = c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	err = s.commentSvc.AddComment(c.Request.Context(), postID, c.GetUint64(consts.CtxUserID), form.Text)
	switch err {
	case nil:
		c.Redirect(http.StatusFound, detailURL)
	case service.ErrTextRequired, service.ErrTextTooLong:
		// 静默丢弃无效评论
		log.InfoContext(c.Request.Context(), "comment dropped", "post_id", postID, "reason", err.Error())
		c.Redirect(http.StatusFound, detailURL)
	case service.ErrPostNotFound:
		s.renderer.NotFound(c)
	default:
		s.renderer.InternalError(c, err)
	}
}
