package handler

import (
	log "log/slog"
	"net/http"
	"strconv"
	"time"
	"yatube/internal/api/config"
	"yatube/internal/api/dto"
	"yatube/internal/pkg/cache"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/media"
	"yatube/internal/pkg/pagination"
	"yatube/internal/pkg/render"
	"yatube/internal/pkg/util"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc    service.PostService
	groupSvc   service.GroupService
	commentSvc service.CommentService
	followSvc  service.FollowService
	renderer   *render.Renderer
	pageCache  cache.PageCache
}

func NewPostHandler(
	postSvc service.PostService,
	groupSvc service.GroupService,
	commentSvc service.CommentService,
	followSvc service.FollowService,
	renderer *render.Renderer,
	pageCache cache.PageCache,
) *PostHandler {
	return &PostHandler{
		postSvc:    postSvc,
		groupSvc:   groupSvc,
		commentSvc: commentSvc,
		followSvc:  followSvc,
		renderer:   renderer,
		pageCache:  pageCache,
	}
}

// Index 首页。窗口期内直接返回缓存的快照，底层数据变化也不重渲染。
func (s *PostHandler) Index(c *gin.Context) {
	pageNum := pagination.ParsePageParam(c.Query("page"))
	cacheKey := strconv.Itoa(pageNum)

	if snap, err := s.pageCache.Get(c.Request.Context(), cacheKey); err == nil && snap != nil {
		c.Data(http.StatusOK, "text/html; charset=utf-8", snap.Body)
		return
	} else if err != nil {
		log.WarnContext(c.Request.Context(), "index cache read failed", "err", err)
	}

	postPage, err := s.postSvc.ListAll(c.Request.Context(), pageNum, config.Cfg.Pagination.Index)
	if err != nil {
		s.renderer.InternalError(c, err)
		return
	}

	body, err := s.renderer.Bytes("index.html", gin.H{
		"PageObj": postPage,
	})
	if err != nil {
		s.renderer.InternalError(c, err)
		return
	}

	snap := &cache.Snapshot{Body: body, RenderedAt: time.Now()}
	if err = s.pageCache.Put(c.Request.Context(), cacheKey, snap); err != nil {
		log.WarnContext(c.Request.Context(), "index cache write failed", "err", err)
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// ClearIndexCache 管理操作，清空首页快照
func (s *PostHandler) ClearIndexCache(c *gin.Context) {
	if err := s.pageCache.Clear(c.Request.Context()); err != nil {
		s.renderer.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// GroupList 小组帖子列表
func (s *PostHandler) GroupList(c *gin.Context) {
	pageNum := pagination.ParsePageParam(c.Query("page"))

	group, postPage, err := s.postSvc.ListByGroup(c.Request.Context(), c.Param("slug"), pageNum, config.Cfg.Pagination.Group)
	if err != nil {
		s.handleListError(c, err)
		return
	}

	s.renderer.HTML(c, http.StatusOK, "group_list.html", gin.H{
		"Group":   group,
		"PageObj": postPage,
	})
}

// Profile 作者主页,登录用户附带是否已订阅的标记
func (s *PostHandler) Profile(c *gin.Context) {
	pageNum := pagination.ParsePageParam(c.Query("page"))

	author, postPage, total, err := s.postSvc.ListByAuthor(c.Request.Context(), c.Param("username"), pageNum, config.Cfg.Pagination.Profile)
	if err != nil {
		s.handleListError(c, err)
		return
	}

	data := gin.H{
		"Author":     author,
		"PageObj":    postPage,
		"PostsTotal": total,
	}

	if userID := c.GetUint64(consts.CtxUserID); userID != 0 {
		following, ferr := s.followSvc.IsFollowing(c.Request.Context(), userID, author.ID)
		if ferr != nil {
			s.renderer.InternalError(c, ferr)
			return
		}
		data["Following"] = following
		data["Viewer"] = c.GetString(consts.CtxUsername)
	}

	s.renderer.HTML(c, http.StatusOK, "profile.html", data)
}

// PostDetail 单帖详情页，带评论表单和评论列表
func (s *PostHandler) PostDetail(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderer.NotFound(c)
		return
	}

	post, authorTotal, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		s.handleListError(c, err)
		return
	}

	comments, err := s.commentSvc.GetCommentsByPost(c.Request.Context(), postID)
	if err != nil {
		s.renderer.InternalError(c, err)
		return
	}

	s.renderer.HTML(c, http.StatusOK, "post_detail.html", gin.H{
		"Post":       post,
		"PostsTotal": authorTotal,
		"Comments":   comments,
		"Viewer":     c.GetString(consts.CtxUsername),
	})
}

// CreateForm 发帖表单页
func (s *PostHandler) CreateForm(c *gin.Context) {
	groups, err := s.groupSvc.GetAllGroups(c.Request.Context())
	if err != nil {
		s.renderer.InternalError(c, err)
		return
	}
	s.renderer.HTML(c, http.StatusOK, "create_post.html", gin.H{
		"Groups": groups,
		"IsEdit": false,
	})
}

// CreateSubmit 提交新帖，成功后跳转到作者主页
func (s *PostHandler) CreateSubmit(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserID)

	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		s.redisplayPostForm(c, &form, false, 0, err)
		return
	}
	if err := util.ValidateForm(&form); err != nil {
		s.redisplayPostForm(c, &form, false, 0, err)
		return
	}

	image := s.saveImageIfPresent(c)

	_, err := s.postSvc.CreatePost(c.Request.Context(), userID, &form, image)
	if err != nil {
		if err == service.ErrTextRequired || err == service.ErrGroupNotFound {
			s.redisplayPostForm(c, &form, false, 0, err)
			return
		}
		s.renderer.InternalError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+c.GetString(consts.CtxUsername)+"/")
}

// EditForm 编辑表单页。非作者访问静默跳转到只读详情页。
func (s *PostHandler) EditForm(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderer.NotFound(c)
		return
	}

	post, _, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		s.handleListError(c, err)
		return
	}

	if post.AuthorID != c.GetUint64(consts.CtxUserID) {
		c.Redirect(http.StatusFound, "/posts/"+c.Param("id")+"/")
		return
	}

	groups, err := s.groupSvc.GetAllGroups(c.Request.Context())
	if err != nil {
		s.renderer.InternalError(c, err)
		return
	}

	s.renderer.HTML(c, http.StatusOK, "create_post.html", gin.H{
		"Groups": groups,
		"IsEdit": true,
		"Post":   post,
	})
}

// EditSubmit 提交编辑。先验作者身份：非作者的提交不碰表单
// 也不落盘图片，静默跳转回详情页。
func (s *PostHandler) EditSubmit(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderer.NotFound(c)
		return
	}
	detailURL := "/posts/" + c.Param("id") + "/"

	post, _, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		s.handleListError(c, err)
		return
	}
	if post.AuthorID != c.GetUint64(consts.CtxUserID) {
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	var form dto.PostForm
	if err = c.ShouldBind(&form); err != nil {
		s.redisplayPostForm(c, &form, true, postID, err)
		return
	}
	if err = util.ValidateForm(&form); err != nil {
		s.redisplayPostForm(c, &form, true, postID, err)
		return
	}

	image := s.saveImageIfPresent(c)

	err = s.postSvc.UpdatePost(c.Request.Context(), postID, c.GetUint64(consts.CtxUserID), &form, image)
	switch err {
	case nil, service.ErrNotAuthor:
		c.Redirect(http.StatusFound, detailURL)
	case service.ErrPostNotFound:
		s.renderer.NotFound(c)
	case service.ErrTextRequired, service.ErrGroupNotFound:
		s.redisplayPostForm(c, &form, true, postID, err)
	default:
		s.renderer.InternalError(c, err)
	}
}

// DeleteSubmit 删除帖子。只有作者能删，非作者静默跳回详情页。
func (s *PostHandler) DeleteSubmit(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderer.NotFound(c)
		return
	}

	err = s.postSvc.DeletePost(c.Request.Context(), postID, c.GetUint64(consts.CtxUserID))
	switch err {
	case nil:
		c.Redirect(http.StatusFound, "/profile/"+c.GetString(consts.CtxUsername)+"/")
	case service.ErrNotAuthor:
		c.Redirect(http.StatusFound, "/posts/"+c.Param("id")+"/")
	case service.ErrPostNotFound:
		s.renderer.NotFound(c)
	default:
		s.renderer.InternalError(c, err)
	}
}

func (s *PostHandler) handleListError(c *gin.Context, err error) {
	switch err {
	case service.ErrGroupNotFound, service.ErrUserNotFound, service.ErrPostNotFound:
		s.renderer.NotFound(c)
	default:
		s.renderer.InternalError(c, err)
	}
}

func (s *PostHandler) redisplayPostForm(c *gin.Context, form *dto.PostForm, isEdit bool, postID uint64, formErr error) {
	groups, err := s.groupSvc.GetAllGroups(c.Request.Context())
	if err != nil {
		s.renderer.InternalError(c, err)
		return
	}
	data := gin.H{
		"Groups": groups,
		"IsEdit": isEdit,
		"Form":   form,
		"Error":  formErr.Error(),
	}
	if isEdit {
		data["PostID"] = postID
	}
	s.renderer.HTML(c, http.StatusOK, "create_post.html", data)
}

func (s *PostHandler) saveImageIfPresent(c *gin.Context) string {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return ""
	}
	path, err := media.SavePostImage(file)
	if err != nil {
		log.WarnContext(c.Request.Context(), "post image rejected", "err", err)
		return ""
	}
	return path
}
