package handler

import (
	"net/http"
	"strings"
	"yatube/internal/api/config"
	"yatube/internal/api/dto"
	"yatube/internal/pkg/render"
	"yatube/internal/pkg/util"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc  service.UserService
	renderer *render.Renderer
}

func NewUserHandler(userSvc service.UserService, renderer *render.Renderer) *UserHandler {
	return &UserHandler{userSvc: userSvc, renderer: renderer}
}

// SignupForm 注册表单页
func (s *UserHandler) SignupForm(c *gin.Context) {
	s.renderer.HTML(c, http.StatusOK, "signup.html", gin.H{})
}

// SignupSubmit 注册成功后自动登录并跳转首页
func (s *UserHandler) SignupSubmit(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderer.HTML(c, http.StatusOK, "signup.html", gin.H{"Error": err.Error(), "Form": &form})
		return
	}
	if err := util.ValidateForm(&form); err != nil {
		s.renderer.HTML(c, http.StatusOK, "signup.html", gin.H{"Error": err.Error(), "Form": &form})
		return
	}

	_, err := s.userSvc.Signup(c.Request.Context(), &form)
	if err != nil {
		if err == service.ErrUserExist {
			s.renderer.HTML(c, http.StatusOK, "signup.html", gin.H{"Error": "用户名已被占用", "Form": &form})
			return
		}
		s.renderer.InternalError(c, err)
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		s.renderer.InternalError(c, err)
		return
	}
	s.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

// LoginForm 登录表单页，透传 next 参数
func (s *UserHandler) LoginForm(c *gin.Context) {
	s.renderer.HTML(c, http.StatusOK, "login.html", gin.H{
		"Next": c.Query("next"),
	})
}

// LoginSubmit 登录成功后回到 next 指向的页面
func (s *UserHandler) LoginSubmit(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderer.HTML(c, http.StatusOK, "login.html", gin.H{"Error": err.Error()})
		return
	}
	if err := util.ValidateForm(&form); err != nil {
		s.renderer.HTML(c, http.StatusOK, "login.html", gin.H{"Error": err.Error(), "Next": form.Next})
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if err == service.ErrUserNotFound || err == service.ErrPasswordIncorrect {
			s.renderer.HTML(c, http.StatusOK, "login.html", gin.H{"Error": "用户名或密码错误", "Next": form.Next})
			return
		}
		s.renderer.InternalError(c, err)
		return
	}

	s.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, safeNext(form.Next))
}

// Logout 注销：吊销令牌并清除 cookie
func (s *UserHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(config.Cfg.Auth.CookieName); err == nil && token != "" {
		if err = s.userSvc.Logout(c.Request.Context(), token); err != nil {
			s.renderer.InternalError(c, err)
			return
		}
	}
	c.SetCookie(config.Cfg.Auth.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (s *UserHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := config.Cfg.Auth.TokenTTL * 3600
	c.SetCookie(config.Cfg.Auth.CookieName, token, maxAge, "/", "", false, true)
}

// safeNext 只允许回跳站内路径，防开放重定向
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
