package api

import (
	"net/http"
	"yatube/internal/api/config"
	"yatube/internal/api/middleware"
	"yatube/internal/pkg/logger"
	"yatube/internal/pkg/render"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, renderer *render.Renderer) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger
	r.Use(middleware.TraceMiddleware())
	logger.SetupGin(r)

	// 帖子配图直接走静态文件
	r.Static("/media", config.Cfg.Media.Root)

	// 无需登录的浏览页面
	publicGroup := r.Group("")
	publicGroup.Use(middleware.AuthOptionalMiddleware())
	{
		publicGroup.GET("/", group.PostHandler.Index)
		publicGroup.GET("/group/:slug/", group.PostHandler.GroupList)
		publicGroup.GET("/profile/:username/", group.PostHandler.Profile)
		publicGroup.GET("/posts/:id/", group.PostHandler.PostDetail)
	}

	// 登录后才能访问的操作
	authGroup := r.Group("")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.GET("/create/", group.PostHandler.CreateForm)
		authGroup.POST("/create/", group.PostHandler.CreateSubmit)
		authGroup.GET("/posts/:id/edit/", group.PostHandler.EditForm)
		authGroup.POST("/posts/:id/edit/", group.PostHandler.EditSubmit)
		authGroup.POST("/posts/:id/delete/", group.PostHandler.DeleteSubmit)
		authGroup.POST("/posts/:id/comment/", group.CommentHandler.AddComment)

		authGroup.GET("/follow/", group.FollowHandler.FeedIndex)
		authGroup.GET("/profile/:username/follow/", group.FollowHandler.Follow)
		authGroup.GET("/profile/:username/unfollow/", group.FollowHandler.Unfollow)

		authGroup.POST("/internal/cache/clear", group.PostHandler.ClearIndexCache)
	}

	// 静态介绍页，无需登录
	aboutGroup := r.Group("/about")
	{
		aboutGroup.GET("/author/", func(c *gin.Context) {
			renderer.HTML(c, http.StatusOK, "about_author.html", gin.H{})
		})
		aboutGroup.GET("/tech/", func(c *gin.Context) {
			renderer.HTML(c, http.StatusOK, "about_tech.html", gin.H{})
		})
	}

	authPages := r.Group("/auth")
	{
		authPages.GET("/signup/", group.UserHandler.SignupForm)
		authPages.POST("/signup/", group.UserHandler.SignupSubmit)
		authPages.GET("/login/", group.UserHandler.LoginForm)
		authPages.POST("/login/", group.UserHandler.LoginSubmit)
		authPages.GET("/logout/", group.UserHandler.Logout)
	}

	r.NoRoute(func(c *gin.Context) {
		renderer.NotFound(c)
	})

	return r
}
