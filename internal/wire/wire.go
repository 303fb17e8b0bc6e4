package wire

import (
	"time"
	"yatube/internal/api"
	"yatube/internal/api/config"
	"yatube/internal/api/handler"
	"yatube/internal/pkg/cache"
	"yatube/internal/pkg/redis"
	"yatube/internal/pkg/render"
	"yatube/internal/repository"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	renderer, err := render.Load(cfg.Templates.Glob)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepo(db)
	followRepo := repository.NewFollowRepo(db)

	userService := service.NewUserService(userRepo)
	groupService := service.NewGroupService(groupRepo)
	postService := service.NewPostService(postRepo, groupRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	followService := service.NewFollowService(followRepo, userRepo, postRepo)

	pageCache := newPageCache(cfg)

	handlers := &api.HandlersGroup{
		PostHandler:    handler.NewPostHandler(postService, groupService, commentService, followService, renderer, pageCache),
		CommentHandler: handler.NewCommentHandler(commentService, renderer),
		FollowHandler:  handler.NewFollowHandler(followService, renderer),
		UserHandler:    handler.NewUserHandler(userService, renderer),
	}

	router := api.SetupRouter(handlers, renderer)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}

// newPageCache Redis 可用时快照放 Redis，否则退回进程内缓存
func newPageCache(cfg *config.Config) cache.PageCache {
	ttl := time.Duration(cfg.Cache.IndexTTL) * time.Second
	if redis.GetRdbClient() != nil {
		return cache.NewRedisPageCache(ttl)
	}
	return cache.NewMemoryPageCache(ttl)
}
