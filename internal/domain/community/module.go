package community

import (
	"divelog_studio/internal/domain/community/handler"
	"divelog_studio/internal/domain/community/repository"
	"divelog_studio/internal/domain/community/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CommunityModule 社区模块
type CommunityModule struct{}

func init() {
	registry.Register(&CommunityModule{})
}

func (m *CommunityModule) Name() string {
	return "community"
}

func (m *CommunityModule) Priority() int {
	return 14
}

func (m *CommunityModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewCommunityRepository(ctx.Store)
	// ctx.Announce 由 notification 模块稍后填充，只在请求阶段调用
	svc := service.NewCommunityService(repo, func(title, description string) {
		if ctx.Announce != nil {
			ctx.Announce(title, description)
		}
	})
	h := handler.NewCommunityHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CommunityHandler) {
	g := r.Group("/community/posts")

	// 匿名访客可读可发，登录态可选
	open := g.Group("")
	open.Use(middleware.OptionalAuthMiddleware())
	{
		open.GET("", h.GetPosts)
		open.GET("/:id", h.GetPost)
		open.POST("", h.AddPost)
		open.POST("/:id/comments", h.AddComment)
	}

	auth := g.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.PUT("/:id", h.UpdatePost)
		auth.DELETE("/:id", h.DeletePost)
		auth.PUT("/:id/comments/:commentId", h.UpdateComment)
		auth.DELETE("/:id/comments/:commentId", h.DeleteComment)
		auth.POST("/:id/like", h.ToggleLike)
	}
}
