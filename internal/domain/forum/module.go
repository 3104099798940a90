package forum

import (
	"divelog_studio/internal/domain/forum/handler"
	"divelog_studio/internal/domain/forum/repository"
	"divelog_studio/internal/domain/forum/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// ForumModule 论坛模块
type ForumModule struct{}

func init() {
	registry.Register(&ForumModule{})
}

func (m *ForumModule) Name() string {
	return "forum"
}

func (m *ForumModule) Priority() int {
	return 15
}

func (m *ForumModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewForumRepository(ctx.Store)
	// ctx.Announce 由 notification 模块稍后填充，只在请求阶段调用
	svc := service.NewForumService(repo, func(title, description string) {
		if ctx.Announce != nil {
			ctx.Announce(title, description)
		}
	})
	h := handler.NewForumHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.ForumHandler) {
	r.GET("/forum/categories", h.GetCategories)

	g := r.Group("/forum/threads")

	open := g.Group("")
	open.Use(middleware.OptionalAuthMiddleware())
	{
		open.GET("", h.GetThreads)
		open.GET("/:id", h.GetThread)
	}

	auth := g.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("", h.AddThread)
		auth.PUT("/:id", h.UpdateThread)
		auth.DELETE("/:id", h.DeleteThread)
		auth.POST("/:id/like", h.ToggleThreadLike)
		auth.POST("/:id/replies", h.AddReply)
		auth.PUT("/:id/replies/:replyId", h.UpdateReply)
		auth.DELETE("/:id/replies/:replyId", h.DeleteReply)
		auth.POST("/:id/replies/:replyId/like", h.ToggleReplyLike)
	}
}
