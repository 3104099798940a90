package media

import (
	"divelog_studio/internal/domain/media/handler"
	"divelog_studio/internal/domain/media/repository"
	"divelog_studio/internal/domain/media/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// MediaModule 媒体模块
type MediaModule struct{}

func init() {
	registry.Register(&MediaModule{})
}

func (m *MediaModule) Name() string {
	return "media"
}

func (m *MediaModule) Priority() int {
	return 13
}

func (m *MediaModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewMediaRepository(ctx.Store)
	svc := service.NewMediaService(repo)
	h := handler.NewMediaHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.MediaHandler) {
	g := r.Group("/media")

	g.GET("", h.GetMedia)
	g.GET("/favorites", h.GetFavorites)

	auth := g.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("", h.AddMedia)
		auth.PUT("/:id", h.UpdateMedia)
		auth.DELETE("/:id", h.DeleteMedia)
		auth.POST("/:id/favorite", h.ToggleFavorite)
	}
}
