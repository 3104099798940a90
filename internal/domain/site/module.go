package site

import (
	"divelog_studio/internal/domain/site/handler"
	"divelog_studio/internal/domain/site/repository"
	"divelog_studio/internal/domain/site/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// SiteModule 潜点模块
type SiteModule struct{}

func init() {
	registry.Register(&SiteModule{})
}

func (m *SiteModule) Name() string {
	return "site"
}

func (m *SiteModule) Priority() int {
	return 12
}

func (m *SiteModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewSiteRepository(ctx.Store)
	svc := service.NewSiteService(repo)
	h := handler.NewSiteHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.SiteHandler) {
	g := r.Group("/sites")

	g.GET("", h.GetSites)
	g.GET("/favorites", h.GetFavorites)

	auth := g.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("", h.AddSite)
		auth.PUT("/:id", h.UpdateSite)
		auth.DELETE("/:id", h.DeleteSite)
		auth.POST("/:id/favorite", h.ToggleFavorite)
	}
}
