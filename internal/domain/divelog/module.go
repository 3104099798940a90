package divelog

import (
	"divelog_studio/internal/domain/divelog/handler"
	"divelog_studio/internal/domain/divelog/repository"
	"divelog_studio/internal/domain/divelog/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// DiveLogModule 潜水日志模块
type DiveLogModule struct{}

func init() {
	registry.Register(&DiveLogModule{})
}

func (m *DiveLogModule) Name() string {
	return "divelog"
}

func (m *DiveLogModule) Priority() int {
	return 10
}

func (m *DiveLogModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewDiveLogRepository(ctx.Store)
	svc := service.NewDiveLogService(repo)
	h := handler.NewDiveLogHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.DiveLogHandler) {
	g := r.Group("/divelogs")

	g.GET("", h.GetDiveLogs)

	auth := g.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("", h.AddDiveLog)
		auth.PUT("/:id", h.UpdateDiveLog)
		auth.DELETE("/:id", h.DeleteDiveLog)
	}
}
