package equipment

import (
	"divelog_studio/internal/domain/equipment/handler"
	"divelog_studio/internal/domain/equipment/repository"
	"divelog_studio/internal/domain/equipment/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// EquipmentModule 器材模块
type EquipmentModule struct{}

func init() {
	registry.Register(&EquipmentModule{})
}

func (m *EquipmentModule) Name() string {
	return "equipment"
}

func (m *EquipmentModule) Priority() int {
	return 11
}

func (m *EquipmentModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewEquipmentRepository(ctx.Store)
	svc := service.NewEquipmentService(repo)
	h := handler.NewEquipmentHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.EquipmentHandler) {
	g := r.Group("/equipment")

	g.GET("", h.GetEquipment)

	auth := g.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("", h.AddEquipment)
		auth.PUT("/:id", h.UpdateEquipment)
		auth.PATCH("/:id/status", h.UpdateStatus)
		auth.DELETE("/:id", h.DeleteEquipment)
	}
}
