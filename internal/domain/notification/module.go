package notification

import (
	"divelog_studio/internal/domain/notification/handler"
	"divelog_studio/internal/domain/notification/repository"
	"divelog_studio/internal/domain/notification/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"
	"divelog_studio/internal/pkg/worker"

	"github.com/gin-gonic/gin"
)

// NotificationModule 通知模块
type NotificationModule struct{}

func init() {
	registry.Register(&NotificationModule{})
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) Priority() int {
	return 16
}

func (m *NotificationModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewNotificationRepository(ctx.Store)
	svc := service.NewNotificationService(repo)
	h := handler.NewNotificationHandler(svc)

	// 站内通知走后台任务池，内容模块通过 ctx.Announce 投递
	pool := worker.NewPool(2, 64)
	pool.Start()
	ctx.Announce = func(title, description string) {
		pool.Add(worker.Task{
			Name: "notify",
			Run: func() error {
				svc.Add(service.AddInput{Title: title, Description: description})
				return nil
			},
		})
	}

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.NotificationHandler) {
	g := r.Group("/notifications")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("", h.GetNotifications)
		g.POST("", h.AddNotification)
		g.PUT("/:id/read", h.MarkNotification)
		g.DELETE("/:id", h.DismissNotification)
	}
}
