package common

import (
	"net/http"

	commonHandler "divelog_studio/internal/pkg/common"
	"divelog_studio/internal/pkg/config"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CommonModule 通用功能模块
type CommonModule struct{}

func init() {
	registry.Register(&CommonModule{})
}

func (m *CommonModule) Name() string {
	return "common"
}

func (m *CommonModule) Priority() int {
	return 100 // 最后初始化
}

func (m *CommonModule) Init(ctx *registry.ModuleContext) error {
	setupRoutes(ctx.Router)
	return nil
}

func setupRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 媒体文件上传与静态访问
	r.POST("/upload", middleware.AuthMiddleware(), commonHandler.UploadFile)
	r.Static(config.GlobalConfig.Upload.BaseURL, config.GlobalConfig.Upload.Dir)
}
