package main

import (
	"divelog_studio/internal/pkg/config"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"
	"divelog_studio/internal/pkg/uploader"
	"divelog_studio/internal/store"
	"divelog_studio/pkg/database"
	"divelog_studio/pkg/logger"
	"divelog_studio/pkg/metrics"

	_ "divelog_studio/internal/domain/common"
	_ "divelog_studio/internal/domain/community"
	_ "divelog_studio/internal/domain/divelog"
	_ "divelog_studio/internal/domain/equipment"
	_ "divelog_studio/internal/domain/forum"
	_ "divelog_studio/internal/domain/media"
	_ "divelog_studio/internal/domain/member"
	_ "divelog_studio/internal/domain/notification"
	_ "divelog_studio/internal/domain/site"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()

	if err := logger.Init(config.GlobalConfig.App.Debug); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := uploader.InitUploader(); err != nil {
		logger.Log.Fatal("init uploader failed", zap.Error(err))
	}

	// 可选的远程数据库客户端，领域状态不经过它
	db := database.InitDatabase()

	// 全部演示数据随进程启动载入内存
	st := store.NewSeeded()
	prometheus.MustRegister(metrics.NewStoreCollector(st))

	if config.GlobalConfig.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.RateLimitMiddleware(
		config.GlobalConfig.RateLimit.QPS,
		config.GlobalConfig.RateLimit.Burst,
	))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.GlobalConfig.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ctx := &registry.ModuleContext{
		Store:  st,
		DB:     db,
		Router: r,
	}
	if err := registry.InitModules(ctx); err != nil {
		logger.Log.Fatal("init modules failed", zap.Error(err))
	}

	addr := ":" + config.GlobalConfig.Server.Port
	logger.Log.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
