package member

import (
	"divelog_studio/internal/domain/member/handler"
	"divelog_studio/internal/domain/member/repository"
	"divelog_studio/internal/domain/member/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/internal/pkg/registry"
	"divelog_studio/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MemberModule 会员模块
type MemberModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&MemberModule{})
}

func (m *MemberModule) Name() string {
	return "member"
}

func (m *MemberModule) Priority() int {
	// 会员模块优先级最高，其他模块依赖它的认证语义
	return 1
}

func (m *MemberModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	memberRepo := repository.NewMemberRepository(ctx.Store)
	memberService := service.NewMemberService(memberRepo)
	memberHandler := handler.NewMemberHandler(memberService)

	// 语言切换信号：i18n 协作方在前端，这里只记录
	memberService.OnLocaleChange(func(memberID, locale string) {
		if logger.Log != nil {
			logger.Log.Info("locale change",
				zap.String("member_id", memberID),
				zap.String("locale", locale),
			)
		}
	})

	// 2. 路由注册
	setupRoutes(ctx.Router, memberHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.MemberHandler) {
	// 公开路由
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/demo/member", h.DemoMember)
		authGroup.POST("/demo/admin", h.DemoAdmin)
		authGroup.POST("/demo/locale", h.DemoLocale)
	}
	authGroup.POST("/logout", middleware.AuthMiddleware(), h.Logout)
	authGroup.GET("/me", middleware.AuthMiddleware(), h.Me)

	// 名册公开视图
	memberGroup := r.Group("/members")
	memberGroup.GET("", h.GetMembers)
	memberGroup.GET("/:id", h.GetMember)

	// 受保护的路由
	protected := memberGroup.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/:id", h.UpdateMember)
		protected.PUT("/:id/password", h.ResetPassword)
		protected.DELETE("/:id", h.DeleteMember)
	}
}
