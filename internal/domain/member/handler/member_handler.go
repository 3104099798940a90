package handler

import (
	"errors"
	"net/http"

	"divelog_studio/internal/domain/member/model"
	"divelog_studio/internal/domain/member/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/pkg/response"
	"divelog_studio/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MemberHandler 会员处理器
type MemberHandler struct {
	service service.MemberService
}

// NewMemberHandler 创建处理器
func NewMemberHandler(s service.MemberService) *MemberHandler {
	return &MemberHandler{service: s}
}

// LoginInput 登录输入
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// DemoLocaleInput 按语言选择演示账号
type DemoLocaleInput struct {
	Locale string `json:"locale" binding:"required"`
}

// PasswordInput 重置密码输入
type PasswordInput struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// sessionPayload 登录类接口的统一返回
type sessionPayload struct {
	Token  string        `json:"token"`
	Member model.Profile `json:"member"`
}

// Login 处理登录请求
func (h *MemberHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	m, err := h.service.Login(input.Email, input.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.issueSession(c, m)
}

// Register 处理注册请求，成功后直接作为该会员登录
func (h *MemberHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	m, err := h.service.Register(input)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.issueSession(c, m)
}

// DemoMember 以第一个普通会员登录
func (h *MemberHandler) DemoMember(c *gin.Context) {
	m, err := h.service.LoginAsDemo(model.RoleMember)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.issueSession(c, m)
}

// DemoAdmin 以第一个管理员登录
func (h *MemberHandler) DemoAdmin(c *gin.Context) {
	m, err := h.service.LoginAsDemo(model.RoleAdmin)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.issueSession(c, m)
}

// DemoLocale 以第一个偏好该语言的会员登录
func (h *MemberHandler) DemoLocale(c *gin.Context) {
	var input DemoLocaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	m, err := h.service.LoginAsDemoLocale(input.Locale)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.issueSession(c, m)
}

// Logout 登出。Token 由客户端持有并丢弃，服务端无状态可清
func (h *MemberHandler) Logout(c *gin.Context) {
	response.Success(c, true)
}

// Me 当前会话对应的会员档案
func (h *MemberHandler) Me(c *gin.Context) {
	actorID, _ := middleware.Actor(c)
	m, err := h.service.Member(actorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, m)
}

// GetMembers 名册公开视图
func (h *MemberHandler) GetMembers(c *gin.Context) {
	response.Success(c, h.service.Members())
}

// GetMember 单个会员
func (h *MemberHandler) GetMember(c *gin.Context) {
	m, err := h.service.Member(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, m)
}

// UpdateMember 部分更新档案
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var input service.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, admin := middleware.Actor(c)
	m, err := h.service.UpdateMember(actorID, admin, c.Param("id"), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, m)
}

// ResetPassword 重置密码
func (h *MemberHandler) ResetPassword(c *gin.Context) {
	var input PasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, admin := middleware.Actor(c)
	if err := h.service.ResetPassword(actorID, admin, c.Param("id"), input.NewPassword); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// DeleteMember 删除账号：内容清理 + 名册移除
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	actorID, admin := middleware.Actor(c)
	if err := h.service.DeleteAccount(actorID, admin, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

func (h *MemberHandler) issueSession(c *gin.Context, m *model.Profile) {
	token, _, err := utils.GenerateToken(m.ID, m.Role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, sessionPayload{Token: token, Member: *m})
}

// fail 把服务层错误映射为业务码响应
func (h *MemberHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, response.ErrAuthFailed, err.Error())
	case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrNoDemoMember):
		response.Fail(c, response.ErrMemberNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		response.Fail(c, response.ErrMemberExists, err.Error())
	case errors.Is(err, service.ErrEmailRequired), errors.Is(err, service.ErrNameTooShort):
		response.Fail(c, response.ErrInvalidProfile, err.Error())
	case errors.Is(err, service.ErrPasswordTooShort):
		response.Fail(c, response.ErrPasswordTooShort, err.Error())
	case errors.Is(err, service.ErrNoPermission):
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
	}
}
