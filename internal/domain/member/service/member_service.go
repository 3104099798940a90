package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"divelog_studio/internal/domain/member/model"
	"divelog_studio/internal/domain/member/repository"
	"divelog_studio/internal/pkg/config"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// 账号删除后的内容匿名化占位
const (
	DefaultPlaceholder = "Ehemaliges Mitglied"
	RemovedNotice      = "Dieser Inhalt wurde entfernt."
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMemberNotFound     = errors.New("member not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailRequired      = errors.New("email must not be empty")
	ErrNameTooShort       = errors.New("name must be at least 2 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrNoDemoMember       = errors.New("no demo member for the requested role or locale")
	ErrNoPermission       = errors.New("no permission")
)

// RegisterInput 注册载荷
type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	City     string `json:"city"`
	About    string `json:"about"`
}

// UpdateInput 部分更新载荷，nil 表示保持原值（键缺省即不修改）
type UpdateInput struct {
	Name             *string   `json:"name"`
	Email            *string   `json:"email"`
	City             *string   `json:"city"`
	About            *string   `json:"about"`
	Certifications   *[]string `json:"certifications"`
	FavoriteDiveSite *string   `json:"favoriteDiveSite"`
	CompletedDives   *int      `json:"completedDives"`
	Role             *string   `json:"role"`
	PreferredLocale  *string   `json:"preferredLocale"`
}

// LocaleListener 语言切换信号的订阅者（i18n 协作方）
type LocaleListener func(memberID, locale string)

// MemberService 会员与会话服务接口
type MemberService interface {
	Login(email, password string) (*model.Profile, error)
	LoginAsDemo(role string) (*model.Profile, error)
	LoginAsDemoLocale(locale string) (*model.Profile, error)
	Register(input RegisterInput) (*model.Profile, error)
	Members() []model.Profile
	Member(id string) (*model.Profile, error)
	UpdateMember(actorID string, admin bool, id string, input UpdateInput) (*model.Profile, error)
	ResetPassword(actorID string, admin bool, id, newPassword string) error
	RemoveMember(id string) error
	PurgeMemberContent(memberID, placeholder string)
	DeleteAccount(actorID string, admin bool, id string) error
	OnLocaleChange(fn LocaleListener)
}

// memberService 实现
type memberService struct {
	repo repository.MemberRepository

	mu        sync.Mutex
	listeners []LocaleListener
}

// NewMemberService 创建会员服务
func NewMemberService(repo repository.MemberRepository) MemberService {
	return &memberService{repo: repo}
}

// OnLocaleChange 注册语言切换信号的订阅者
func (s *memberService) OnLocaleChange(fn LocaleListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *memberService) broadcastLocale(memberID, locale string) {
	s.mu.Lock()
	listeners := append([]LocaleListener(nil), s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(memberID, locale)
	}
}

// Login 邮箱大小写不敏感匹配 + 密码校验
// 没有锁定或重试策略，每次调用互相独立
func (s *memberService) Login(email, password string) (*model.Profile, error) {
	m, ok := s.repo.GetByEmail(email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if m.PreferredLocale != "" {
		s.broadcastLocale(m.ID, m.PreferredLocale)
	}
	return &m, nil
}

// LoginAsDemo 以名册中第一个具有该角色的会员登录
func (s *memberService) LoginAsDemo(role string) (*model.Profile, error) {
	m, ok := s.repo.FirstByRole(role)
	if !ok {
		return nil, ErrNoDemoMember
	}
	if m.PreferredLocale != "" {
		s.broadcastLocale(m.ID, m.PreferredLocale)
	}
	return &m, nil
}

// LoginAsDemoLocale 以名册中第一个偏好该语言的会员登录
func (s *memberService) LoginAsDemoLocale(locale string) (*model.Profile, error) {
	m, ok := s.repo.FirstByLocale(locale)
	if !ok {
		return nil, ErrNoDemoMember
	}
	s.broadcastLocale(m.ID, m.PreferredLocale)
	return &m, nil
}

// Register 注册新会员：邮箱查重（大小写不敏感），新会员插入名册最前面
// 查重由仓库在写入的同一次状态迁移里完成，并发注册同一邮箱只会成功一次
func (s *memberService) Register(input RegisterInput) (*model.Profile, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	m := model.Profile{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(input.Name),
		Email:           email,
		PasswordHash:    string(hash),
		Role:            model.RoleMember,
		JoinedAt:        time.Now(),
		City:            input.City,
		About:           input.About,
		Certifications:  []string{},
		CompletedDives:  0,
		PreferredLocale: defaultLocale(),
	}
	if err := s.repo.InsertFront(m); err != nil {
		if errors.Is(err, repository.ErrEmailConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &m, nil
}

// Members 名册公开视图（密码散列不序列化）
func (s *memberService) Members() []model.Profile {
	return s.repo.List()
}

// Member 单个会员
func (s *memberService) Member(id string) (*model.Profile, error) {
	m, ok := s.repo.GetByID(id)
	if !ok {
		return nil, ErrMemberNotFound
	}
	return &m, nil
}

// UpdateMember 部分更新档案，只应用通过校验的字段子集
func (s *memberService) UpdateMember(actorID string, admin bool, id string, input UpdateInput) (*model.Profile, error) {
	if !admin && actorID != id {
		return nil, ErrNoPermission
	}

	m, ok := s.repo.GetByID(id)
	if !ok {
		return nil, ErrMemberNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len([]rune(name)) < 2 {
			return nil, ErrNameTooShort
		}
		m.Name = name
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return nil, ErrEmailRequired
		}
		m.Email = email
	}
	if input.City != nil {
		m.City = *input.City
	}
	if input.About != nil {
		m.About = *input.About
	}
	if input.Certifications != nil {
		// 丢弃空白条目，其余去掉首尾空格
		certs := make([]string, 0, len(*input.Certifications))
		for _, c := range *input.Certifications {
			if c = strings.TrimSpace(c); c != "" {
				certs = append(certs, c)
			}
		}
		m.Certifications = certs
	}
	if input.FavoriteDiveSite != nil {
		m.FavoriteDiveSite = *input.FavoriteDiveSite
	}
	if input.CompletedDives != nil {
		dives := *input.CompletedDives
		if dives < 0 {
			dives = 0
		}
		m.CompletedDives = dives
	}
	if input.Role != nil {
		// 非法角色值直接忽略，不报错
		if *input.Role == model.RoleMember || *input.Role == model.RoleAdmin {
			m.Role = *input.Role
		}
	}
	localeChanged := false
	if input.PreferredLocale != nil {
		// 不在支持集合内的语言忽略
		if config.GlobalConfig.SupportedLocale(*input.PreferredLocale) && m.PreferredLocale != *input.PreferredLocale {
			m.PreferredLocale = *input.PreferredLocale
			localeChanged = true
		}
	}

	// 邮箱冲突由仓库在写入时持锁复查
	if err := s.repo.Save(m); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailConflict):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if localeChanged {
		s.broadcastLocale(m.ID, m.PreferredLocale)
	}
	return &m, nil
}

// ResetPassword 只覆盖密码散列，其余字段不动
func (s *memberService) ResetPassword(actorID string, admin bool, id, newPassword string) error {
	if !admin && actorID != id {
		return ErrNoPermission
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	m, ok := s.repo.GetByID(id)
	if !ok {
		return ErrMemberNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.PasswordHash = string(hash)
	if err := s.repo.Save(m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

// RemoveMember 从名册移除，未知ID报错（与内容集合的静默语义不同，有意保留）
func (s *memberService) RemoveMember(id string) error {
	if !s.repo.Delete(id) {
		return ErrMemberNotFound
	}
	return nil
}

// PurgeMemberContent 清理该会员的全部内容，单次状态迁移
func (s *memberService) PurgeMemberContent(memberID, placeholder string) {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	s.repo.PurgeContent(memberID, placeholder, RemovedNotice)
}

// DeleteAccount 先清理内容再移除会员
// 两步是两次独立的状态迁移，但对调用方是一个操作
func (s *memberService) DeleteAccount(actorID string, admin bool, id string) error {
	if !admin && actorID != id {
		return ErrNoPermission
	}
	if _, ok := s.repo.GetByID(id); !ok {
		return ErrMemberNotFound
	}
	s.PurgeMemberContent(id, DefaultPlaceholder)
	return s.RemoveMember(id)
}

func defaultLocale() string {
	if len(config.GlobalConfig.App.Locales) > 0 {
		return config.GlobalConfig.App.Locales[0]
	}
	return "de"
}
