package model

import "time"

// 会员角色
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Profile 会员档案
type Profile struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"` // 大小写不敏感唯一
	PasswordHash     string    `json:"-"`     // 密码散列不返回给前端
	Role             string    `json:"role"`
	JoinedAt         time.Time `json:"joinedAt"`
	City             string    `json:"city"`
	About            string    `json:"about"`
	Certifications   []string  `json:"certifications"`
	FavoriteDiveSite string    `json:"favoriteDiveSite"`
	CompletedDives   int       `json:"completedDives"`
	PreferredLocale  string    `json:"preferredLocale"`
}

// Clone 返回档案的深拷贝，调用方可以安全持有
func (p Profile) Clone() Profile {
	c := p
	c.Certifications = append([]string(nil), p.Certifications...)
	return c
}
