package repository

import (
	"errors"
	"strings"

	"divelog_studio/internal/domain/member/model"
	"divelog_studio/internal/store"
)

var (
	ErrNotFound      = errors.New("member not found")
	ErrEmailConflict = errors.New("email already in roster")
)

// MemberRepository 会员仓库接口
type MemberRepository interface {
	List() []model.Profile
	GetByID(id string) (model.Profile, bool)
	GetByEmail(email string) (model.Profile, bool)
	FirstByRole(role string) (model.Profile, bool)
	FirstByLocale(locale string) (model.Profile, bool)
	InsertFront(p model.Profile) error
	Save(p model.Profile) error
	Delete(id string) bool
	PurgeContent(memberID, placeholder, notice string)
}

// memberRepository 内存实现，所有集合都挂在共享的状态容器上
type memberRepository struct {
	store *store.Store
}

// NewMemberRepository 创建会员仓库
func NewMemberRepository(s *store.Store) MemberRepository {
	return &memberRepository{store: s}
}

// List 返回名册的拷贝，保持插入顺序（新会员在前）
func (r *memberRepository) List() []model.Profile {
	var out []model.Profile
	r.store.View(func(st *store.State) {
		out = make([]model.Profile, 0, len(st.Members))
		for _, m := range st.Members {
			out = append(out, m.Clone())
		}
	})
	return out
}

// GetByID 根据ID查找会员
func (r *memberRepository) GetByID(id string) (model.Profile, bool) {
	var (
		out   model.Profile
		found bool
	)
	r.store.View(func(st *store.State) {
		for _, m := range st.Members {
			if m.ID == id {
				out = m.Clone()
				found = true
				return
			}
		}
	})
	return out, found
}

// GetByEmail 根据邮箱查找会员，大小写不敏感
func (r *memberRepository) GetByEmail(email string) (model.Profile, bool) {
	var (
		out   model.Profile
		found bool
	)
	needle := strings.ToLower(strings.TrimSpace(email))
	r.store.View(func(st *store.State) {
		for _, m := range st.Members {
			if strings.ToLower(m.Email) == needle {
				out = m.Clone()
				found = true
				return
			}
		}
	})
	return out, found
}

// FirstByRole 返回名册中第一个具有该角色的会员
func (r *memberRepository) FirstByRole(role string) (model.Profile, bool) {
	var (
		out   model.Profile
		found bool
	)
	r.store.View(func(st *store.State) {
		for _, m := range st.Members {
			if m.Role == role {
				out = m.Clone()
				found = true
				return
			}
		}
	})
	return out, found
}

// FirstByLocale 返回名册中第一个偏好该语言的会员
func (r *memberRepository) FirstByLocale(locale string) (model.Profile, bool) {
	var (
		out   model.Profile
		found bool
	)
	r.store.View(func(st *store.State) {
		for _, m := range st.Members {
			if m.PreferredLocale == locale {
				out = m.Clone()
				found = true
				return
			}
		}
	})
	return out, found
}

// 邮箱查重必须和写入发生在同一次持锁的状态迁移里，
// 否则并发注册会让同一邮箱通过各自的检查后重复入册。
func emailHeld(st *store.State, email, excludeID string) bool {
	needle := strings.ToLower(strings.TrimSpace(email))
	for _, m := range st.Members {
		if m.ID != excludeID && strings.ToLower(m.Email) == needle {
			return true
		}
	}
	return false
}

// InsertFront 把新会员插到名册最前面，邮箱已被占用时拒绝
func (r *memberRepository) InsertFront(p model.Profile) error {
	var err error
	r.store.Update(func(st *store.State) {
		if emailHeld(st, p.Email, "") {
			err = ErrEmailConflict
			return
		}
		st.Members = append([]model.Profile{p.Clone()}, st.Members...)
	})
	return err
}

// Save 整体替换匹配ID的会员，邮箱撞到其他会员时拒绝
func (r *memberRepository) Save(p model.Profile) error {
	err := ErrNotFound
	r.store.Update(func(st *store.State) {
		if emailHeld(st, p.Email, p.ID) {
			err = ErrEmailConflict
			return
		}
		for i, m := range st.Members {
			if m.ID == p.ID {
				st.Members[i] = p.Clone()
				err = nil
				return
			}
		}
	})
	return err
}

// Delete 从名册移除会员，未找到返回 false
func (r *memberRepository) Delete(id string) bool {
	deleted := false
	r.store.Update(func(st *store.State) {
		kept := st.Members[:0]
		for _, m := range st.Members {
			if m.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, m)
		}
		st.Members = kept
	})
	return deleted
}

// PurgeContent 清理被删除会员的全部内容，单次状态迁移内完成：
// 本人发布的日志/帖子/主题/媒体/潜点整条删除，
// 本人的评论和回复原地匿名化以保留讨论结构，
// 收藏集合剪除悬空引用，幸存内容的点赞集合里也移除该会员。
func (r *memberRepository) PurgeContent(memberID, placeholder, notice string) {
	r.store.Update(func(st *store.State) {
		logs := st.DiveLogs[:0]
		for _, l := range st.DiveLogs {
			if l.DiverID != memberID {
				logs = append(logs, l)
			}
		}
		st.DiveLogs = logs

		posts := st.Posts[:0]
		for _, p := range st.Posts {
			if p.AuthorID == memberID {
				continue
			}
			if _, ok := p.LikedBy[memberID]; ok {
				delete(p.LikedBy, memberID)
				p.Likes = len(p.LikedBy)
			}
			for i := range p.Comments {
				if p.Comments[i].AuthorID == memberID {
					p.Comments[i].Author = placeholder
					p.Comments[i].AuthorID = ""
					p.Comments[i].AuthorEmail = ""
					p.Comments[i].Message = notice
				}
			}
			posts = append(posts, p)
		}
		st.Posts = posts

		threads := st.Threads[:0]
		for _, t := range st.Threads {
			if t.AuthorID == memberID {
				continue
			}
			if _, ok := t.LikedBy[memberID]; ok {
				delete(t.LikedBy, memberID)
				t.Likes = len(t.LikedBy)
			}
			for i := range t.Replies {
				if t.Replies[i].AuthorID == memberID {
					t.Replies[i].Author = placeholder
					t.Replies[i].AuthorID = ""
					t.Replies[i].Message = notice
				}
				if _, ok := t.Replies[i].LikedBy[memberID]; ok {
					delete(t.Replies[i].LikedBy, memberID)
					t.Replies[i].Likes = len(t.Replies[i].LikedBy)
				}
			}
			threads = append(threads, t)
		}
		st.Threads = threads

		media := st.Media[:0]
		for _, m := range st.Media {
			if m.OwnerID == memberID {
				delete(st.FavoriteMedia, m.ID)
				continue
			}
			media = append(media, m)
		}
		st.Media = media

		sites := st.Sites[:0]
		for _, site := range st.Sites {
			if site.OwnerID == memberID {
				delete(st.FavoriteSites, site.ID)
				continue
			}
			sites = append(sites, site)
		}
		st.Sites = sites
	})
}
