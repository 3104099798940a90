package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	forummodel "divelog_studio/internal/domain/forum/model"
	"divelog_studio/internal/domain/member/repository"
	"divelog_studio/internal/pkg/config"
	"divelog_studio/internal/store"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) (MemberService, *store.Store) {
	t.Helper()
	config.GlobalConfig.App.Locales = []string{"de", "en"}
	st := store.NewSeeded()
	return NewMemberService(repository.NewMemberRepository(st)), st
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("Email matching is case-insensitive", func(t *testing.T) {
		m, err := svc.Login("ARMIN@Divelog.Studio", store.SeedAdminPassword)
		assert.NoError(t, err)
		assert.Equal(t, "member-01", m.ID)
	})

	t.Run("Wrong password rejected", func(t *testing.T) {
		_, err := svc.Login("armin@divelog.studio", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email rejected", func(t *testing.T) {
		_, err := svc.Login("nobody@divelog.studio", store.SeedAdminPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLoginAsDemo(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("First member with requested role", func(t *testing.T) {
		m, err := svc.LoginAsDemo("admin")
		assert.NoError(t, err)
		assert.Equal(t, "admin", m.Role)
	})

	t.Run("First member with requested locale", func(t *testing.T) {
		m, err := svc.LoginAsDemoLocale("en")
		assert.NoError(t, err)
		assert.Equal(t, "member-03", m.ID)
	})

	t.Run("Unsupported locale has no demo member", func(t *testing.T) {
		_, err := svc.LoginAsDemoLocale("fr")
		assert.ErrorIs(t, err, ErrNoDemoMember)
	})
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("Duplicate email rejected case-insensitively", func(t *testing.T) {
		_, err := svc.Register(RegisterInput{
			Name:     "Doppelt",
			Email:    "LENA@divelog.studio",
			Password: "geheim12",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("New member lands at the front of the roster", func(t *testing.T) {
		m, err := svc.Register(RegisterInput{
			Name:     "Neue Taucherin",
			Email:    "neu@divelog.studio",
			Password: "geheim12",
		})
		assert.NoError(t, err)
		assert.Equal(t, "member", m.Role)
		assert.Equal(t, 0, m.CompletedDives)

		members := svc.Members()
		assert.Equal(t, m.ID, members[0].ID)

		logged, err := svc.Login("neu@divelog.studio", "geheim12")
		assert.NoError(t, err)
		assert.Equal(t, m.ID, logged.ID)
	})
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	svc, _ := newTestService(t)

	// 查重和写入必须在同一次持锁迁移里，否则并发注册同一邮箱会全部通过
	const workers = 32
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.Register(RegisterInput{
				Name:     fmt.Sprintf("Taucher %d", n),
				Email:    "wettlauf@divelog.studio",
				Password: "geheim12",
			})
			if err == nil {
				succeeded.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())

	entries := 0
	for _, m := range svc.Members() {
		if m.Email == "wettlauf@divelog.studio" {
			entries++
		}
	}
	assert.Equal(t, 1, entries)
}

func TestUpdateMember(t *testing.T) {
	svc, _ := newTestService(t)

	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }

	t.Run("Too short name is an error", func(t *testing.T) {
		_, err := svc.UpdateMember("member-02", false, "member-02", UpdateInput{Name: strPtr(" L ")})
		assert.ErrorIs(t, err, ErrNameTooShort)
	})

	t.Run("Email collision is an error", func(t *testing.T) {
		_, err := svc.UpdateMember("member-02", false, "member-02", UpdateInput{Email: strPtr("jonas@divelog.studio")})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("Invalid role and locale are dropped silently", func(t *testing.T) {
		m, err := svc.UpdateMember("member-02", false, "member-02", UpdateInput{
			Role:            strPtr("superuser"),
			PreferredLocale: strPtr("xx"),
			CompletedDives:  intPtr(-3),
		})
		assert.NoError(t, err)
		assert.Equal(t, "member", m.Role)
		assert.Equal(t, "de", m.PreferredLocale)
		assert.Equal(t, 0, m.CompletedDives)
	})

	t.Run("Members cannot edit other profiles", func(t *testing.T) {
		_, err := svc.UpdateMember("member-02", false, "member-03", UpdateInput{City: strPtr("Kiel")})
		assert.ErrorIs(t, err, ErrNoPermission)
	})

	t.Run("Locale change notifies listeners", func(t *testing.T) {
		var gotID, gotLocale string
		svc.OnLocaleChange(func(memberID, locale string) {
			gotID, gotLocale = memberID, locale
		})
		_, err := svc.UpdateMember("member-02", false, "member-02", UpdateInput{PreferredLocale: strPtr("en")})
		assert.NoError(t, err)
		assert.Equal(t, "member-02", gotID)
		assert.Equal(t, "en", gotLocale)
	})
}

func TestResetPassword(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("Short password rejected", func(t *testing.T) {
		err := svc.ResetPassword("member-02", false, "member-02", "kurz")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("Old password stops working after reset", func(t *testing.T) {
		err := svc.ResetPassword("member-02", false, "member-02", "neues-geheimnis")
		assert.NoError(t, err)

		_, err = svc.Login("lena@divelog.studio", store.SeedMemberPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		m, err := svc.Login("lena@divelog.studio", "neues-geheimnis")
		assert.NoError(t, err)
		assert.Equal(t, "member-02", m.ID)
	})
}

func TestDeleteAccount(t *testing.T) {
	svc, st := newTestService(t)

	// member-03 besitzt log-02, media-01 und thread-02 und hat auf
	// post-01 kommentiert sowie in thread-01 geantwortet
	err := svc.DeleteAccount("member-01", true, "member-03")
	assert.NoError(t, err)

	_, err = svc.Member("member-03")
	assert.ErrorIs(t, err, ErrMemberNotFound)

	st.View(func(s *store.State) {
		for _, l := range s.DiveLogs {
			assert.NotEqual(t, "member-03", l.DiverID)
		}
		for _, m := range s.Media {
			assert.NotEqual(t, "member-03", m.OwnerID)
		}
		for _, th := range s.Threads {
			assert.NotEqual(t, "member-03", th.AuthorID)
		}

		// 评论与回复原位匿名化，帖子与主题结构保持不变
		var post01Comments int
		for _, p := range s.Posts {
			if p.ID != "post-01" {
				continue
			}
			post01Comments = len(p.Comments)
			for _, c := range p.Comments {
				if c.ID == "comment-01" {
					assert.Equal(t, DefaultPlaceholder, c.Author)
					assert.Empty(t, c.AuthorID)
					assert.Empty(t, c.AuthorEmail)
					assert.Equal(t, RemovedNotice, c.Message)
				}
			}
		}
		assert.Equal(t, 1, post01Comments)

		for _, th := range s.Threads {
			if th.ID != "thread-01" {
				continue
			}
			assert.Len(t, th.Replies, 2)
			for _, r := range th.Replies {
				if r.ID == "reply-02" {
					assert.Equal(t, DefaultPlaceholder, r.Author)
					assert.Empty(t, r.AuthorID)
					assert.Equal(t, RemovedNotice, r.Message)
				}
			}
		}
	})
}

func TestDeleteAccountPrunesLikes(t *testing.T) {
	t.Run("Post and thread likes of the removed member disappear", func(t *testing.T) {
		svc, st := newTestService(t)

		// member-03 hat post-01 und thread-01 geliked
		assert.NoError(t, svc.DeleteAccount("member-01", true, "member-03"))

		st.View(func(s *store.State) {
			for _, p := range s.Posts {
				if p.ID == "post-01" {
					assert.Equal(t, 1, p.Likes)
					assert.NotContains(t, p.LikedBy, "member-03")
				}
			}
			for _, th := range s.Threads {
				if th.ID == "thread-01" {
					assert.Equal(t, 0, th.Likes)
					assert.NotContains(t, th.LikedBy, "member-03")
				}
			}
		})
	})

	t.Run("Reply likes of the removed member disappear", func(t *testing.T) {
		svc, st := newTestService(t)

		// thread-02 überlebt die Löschung von member-02,
		// seine Antwort trägt deren einziges Like
		st.Update(func(s *store.State) {
			for i := range s.Threads {
				if s.Threads[i].ID == "thread-02" {
					s.Threads[i].Replies = append(s.Threads[i].Replies, forummodel.Reply{
						ID:        "reply-03",
						Author:    "Armin Berger",
						AuthorID:  "member-01",
						Message:   "Safari, ohne Frage.",
						CreatedAt: time.Now(),
						Likes:     1,
						LikedBy:   map[string]struct{}{"member-02": {}},
					})
				}
			}
		})

		assert.NoError(t, svc.DeleteAccount("member-02", false, "member-02"))

		st.View(func(s *store.State) {
			checked := false
			for _, th := range s.Threads {
				if th.ID != "thread-02" {
					continue
				}
				for _, r := range th.Replies {
					if r.ID == "reply-03" {
						assert.Equal(t, 0, r.Likes)
						assert.NotContains(t, r.LikedBy, "member-02")
						checked = true
					}
				}
			}
			assert.True(t, checked)
		})
	})
}

func TestDeleteAccountPrunesFavorites(t *testing.T) {
	svc, st := newTestService(t)

	// member-02 besitzt site-02 und media-02, beide sind favorisiert
	err := svc.DeleteAccount("member-02", false, "member-02")
	assert.NoError(t, err)

	st.View(func(s *store.State) {
		_, siteStillFavored := s.FavoriteSites["site-02"]
		assert.False(t, siteStillFavored)
		_, mediaStillFavored := s.FavoriteMedia["media-02"]
		assert.False(t, mediaStillFavored)

		for _, site := range s.Sites {
			assert.NotEqual(t, "member-02", site.OwnerID)
		}
		for _, p := range s.Posts {
			assert.NotEqual(t, "member-02", p.AuthorID)
		}
	})
}
