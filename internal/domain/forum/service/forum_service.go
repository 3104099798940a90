package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"divelog_studio/internal/domain/forum/model"
	"divelog_studio/internal/domain/forum/repository"

	"github.com/google/uuid"
)

var ErrNoPermission = errors.New("no permission")

// 摘要最多保留的字符数
const excerptRunes = 160

// ThreadInput 发主题载荷
type ThreadInput struct {
	Title      string `json:"title" binding:"required"`
	Author     string `json:"author"`
	CategoryID string `json:"categoryId" binding:"required"`
	Body       string `json:"body" binding:"required"`
	Excerpt    string `json:"excerpt"`
}

// UpdateThreadInput 主题部分更新载荷，nil 字段保持不变
type UpdateThreadInput struct {
	Title      *string `json:"title"`
	CategoryID *string `json:"categoryId"`
	Body       *string `json:"body"`
	Excerpt    *string `json:"excerpt"`
}

// ReplyInput 回复载荷
type ReplyInput struct {
	Author  string `json:"author"`
	Message string `json:"message" binding:"required"`
}

// UpdateReplyInput 回复部分更新载荷
type UpdateReplyInput struct {
	Author  *string `json:"author"`
	Message *string `json:"message"`
}

// ForumService 论坛服务接口
type ForumService interface {
	Categories() []model.Category
	Threads(viewerID string) []model.Thread
	Thread(viewerID, id string) (model.Thread, bool)
	AddThread(actorID string, input ThreadInput) model.Thread
	UpdateThread(actorID string, admin bool, id string, input UpdateThreadInput) error
	RemoveThread(actorID string, admin bool, id string) error
	AddReply(actorID, threadID string, input ReplyInput) error
	UpdateReply(actorID string, admin bool, threadID, replyID string, input UpdateReplyInput) error
	RemoveReply(actorID string, admin bool, threadID, replyID string) error
	ToggleThreadLike(viewerID, threadID string) (liked, found bool)
	ToggleReplyLike(viewerID, threadID, replyID string) (liked, found bool)
}

// forumService 实现
type forumService struct {
	repo     repository.ForumRepository
	announce func(title, description string)
}

// NewForumService 创建论坛服务，announce 可为 nil
func NewForumService(repo repository.ForumRepository, announce func(title, description string)) ForumService {
	return &forumService{repo: repo, announce: announce}
}

func (s *forumService) Categories() []model.Category {
	return s.repo.Categories()
}

func (s *forumService) Threads(viewerID string) []model.Thread {
	return s.repo.Threads(viewerID)
}

func (s *forumService) Thread(viewerID, id string) (model.Thread, bool) {
	t, ok := s.repo.GetThread(id)
	if !ok {
		return model.Thread{}, false
	}
	return t.ForViewer(viewerID), true
}

// AddThread 发主题：摘要缺省时由正文截取，创建与最近活跃时间同为当前时刻
func (s *forumService) AddThread(actorID string, input ThreadInput) model.Thread {
	now := time.Now().UTC()
	excerpt := input.Excerpt
	if excerpt == "" {
		excerpt = deriveExcerpt(input.Body)
	}
	thread := model.Thread{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Author:       input.Author,
		AuthorID:     actorID,
		CategoryID:   input.CategoryID,
		Body:         input.Body,
		Excerpt:      excerpt,
		CreatedAt:    now,
		LastActivity: now,
		Likes:        0,
		LikedBy:      map[string]struct{}{},
		Replies:      []model.Reply{},
	}
	s.repo.InsertThread(thread)
	return thread
}

// UpdateThread 部分更新。正文变化且未显式给出摘要时重新截取；编辑不影响最近活跃时间
func (s *forumService) UpdateThread(actorID string, admin bool, id string, input UpdateThreadInput) error {
	existing, ok := s.repo.GetThread(id)
	if !ok {
		return nil
	}
	if err := checkAuthor(existing.AuthorID, actorID, admin); err != nil {
		return err
	}
	s.repo.MutateThread(id, func(t *model.Thread) bool {
		if input.Title != nil {
			t.Title = *input.Title
		}
		if input.CategoryID != nil {
			t.CategoryID = *input.CategoryID
		}
		if input.Body != nil {
			t.Body = *input.Body
			if input.Excerpt == nil {
				t.Excerpt = deriveExcerpt(*input.Body)
			}
		}
		if input.Excerpt != nil {
			t.Excerpt = *input.Excerpt
		}
		return true
	})
	return nil
}

// RemoveThread 删除主题连同全部回复。未知ID静默忽略
func (s *forumService) RemoveThread(actorID string, admin bool, id string) error {
	existing, ok := s.repo.GetThread(id)
	if !ok {
		return nil
	}
	if err := checkAuthor(existing.AuthorID, actorID, admin); err != nil {
		return err
	}
	s.repo.DeleteThread(id)
	return nil
}

// AddReply 追加回复并推进主题的最近活跃时间
func (s *forumService) AddReply(actorID, threadID string, input ReplyInput) error {
	reply := model.Reply{
		ID:        uuid.New().String(),
		Author:    input.Author,
		AuthorID:  actorID,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
		Likes:     0,
		LikedBy:   map[string]struct{}{},
	}
	added := s.repo.MutateThread(threadID, func(t *model.Thread) bool {
		t.Replies = append(t.Replies, reply)
		sortReplies(t.Replies)
		refreshLastActivity(t)
		return true
	})
	if added && s.announce != nil {
		author := input.Author
		if author == "" {
			author = "Ein Mitglied"
		}
		s.announce("Neue Antwort", author+" hat in einem Thema geantwortet.")
	}
	return nil
}

// UpdateReply 部分更新回复，创建时间与最近活跃时间不变
func (s *forumService) UpdateReply(actorID string, admin bool, threadID, replyID string, input UpdateReplyInput) error {
	thread, ok := s.repo.GetThread(threadID)
	if !ok {
		return nil
	}
	for _, r := range thread.Replies {
		if r.ID == replyID {
			if err := checkAuthor(r.AuthorID, actorID, admin); err != nil {
				return err
			}
			break
		}
	}
	s.repo.MutateThread(threadID, func(t *model.Thread) bool {
		for i := range t.Replies {
			if t.Replies[i].ID == replyID {
				if input.Author != nil {
					t.Replies[i].Author = *input.Author
				}
				if input.Message != nil {
					t.Replies[i].Message = *input.Message
				}
				return true
			}
		}
		return false
	})
	return nil
}

// RemoveReply 删除回复后按剩余回复重算最近活跃时间
func (s *forumService) RemoveReply(actorID string, admin bool, threadID, replyID string) error {
	thread, ok := s.repo.GetThread(threadID)
	if !ok {
		return nil
	}
	for _, r := range thread.Replies {
		if r.ID == replyID {
			if err := checkAuthor(r.AuthorID, actorID, admin); err != nil {
				return err
			}
			break
		}
	}
	s.repo.MutateThread(threadID, func(t *model.Thread) bool {
		kept := t.Replies[:0]
		removed := false
		for _, r := range t.Replies {
			if r.ID == replyID {
				removed = true
				continue
			}
			kept = append(kept, r)
		}
		t.Replies = kept
		if removed {
			refreshLastActivity(t)
		}
		return removed
	})
	return nil
}

// ToggleThreadLike 按观察者翻转主题点赞
func (s *forumService) ToggleThreadLike(viewerID, threadID string) (liked, found bool) {
	found = s.repo.MutateThread(threadID, func(t *model.Thread) bool {
		if t.LikedBy == nil {
			t.LikedBy = map[string]struct{}{}
		}
		if _, ok := t.LikedBy[viewerID]; ok {
			delete(t.LikedBy, viewerID)
		} else {
			t.LikedBy[viewerID] = struct{}{}
			liked = true
		}
		t.Likes = len(t.LikedBy)
		return true
	})
	return liked, found
}

// ToggleReplyLike 按观察者翻转回复点赞
func (s *forumService) ToggleReplyLike(viewerID, threadID, replyID string) (liked, found bool) {
	s.repo.MutateThread(threadID, func(t *model.Thread) bool {
		for i := range t.Replies {
			if t.Replies[i].ID != replyID {
				continue
			}
			r := &t.Replies[i]
			if r.LikedBy == nil {
				r.LikedBy = map[string]struct{}{}
			}
			if _, ok := r.LikedBy[viewerID]; ok {
				delete(r.LikedBy, viewerID)
			} else {
				r.LikedBy[viewerID] = struct{}{}
				liked = true
			}
			r.Likes = len(r.LikedBy)
			found = true
			return true
		}
		return false
	})
	return liked, found
}

// 匿名主题没有归属者，任何会员可改
func checkAuthor(authorID, actorID string, admin bool) error {
	if admin || authorID == "" || authorID == actorID {
		return nil
	}
	return ErrNoPermission
}

// deriveExcerpt 从正文截取摘要，超长时加省略号
func deriveExcerpt(body string) string {
	runes := []rune(strings.TrimSpace(body))
	if len(runes) <= excerptRunes {
		return string(runes)
	}
	return string(runes[:excerptRunes]) + "…"
}

// refreshLastActivity 最近活跃时间取最新回复时间，没有回复时回退到主题创建时间
func refreshLastActivity(t *model.Thread) {
	last := t.CreatedAt
	for _, r := range t.Replies {
		if r.CreatedAt.After(last) {
			last = r.CreatedAt
		}
	}
	t.LastActivity = last
}

func sortReplies(replies []model.Reply) {
	sort.SliceStable(replies, func(i, j int) bool {
		return replies[i].CreatedAt.Before(replies[j].CreatedAt)
	})
}
