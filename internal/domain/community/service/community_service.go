package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"divelog_studio/internal/domain/community/model"
	"divelog_studio/internal/domain/community/repository"

	"github.com/google/uuid"
)

var ErrNoPermission = errors.New("no permission")

// AnonymousAuthor 匿名访客的显示名
const AnonymousAuthor = "Gast"

// PostInput 发帖载荷
type PostInput struct {
	Title       string             `json:"title" binding:"required"`
	Author      string             `json:"author"`
	AuthorEmail string             `json:"authorEmail"`
	Body        string             `json:"body" binding:"required"`
	DiveLogID   string             `json:"diveLogId"`
	Attachments []model.Attachment `json:"attachments"`
}

// UpdatePostInput 帖子部分更新载荷，nil 字段保持不变
type UpdatePostInput struct {
	Title       *string             `json:"title"`
	Body        *string             `json:"body"`
	DiveLogID   *string             `json:"diveLogId"`
	Attachments *[]model.Attachment `json:"attachments"`
}

// CommentInput 评论载荷
type CommentInput struct {
	Author      string `json:"author"`
	AuthorEmail string `json:"authorEmail"`
	Message     string `json:"message" binding:"required"`
}

// UpdateCommentInput 评论部分更新载荷
type UpdateCommentInput struct {
	Author  *string `json:"author"`
	Message *string `json:"message"`
}

// CommunityService 社区服务接口
type CommunityService interface {
	Posts(viewerID string) []model.Post
	Post(viewerID, id string) (model.Post, bool)
	AddPost(actorID string, input PostInput) model.Post
	UpdatePost(actorID string, admin bool, id string, input UpdatePostInput) error
	RemovePost(actorID string, admin bool, id string) error
	AddComment(actorID, postID string, input CommentInput) error
	UpdateComment(actorID string, admin bool, postID, commentID string, input UpdateCommentInput) error
	RemoveComment(actorID string, admin bool, postID, commentID string) error
	TogglePostLike(viewerID, postID string) (liked, found bool)
}

// communityService 实现
type communityService struct {
	repo     repository.CommunityRepository
	announce func(title, description string)
}

// NewCommunityService 创建社区服务，announce 可为 nil
func NewCommunityService(repo repository.CommunityRepository, announce func(title, description string)) CommunityService {
	return &communityService{repo: repo, announce: announce}
}

func (s *communityService) Posts(viewerID string) []model.Post {
	return s.repo.List(viewerID)
}

func (s *communityService) Post(viewerID, id string) (model.Post, bool) {
	p, ok := s.repo.GetByID(id)
	if !ok {
		return model.Post{}, false
	}
	return p.ForViewer(viewerID), true
}

// AddPost 发帖：匿名与登录会员皆可，新帖置顶
func (s *communityService) AddPost(actorID string, input PostInput) model.Post {
	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = AnonymousAuthor
	}
	post := model.Post{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Author:      author,
		AuthorID:    actorID,
		AuthorEmail: input.AuthorEmail,
		Body:        input.Body,
		Likes:       0,
		LikedBy:     map[string]struct{}{},
		DiveLogID:   input.DiveLogID,
		Attachments: normalizeAttachments(input.Attachments),
		Comments:    []model.Comment{},
	}
	s.repo.InsertFront(post)
	return post
}

// UpdatePost 部分更新。空串 diveLogId 表示解除日志关联，未知ID静默忽略
func (s *communityService) UpdatePost(actorID string, admin bool, id string, input UpdatePostInput) error {
	existing, ok := s.repo.GetByID(id)
	if !ok {
		return nil
	}
	if err := checkAuthor(existing.AuthorID, actorID, admin); err != nil {
		return err
	}
	s.repo.Mutate(id, func(p *model.Post) bool {
		if input.Title != nil {
			p.Title = *input.Title
		}
		if input.Body != nil {
			p.Body = *input.Body
		}
		if input.DiveLogID != nil {
			p.DiveLogID = *input.DiveLogID
		}
		if input.Attachments != nil {
			p.Attachments = normalizeAttachments(*input.Attachments)
		}
		return true
	})
	return nil
}

// RemovePost 删除帖子连同全部评论。未知ID静默忽略
func (s *communityService) RemovePost(actorID string, admin bool, id string) error {
	existing, ok := s.repo.GetByID(id)
	if !ok {
		return nil
	}
	if err := checkAuthor(existing.AuthorID, actorID, admin); err != nil {
		return err
	}
	s.repo.Delete(id)
	return nil
}

// AddComment 追加评论，时间取当前时刻，评论按时间升序
func (s *communityService) AddComment(actorID, postID string, input CommentInput) error {
	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = AnonymousAuthor
	}
	comment := model.Comment{
		ID:          uuid.New().String(),
		Author:      author,
		AuthorID:    actorID,
		AuthorEmail: input.AuthorEmail,
		Message:     input.Message,
		CreatedAt:   time.Now().UTC(),
	}
	added := s.repo.Mutate(postID, func(p *model.Post) bool {
		p.Comments = append(p.Comments, comment)
		sortComments(p.Comments)
		return true
	})
	if added && s.announce != nil {
		s.announce("Neuer Kommentar", author+" hat einen Beitrag kommentiert.")
	}
	return nil
}

// UpdateComment 部分更新评论，创建时间不变
func (s *communityService) UpdateComment(actorID string, admin bool, postID, commentID string, input UpdateCommentInput) error {
	post, ok := s.repo.GetByID(postID)
	if !ok {
		return nil
	}
	for _, c := range post.Comments {
		if c.ID == commentID {
			if err := checkAuthor(c.AuthorID, actorID, admin); err != nil {
				return err
			}
			break
		}
	}
	s.repo.Mutate(postID, func(p *model.Post) bool {
		for i := range p.Comments {
			if p.Comments[i].ID == commentID {
				if input.Author != nil {
					p.Comments[i].Author = *input.Author
				}
				if input.Message != nil {
					p.Comments[i].Message = *input.Message
				}
				return true
			}
		}
		return false
	})
	return nil
}

// RemoveComment 删除评论，帖子结构不变
func (s *communityService) RemoveComment(actorID string, admin bool, postID, commentID string) error {
	post, ok := s.repo.GetByID(postID)
	if !ok {
		return nil
	}
	for _, c := range post.Comments {
		if c.ID == commentID {
			if err := checkAuthor(c.AuthorID, actorID, admin); err != nil {
				return err
			}
			break
		}
	}
	s.repo.Mutate(postID, func(p *model.Post) bool {
		kept := p.Comments[:0]
		removed := false
		for _, c := range p.Comments {
			if c.ID == commentID {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		p.Comments = kept
		return removed
	})
	return nil
}

// TogglePostLike 按观察者翻转点赞，计数与集合保持一致
func (s *communityService) TogglePostLike(viewerID, postID string) (liked, found bool) {
	found = s.repo.Mutate(postID, func(p *model.Post) bool {
		if p.LikedBy == nil {
			p.LikedBy = map[string]struct{}{}
		}
		if _, ok := p.LikedBy[viewerID]; ok {
			delete(p.LikedBy, viewerID)
		} else {
			p.LikedBy[viewerID] = struct{}{}
			liked = true
		}
		p.Likes = len(p.LikedBy)
		return true
	})
	return liked, found
}

// 匿名帖子没有归属者，任何会员可改
func checkAuthor(authorID, actorID string, admin bool) error {
	if admin || authorID == "" || authorID == actorID {
		return nil
	}
	return ErrNoPermission
}

// normalizeAttachments 丢弃空URL的附件并补齐ID、标题与来源
func normalizeAttachments(in []model.Attachment) []model.Attachment {
	out := make([]model.Attachment, 0, len(in))
	for _, a := range in {
		if strings.TrimSpace(a.URL) == "" {
			continue
		}
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		if a.Title == "" {
			a.Title = "Anhang"
		}
		if a.Source == "" {
			a.Source = "url"
		}
		out = append(out, a)
	}
	return out
}

func sortComments(comments []model.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}
