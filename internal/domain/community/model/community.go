package model

import "time"

// Attachment 帖子附件
type Attachment struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Title  string `json:"title"`
	Source string `json:"source"` // url, upload
}

// Comment 帖子评论，属于且仅属于一个帖子
type Comment struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	AuthorID    string    `json:"authorId,omitempty"`
	AuthorEmail string    `json:"authorEmail,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Post 社区帖子，访客（匿名或已登录）均可发布
type Post struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Author      string              `json:"author"`
	AuthorID    string              `json:"authorId,omitempty"`
	AuthorEmail string              `json:"authorEmail,omitempty"`
	Body        string              `json:"body"`
	Likes       int                 `json:"likes"`
	LikedBy     map[string]struct{} `json:"-"` // 点过赞的会员ID集合
	LikedByMe   bool                `json:"likedByMe"`
	DiveLogID   string              `json:"diveLogId,omitempty"`
	Attachments []Attachment        `json:"attachments"`
	Comments    []Comment           `json:"comments"`
}

// Clone 返回帖子的深拷贝
func (p Post) Clone() Post {
	c := p
	c.Attachments = append([]Attachment(nil), p.Attachments...)
	c.Comments = append([]Comment(nil), p.Comments...)
	c.LikedBy = make(map[string]struct{}, len(p.LikedBy))
	for id := range p.LikedBy {
		c.LikedBy[id] = struct{}{}
	}
	return c
}

// ForViewer 返回带有 likedByMe 标记的拷贝
func (p Post) ForViewer(viewerID string) Post {
	c := p.Clone()
	_, c.LikedByMe = p.LikedBy[viewerID]
	return c
}
