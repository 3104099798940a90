package model

import "time"

// Category 论坛版块，随初始数据载入，只读
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Reply 主题回复
type Reply struct {
	ID        string              `json:"id"`
	Author    string              `json:"author"`
	AuthorID  string              `json:"authorId,omitempty"`
	Message   string              `json:"message"`
	CreatedAt time.Time           `json:"createdAt"`
	Likes     int                 `json:"likes"`
	LikedBy   map[string]struct{} `json:"-"`
	LikedByMe bool                `json:"likedByMe"`
}

// Thread 论坛主题
// LastActivity 始终等于最新一条回复的 CreatedAt，没有回复时等于主题自身的 CreatedAt
type Thread struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Author       string              `json:"author"`
	AuthorID     string              `json:"authorId,omitempty"`
	CategoryID   string              `json:"categoryId"`
	Body         string              `json:"body"`
	Excerpt      string              `json:"excerpt"`
	CreatedAt    time.Time           `json:"createdAt"`
	LastActivity time.Time           `json:"lastActivity"`
	Likes        int                 `json:"likes"`
	LikedBy      map[string]struct{} `json:"-"`
	LikedByMe    bool                `json:"likedByMe"`
	Replies      []Reply             `json:"replies"`
}

// Clone 返回回复的深拷贝
func (r Reply) Clone() Reply {
	c := r
	c.LikedBy = make(map[string]struct{}, len(r.LikedBy))
	for id := range r.LikedBy {
		c.LikedBy[id] = struct{}{}
	}
	return c
}

// Clone 返回主题的深拷贝
func (t Thread) Clone() Thread {
	c := t
	c.LikedBy = make(map[string]struct{}, len(t.LikedBy))
	for id := range t.LikedBy {
		c.LikedBy[id] = struct{}{}
	}
	c.Replies = make([]Reply, len(t.Replies))
	for i, r := range t.Replies {
		c.Replies[i] = r.Clone()
	}
	return c
}

// ForViewer 返回带有 likedByMe 标记的拷贝（含所有回复）
func (t Thread) ForViewer(viewerID string) Thread {
	c := t.Clone()
	_, c.LikedByMe = t.LikedBy[viewerID]
	for i := range c.Replies {
		_, c.Replies[i].LikedByMe = t.Replies[i].LikedBy[viewerID]
	}
	return c
}
