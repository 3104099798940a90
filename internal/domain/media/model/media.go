package model

// 媒体类型与来源
const (
	TypeImage = "image"
	TypeVideo = "video"

	SourceURL    = "url"
	SourceUpload = "upload"
)

// Item 媒体条目（图片或视频）
type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	OwnerID  string `json:"ownerId,omitempty"`
	URL      string `json:"url"`
	Type     string `json:"type"`   // image, video
	Source   string `json:"source"` // url, upload
	FileName string `json:"fileName,omitempty"`
}
