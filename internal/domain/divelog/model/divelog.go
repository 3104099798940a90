package model

// 潜水难度等级
const (
	DifficultyBeginner = "Beginner"
	DifficultyAdvanced = "Fortgeschritten"
	DifficultyPro      = "Pro"
)

// DiveLog 潜水日志条目
type DiveLog struct {
	ID         string  `json:"id"`
	LogNumber  int     `json:"logNumber"`
	Title      string  `json:"title"`
	Location   string  `json:"location"`
	Depth      float64 `json:"depth"`    // 米
	Duration   int     `json:"duration"` // 分钟
	Date       string  `json:"date"`     // YYYY-MM-DD
	Buddy      string  `json:"buddy"`
	Difficulty string  `json:"difficulty"` // Beginner, Fortgeschritten, Pro
	SiteID     string  `json:"siteId,omitempty"`
	DiverID    string  `json:"diverId,omitempty"`
}
