package model

// Coordinates 经纬度
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DiveSite 潜点
type DiveSite struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Difficulty  string      `json:"difficulty"`
	Highlight   string      `json:"highlight"`
	Coordinates Coordinates `json:"coordinates"`
	OwnerID     string      `json:"ownerId,omitempty"`
}
