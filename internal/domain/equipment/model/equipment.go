package model

// 器材状态
const (
	StatusReady       = "bereit"
	StatusMaintenance = "wartung"
	StatusDefect      = "defekt"
)

// Item 器材条目，全局共享池，没有归属关系
type Item struct {
	ID           string `json:"id"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
	Status       string `json:"status"`      // bereit, wartung, defekt
	LastService  string `json:"lastService"` // YYYY-MM-DD
}
