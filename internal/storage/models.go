package storage

import "time"

// FetchLog is one refresh cycle's audit record. It is operational history
// only; rendered results are never replayed from it.
type FetchLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Provider       string `gorm:"not null" json:"provider"`
	Status         string `gorm:"not null" json:"status"` // success, failed
	Error          string `json:"error"`
	DurationMs     int64  `json:"duration_ms"`
	ResponseLength int    `json:"response_length"`
	CitationCount  int    `json:"citation_count"`
	Sections       string `json:"sections"` // comma-joined rendered section names
}
