package model

import "time"

// ParseRecord is one row of the parse-history audit table.
type ParseRecord struct {
	ID         int64     `json:"id"`
	URL        string    `json:"url"`
	Platform   string    `json:"platform"`
	MediaType  string    `json:"mediaType"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	CacheHit   bool      `json:"cacheHit"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}
