package dto

import "vidlink/domain/model"

// ParseRequest is the inbound body for POST /api/video/parse.
// URL must be a well-formed absolute URL; Platform, when provided, is trusted
// as-is and skips detection.
type ParseRequest struct {
	URL      string `json:"url"      binding:"required,url"`
	Platform string `json:"platform,omitempty"`
}

// ParseResponse wraps a parse result for the HTTP layer.
type ParseResponse struct {
	Success   bool             `json:"success"`
	Data      *model.VideoInfo `json:"data,omitempty"`
	Error     string           `json:"error,omitempty"`
	FromCache bool             `json:"fromCache,omitempty"`
}

// CacheStats reports aggregate cache usage.
type CacheStats struct {
	TotalItems int    `json:"totalItems"`
	TotalSize  int    `json:"totalSize"`
	OldestItem *int64 `json:"oldestItem"`
	NewestItem *int64 `json:"newestItem"`
}

// HistoryListRequest paginates the parse-history listing.
type HistoryListRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// HistoryListResponse is a page of parse records plus the total count.
type HistoryListResponse struct {
	Items []model.ParseRecord `json:"items"`
	Total int64               `json:"total"`
}

// ParseEvent is published to the configured message brokers after each
// completed parse attempt.
type ParseEvent struct {
	URL       string `json:"url"`
	Platform  string `json:"platform"`
	MediaType string `json:"mediaType,omitempty"`
	CacheHit  bool   `json:"cacheHit"`
	Success   bool   `json:"success"`
}
