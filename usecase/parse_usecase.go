package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"vidlink/domain/dto"
	"vidlink/domain/model"
	"vidlink/domain/repository"
	"vidlink/infrastructure/logger"
)

// Input failures rejected before any network call.
var (
	ErrInvalidURL          = errors.New("invalid URL format")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// IParseUseCase defines the parse orchestration operations
type IParseUseCase interface {
	// Parse resolves a source URL into a normalized VideoInfo, serving from
	// cache when possible. The second result reports a cache hit.
	Parse(ctx context.Context, req *dto.ParseRequest) (*model.VideoInfo, bool, error)
	// ListHistory returns a page of recent parse records.
	ListHistory(ctx context.Context, page, pageSize int) (*dto.HistoryListResponse, error)
}

// ParseUseCase orchestrates detection, caching, the upstream call and the
// history/event fan-out. Cache, history and publishers are optional; a nil
// collaborator disables that concern.
type ParseUseCase struct {
	parser     repository.IVideoParser
	cache      repository.IVideoCache
	history    repository.IParseHistory
	publishers []repository.IEventPublisher
}

// NewParseUseCase creates a new parse use case instance
func NewParseUseCase(parser repository.IVideoParser) *ParseUseCase {
	return &ParseUseCase{parser: parser}
}

// WithCache enables result caching on the use case (fluent)
func (u *ParseUseCase) WithCache(cache repository.IVideoCache) *ParseUseCase {
	u.cache = cache
	return u
}

// WithHistory enables parse-history recording (fluent)
func (u *ParseUseCase) WithHistory(history repository.IParseHistory) *ParseUseCase {
	u.history = history
	return u
}

// WithPublisher adds a parse-event publisher (fluent)
func (u *ParseUseCase) WithPublisher(publisher repository.IEventPublisher) *ParseUseCase {
	if publisher != nil {
		u.publishers = append(u.publishers, publisher)
	}
	return u
}

func (u *ParseUseCase) Parse(ctx context.Context, req *dto.ParseRequest) (*model.VideoInfo, bool, error) {
	if !isValidURL(req.URL) {
		return nil, false, ErrInvalidURL
	}

	// A caller-provided platform is trusted as-is and skips detection.
	platform := req.Platform
	if platform == "" {
		detected, ok := model.DetectPlatform(req.URL)
		if !ok {
			return nil, false, ErrUnsupportedPlatform
		}
		platform = detected
	}

	if u.cache != nil {
		if info, ok := u.cache.Get(req.URL); ok {
			u.fanOut(ctx, &model.ParseRecord{
				URL:       req.URL,
				Platform:  platform,
				MediaType: info.MediaType,
				Success:   true,
				CacheHit:  true,
			})
			return info, true, nil
		}
	}

	started := time.Now()
	info, err := u.parser.Parse(ctx, req.URL, platform)
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		u.fanOut(ctx, &model.ParseRecord{
			URL:        req.URL,
			Platform:   platform,
			Success:    false,
			Error:      err.Error(),
			DurationMs: elapsed,
		})
		return nil, false, err
	}

	if u.cache != nil {
		u.cache.Put(req.URL, info)
	}
	u.fanOut(ctx, &model.ParseRecord{
		URL:        req.URL,
		Platform:   platform,
		MediaType:  info.MediaType,
		Success:    true,
		DurationMs: elapsed,
	})
	return info, false, nil
}

func (u *ParseUseCase) ListHistory(ctx context.Context, page, pageSize int) (*dto.HistoryListResponse, error) {
	if u.history == nil {
		return nil, errors.New("history repository not configured")
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 25
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize
	items, total, err := u.history.List(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}
	return &dto.HistoryListResponse{Items: items, Total: total}, nil
}

// fanOut records the attempt and publishes the parse event. Both concerns
// are best-effort; failures are logged and never surfaced.
func (u *ParseUseCase) fanOut(ctx context.Context, rec *model.ParseRecord) {
	if u.history != nil {
		if err := u.history.Record(ctx, rec); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to record parse history")
		}
	}
	if len(u.publishers) == 0 {
		return
	}
	payload, err := json.Marshal(dto.ParseEvent{
		URL:       rec.URL,
		Platform:  rec.Platform,
		MediaType: rec.MediaType,
		CacheHit:  rec.CacheHit,
		Success:   rec.Success,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to encode parse event")
		return
	}
	for _, publisher := range u.publishers {
		if err := publisher.Publish(ctx, payload); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to publish parse event")
		}
	}
}

func isValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
