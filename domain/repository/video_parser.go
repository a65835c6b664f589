package repository

import (
	"context"

	"vidlink/domain/model"
)

// IVideoParser is the upstream parsing collaborator. Exactly one attempt is
// made per call; the implementation bounds the wait with its own timeout.
type IVideoParser interface {
	// Parse resolves a source URL into a normalized VideoInfo. The platform
	// label is attached to the result only; it does not influence the upstream
	// call.
	Parse(ctx context.Context, url, platform string) (*model.VideoInfo, error)
}
