package repository

import (
	"context"

	"vidlink/domain/model"
)

// IParseHistory records parse attempts for auditing. Implementations backed
// by an unavailable database behave as no-ops.
type IParseHistory interface {
	Record(ctx context.Context, rec *model.ParseRecord) error
	// List returns a page of records ordered by created_at desc, plus the
	// total count for pagination. offset is a zero-based item offset.
	List(ctx context.Context, limit, offset int) ([]model.ParseRecord, int64, error)
}
