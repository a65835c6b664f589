package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"vidlink/domain/model"
	"vidlink/infrastructure/persistence"
)

func TestParseHistoryRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("INSERT INTO parse_history").
		WithArgs("https://example.com/v", "tiktok", "video", true, "", false, int64(120)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := persistence.NewParseHistoryRepository(db)
	err = repo.Record(context.Background(), &model.ParseRecord{
		URL:        "https://example.com/v",
		Platform:   "tiktok",
		MediaType:  "video",
		Success:    true,
		DurationMs: 120,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseHistoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer func() { _ = db.Close() }()

	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT id, url, platform").
		WithArgs(25, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "url", "platform", "media_type", "success", "error", "cache_hit", "duration_ms", "created_at",
		}).
			AddRow(2, "https://example.com/b", "youtube", "video", true, nil, true, 10, createdAt).
			AddRow(1, "https://example.com/a", "tiktok", "audio", false, "timed out", false, 30000, createdAt))

	repo := persistence.NewParseHistoryRepository(db)
	items, total, err := repo.List(context.Background(), 25, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
	assert.Equal(t, "youtube", items[0].Platform)
	assert.True(t, items[0].CacheHit)
	assert.Equal(t, "timed out", items[1].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseHistoryNilDBNoops(t *testing.T) {
	repo := persistence.NewParseHistoryRepository(nil)

	err := repo.Record(context.Background(), &model.ParseRecord{URL: "https://example.com/v"})
	assert.NoError(t, err)

	items, total, err := repo.List(context.Background(), 25, 0)
	assert.NoError(t, err)
	assert.Nil(t, items)
	assert.Zero(t, total)
}
