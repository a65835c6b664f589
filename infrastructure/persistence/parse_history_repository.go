package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"vidlink/domain/model"
	"vidlink/domain/repository"
)

// EnsureParseHistorySchema creates the parse_history table if not exists.
func EnsureParseHistorySchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS parse_history (
        id BIGINT AUTO_INCREMENT PRIMARY KEY,
        url VARCHAR(2048) NOT NULL,
        platform VARCHAR(32) NOT NULL,
        media_type VARCHAR(16) NOT NULL DEFAULT '',
        success TINYINT(1) NOT NULL,
        error TEXT,
        cache_hit TINYINT(1) NOT NULL DEFAULT 0,
        duration_ms BIGINT NOT NULL DEFAULT 0,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
        INDEX idx_parse_history_created_at (created_at)
    )`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create parse_history table: %w", err)
	}
	return nil
}

// ParseHistoryRepository records parse attempts in MySQL. A nil db makes
// every operation a no-op so the service runs without a database.
type ParseHistoryRepository struct{ db *sql.DB }

func NewParseHistoryRepository(db *sql.DB) repository.IParseHistory {
	return &ParseHistoryRepository{db: db}
}

func (r *ParseHistoryRepository) Record(ctx context.Context, rec *model.ParseRecord) error {
	if r.db == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO parse_history (url, platform, media_type, success, error, cache_hit, duration_ms) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.URL, rec.Platform, rec.MediaType, rec.Success, rec.Error, rec.CacheHit, rec.DurationMs)
	if err != nil {
		return fmt.Errorf("insert parse record: %w", err)
	}
	return nil
}

func (r *ParseHistoryRepository) List(ctx context.Context, limit, offset int) ([]model.ParseRecord, int64, error) {
	if r.db == nil {
		return nil, 0, nil
	}
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM parse_history`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count parse records: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, url, platform, media_type, success, error, cache_hit, duration_ms, created_at
         FROM parse_history ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list parse records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []model.ParseRecord
	for rows.Next() {
		var rec model.ParseRecord
		var errMsg sql.NullString
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Platform, &rec.MediaType, &rec.Success, &errMsg, &rec.CacheHit, &rec.DurationMs, &rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan parse record: %w", err)
		}
		rec.Error = errMsg.String
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
