// Package sqlite provides a SQLite-backed generation event store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/themugglecoder/quantumrand/internal/platform/storage/sqlitemigrate"
	"github.com/themugglecoder/quantumrand/internal/storage"
	"github.com/themugglecoder/quantumrand/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists generation telemetry events in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite event store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendGenerationEvent inserts one telemetry record.
func (s *Store) AppendGenerationEvent(ctx context.Context, evt storage.GenerationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if evt.Length < 0 {
		return fmt.Errorf("event length must be non-negative")
	}
	if evt.Zeros+evt.Ones != evt.Length {
		return fmt.Errorf("event counts do not add up to length")
	}
	timestamp := evt.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO generation_events (length, zeros, ones, entropy, duration_ms, source, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		evt.Length,
		evt.Zeros,
		evt.Ones,
		evt.Entropy,
		evt.DurationMS,
		strings.TrimSpace(evt.Source),
		toMillis(timestamp),
	)
	if err != nil {
		return fmt.Errorf("insert generation event: %w", err)
	}
	return nil
}

// RecentGenerationEvents returns up to limit events, newest first.
func (s *Store) RecentGenerationEvents(ctx context.Context, limit int) ([]storage.GenerationEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT length, zeros, ones, entropy, duration_ms, source, created_at
FROM generation_events
ORDER BY created_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]storage.GenerationEvent, 0, limit)
	for rows.Next() {
		var evt storage.GenerationEvent
		var createdAt int64
		if err := rows.Scan(
			&evt.Length,
			&evt.Zeros,
			&evt.Ones,
			&evt.Entropy,
			&evt.DurationMS,
			&evt.Source,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan generation event: %w", err)
		}
		evt.Timestamp = fromMillis(createdAt)
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generation events: %w", err)
	}
	return events, nil
}
