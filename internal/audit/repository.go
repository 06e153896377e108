package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists journal entries.
type Repository interface {
	Record(ctx context.Context, entry Entry) error
	// Recent lists up to limit entries, newest first. limit <= 0 lists all.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// PostgresRepository stores entries in the request_audit table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed audit repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Record inserts an entry.
func (r *PostgresRepository) Record(ctx context.Context, entry Entry) error {
	id, err := uuid.Parse(entry.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO request_audit (id, request_id, method, path, status, duration_ms, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, entry.RequestID, entry.Method, entry.Path, entry.Status, entry.Duration.Milliseconds(), entry.Error, entry.CreatedAt.UTC())
	return err
}

// Recent lists the newest entries first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, request_id, method, path, status, duration_ms, error, created_at
        FROM request_audit ORDER BY created_at DESC LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			id         uuid.UUID
			durationMS int64
			createdAt  time.Time
			entry      Entry
		)
		if err := rows.Scan(&id, &entry.RequestID, &entry.Method, &entry.Path, &entry.Status, &durationMS, &entry.Error, &createdAt); err != nil {
			return nil, err
		}
		entry.ID = id.String()
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		entry.CreatedAt = createdAt.UTC()
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// limitArg turns a non-positive limit into NULL, which Postgres reads as LIMIT ALL.
func limitArg(limit int) *int {
	if limit <= 0 {
		return nil
	}
	return &limit
}
