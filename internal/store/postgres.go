package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresSchema creates the snapshots table and brings older tables
// up to date.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		id         BIGSERIAL PRIMARY KEY,
		session_id TEXT        NOT NULL,
		timestamp  TIMESTAMPTZ NOT NULL,
		data       JSONB       NOT NULL,
		sequence   BIGINT      NOT NULL DEFAULT 0
	)`,
	`ALTER TABLE snapshots ADD COLUMN IF NOT EXISTS sequence BIGINT NOT NULL DEFAULT 0`,
	`CREATE INDEX IF NOT EXISTS snapshot_sequence ON snapshots (sequence DESC, id DESC)`,
}

// PostgresStore is the PostgreSQL snapshot backend.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres creates a connection pool for dsn, verifies it and makes
// sure the snapshots table exists.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	poolConfig.MaxConns = 2
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	for _, stmt := range postgresSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate snapshots table: %w", err)
		}
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// SnapshotRepo returns a SnapshotRepo backed by this store.
func (s *PostgresStore) SnapshotRepo() SnapshotRepo {
	return &postgresSnapshotRepo{db: s.pool}
}

type postgresSnapshotRepo struct {
	db *pgxpool.Pool
}

func (r *postgresSnapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	prepare(snap)
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	query := `
		INSERT INTO snapshots (session_id, sequence, timestamp, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, snap.Data.SessionID, snap.Sequence, snap.Timestamp, data).Scan(&id); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID = int(id)
	return nil
}

func (r *postgresSnapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	query := `
		SELECT id, sequence, timestamp, data
		FROM snapshots
		ORDER BY sequence DESC, id DESC
		LIMIT 1
	`
	var (
		id   int64
		seq  int64
		ts   time.Time
		data []byte
	)
	err := r.db.QueryRow(ctx, query).Scan(&id, &seq, &ts, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return decodeSnapshot(int(id), seq, ts, data)
}

func (r *postgresSnapshotRepo) Prune(ctx context.Context, keep int) error {
	query := `
		DELETE FROM snapshots
		WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY sequence DESC, id DESC LIMIT $1
		)
	`
	if _, err := r.db.Exec(ctx, query, keep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *postgresSnapshotRepo) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}
