package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// snapshotRepo implements SnapshotRepo with ent's SQL builder over SQLite.
type snapshotRepo struct {
	drv     *entsql.Driver
	builder *entsql.DialectBuilder
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	prepare(snap)
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	query, args := r.builder.Insert(snapshotsTable.Name).
		Columns("session_id", "sequence", "timestamp", "data").
		Values(snap.Data.SessionID, snap.Sequence, snap.Timestamp, string(data)).
		Query()
	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("snapshot id: %w", err)
	}
	snap.ID = int(id)
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	query, args := r.builder.Select("id", "sequence", "timestamp", "data").
		From(r.builder.Table(snapshotsTable.Name)).
		OrderBy(entsql.Desc("sequence"), entsql.Desc("id")).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query latest snapshot: %w", err)
		}
		return nil, nil
	}

	var (
		id   int
		seq  int64
		ts   time.Time
		data []byte
	)
	if err := rows.Scan(&id, &seq, &ts, &data); err != nil {
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}
	return decodeSnapshot(id, seq, ts, data)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the threshold: the first snapshot past the newest keep.
	query, args := r.builder.Select("id", "sequence").
		From(r.builder.Table(snapshotsTable.Name)).
		OrderBy(entsql.Desc("sequence"), entsql.Desc("id")).
		Offset(keep).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	var (
		thresholdID  int
		thresholdSeq int64
	)
	found := rows.Next()
	if found {
		if err := rows.Scan(&thresholdID, &thresholdSeq); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if !found {
		return nil // fewer than keep snapshots exist
	}

	query, args = r.builder.Delete(snapshotsTable.Name).
		Where(entsql.Or(
			entsql.LT("sequence", thresholdSeq),
			entsql.And(entsql.EQ("sequence", thresholdSeq), entsql.LTE("id", thresholdID)),
		)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Clear(ctx context.Context) error {
	query, args := r.builder.Delete(snapshotsTable.Name).Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}

// decodeSnapshot rebuilds a Snapshot from its stored columns.
func decodeSnapshot(id int, seq int64, ts time.Time, raw []byte) (*Snapshot, error) {
	var data SnapshotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        id,
		Sequence:  seq,
		Timestamp: ts,
		Data:      data,
	}, nil
}
