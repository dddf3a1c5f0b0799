package store

import (
	"context"
	"io"
	"time"

	"github.com/corbin/geoquiz/internal/session"
)

// SnapshotVersion is the current layout of SnapshotData.
const SnapshotVersion = 1

// SnapshotData is the payload persisted for one save of the quiz session.
type SnapshotData struct {
	Version   int               `json:"version"`
	SessionID string            `json:"session_id"`
	Session   *session.Snapshot `json:"session"`
}

// Snapshot represents a point-in-time capture of the quiz session.
// Sequence orders captures: it is assigned when the session is captured,
// not when the write lands, so saves that complete out of order still
// resolve to the newest capture.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages saved quiz session snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Timestamp is set to now and
	// the assigned ID is written back to snap. A snapshot whose Sequence
	// is below the stored latest never becomes Latest; backends that keep
	// only one snapshot discard it and leave ID zero.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the snapshot with the highest Sequence, the newest
	// insert winning ties, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots in Latest order.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot.
	Clear(ctx context.Context) error
}

// Backend is an open snapshot store.
type Backend interface {
	io.Closer
	SnapshotRepo() SnapshotRepo
}

// prepare fills the defaults shared by every backend before a save.
func prepare(snap *Snapshot) {
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	if snap.Data.Version == 0 {
		snap.Data.Version = SnapshotVersion
	}
}
