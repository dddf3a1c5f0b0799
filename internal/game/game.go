// Package game binds a quiz session to its catalog and snapshot store.
// Screens mutate the session through it and ask it for checkpoints.
package game

import (
	"context"
	"fmt"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/corbin/geoquiz/internal/quiz"
	"github.com/corbin/geoquiz/internal/session"
	"github.com/corbin/geoquiz/internal/store"
)

// DefaultKeep is the number of snapshots retained after each save.
const DefaultKeep = 5

// SavedMsg reports the outcome of an asynchronous checkpoint. Stale is
// set when a newer capture had already been written, so nothing was saved.
type SavedMsg struct {
	ID    int
	Stale bool
	Err   error
}

// ClearedMsg reports the outcome of an asynchronous Clear.
type ClearedMsg struct {
	Err error
}

// Game is the host-side state shared by the quiz screens.
//
// Every capture takes the next sequence number on the UI goroutine.
// Writes run one at a time and drop any capture older than the last one
// written or cleared, so commands finishing out of order cannot roll the
// stored state back.
type Game struct {
	session   *session.Session
	catalog   *quiz.Catalog
	repo      store.SnapshotRepo
	log       *zap.Logger
	keep      int
	sessionID string
	seq       int64 // last sequence handed out

	mu      sync.Mutex // serializes writes to repo
	written int64      // highest sequence written or cleared
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for persistence events.
func WithLogger(log *zap.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithKeep sets how many snapshots are kept after each save.
func WithKeep(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.keep = n
		}
	}
}

// New creates a Game. A nil repo disables persistence.
func New(sess *session.Session, catalog *quiz.Catalog, repo store.SnapshotRepo, opts ...Option) *Game {
	g := &Game{
		session:   sess,
		catalog:   catalog,
		repo:      repo,
		log:       zap.NewNop(),
		keep:      DefaultKeep,
		sessionID: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Session returns the live quiz session.
func (g *Game) Session() *session.Session { return g.session }

// Catalog returns the message catalog.
func (g *Game) Catalog() *quiz.Catalog { return g.catalog }

// SessionID identifies the current round in stored snapshots.
func (g *Game) SessionID() string { return g.sessionID }

// Restore loads the latest stored snapshot into the session. A missing or
// unusable snapshot leaves the session in its initial state.
func (g *Game) Restore(ctx context.Context) error {
	if g.repo == nil {
		g.session.Restore(nil)
		return nil
	}
	snap, err := g.repo.Latest(ctx)
	if err != nil {
		g.session.Restore(nil)
		return fmt.Errorf("load latest snapshot: %w", err)
	}
	if snap == nil {
		g.session.Restore(nil)
		return nil
	}
	g.advance(snap.Sequence)

	if verr := snap.Data.Session.Validate(g.session.Len()); verr != nil {
		g.log.Warn("discarding unusable snapshot",
			zap.Int("snapshot_id", snap.ID),
			zap.Error(verr),
		)
	} else if snap.Data.SessionID != "" {
		g.sessionID = snap.Data.SessionID
	}
	g.session.Restore(snap.Data.Session)
	g.log.Debug("session restored",
		zap.String("session_id", g.sessionID),
		zap.Int("current_index", g.session.CurrentIndex()),
		zap.Int("answered", g.session.AnsweredCount()),
	)
	return nil
}

// HasProgress reports whether the session differs from a fresh start.
func (g *Game) HasProgress() bool {
	return g.session.AnsweredCount() > 0 || g.session.CurrentIndex() != 0
}

// Checkpoint captures the session now and returns a command that
// persists the captured value. The capture happens on the caller's
// goroutine so later mutations cannot leak into it.
func (g *Game) Checkpoint() tea.Cmd {
	if g.repo == nil {
		return nil
	}
	seq := g.nextSeq()
	snap := g.session.Save()
	sessionID := g.sessionID
	return func() tea.Msg {
		id, stale, err := g.persist(context.Background(), seq, sessionID, snap)
		return SavedMsg{ID: id, Stale: stale, Err: err}
	}
}

// Flush persists the current session synchronously. Checkpoints captured
// before it that are still in flight are dropped when they arrive.
func (g *Game) Flush(ctx context.Context) error {
	if g.repo == nil {
		return nil
	}
	_, _, err := g.persist(ctx, g.nextSeq(), g.sessionID, g.session.Save())
	return err
}

// Finish summarizes the round, resets the session for the next one and
// starts a new session ID. The cheat flag survives the reset.
func (g *Game) Finish() session.Summary {
	sum := g.session.Summarize()
	g.session.Reset()
	g.sessionID = uuid.New().String()
	g.log.Info("round finished",
		zap.Float64("score", sum.Score),
		zap.Int("correct", sum.Correct),
		zap.Int("total", sum.Total),
		zap.Bool("cheater", sum.IsCheater),
	)
	return sum
}

// Clear returns the session to its initial state, cheat flag included,
// and returns a command that wipes the stored snapshots. Checkpoints
// captured before the call are dropped when they arrive. The command is
// nil when persistence is disabled.
func (g *Game) Clear() tea.Cmd {
	g.session.Reset()
	g.session.SetCheater(false)
	g.sessionID = uuid.New().String()
	if g.repo == nil {
		return nil
	}
	seq := g.nextSeq()
	return func() tea.Msg {
		return ClearedMsg{Err: g.clear(context.Background(), seq)}
	}
}

func (g *Game) nextSeq() int64 {
	g.seq++
	return g.seq
}

// advance moves the sequence counters past a restored snapshot.
func (g *Game) advance(seq int64) {
	if seq > g.seq {
		g.seq = seq
	}
	g.mu.Lock()
	if seq > g.written {
		g.written = seq
	}
	g.mu.Unlock()
}

func (g *Game) clear(ctx context.Context, seq int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seq < g.written {
		// A capture taken after the clear is already stored and supersedes it.
		g.log.Debug("skipping superseded clear", zap.Int64("sequence", seq))
		return nil
	}
	if err := g.repo.Clear(ctx); err != nil {
		g.log.Error("clear snapshots", zap.Error(err))
		return fmt.Errorf("clear snapshots: %w", err)
	}
	g.written = seq
	return nil
}

func (g *Game) persist(ctx context.Context, seq int64, sessionID string, snap session.Snapshot) (int, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seq <= g.written {
		g.log.Debug("dropping stale checkpoint",
			zap.Int64("sequence", seq),
			zap.Int64("written", g.written),
		)
		return 0, true, nil
	}

	stored := &store.Snapshot{
		Sequence: seq,
		Data: store.SnapshotData{
			SessionID: sessionID,
			Session:   &snap,
		},
	}
	if err := g.repo.Save(ctx, stored); err != nil {
		g.log.Error("save snapshot", zap.Error(err))
		return 0, false, err
	}
	g.written = seq
	if err := g.repo.Prune(ctx, g.keep); err != nil {
		g.log.Warn("prune snapshots", zap.Error(err))
	}
	g.log.Debug("snapshot saved",
		zap.Int("snapshot_id", stored.ID),
		zap.Int64("sequence", seq),
		zap.Int("current_index", snap.CurrentIndex),
	)
	return stored.ID, false, nil
}
