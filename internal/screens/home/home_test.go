package home

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbin/geoquiz/internal/game"
	"github.com/corbin/geoquiz/internal/quiz"
	"github.com/corbin/geoquiz/internal/router"
	quizscreen "github.com/corbin/geoquiz/internal/screens/quiz"
	"github.com/corbin/geoquiz/internal/session"
	"github.com/corbin/geoquiz/internal/store"
)

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
	cleared   int
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }
func (m *mockSnapshotRepo) Clear(_ context.Context) error {
	m.cleared++
	m.snapshots = nil
	return nil
}

func testHome(t *testing.T) (*HomeScreen, *game.Game, *mockSnapshotRepo) {
	t.Helper()
	cat, err := quiz.NewCatalog("en", nil)
	require.NoError(t, err)
	repo := &mockSnapshotRepo{}
	g := game.New(session.New(quiz.DefaultBank()), cat, repo)
	return New(g), g, repo
}

func labels(h *HomeScreen) []string {
	var out []string
	for _, it := range h.menu.Items {
		out = append(out, it.Label)
	}
	return out
}

func TestHomeScreen_FreshMenu(t *testing.T) {
	h, _, _ := testHome(t)

	assert.Equal(t, "Home", h.Title())
	assert.Equal(t, []string{LabelStart, LabelReset, LabelExit}, labels(h))
	assert.True(t, h.menu.Items[1].Disabled)
}

func TestHomeScreen_ResumeAfterProgress(t *testing.T) {
	h, g, _ := testHome(t)
	g.Session().Answer(true)

	h.View(80, 24)
	assert.Equal(t, LabelResume, h.menu.Items[0].Label)
	assert.False(t, h.menu.Items[1].Disabled)
}

func TestHomeScreen_StartPushesQuiz(t *testing.T) {
	h, _, _ := testHome(t)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*quizscreen.QuizScreen)
	assert.True(t, ok)
}

func TestHomeScreen_Reset(t *testing.T) {
	h, g, repo := testHome(t)
	g.Session().Answer(true)
	g.Session().SetCheater(true)
	h.refresh()

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, h.menu.Selected)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	// The session resets at once; the store is wiped by the command.
	assert.Equal(t, 0, repo.cleared)
	msg := cmd()
	cleared, ok := msg.(game.ClearedMsg)
	require.True(t, ok)
	require.NoError(t, cleared.Err)
	h.Update(msg)

	assert.Equal(t, 1, repo.cleared)
	assert.False(t, g.HasProgress())
	assert.False(t, g.Session().IsCheater())
	assert.Equal(t, "Progress cleared.", h.notice)
	assert.Equal(t, LabelStart, h.menu.Items[0].Label)
	assert.True(t, h.menu.Items[1].Disabled)
}

func TestHomeScreen_ResetFailure(t *testing.T) {
	h, g, _ := testHome(t)
	g.Session().Answer(true)
	h.refresh()

	h.Update(game.ClearedMsg{Err: errors.New("store offline")})
	assert.Equal(t, "Reset failed: store offline", h.notice)
}

func TestHomeScreen_Exit(t *testing.T) {
	h, _, _ := testHome(t)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown}) // skips disabled Reset
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestHomeScreen_View(t *testing.T) {
	h, _, _ := testHome(t)
	assert.NotEmpty(t, h.View(80, 24))
	assert.NotEmpty(t, h.View(80, 10))
}
