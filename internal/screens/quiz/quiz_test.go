package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/corbin/geoquiz/internal/game"
	qbank "github.com/corbin/geoquiz/internal/quiz"
	"github.com/corbin/geoquiz/internal/router"
	"github.com/corbin/geoquiz/internal/screen"
	"github.com/corbin/geoquiz/internal/screens/cheat"
	"github.com/corbin/geoquiz/internal/screens/summary"
	"github.com/corbin/geoquiz/internal/session"
	"github.com/corbin/geoquiz/internal/store"
)

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
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
func (m *mockSnapshotRepo) Clear(_ context.Context) error        { m.snapshots = nil; return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuizScreen(t *testing.T) (*QuizScreen, *game.Game, *mockSnapshotRepo) {
	t.Helper()
	cat, err := qbank.NewCatalog("en", nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	repo := &mockSnapshotRepo{}
	g := game.New(session.New(qbank.DefaultBank()), cat, repo)
	return New(g), g, repo
}

// press sends a key and runs the resulting command, returning its message.
func press(t *testing.T, s screen.Screen, msg tea.KeyPressMsg) (screen.Screen, tea.Msg) {
	t.Helper()
	scr, cmd := s.Update(msg)
	if cmd == nil {
		return scr, nil
	}
	return scr, cmd()
}

func TestQuizScreen_Title(t *testing.T) {
	s, _, _ := testQuizScreen(t)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
	if s.Status() != "1/6" {
		t.Errorf("Status = %q, want 1/6", s.Status())
	}
}

func TestQuizScreen_View_ShowsPrompt(t *testing.T) {
	s, _, _ := testQuizScreen(t)
	view := ansi.Strip(s.View(100, 30))
	for _, want := range []string{"Question 1 of 6", "Canberra is the capital of Australia.", "[t] True", "[f] False"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuizScreen_AnswerCorrect(t *testing.T) {
	s, g, repo := testQuizScreen(t)

	_, msg := press(t, s, keyPress('t'))
	if _, ok := msg.(game.SavedMsg); !ok {
		t.Fatalf("msg = %T, want game.SavedMsg", msg)
	}
	if g.Session().Mark(0) != session.Correct {
		t.Errorf("mark = %v, want correct", g.Session().Mark(0))
	}
	if len(repo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(repo.snapshots))
	}
	if view := ansi.Strip(s.View(100, 30)); !strings.Contains(view, "Correct!") {
		t.Errorf("view missing correct feedback:\n%s", view)
	}
}

func TestQuizScreen_AnswerDisabledOnceAnswered(t *testing.T) {
	s, g, repo := testQuizScreen(t)
	press(t, s, keyPress('f'))

	_, msg := press(t, s, keyPress('t'))
	if msg != nil {
		t.Errorf("expected no command for a second answer, got %T", msg)
	}
	if g.Session().Mark(0) != session.Incorrect {
		t.Errorf("mark = %v, want incorrect", g.Session().Mark(0))
	}
	if len(repo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(repo.snapshots))
	}
}

func TestQuizScreen_CheaterFeedback(t *testing.T) {
	s, g, _ := testQuizScreen(t)
	g.Session().SetCheater(true)

	press(t, s, keyPress('t'))
	if view := ansi.Strip(s.View(100, 30)); !strings.Contains(view, "Cheating is wrong.") {
		t.Errorf("view missing judgment:\n%s", view)
	}
}

func TestQuizScreen_Navigation(t *testing.T) {
	s, g, _ := testQuizScreen(t)

	// Previous is disabled on the first question.
	press(t, s, keyPress('p'))
	if g.Session().CurrentIndex() != 0 {
		t.Errorf("index = %d, want 0", g.Session().CurrentIndex())
	}

	press(t, s, keyPress('n'))
	press(t, s, specialKey(tea.KeyRight))
	if g.Session().CurrentIndex() != 2 {
		t.Errorf("index = %d, want 2", g.Session().CurrentIndex())
	}

	press(t, s, specialKey(tea.KeyLeft))
	if g.Session().CurrentIndex() != 1 {
		t.Errorf("index = %d, want 1", g.Session().CurrentIndex())
	}
}

func TestQuizScreen_NextDisabledOnLast(t *testing.T) {
	s, g, _ := testQuizScreen(t)
	for i := 0; i < 5; i++ {
		press(t, s, keyPress('n'))
	}
	if !g.Session().IsLast() {
		t.Fatalf("index = %d, want last", g.Session().CurrentIndex())
	}

	_, msg := press(t, s, keyPress('n'))
	if msg != nil {
		t.Errorf("expected Next to be disabled on last question, got %T", msg)
	}
	if !g.Session().IsLast() {
		t.Errorf("index = %d, want last", g.Session().CurrentIndex())
	}
}

func TestQuizScreen_NavigationClearsFeedback(t *testing.T) {
	s, _, _ := testQuizScreen(t)
	press(t, s, keyPress('t'))
	press(t, s, keyPress('n'))

	if view := ansi.Strip(s.View(100, 30)); strings.Contains(view, "Correct!") {
		t.Error("feedback should clear after moving on")
	}
}

func TestQuizScreen_Cheat(t *testing.T) {
	s, _, _ := testQuizScreen(t)

	_, msg := press(t, s, keyPress('c'))
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*cheat.CheatScreen); !ok {
		t.Errorf("pushed %T, want *cheat.CheatScreen", push.Screen)
	}
}

func TestQuizScreen_FinishWhenComplete(t *testing.T) {
	s, g, repo := testQuizScreen(t)

	answers := []bool{false, true, false, false, true, true}
	for i, a := range answers {
		if a {
			press(t, s, keyPress('t'))
		} else {
			press(t, s, keyPress('f'))
		}
		if i < len(answers)-1 {
			press(t, s, keyPress('n'))
		}
	}
	if !g.Session().IsComplete() {
		t.Fatal("expected session to be complete")
	}
	if view := ansi.Strip(s.View(100, 30)); !strings.Contains(view, "Finish") {
		t.Errorf("view missing Finish button:\n%s", view)
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Finish")
	}
	msgs := runBatch(cmd)

	var replaced *summary.SummaryScreen
	for _, m := range msgs {
		if r, ok := m.(router.ReplaceScreenMsg); ok {
			replaced, _ = r.Screen.(*summary.SummaryScreen)
		}
	}
	if replaced == nil {
		t.Fatalf("expected ReplaceScreenMsg with summary, got %v", msgs)
	}
	if got := replaced.ScoreText(); got != "You scored 83.3%" {
		t.Errorf("score text = %q", got)
	}

	// The session is reset and the pristine state was saved.
	if g.Session().AnsweredCount() != 0 || g.Session().CurrentIndex() != 0 {
		t.Error("expected session to be reset after finish")
	}
	last := repo.snapshots[len(repo.snapshots)-1].Data.Session
	for i, m := range last.Ledger {
		if m != "unanswered" {
			t.Errorf("saved ledger[%d] = %q, want unanswered", i, m)
		}
	}
}

func TestQuizScreen_SaveErrorShown(t *testing.T) {
	s, _, _ := testQuizScreen(t)
	s.Update(game.SavedMsg{Err: errors.New("disk full")})

	if view := ansi.Strip(s.View(100, 30)); !strings.Contains(view, "Progress could not be saved.") {
		t.Errorf("view missing save error:\n%s", view)
	}

	s.Update(game.SavedMsg{ID: 2})
	if view := ansi.Strip(s.View(100, 30)); strings.Contains(view, "Progress could not be saved.") {
		t.Error("save error should clear after a successful save")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s, _, _ := testQuizScreen(t)

	hints := s.KeyHints()
	var keys []string
	for _, h := range hints {
		keys = append(keys, h.Key)
	}
	got := strings.Join(keys, ",")
	if got != "t,f,→/n,c,Esc" {
		t.Errorf("hints = %q", got)
	}
}

// runBatch executes cmd and flattens any batch it returns.
func runBatch(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, runBatch(c)...)
	}
	return msgs
}
