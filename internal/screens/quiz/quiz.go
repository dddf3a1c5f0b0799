package quiz

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/corbin/geoquiz/internal/game"
	"github.com/corbin/geoquiz/internal/router"
	"github.com/corbin/geoquiz/internal/screen"
	"github.com/corbin/geoquiz/internal/screens/cheat"
	"github.com/corbin/geoquiz/internal/screens/summary"
	"github.com/corbin/geoquiz/internal/session"
	"github.com/corbin/geoquiz/internal/ui/layout"
)

// QuizScreen implements screen.Screen for answering questions.
type QuizScreen struct {
	game    *game.Game
	keys    KeyMap
	outcome *session.AnswerOutcome
	saveErr error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over g's session.
func New(g *game.Game) *QuizScreen {
	s := &QuizScreen{game: g, keys: DefaultKeyMap()}
	s.syncKeys()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the position in the bank.
func (s *QuizScreen) Status() string {
	sess := s.game.Session()
	return fmt.Sprintf("%d/%d", sess.CurrentIndex()+1, sess.Len())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	s.syncKeys()
	hints := layout.Hints(s.keys.True, s.keys.False, s.keys.Previous, s.keys.Next, s.keys.Finish, s.keys.Cheat)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case game.SavedMsg:
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// syncKeys enables only the bindings that make sense for the current
// session state.
func (s *QuizScreen) syncKeys() {
	sess := s.game.Session()
	answered := sess.IsAnswered()
	complete := sess.IsComplete()

	s.keys.True.SetEnabled(!answered)
	s.keys.False.SetEnabled(!answered)
	s.keys.Previous.SetEnabled(!sess.IsFirst())
	s.keys.Next.SetEnabled(!complete && !sess.IsLast())
	s.keys.Finish.SetEnabled(complete)
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	s.syncKeys()
	sess := s.game.Session()

	switch {
	case key.Matches(msg, s.keys.True):
		return s.answer(true)
	case key.Matches(msg, s.keys.False):
		return s.answer(false)
	case key.Matches(msg, s.keys.Finish):
		return s.finish()
	case key.Matches(msg, s.keys.Next):
		sess.MoveToNext()
		s.outcome = nil
		return s, s.game.Checkpoint()
	case key.Matches(msg, s.keys.Previous):
		sess.MoveToPrevious()
		s.outcome = nil
		return s, s.game.Checkpoint()
	case key.Matches(msg, s.keys.Cheat):
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: cheat.New(s.game)}
		}
	}
	return s, nil
}

func (s *QuizScreen) answer(choice bool) (screen.Screen, tea.Cmd) {
	outcome := s.game.Session().Answer(choice)
	s.outcome = &outcome
	return s, s.game.Checkpoint()
}

// finish records the round, resets the session and swaps this screen
// for the summary.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	sum := s.game.Finish()
	s.outcome = nil
	next := summary.New(sum, s.game.Catalog())
	return s, tea.Batch(
		s.game.Checkpoint(),
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
	)
}
