package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/numberninja/internal/progress"
)

// TotalQuestions is the fixed length of a session.
const TotalQuestions = 10

// ErrInvalidAnswer is returned by SubmitAnswer when the input is not an
// integer. The session state is unchanged.
var ErrInvalidAnswer = errors.New("please enter a number")

// Recorder receives the aggregated result once a session completes.
// *progress.Store satisfies it.
type Recorder interface {
	RecordResult(ctx context.Context, day time.Time, kind progress.QuizKind, correct, attempted int, markCompleted bool)
}

// State reports whether a session is still serving questions.
type State int

const (
	StateAwaitingAnswer State = iota
	StateCompleted
)

// AnswerResult is the outcome of one SubmitAnswer call.
type AnswerResult struct {
	Correct bool
	// CorrectAnswer is the expected answer, for feedback on a miss.
	CorrectAnswer int
	// Special is true when a correct answer hit the special value.
	Special bool
}

// Session drives one fixed-length practice run for a single kind. It is
// transient: abandoning it records nothing.
type Session struct {
	ID   string
	Kind progress.QuizKind

	rng      *rand.Rand
	recorder Recorder
	now      func() time.Time

	index        int
	left, right  int
	correctCount int
	shownSpecial bool
	completed    bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRand sets the random source, for deterministic tests.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithClock sets the time source used to date the recorded result.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession starts a session at question 0 with freshly randomized
// operands. recorder may be nil, in which case completion records nothing.
func NewSession(kind progress.QuizKind, recorder Recorder, opts ...SessionOption) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Kind:     kind,
		recorder: recorder,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.left, s.right, s.shownSpecial = nextOperands(s.rng, s.Kind, s.index, s.shownSpecial)
	return s
}

// Index returns the 0-based index of the current question.
func (s *Session) Index() int { return s.index }

// Score returns the running correct-answer count.
func (s *Session) Score() int { return s.correctCount }

// State reports the current session state.
func (s *Session) State() State {
	if s.completed {
		return StateCompleted
	}
	return StateAwaitingAnswer
}

// Operands returns the current question's operands.
func (s *Session) Operands() (left, right int) { return s.left, s.right }

// QuestionText renders the current question, e.g. "3 × 4 = ?".
func (s *Session) QuestionText() string {
	return fmt.Sprintf("%d %s %d = ?", s.left, s.Kind.Symbol(), s.right)
}

// CorrectAnswer computes the expected answer for the current operands.
func (s *Session) CorrectAnswer() int {
	switch s.Kind {
	case progress.KindAddition:
		return s.left + s.right
	case progress.KindSubtraction:
		return s.left - s.right
	case progress.KindMultiplication:
		return s.left * s.right
	case progress.KindDivision:
		return s.left / s.right
	}
	return 0
}

// SubmitAnswer scores text against the current question. Non-numeric input
// returns ErrInvalidAnswer and changes nothing. A correct answer increments
// the score. Submitting never advances the question.
func (s *Session) SubmitAnswer(text string) (AnswerResult, error) {
	typed, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return AnswerResult{}, ErrInvalidAnswer
	}

	want := s.CorrectAnswer()
	res := AnswerResult{Correct: typed == want, CorrectAnswer: want}
	if res.Correct {
		s.correctCount++
		res.Special = (s.Kind == progress.KindAddition || s.Kind == progress.KindSubtraction) &&
			want == SpecialAnswer
	}
	return res, nil
}

// Advance moves to the next question. Reaching the session length
// transitions to StateCompleted and reports the aggregated result to the
// recorder exactly once; further calls are no-ops.
func (s *Session) Advance(ctx context.Context) State {
	if s.completed {
		return StateCompleted
	}

	s.index++
	if s.index >= TotalQuestions {
		s.completed = true
		if s.recorder != nil {
			s.recorder.RecordResult(ctx, s.now(), s.Kind, s.correctCount, TotalQuestions, true)
		}
		return StateCompleted
	}

	s.left, s.right, s.shownSpecial = nextOperands(s.rng, s.Kind, s.index, s.shownSpecial)
	return StateAwaitingAnswer
}
