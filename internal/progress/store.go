package progress

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

// SnapshotRepo is the durable slot the store persists into. Load returns
// nil data when no snapshot has ever been written.
type SnapshotRepo interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Observer is notified synchronously after each successful mutation with
// the updated day record.
type Observer func(DailyProgress)

// Store is the single source of truth for historical daily results. It
// hydrates from the snapshot repo on construction and writes the full map
// back after every RecordResult. Safe for concurrent callers.
type Store struct {
	mu        sync.Mutex
	days      map[int64]DailyProgress
	repo      SnapshotRepo
	loc       *time.Location
	observers []Observer

	// report receives non-fatal persistence diagnostics.
	report func(error)
}

// Option configures a Store.
type Option func(*Store)

// WithLocation sets the calendar used for midnight truncation. Defaults to
// time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

// WithReporter sets the sink for non-fatal load/save diagnostics. Defaults
// to stderr.
func WithReporter(report func(error)) Option {
	return func(s *Store) { s.report = report }
}

// NewStore creates a store hydrated from repo. A missing or corrupt
// snapshot yields an empty store and a reported diagnostic, never an error.
func NewStore(ctx context.Context, repo SnapshotRepo, opts ...Option) *Store {
	s := &Store{
		days: make(map[int64]DailyProgress),
		repo: repo,
		loc:  time.Local,
		report: func(err error) {
			fmt.Fprintln(os.Stderr, "progress:", err)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	if s.repo == nil {
		return
	}
	data, err := s.repo.Load(ctx)
	if err != nil {
		s.report(fmt.Errorf("load snapshot: %w", err))
		return
	}
	if data == nil {
		return // no history yet
	}
	days, err := decodeDays(data, s.loc)
	if err != nil {
		s.report(fmt.Errorf("decode snapshot: %w", err))
		return
	}
	s.days = days
}

// StartOfDay truncates t to midnight in the store's calendar.
func (s *Store) StartOfDay(t time.Time) time.Time {
	return startOfDay(t, s.loc)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Subscribe registers an observer for future mutations.
func (s *Store) Subscribe(obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

// RecordResult folds one session result into the record for day's calendar
// day and persists the updated map. The in-memory update always takes
// effect; a failed save is reported and dropped.
func (s *Store) RecordResult(ctx context.Context, day time.Time, kind QuizKind, correct, attempted int, markCompleted bool) {
	s.mu.Lock()
	key := s.StartOfDay(day)
	existing, ok := s.days[key.Unix()]
	if !ok {
		existing = DailyProgress{Day: key}
	}
	updated := merge(existing, kind, correct, attempted, markCompleted)
	s.days[key.Unix()] = updated

	// Persist inside the lock so concurrent callers cannot interleave an
	// older map over a newer one.
	if data, err := encodeDays(s.days); err != nil {
		s.report(err)
	} else if s.repo != nil {
		if err := s.repo.Save(ctx, data); err != nil {
			s.report(fmt.Errorf("save snapshot: %w", err))
		}
	}
	observers := s.observers
	s.mu.Unlock()

	for _, obs := range observers {
		obs(updated)
	}
}

// Progress returns the record for t's calendar day, if one exists.
func (s *Store) Progress(t time.Time) (DailyProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.days[s.StartOfDay(t).Unix()]
	return p, ok
}

// Len returns the number of recorded days.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.days)
}

// Days returns every recorded day in ascending order.
func (s *Store) Days() []DailyProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DailyProgress, 0, len(s.days))
	for _, p := range s.days {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// DaysInMonth returns every midnight-truncated day of the calendar month
// containing t, in ascending order.
func (s *Store) DaysInMonth(t time.Time) []time.Time {
	y, m, _ := t.In(s.loc).Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, s.loc)

	var days []time.Time
	for d := first; d.Month() == m; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
