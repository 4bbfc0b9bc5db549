package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/gymtrack/internal/gymapi"
)

// ErrNoMemberSelected is returned by Session.Submit when no member is active.
var ErrNoMemberSelected = errors.New("no member selected")

const defaultCallTimeout = 5 * time.Second

// Session drives a State against a Backend for callers that are not a
// bubbletea program: scripts, tests, one-shot commands. Methods are safe for
// concurrent use. The lock is released while a call is in flight, so
// concurrent selections race exactly like they would in the UI and the
// stale-response guard decides which list wins.
type Session struct {
	backend gymapi.Backend
	log     *zap.SugaredLogger
	timeout time.Duration

	mu    sync.Mutex
	state State
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithSessionLogger routes failures to log.
func WithSessionLogger(log *zap.SugaredLogger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCallTimeout bounds every remote call.
func WithCallTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewSession returns a Session over backend with an empty state.
func NewSession(backend gymapi.Backend, opts ...SessionOption) *Session {
	s := &Session{
		backend: backend,
		log:     zap.NewNop().Sugar(),
		timeout: defaultCallTimeout,
		state:   New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Members = cloneSlice(s.state.Members)
	snap.Workouts = cloneSlice(s.state.Workouts)
	return snap
}

// LoadMembers fetches the member list.
func (s *Session) LoadMembers(ctx context.Context) error {
	return s.dispatch(ctx, func(st State) (State, Effect) { return st.Start() })
}

// SelectMember activates id and loads its workouts.
func (s *Session) SelectMember(ctx context.Context, id gymapi.ID) error {
	return s.dispatch(ctx, func(st State) (State, Effect) { return st.SelectMember(id) })
}

// LoadWorkouts refetches the workouts of memberID. It does nothing unless
// memberID is the selected member.
func (s *Session) LoadWorkouts(ctx context.Context, memberID gymapi.ID) error {
	return s.dispatch(ctx, func(st State) (State, Effect) { return st.LoadWorkouts(memberID) })
}

// Submit saves the form and reloads the list.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	selected := !s.state.SelectedMemberID.IsZero()
	s.mu.Unlock()
	if !selected {
		return ErrNoMemberSelected
	}

	var invalid error
	err := s.dispatch(ctx, func(st State) (State, Effect) {
		next, eff := st.Submit()
		if eff.None() && next.Err != nil {
			invalid = next.Err
		}
		return next, eff
	})
	if invalid != nil {
		return invalid
	}
	return err
}

// Delete removes workout id and reloads the list.
func (s *Session) Delete(ctx context.Context, id gymapi.ID) error {
	return s.dispatch(ctx, func(st State) (State, Effect) { return st.Delete(id) })
}

// BeginEdit loads w into the form.
func (s *Session) BeginEdit(w gymapi.Workout) {
	s.update(func(st State) State { return st.BeginEdit(w) })
}

// CancelEdit discards the draft.
func (s *Session) CancelEdit() {
	s.update(State.CancelEdit)
}

// SetField records input for one form field.
func (s *Session) SetField(field Field, value string) {
	s.update(func(st State) State { return st.SetField(field, value) })
}

func (s *Session) update(fn func(State) State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
}

// dispatch applies a reducer and then runs the effect chain it starts until
// no follow-up is left. The first failure is returned.
func (s *Session) dispatch(ctx context.Context, reduce func(State) (State, Effect)) error {
	s.mu.Lock()
	var eff Effect
	s.state, eff = reduce(s.state)
	s.mu.Unlock()

	var firstErr error
	for !eff.None() {
		res := s.perform(ctx, eff)
		LogResult(s.log, res)

		s.mu.Lock()
		stale := s.state.Stale(res)
		s.state, eff = s.state.Apply(res)
		s.mu.Unlock()

		if res.Err != nil && !stale && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", res.Effect.Kind, res.Err)
		}
	}
	return firstErr
}

func (s *Session) perform(ctx context.Context, eff Effect) Result {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return Perform(callCtx, s.backend, eff)
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
