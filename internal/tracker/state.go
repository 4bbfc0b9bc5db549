package tracker

import (
	"fmt"

	"github.com/five82/gymtrack/internal/gymapi"
)

// Success messages shown after a mutation lands.
const (
	MessageAdded   = "Workout added successfully!"
	MessageUpdated = "Workout updated successfully!"
	MessageDeleted = "Workout deleted successfully!"
)

// State is everything the workout tracker knows. Reducers take a State by
// value and return the next one; none of them performs I/O.
type State struct {
	Members          []gymapi.Member
	SelectedMemberID gymapi.ID
	Workouts         []gymapi.Workout
	Loading          bool

	// Message is the latest success notice; Err the latest failure.
	Message string
	Err     error

	Form      Form
	EditingID gymapi.ID

	// seq identifies the newest list request. Responses carrying an older
	// value were overtaken by a later selection and are dropped.
	seq uint64
}

// New returns the empty state.
func New() State {
	return State{}
}

// Start requests the member list. It is issued once, when the tracker opens.
func (s State) Start() (State, Effect) {
	s.Err = nil
	return s, Effect{Kind: EffectListMembers}
}

// SelectMember makes id the active member. The previous list is dropped
// and, for a non-empty id, a fresh one requested.
func (s State) SelectMember(id gymapi.ID) (State, Effect) {
	if id != s.SelectedMemberID && !s.EditingID.IsZero() {
		// The workout being edited belongs to the old member.
		s = s.resetForm()
	}
	s.SelectedMemberID = id
	s.Workouts = nil
	if id.IsZero() {
		s.seq++
		s.Loading = false
		return s, Effect{}
	}
	return s.LoadWorkouts(id)
}

// LoadWorkouts requests the workouts of memberID, superseding any list
// request still in flight. Only the selected member can be loaded.
func (s State) LoadWorkouts(memberID gymapi.ID) (State, Effect) {
	if memberID.IsZero() || memberID != s.SelectedMemberID {
		return s, Effect{}
	}
	s.seq++
	s.Loading = true
	return s, Effect{Kind: EffectListWorkouts, Seq: s.seq, MemberID: memberID}
}

// Submit saves the form for the selected member: an update when a workout
// is being edited, otherwise a create. Without a selected member it does
// nothing. A form that does not convert to a draft sets Err and issues no
// call.
func (s State) Submit() (State, Effect) {
	if s.SelectedMemberID.IsZero() {
		return s, Effect{}
	}
	s.Err = nil
	draft, err := s.Form.Draft(s.SelectedMemberID)
	if err != nil {
		s.Err = err
		return s, Effect{}
	}
	if !s.EditingID.IsZero() {
		return s, Effect{Kind: EffectUpdateWorkout, MemberID: s.SelectedMemberID, WorkoutID: s.EditingID, Draft: draft}
	}
	return s, Effect{Kind: EffectCreateWorkout, MemberID: s.SelectedMemberID, Draft: draft}
}

// Delete removes the workout id.
func (s State) Delete(id gymapi.ID) (State, Effect) {
	if id.IsZero() {
		return s, Effect{}
	}
	s.Err = nil
	return s, Effect{Kind: EffectDeleteWorkout, MemberID: s.SelectedMemberID, WorkoutID: id}
}

// BeginEdit loads w into the form and marks it as the workout being edited.
func (s State) BeginEdit(w gymapi.Workout) State {
	s.EditingID = w.ID
	s.Form = FormFromWorkout(w)
	return s
}

// CancelEdit discards the draft.
func (s State) CancelEdit() State {
	return s.resetForm()
}

// SetField records user input for one form field.
func (s State) SetField(field Field, value string) State {
	s.Form = s.Form.With(field, value)
	return s
}

// DismissMessage clears the success notice.
func (s State) DismissMessage() State {
	s.Message = ""
	return s
}

// DismissError clears the reported failure.
func (s State) DismissError() State {
	s.Err = nil
	return s
}

// Editing reports whether the form edits an existing workout.
func (s State) Editing() bool {
	return !s.EditingID.IsZero()
}

// SelectedMember returns the selected member when it is in the member list.
func (s State) SelectedMember() (gymapi.Member, bool) {
	if s.SelectedMemberID.IsZero() {
		return gymapi.Member{}, false
	}
	for _, m := range s.Members {
		if m.ID == s.SelectedMemberID {
			return m, true
		}
	}
	return gymapi.Member{}, false
}

// Stale reports whether res answers a list request that has since been
// superseded, either by a newer request or by a different selection.
func (s State) Stale(res Result) bool {
	if res.Effect.Kind != EffectListWorkouts {
		return false
	}
	return res.Effect.Seq != s.seq || res.Effect.MemberID != s.SelectedMemberID
}

// Apply folds the result of a performed effect into the state and returns
// any follow-up effect. Failures set Err and otherwise leave the state as
// it was: the stale list stays and the form stays open.
func (s State) Apply(res Result) (State, Effect) {
	switch res.Effect.Kind {
	case EffectListMembers:
		if res.Err != nil {
			s.Err = fmt.Errorf("load members: %w", res.Err)
			return s, Effect{}
		}
		s.Members = res.Members
		return s, Effect{}

	case EffectListWorkouts:
		if s.Stale(res) {
			return s, Effect{}
		}
		s.Loading = false
		if res.Err != nil {
			s.Err = fmt.Errorf("load workouts: %w", res.Err)
			return s, Effect{}
		}
		s.Workouts = res.Workouts
		return s, Effect{}

	case EffectCreateWorkout, EffectUpdateWorkout:
		if res.Err != nil {
			s.Err = fmt.Errorf("save workout: %w", res.Err)
			return s, Effect{}
		}
		s.Message = MessageAdded
		if res.Effect.Kind == EffectUpdateWorkout {
			s.Message = MessageUpdated
		}
		s = s.resetForm()
		return s.LoadWorkouts(s.SelectedMemberID)

	case EffectDeleteWorkout:
		if res.Err != nil {
			s.Err = fmt.Errorf("delete workout: %w", res.Err)
			return s, Effect{}
		}
		s.Message = MessageDeleted
		if s.EditingID == res.Effect.WorkoutID {
			s = s.resetForm()
		}
		return s.LoadWorkouts(s.SelectedMemberID)
	}
	return s, Effect{}
}

func (s State) resetForm() State {
	s.EditingID = ""
	s.Form = Form{}
	return s
}
