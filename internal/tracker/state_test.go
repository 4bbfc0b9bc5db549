package tracker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gymtrack/internal/gymapi"
)

func squat() gymapi.Workout {
	weight := 100.0
	return gymapi.Workout{ID: "10", MemberID: "1", Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: &weight}
}

func TestStart_LoadsMembersInServerOrder(t *testing.T) {
	st, eff := New().Start()
	require.Equal(t, EffectListMembers, eff.Kind)

	members := []gymapi.Member{{ID: "2", Name: "Bob"}, {ID: "1", Name: "Ann"}}
	st, next := st.Apply(Result{Effect: eff, Members: members})

	assert.True(t, next.None())
	assert.Equal(t, members, st.Members)
}

func TestStart_FailureKeepsPriorMembers(t *testing.T) {
	st := New()
	st.Members = []gymapi.Member{{ID: "1", Name: "Ann"}}

	st, eff := st.Start()
	st, _ = st.Apply(Result{Effect: eff, Err: errors.New("boom")})

	assert.Len(t, st.Members, 1)
	require.Error(t, st.Err)
	assert.Contains(t, st.Err.Error(), "load members")
}

func TestSelectMember_LoadsAndReplacesWorkouts(t *testing.T) {
	st := New()
	st.Workouts = []gymapi.Workout{{ID: "99", MemberID: "2"}}

	st, eff := st.SelectMember("1")
	require.Equal(t, EffectListWorkouts, eff.Kind)
	assert.Equal(t, gymapi.ID("1"), eff.MemberID)
	assert.True(t, st.Loading)
	assert.Empty(t, st.Workouts, "switching members drops the old list")

	st, next := st.Apply(Result{Effect: eff, Workouts: []gymapi.Workout{squat()}})
	assert.True(t, next.None())
	assert.False(t, st.Loading)
	require.Len(t, st.Workouts, 1)
	assert.Equal(t, "Squat", st.Workouts[0].Exercise)
}

func TestSelectMember_EmptyClearsWithoutRequest(t *testing.T) {
	st, eff := New().SelectMember("1")
	st, cleared := st.SelectMember("")

	assert.True(t, cleared.None())
	assert.False(t, st.Loading)
	assert.Empty(t, st.Workouts)

	// The in-flight request for member 1 lands afterwards and is ignored.
	st, _ = st.Apply(Result{Effect: eff, Workouts: []gymapi.Workout{squat()}})
	assert.Empty(t, st.Workouts)
}

func TestLoadWorkouts_FailureClearsLoadingAndKeepsList(t *testing.T) {
	st, eff := New().SelectMember("1")
	st, _ = st.Apply(Result{Effect: eff, Workouts: []gymapi.Workout{squat()}})

	st, eff = st.LoadWorkouts("1")
	require.True(t, st.Loading)
	st, _ = st.Apply(Result{Effect: eff, Err: errors.New("timeout")})

	assert.False(t, st.Loading)
	assert.Len(t, st.Workouts, 1)
	assert.ErrorContains(t, st.Err, "load workouts")
}

func TestStaleResponses_LatestSelectionWins(t *testing.T) {
	ann := []gymapi.Workout{{ID: "10", MemberID: "1", Exercise: "Squat"}}
	bob := []gymapi.Workout{{ID: "20", MemberID: "2", Exercise: "Deadlift"}}

	t.Run("older response arrives last", func(t *testing.T) {
		st, first := New().SelectMember("1")
		st, second := st.SelectMember("2")

		st, _ = st.Apply(Result{Effect: second, Workouts: bob})
		st, _ = st.Apply(Result{Effect: first, Workouts: ann})

		assert.Equal(t, bob, st.Workouts)
		assert.False(t, st.Loading)
	})

	t.Run("older response arrives first", func(t *testing.T) {
		st, first := New().SelectMember("1")
		st, second := st.SelectMember("2")

		st, _ = st.Apply(Result{Effect: first, Workouts: ann})
		assert.True(t, st.Loading, "stale result must not clear loading")
		assert.Empty(t, st.Workouts)

		st, _ = st.Apply(Result{Effect: second, Workouts: bob})
		assert.Equal(t, bob, st.Workouts)
		assert.False(t, st.Loading)
	})

	t.Run("reselecting the same member", func(t *testing.T) {
		st, first := New().SelectMember("1")
		st, second := st.SelectMember("1")

		assert.True(t, st.Stale(Result{Effect: first}))
		assert.False(t, st.Stale(Result{Effect: second}))
	})
}

func TestSubmit_NoMemberIsNoop(t *testing.T) {
	st := New().SetField(FieldExercise, "Squat")
	next, eff := st.Submit()

	assert.True(t, eff.None())
	assert.NoError(t, next.Err)
	assert.Equal(t, st.Form, next.Form)
}

func TestSubmit_CreateThenReload(t *testing.T) {
	st, eff := New().SelectMember("1")
	st, _ = st.Apply(Result{Effect: eff})

	st = st.SetField(FieldDate, "2024-01-02").
		SetField(FieldExercise, "Bench").
		SetField(FieldSets, "5").
		SetField(FieldReps, "5").
		SetField(FieldWeight, "60")

	st, eff = st.Submit()
	require.Equal(t, EffectCreateWorkout, eff.Kind)
	assert.Equal(t, gymapi.ID("1"), eff.Draft.MemberID)
	assert.Equal(t, "Bench", eff.Draft.ExerciseName)
	require.NotNil(t, eff.Draft.Weight)
	assert.Equal(t, 60.0, *eff.Draft.Weight)
	assert.Nil(t, eff.Draft.Notes)

	st, reload := st.Apply(Result{Effect: eff, Workout: gymapi.Workout{ID: "11"}})
	assert.Equal(t, MessageAdded, st.Message)
	assert.True(t, st.Form.IsEmpty())
	assert.False(t, st.Editing())
	require.Equal(t, EffectListWorkouts, reload.Kind)
	assert.Equal(t, gymapi.ID("1"), reload.MemberID)
}

func TestSubmit_UpdateTargetsEditedWorkout(t *testing.T) {
	st, eff := New().SelectMember("1")
	st, _ = st.Apply(Result{Effect: eff, Workouts: []gymapi.Workout{squat()}})

	st = st.BeginEdit(st.Workouts[0])
	require.True(t, st.Editing())
	assert.Equal(t, Form{Date: "2024-01-01", ExerciseName: "Squat", Sets: "3", Reps: "5", Weight: "100"}, st.Form)

	st = st.SetField(FieldReps, "8")
	st, eff = st.Submit()
	require.Equal(t, EffectUpdateWorkout, eff.Kind)
	assert.Equal(t, gymapi.ID("10"), eff.WorkoutID)
	assert.Equal(t, 8, eff.Draft.Reps)

	st, reload := st.Apply(Result{Effect: eff})
	assert.Equal(t, MessageUpdated, st.Message)
	assert.False(t, st.Editing())
	assert.Equal(t, EffectListWorkouts, reload.Kind)
}

func TestSubmit_FailureKeepsForm(t *testing.T) {
	st, eff := New().SelectMember("1")
	st, _ = st.Apply(Result{Effect: eff, Workouts: []gymapi.Workout{squat()}})
	st = st.BeginEdit(st.Workouts[0])
	form := st.Form

	st, eff = st.Submit()
	st, next := st.Apply(Result{Effect: eff, Err: errors.New("500")})

	assert.True(t, next.None())
	assert.Equal(t, form, st.Form)
	assert.Equal(t, gymapi.ID("10"), st.EditingID)
	assert.Empty(t, st.Message)
	assert.ErrorContains(t, st.Err, "save workout")
}

func TestSubmit_InvalidDraftReportsWithoutCall(t *testing.T) {
	st, _ := New().SelectMember("1")
	st = st.SetField(FieldSets, "three")

	st, eff := st.Submit()
	assert.True(t, eff.None())
	require.ErrorIs(t, st.Err, ErrInvalidDraft)
	assert.Equal(t, "three", st.Form.Sets)
}

func TestDelete_ReloadsAndClearsEditOfDeletedWorkout(t *testing.T) {
	st, eff := New().SelectMember("1")
	st, _ = st.Apply(Result{Effect: eff, Workouts: []gymapi.Workout{squat()}})
	st = st.BeginEdit(st.Workouts[0])

	st, eff = st.Delete("10")
	require.Equal(t, EffectDeleteWorkout, eff.Kind)
	assert.Len(t, st.Workouts, 1, "delete does not splice locally")

	st, reload := st.Apply(Result{Effect: eff})
	assert.Equal(t, MessageDeleted, st.Message)
	assert.False(t, st.Editing())
	require.Equal(t, EffectListWorkouts, reload.Kind)

	st, _ = st.Apply(Result{Effect: reload, Workouts: []gymapi.Workout{}})
	assert.Empty(t, st.Workouts)
}

func TestDelete_FailureLeavesList(t *testing.T) {
	st, eff := New().SelectMember("1")
	st, _ = st.Apply(Result{Effect: eff, Workouts: []gymapi.Workout{squat()}})

	st, eff = st.Delete("10")
	st, next := st.Apply(Result{Effect: eff, Err: errors.New("404")})

	assert.True(t, next.None())
	assert.Len(t, st.Workouts, 1)
	assert.Empty(t, st.Message)
	assert.ErrorContains(t, st.Err, "delete workout")
}

func TestCancelEdit_ReturnsToEmpty(t *testing.T) {
	st := New().BeginEdit(squat()).CancelEdit()
	assert.False(t, st.Editing())
	assert.True(t, st.Form.IsEmpty())
}

func TestSelectMember_DropsEditOfOtherMember(t *testing.T) {
	st, _ := New().SelectMember("1")
	st = st.BeginEdit(squat())

	st, _ = st.SelectMember("2")
	assert.False(t, st.Editing())

	// A create draft survives a switch.
	st = st.SetField(FieldExercise, "Row")
	st, _ = st.SelectMember("1")
	assert.Equal(t, "Row", st.Form.ExerciseName)
}

func TestSelectedMember(t *testing.T) {
	st := New()
	st.Members = []gymapi.Member{{ID: "1", Name: "Ann"}}

	_, ok := st.SelectedMember()
	assert.False(t, ok)

	st, _ = st.SelectMember("1")
	m, ok := st.SelectedMember()
	assert.True(t, ok)
	assert.Equal(t, "Ann", m.Name)
}

func TestLoadWorkouts_IgnoresUnselectedMember(t *testing.T) {
	st, _ := New().SelectMember("1")
	st, eff := st.LoadWorkouts("2")
	assert.True(t, eff.None())

	_, eff = New().LoadWorkouts("1")
	assert.True(t, eff.None(), "nothing selected")
}
