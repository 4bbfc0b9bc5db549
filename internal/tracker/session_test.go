package tracker

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/gymtrack/internal/gymapi"
	"github.com/five82/gymtrack/internal/gymapi/gymapitest"
)

func newSession(t *testing.T, members ...gymapi.Member) (*Session, *gymapitest.Server) {
	t.Helper()
	srv := gymapitest.NewServer(members...)
	t.Cleanup(srv.Close)

	client, err := gymapi.NewClient(srv.URL())
	require.NoError(t, err)
	return NewSession(client, WithCallTimeout(2*time.Second)), srv
}

func TestSession_LoadAndListWorkouts(t *testing.T) {
	sess, srv := newSession(t, gymapi.Member{ID: "1", Name: "Ann"})
	weight := 100.0
	srv.AddWorkout(gymapi.Workout{MemberID: "1", Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: &weight})

	ctx := context.Background()
	require.NoError(t, sess.LoadMembers(ctx))
	require.NoError(t, sess.SelectMember(ctx, "1"))

	snap := sess.Snapshot()
	require.Len(t, snap.Members, 1)
	require.Len(t, snap.Workouts, 1)
	w := snap.Workouts[0]
	assert.Equal(t, "2024-01-01 | Squat | 3 | 5 | 100 | -",
		w.Date+" | "+w.Exercise+" | 3 | 5 | "+w.WeightLabel()+" | "+w.NotesLabel())
	assert.False(t, snap.Loading)
}

func TestSession_AddWorkoutRefetches(t *testing.T) {
	sess, srv := newSession(t, gymapi.Member{ID: "1", Name: "Ann"})
	ctx := context.Background()
	require.NoError(t, sess.SelectMember(ctx, "1"))

	sess.SetField(FieldDate, "2024-01-02")
	sess.SetField(FieldExercise, "Bench")
	sess.SetField(FieldSets, "5")
	sess.SetField(FieldReps, "5")
	sess.SetField(FieldWeight, "60")
	require.NoError(t, sess.Submit(ctx))

	snap := sess.Snapshot()
	assert.Equal(t, MessageAdded, snap.Message)
	assert.True(t, snap.Form.IsEmpty())
	require.Len(t, snap.Workouts, 1)
	assert.Equal(t, "Bench", snap.Workouts[0].Exercise)

	var lists int
	for _, req := range srv.Requests() {
		if req.Method == http.MethodGet && req.Path == "/workout" {
			lists++
		}
	}
	assert.Equal(t, 2, lists, "selection and post-create reload")
}

func TestSession_EditAndDelete(t *testing.T) {
	sess, srv := newSession(t, gymapi.Member{ID: "1", Name: "Ann"})
	stored := srv.AddWorkout(gymapi.Workout{MemberID: "1", Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5})
	ctx := context.Background()
	require.NoError(t, sess.SelectMember(ctx, "1"))

	sess.BeginEdit(sess.Snapshot().Workouts[0])
	sess.SetField(FieldReps, "8")
	require.NoError(t, sess.Submit(ctx))

	snap := sess.Snapshot()
	assert.Equal(t, MessageUpdated, snap.Message)
	assert.False(t, snap.Editing())
	require.Len(t, snap.Workouts, 1)
	assert.Equal(t, 8, snap.Workouts[0].Reps)
	assert.Equal(t, stored.ID, snap.Workouts[0].ID)

	require.NoError(t, sess.Delete(ctx, stored.ID))
	snap = sess.Snapshot()
	assert.Equal(t, MessageDeleted, snap.Message)
	assert.Empty(t, snap.Workouts)
}

func TestSession_FailuresLeaveStateIntact(t *testing.T) {
	sess, srv := newSession(t, gymapi.Member{ID: "1", Name: "Ann"})
	stored := srv.AddWorkout(gymapi.Workout{MemberID: "1", Exercise: "Squat"})
	ctx := context.Background()
	require.NoError(t, sess.SelectMember(ctx, "1"))

	srv.FailNext(http.MethodDelete, "/workouts/"+stored.ID.String(), http.StatusInternalServerError)
	err := sess.Delete(ctx, stored.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete workout")

	snap := sess.Snapshot()
	assert.Len(t, snap.Workouts, 1)
	assert.Empty(t, snap.Message)
	assert.ErrorContains(t, snap.Err, "status 500")

	srv.FailNext(http.MethodPost, "/workouts", http.StatusBadGateway)
	sess.SetField(FieldExercise, "Row")
	require.Error(t, sess.Submit(ctx))
	assert.Equal(t, "Row", sess.Snapshot().Form.ExerciseName)
}

func TestSession_SubmitWithoutMember(t *testing.T) {
	sess, srv := newSession(t, gymapi.Member{ID: "1", Name: "Ann"})
	sess.SetField(FieldExercise, "Squat")

	err := sess.Submit(context.Background())
	require.ErrorIs(t, err, ErrNoMemberSelected)
	assert.Empty(t, srv.Requests())
}

func TestSession_SubmitInvalidForm(t *testing.T) {
	sess, srv := newSession(t, gymapi.Member{ID: "1", Name: "Ann"})
	ctx := context.Background()
	require.NoError(t, sess.SelectMember(ctx, "1"))
	before := len(srv.Requests())

	sess.SetField(FieldWeight, "heavy")
	require.ErrorIs(t, sess.Submit(ctx), ErrInvalidDraft)
	assert.Len(t, srv.Requests(), before)
}

func TestSession_LatestSelectionWins(t *testing.T) {
	sess, srv := newSession(t,
		gymapi.Member{ID: "1", Name: "Ann"},
		gymapi.Member{ID: "2", Name: "Bob"},
	)
	srv.AddWorkout(gymapi.Workout{MemberID: "1", Exercise: "Squat"})
	srv.AddWorkout(gymapi.Workout{MemberID: "2", Exercise: "Deadlift"})
	release := srv.Hold("1")
	defer release()

	ctx := context.Background()
	done := make(chan error, 1)
	go func() { done <- sess.SelectMember(ctx, "1") }()

	require.Eventually(t, func() bool {
		for _, req := range srv.Requests() {
			if req.Path == "/workout" && req.Query == "memberId=1" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, sess.SelectMember(ctx, "2"))
	release()
	require.NoError(t, <-done)

	snap := sess.Snapshot()
	assert.Equal(t, gymapi.ID("2"), snap.SelectedMemberID)
	require.Len(t, snap.Workouts, 1)
	assert.Equal(t, "Deadlift", snap.Workouts[0].Exercise)
	assert.False(t, snap.Loading)
}

func TestSession_LogsFailures(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	srv := gymapitest.NewServer()
	t.Cleanup(srv.Close)
	client, err := gymapi.NewClient(srv.URL())
	require.NoError(t, err)
	sess := NewSession(client, WithSessionLogger(zap.New(core).Sugar()))

	srv.FailNext(http.MethodGet, "/members", http.StatusServiceUnavailable)
	require.Error(t, sess.LoadMembers(context.Background()))

	entries := logs.FilterMessage("remote call failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "list members", entries[0].ContextMap()["op"])
}

func TestSession_LoadWorkoutsRefetches(t *testing.T) {
	sess, srv := newSession(t, gymapi.Member{ID: "1", Name: "Ann"}, gymapi.Member{ID: "2", Name: "Bob"})
	ctx := context.Background()
	require.NoError(t, sess.SelectMember(ctx, "1"))
	assert.Empty(t, sess.Snapshot().Workouts)

	srv.AddWorkout(gymapi.Workout{MemberID: "1", Date: "2024-01-03", Exercise: "Press", Sets: 5, Reps: 5})
	require.NoError(t, sess.LoadWorkouts(ctx, "1"))
	require.Len(t, sess.Snapshot().Workouts, 1)

	before := len(srv.Requests())
	require.NoError(t, sess.LoadWorkouts(ctx, "2"))
	snap := sess.Snapshot()
	assert.Len(t, srv.Requests(), before, "only the selected member is loaded")
	assert.Equal(t, gymapi.ID("1"), snap.SelectedMemberID)
	assert.False(t, snap.Loading)
}
