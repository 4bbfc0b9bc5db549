package tracker

import (
	"context"

	"go.uber.org/zap"

	"github.com/five82/gymtrack/internal/gymapi"
)

// EffectKind names the remote call a transition asks for.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectListMembers
	EffectListWorkouts
	EffectCreateWorkout
	EffectUpdateWorkout
	EffectDeleteWorkout
)

func (k EffectKind) String() string {
	switch k {
	case EffectListMembers:
		return "list members"
	case EffectListWorkouts:
		return "list workouts"
	case EffectCreateWorkout:
		return "create workout"
	case EffectUpdateWorkout:
		return "update workout"
	case EffectDeleteWorkout:
		return "delete workout"
	default:
		return "none"
	}
}

// Effect is remote work produced by a reducer. The caller performs it (see
// Perform) and feeds the Result back through State.Apply.
type Effect struct {
	Kind EffectKind

	// Seq tags list requests so late responses can be recognised.
	Seq       uint64
	MemberID  gymapi.ID
	WorkoutID gymapi.ID
	Draft     gymapi.WorkoutDraft
}

// None reports whether the effect asks for nothing.
func (e Effect) None() bool {
	return e.Kind == EffectNone
}

// Result carries the outcome of a performed Effect.
type Result struct {
	Effect   Effect
	Members  []gymapi.Member
	Workouts []gymapi.Workout
	Workout  gymapi.Workout
	Err      error
}

// Perform executes eff against backend. It never panics on EffectNone; the
// returned Result simply echoes the effect.
func Perform(ctx context.Context, backend gymapi.Backend, eff Effect) Result {
	res := Result{Effect: eff}
	switch eff.Kind {
	case EffectListMembers:
		res.Members, res.Err = backend.ListMembers(ctx)
	case EffectListWorkouts:
		res.Workouts, res.Err = backend.ListWorkouts(ctx, eff.MemberID)
	case EffectCreateWorkout:
		res.Workout, res.Err = backend.CreateWorkout(ctx, eff.Draft)
	case EffectUpdateWorkout:
		res.Workout, res.Err = backend.UpdateWorkout(ctx, eff.WorkoutID, eff.Draft)
	case EffectDeleteWorkout:
		res.Err = backend.DeleteWorkout(ctx, eff.WorkoutID)
	}
	return res
}

// LogResult writes a failed result to the diagnostic log. Successful
// results are logged at debug level.
func LogResult(log *zap.SugaredLogger, res Result) {
	if log == nil || res.Effect.None() {
		return
	}
	fields := []any{"op", res.Effect.Kind.String()}
	if !res.Effect.MemberID.IsZero() {
		fields = append(fields, "member_id", res.Effect.MemberID.String())
	}
	if !res.Effect.WorkoutID.IsZero() {
		fields = append(fields, "workout_id", res.Effect.WorkoutID.String())
	}
	if res.Err != nil {
		log.Errorw("remote call failed", append(fields, "error", res.Err)...)
		return
	}
	log.Debugw("remote call succeeded", fields...)
}
