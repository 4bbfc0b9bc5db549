// Package tracker holds the workout tracker's state and the transitions
// between states.
//
// # Overview
//
// State is a plain value: the member list, the selected member, that
// member's workouts, a loading flag, the form draft, the id of the workout
// being edited, and the latest success message or failure. Every user
// operation is a method on State that returns the next State plus an Effect
// describing the remote call it needs, if any:
//
//	st := tracker.New()
//	st, eff := st.Start()              // EffectListMembers
//	res := tracker.Perform(ctx, client, eff)
//	st, eff = st.Apply(res)            // members stored, no follow-up
//
//	st, eff = st.SelectMember("1")     // EffectListWorkouts tagged with seq
//	st = st.SetField(tracker.FieldExercise, "Squat")
//	st, eff = st.Submit()              // EffectCreateWorkout
//	// Apply(success) resets the form and returns EffectListWorkouts again
//
// Reducers never touch the network, which keeps every flow testable without
// a terminal or a server. The ui package turns effects into tea.Cmds;
// Session runs them inline for headless callers.
//
// # Flows
//
//   - Members are fetched once, at start, and never invalidated.
//   - Workouts are fetched on every selection change and after every
//     successful create, update or delete. The list is replaced, never
//     patched.
//   - The form is cleared by cancel and by a successful save.
//
// # Stale Responses
//
// Each list request carries a sequence number and the member it was issued
// for. Apply drops a list result whose sequence is not the newest or whose
// member is no longer selected, so rapid switching always ends on the list
// of the member the user picked last. Loading is cleared only by the
// newest list result.
//
// # Failures
//
// A failed call leaves data untouched and sets State.Err with the
// operation name wrapped around the cause. Session additionally returns the
// error to its caller and LogResult writes it to the diagnostic log.
package tracker
