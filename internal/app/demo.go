package app

import (
	"github.com/five82/gymtrack/internal/gymapi"
	"github.com/five82/gymtrack/internal/gymapi/gymapitest"
)

// startDemo serves an in-memory backend seeded with a few members and
// workouts, for trying gymtrack without a real server.
func startDemo() *gymapitest.Server {
	srv := gymapitest.NewServer(
		gymapi.Member{ID: "1", Name: "Alex Rivera"},
		gymapi.Member{ID: "2", Name: "Sam Okafor"},
		gymapi.Member{ID: "3", Name: "Jordan Lee"},
	)

	squat, bench, row := 100.0, 72.5, 60.0
	note := "paused reps"
	srv.AddWorkout(gymapi.Workout{MemberID: "1", Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: &squat})
	srv.AddWorkout(gymapi.Workout{MemberID: "1", Date: "2024-01-03", Exercise: "Bench Press", Sets: 5, Reps: 5, Weight: &bench, Notes: &note})
	srv.AddWorkout(gymapi.Workout{MemberID: "2", Date: "2024-01-02", Exercise: "Barbell Row", Sets: 4, Reps: 8, Weight: &row})
	srv.AddWorkout(gymapi.Workout{MemberID: "2", Date: "2024-01-04", Exercise: "Pull-up", Sets: 3, Reps: 10})
	return srv
}
