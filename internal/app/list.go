package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/five82/gymtrack/internal/config"
	"github.com/five82/gymtrack/internal/gymapi"
	"github.com/five82/gymtrack/internal/logging"
	"github.com/five82/gymtrack/internal/tracker"
)

// list prints the member list, or the workouts of memberID, one row per
// line in the same column order as the workouts pane.
func list(ctx context.Context, out io.Writer, backend gymapi.Backend, logger *logging.Logger, cfg config.Config, memberID gymapi.ID) error {
	sess := tracker.NewSession(backend,
		tracker.WithSessionLogger(logger.SugaredLogger),
		tracker.WithCallTimeout(cfg.RequestTimeout),
	)

	if err := sess.LoadMembers(ctx); err != nil {
		return err
	}
	if memberID.IsZero() {
		for _, m := range sess.Snapshot().Members {
			if _, err := fmt.Fprintf(out, "%s\t%s\n", m.ID, m.Name); err != nil {
				return err
			}
		}
		return nil
	}

	if err := sess.SelectMember(ctx, memberID); err != nil {
		return err
	}
	snap := sess.Snapshot()
	if _, ok := snap.SelectedMember(); !ok {
		logger.Warnw("member not in member list", "member_id", memberID)
	}
	for _, w := range snap.Workouts {
		if _, err := fmt.Fprintln(out, workoutLine(w)); err != nil {
			return err
		}
	}
	return nil
}

func workoutLine(w gymapi.Workout) string {
	return strings.Join([]string{
		w.Date,
		w.Exercise,
		strconv.Itoa(w.Sets),
		strconv.Itoa(w.Reps),
		w.WeightLabel(),
		w.NotesLabel(),
	}, " | ")
}
