package gymapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a server-assigned identifier. The backend may send numbers or
// strings; both decode to the same textual form. The zero value means unset.
type ID string

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

func (id ID) String() string {
	return string(id)
}

// MarshalJSON encodes IDs in canonical integer form ("42", "-3") as JSON
// numbers so a numeric backend receives the type it handed out. Anything
// else, including "007" and "+5", stays a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts a JSON number, string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Member is a gym client whose workouts are tracked.
type Member struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Workout is one exercise record belonging to a member.
type Workout struct {
	ID       ID       `json:"id"`
	MemberID ID       `json:"memberId"`
	Date     string   `json:"date"`
	Exercise string   `json:"exercise"`
	Sets     int      `json:"sets"`
	Reps     int      `json:"reps"`
	Weight   *float64 `json:"weight,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// UnmarshalJSON decodes a workout, accepting sets and reps sent as numeric
// strings as well as numbers.
func (w *Workout) UnmarshalJSON(data []byte) error {
	type plain Workout
	aux := struct {
		*plain
		Sets count `json:"sets"`
		Reps count `json:"reps"`
	}{
		plain: (*plain)(w),
		Sets:  count(w.Sets),
		Reps:  count(w.Reps),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	w.Sets = int(aux.Sets)
	w.Reps = int(aux.Reps)
	return nil
}

// count is an integer that may arrive as a JSON number, a numeric string or
// null. Empty strings and null decode to zero.
type count int

func (c *count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode count: %w", err)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*c = 0
			return nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*c = count(n)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return fmt.Errorf("decode count: %q is not a whole number", raw)
	}
	*c = count(int(f))
	return nil
}

// HasWeight reports whether the workout carries a displayable weight.
// Zero counts as absent, matching how the list renders it.
func (w Workout) HasWeight() bool {
	return w.Weight != nil && *w.Weight != 0
}

// HasNotes reports whether the workout carries non-empty notes.
func (w Workout) HasNotes() bool {
	return w.Notes != nil && strings.TrimSpace(*w.Notes) != ""
}

// WeightLabel formats the weight without trailing zeros, or "-" when absent.
func (w Workout) WeightLabel() string {
	if !w.HasWeight() {
		return "-"
	}
	return strconv.FormatFloat(*w.Weight, 'f', -1, 64)
}

// NotesLabel returns the notes or "-" when absent.
func (w Workout) NotesLabel() string {
	if !w.HasNotes() {
		return "-"
	}
	return *w.Notes
}

// WorkoutDraft is the body sent on create and update. The exercise travels
// as exerciseName on writes; list responses carry it as exercise.
type WorkoutDraft struct {
	MemberID     ID       `json:"memberId"`
	Date         string   `json:"date"`
	ExerciseName string   `json:"exerciseName"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps"`
	Weight       *float64 `json:"weight,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}
