package tracker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/five82/gymtrack/internal/gymapi"
)

// Field identifies one editable form input.
type Field int

const (
	FieldDate Field = iota
	FieldExercise
	FieldSets
	FieldReps
	FieldWeight
	FieldNotes
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldDate, FieldExercise, FieldSets, FieldReps, FieldWeight, FieldNotes}

func (f Field) String() string {
	switch f {
	case FieldDate:
		return "Date"
	case FieldExercise:
		return "Exercise"
	case FieldSets:
		return "Sets"
	case FieldReps:
		return "Reps"
	case FieldWeight:
		return "Weight"
	case FieldNotes:
		return "Notes"
	default:
		return "Unknown"
	}
}

// Form is the unsaved draft of a workout, kept as the raw text the user typed.
type Form struct {
	Date         string
	ExerciseName string
	Sets         string
	Reps         string
	Weight       string
	Notes        string
}

// Get returns the value of field.
func (f Form) Get(field Field) string {
	switch field {
	case FieldDate:
		return f.Date
	case FieldExercise:
		return f.ExerciseName
	case FieldSets:
		return f.Sets
	case FieldReps:
		return f.Reps
	case FieldWeight:
		return f.Weight
	case FieldNotes:
		return f.Notes
	default:
		return ""
	}
}

// With returns a copy of f with field set to value.
func (f Form) With(field Field, value string) Form {
	switch field {
	case FieldDate:
		f.Date = value
	case FieldExercise:
		f.ExerciseName = value
	case FieldSets:
		f.Sets = value
	case FieldReps:
		f.Reps = value
	case FieldWeight:
		f.Weight = value
	case FieldNotes:
		f.Notes = value
	}
	return f
}

// IsEmpty reports whether every field is blank.
func (f Form) IsEmpty() bool {
	return f == Form{}
}

// FormFromWorkout copies a stored workout into an editable form. Missing or
// zero weight and missing notes become empty strings.
func FormFromWorkout(w gymapi.Workout) Form {
	form := Form{
		Date:         w.Date,
		ExerciseName: w.Exercise,
		Sets:         strconv.Itoa(w.Sets),
		Reps:         strconv.Itoa(w.Reps),
	}
	if w.HasWeight() {
		form.Weight = w.WeightLabel()
	}
	if w.Notes != nil {
		form.Notes = *w.Notes
	}
	return form
}

// ErrInvalidDraft is wrapped by every draft validation failure.
var ErrInvalidDraft = errors.New("invalid workout")

// formInput holds the typed inputs with the constraints a native date or
// number input enforces.
type formInput struct {
	Date   string `validate:"omitempty,datetime=2006-01-02"`
	Sets   string `validate:"omitempty,number"`
	Reps   string `validate:"omitempty,number"`
	Weight string `validate:"omitempty,numeric"`
}

var validate = validator.New()

// Draft converts the form into the request body for memberID.
func (f Form) Draft(memberID gymapi.ID) (gymapi.WorkoutDraft, error) {
	in := formInput{
		Date:   strings.TrimSpace(f.Date),
		Sets:   strings.TrimSpace(f.Sets),
		Reps:   strings.TrimSpace(f.Reps),
		Weight: strings.TrimSpace(f.Weight),
	}
	if err := validate.Struct(in); err != nil {
		return gymapi.WorkoutDraft{}, describeValidation(err)
	}

	draft := gymapi.WorkoutDraft{
		MemberID:     memberID,
		Date:         in.Date,
		ExerciseName: strings.TrimSpace(f.ExerciseName),
	}
	var err error
	if draft.Sets, err = atoiOrZero(in.Sets); err != nil {
		return gymapi.WorkoutDraft{}, fmt.Errorf("%w: sets: %v", ErrInvalidDraft, err)
	}
	if draft.Reps, err = atoiOrZero(in.Reps); err != nil {
		return gymapi.WorkoutDraft{}, fmt.Errorf("%w: reps: %v", ErrInvalidDraft, err)
	}
	if in.Weight != "" {
		weight, err := strconv.ParseFloat(in.Weight, 64)
		if err != nil {
			return gymapi.WorkoutDraft{}, fmt.Errorf("%w: weight: %v", ErrInvalidDraft, err)
		}
		draft.Weight = &weight
	}
	if notes := strings.TrimSpace(f.Notes); notes != "" {
		draft.Notes = &notes
	}
	return draft, nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "datetime":
			problems = append(problems, name+" must be YYYY-MM-DD")
		case "number":
			problems = append(problems, name+" must be a whole number")
		case "numeric":
			problems = append(problems, name+" must be a number")
		default:
			problems = append(problems, name+" is invalid")
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidDraft, strings.Join(problems, "; "))
}
