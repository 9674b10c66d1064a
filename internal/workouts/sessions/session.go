// Package sessions reconciles what a plan prescribes for a date with
// what the user actually logged.
package sessions

import "time"

// Session is one logged visit. DayIndex is a snapshot taken at save
// time, so the row keeps its place in the cycle even if the plan is
// later cancelled and a new one activated.
type Session struct {
	ID              int       `json:"id"`
	PlanID          int       `json:"planId"`
	SessionDate     time.Time `json:"sessionDate"`
	DayIndex        int       `json:"dayIndex"`
	Completed       bool      `json:"completed"`
	Notes           string    `json:"notes"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
}

type SetLog struct {
	ID         int     `json:"id"`
	SessionID  int     `json:"sessionId"`
	ExerciseID string  `json:"exerciseId"`
	SetNumber  int     `json:"setNumber"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Effort     string  `json:"effort"`
	Completed  bool    `json:"completed"`
}

type SetView struct {
	SetNumber int     `json:"setNumber"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Effort    string  `json:"effort"`
	Completed bool    `json:"completed"`
}

type ExerciseView struct {
	PrescriptionID int       `json:"prescriptionId"`
	ExerciseID     string    `json:"exerciseId"`
	MuscleGroup    string    `json:"muscleGroup"`
	Name           string    `json:"name"`
	Image          string    `json:"image"`
	RestTime       int       `json:"restTime"`
	Sets           []SetView `json:"sets"`
}

// DayView is the full picture for one date: either a rest day with no
// exercises, or the prescribed exercises merged with any saved logs.
type DayView struct {
	Date         string         `json:"date"`
	DayIndex     int            `json:"dayIndex"`
	Rest         bool           `json:"rest"`
	MuscleGroups []string       `json:"muscleGroups"`
	Exercises    []ExerciseView `json:"exercises"`
}

// DaySummary is the schedule entry for one date. DayIndex is 0 for
// dates before the plan starts.
type DaySummary struct {
	Date         string   `json:"date"`
	DayIndex     int      `json:"dayIndex"`
	DayName      string   `json:"dayName"`
	Rest         bool     `json:"rest"`
	MuscleGroups []string `json:"muscleGroups"`
}

type TodayView struct {
	Today    DaySummary `json:"today"`
	Tomorrow DaySummary `json:"tomorrow"`
}
