// Package history serves the calendar view of past workout sessions.
package history

type MonthEntry struct {
	TemplateName  string `json:"templateName"`
	Completed     bool   `json:"completed"`
	ExerciseCount int    `json:"exerciseCount"`
}

type SetEntry struct {
	SetNumber int     `json:"setNumber"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Effort    string  `json:"effort"`
	Completed bool    `json:"completed"`
}

type ExerciseDetail struct {
	ExerciseID  string     `json:"exerciseId"`
	MuscleGroup string     `json:"muscleGroup"`
	Name        string     `json:"name"`
	Image       string     `json:"image"`
	Sets        []SetEntry `json:"sets"`
}

type DayDetail struct {
	Date            string           `json:"date"`
	TemplateName    string           `json:"templateName"`
	Completed       bool             `json:"completed"`
	DurationSeconds int              `json:"durationSeconds"`
	Notes           string           `json:"notes"`
	Exercises       []ExerciseDetail `json:"exercises"`
}

// logRow is a single set log joined with its plan exercise muscle group.
type logRow struct {
	ExerciseID  string
	MuscleGroup string
	SetNumber   int
	Weight      float64
	Reps        int
	Effort      string
	Completed   bool
}

// sessionRow is the session header for a day detail lookup.
type sessionRow struct {
	SessionID       int
	PlanID          int
	TemplateName    string
	Completed       bool
	DurationSeconds int
	Notes           string
}
