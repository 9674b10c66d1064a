package plans

import (
	"math"
	"strings"
	"time"
)

// Plan is a user's activation of a workout template. At most one plan
// per user is active at a time, enforced by a partial unique index.
type Plan struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	TemplateID  int       `json:"templateId"`
	StartDate   time.Time `json:"startDate"`
	IsActive    bool      `json:"isActive"`
	SquatMax    float64   `json:"squatMax"`
	BenchMax    float64   `json:"benchMax"`
	DeadliftMax float64   `json:"deadliftMax"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Prescription is a per-plan exercise entry: the template defaults are
// copied at activation time, then the user tweaks them freely.
type Prescription struct {
	ID          int     `json:"id"`
	PlanID      int     `json:"planId"`
	ExerciseID  string  `json:"exerciseId"`
	MuscleGroup string  `json:"muscleGroup"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	RestTime    int     `json:"restTime"`
}

// InitialLoad derives the starting working weight for a muscle group
// from the lifter's one-rep maxes, rounded to two decimals.
func InitialLoad(muscleGroup string, squatMax, benchMax, deadliftMax float64) float64 {
	var load float64
	switch strings.ToLower(muscleGroup) {
	case "legs":
		load = squatMax * 0.70
	case "chest", "back", "shoulders":
		load = benchMax * 0.60
	case "arms", "biceps", "triceps":
		load = benchMax * 0.50
	default:
		load = deadliftMax * 0.60
	}
	return math.Round(load*100) / 100
}
