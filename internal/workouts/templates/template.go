package templates

import "strings"

// Template is a fixed-length workout cycle definition. Templates are
// read-only: users activate a plan from one, they never edit one.
type Template struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	CycleDays   int    `json:"cycleDays"`
	ImageURL    string `json:"imageUrl"`
}

// Day assigns muscle groups to a 1-based day index within the cycle.
// A day index with no Day row is a rest day.
type Day struct {
	TemplateID   int      `json:"templateId"`
	DayIndex     int      `json:"dayIndex"`
	MuscleGroups []string `json:"muscleGroups"`
}

// Exercise is a template's default exercise entry. The list is flat,
// per-template: an entry applies on every day that includes its muscle group.
type Exercise struct {
	ID          int    `json:"id"`
	TemplateID  int    `json:"templateId"`
	ExerciseID  string `json:"exerciseId"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestTime    int    `json:"restTime"`
}

// muscle groups are stored as a comma-joined string in a single column
func splitMuscleGroups(joined string) []string {
	if joined == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	groups := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			groups = append(groups, trimmed)
		}
	}
	return groups
}
