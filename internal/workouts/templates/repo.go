package templates

import (
	"context"
	"errors"

	"github.com/fitstack/fitstack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTemplateNotFound = errors.New("workout template not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, difficulty, cycle_days, image_url
			FROM workout_template
			ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]Template, 0)
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Difficulty, &t.CycleDays, &t.ImageURL); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	var t Template
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, description, difficulty, cycle_days, image_url
			FROM workout_template
			WHERE id = $1;`,
		id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.Difficulty, &t.CycleDays, &t.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	return &t, nil
}

// Days returns the template's day assignments, ordered by day index.
// Day indexes absent from the result are rest days.
func (r *Repo) Days(ctx context.Context, templateID int) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.days")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))

	rows, err := r.db.Query(
		ctx,
		`SELECT template_id, day_index, muscle_groups
			FROM workout_template_day
			WHERE template_id = $1
			ORDER BY day_index;`,
		templateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]Day, 0)
	for rows.Next() {
		var d Day
		var muscleGroups string
		if err := rows.Scan(&d.TemplateID, &d.DayIndex, &muscleGroups); err != nil {
			return nil, err
		}
		d.MuscleGroups = splitMuscleGroups(muscleGroups)
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

// MuscleGroupsForDay returns the muscle groups assigned to the given day
// index. No row means a rest day: an empty slice, not an error.
func (r *Repo) MuscleGroupsForDay(ctx context.Context, templateID, dayIndex int) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.musclegroupsforday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))
	span.SetAttributes(attribute.Int("day.index", dayIndex))

	var muscleGroups string
	err = r.db.QueryRow(
		ctx,
		`SELECT muscle_groups
			FROM workout_template_day
			WHERE template_id = $1 AND day_index = $2;`,
		templateID, dayIndex,
	).Scan(&muscleGroups)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// rest day
			return []string{}, nil
		}
		return nil, err
	}

	return splitMuscleGroups(muscleGroups), nil
}

// Exercises returns the template's flat exercise list.
func (r *Repo) Exercises(ctx context.Context, templateID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, template_id, exercise_id, muscle_group, sets, reps, rest_time
			FROM workout_template_exercise
			WHERE template_id = $1
			ORDER BY id;`,
		templateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.TemplateID, &e.ExerciseID, &e.MuscleGroup, &e.Sets, &e.Reps, &e.RestTime); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
