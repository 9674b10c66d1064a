package history

import (
	"context"
	"errors"
	"time"

	"github.com/fitstack/fitstack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNoSession = errors.New("no session for that date")

const dateLayout = "2006-01-02"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListMonth returns, per date with a session, the template name, the
// completed flag and how many distinct exercises got at least one log.
// Sessions from cancelled plans are included, history survives a cancel.
func (r *Repo) ListMonth(ctx context.Context, userID, year int, month time.Month) (_ map[string]MonthEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.listmonth")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("year", year))
	span.SetAttributes(attribute.Int("month", int(month)))

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	rows, err := r.db.Query(
		ctx,
		`SELECT ws.session_date, wt.name, ws.completed, COUNT(DISTINCT sl.exercise_id)
			FROM workout_session ws
			JOIN user_plan up ON up.id = ws.plan_id
			JOIN workout_template wt ON wt.id = up.template_id
			LEFT JOIN set_log sl ON sl.session_id = ws.id
			WHERE up.user_id = $1 AND ws.session_date >= $2 AND ws.session_date < $3
			GROUP BY ws.session_date, wt.name, ws.completed;`,
		userID, monthStart, nextMonth,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make(map[string]MonthEntry)
	for rows.Next() {
		var sessionDate time.Time
		var entry MonthEntry
		if err := rows.Scan(&sessionDate, &entry.TemplateName, &entry.Completed, &entry.ExerciseCount); err != nil {
			return nil, err
		}
		entries[sessionDate.Format(dateLayout)] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repo) daySession(ctx context.Context, userID int, date time.Time) (*sessionRow, error) {
	var s sessionRow
	err := r.db.QueryRow(
		ctx,
		`SELECT ws.id, ws.plan_id, wt.name, ws.completed, ws.duration_seconds, ws.notes
			FROM workout_session ws
			JOIN user_plan up ON up.id = ws.plan_id
			JOIN workout_template wt ON wt.id = up.template_id
			WHERE up.user_id = $1 AND ws.session_date = $2;`,
		userID, date,
	).Scan(&s.SessionID, &s.PlanID, &s.TemplateName, &s.Completed, &s.DurationSeconds, &s.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) dayLogs(ctx context.Context, sessionID, planID int) ([]logRow, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT sl.exercise_id, COALESCE(pe.muscle_group, ''), sl.set_number, sl.weight, sl.reps, sl.effort, sl.completed
			FROM set_log sl
			LEFT JOIN plan_exercise pe ON pe.plan_id = $2 AND pe.exercise_id = sl.exercise_id
			WHERE sl.session_id = $1
			ORDER BY sl.exercise_id, sl.set_number;`,
		sessionID, planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]logRow, 0)
	for rows.Next() {
		var l logRow
		if err := rows.Scan(&l.ExerciseID, &l.MuscleGroup, &l.SetNumber, &l.Weight, &l.Reps, &l.Effort, &l.Completed); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// Day returns everything logged on a date: session header plus set logs
// with muscle groups resolved through the plan exercises.
func (r *Repo) Day(ctx context.Context, userID int, date time.Time) (_ *sessionRow, _ []logRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	session, err := r.daySession(ctx, userID, date)
	if err != nil {
		return nil, nil, err
	}

	logs, err := r.dayLogs(ctx, session.SessionID, session.PlanID)
	if err != nil {
		return nil, nil, err
	}

	return session, logs, nil
}
