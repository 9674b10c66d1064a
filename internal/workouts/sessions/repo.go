package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
	ErrInvalidSetLog   = errors.New("invalid set log entry")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetSession(ctx context.Context, planID int, date time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.getsession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	var s Session
	err = r.db.QueryRow(
		ctx,
		`SELECT id, plan_id, session_date, day_index, completed, notes, duration_seconds, created_at
			FROM workout_session
			WHERE plan_id = $1 AND session_date = $2;`,
		planID, date,
	).Scan(&s.ID, &s.PlanID, &s.SessionDate, &s.DayIndex, &s.Completed, &s.Notes, &s.DurationSeconds, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &s, nil
}

// Logs returns the session's set logs ordered by exercise and set number.
func (r *Repo) Logs(ctx context.Context, sessionID int) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, exercise_id, set_number, weight, reps, effort, completed
			FROM set_log
			WHERE session_id = $1
			ORDER BY exercise_id, set_number;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]SetLog, 0)
	for rows.Next() {
		var l SetLog
		if err := rows.Scan(&l.ID, &l.SessionID, &l.ExerciseID, &l.SetNumber, &l.Weight, &l.Reps, &l.Effort, &l.Completed); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// SaveSession replaces the session's logs in one transaction: upsert the
// session row, delete every existing set log, insert the given entries
// verbatim. An empty entries slice clears the logs but keeps the session.
func (r *Repo) SaveSession(
	ctx context.Context,
	planID int,
	date time.Time,
	dayIndex int,
	notes string,
	durationSeconds int,
	entries []SetLog,
) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.savesession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))
	span.SetAttributes(attribute.Int("entries.count", len(entries)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("save session, rollback tx: %s", rollbackErr)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			log.Errorf("save session, commit tx: %s", commitErr)
			err = commitErr
		}
	}()

	var session Session
	err = tx.QueryRow(
		ctx,
		`INSERT INTO workout_session (plan_id, session_date, day_index, completed, notes, duration_seconds)
			VALUES ($1, $2, $3, TRUE, $4, $5)
			ON CONFLICT (plan_id, session_date)
			DO UPDATE SET day_index = EXCLUDED.day_index, completed = TRUE, notes = EXCLUDED.notes, duration_seconds = EXCLUDED.duration_seconds
			RETURNING id, plan_id, session_date, day_index, completed, notes, duration_seconds, created_at;`,
		planID, date, dayIndex, notes, durationSeconds,
	).Scan(
		&session.ID, &session.PlanID, &session.SessionDate, &session.DayIndex, &session.Completed,
		&session.Notes, &session.DurationSeconds, &session.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert session: %w", err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM set_log WHERE session_id = $1;`, session.ID); err != nil {
		return nil, fmt.Errorf("delete set logs: %w", err)
	}

	for _, entry := range entries {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO set_log (session_id, exercise_id, set_number, weight, reps, effort, completed)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			session.ID, entry.ExerciseID, entry.SetNumber, entry.Weight, entry.Reps, entry.Effort, entry.Completed,
		)
		if err != nil {
			if pkg.IsCheckViolationError(err) {
				return nil, fmt.Errorf("%w: [%s #%d]", ErrInvalidSetLog, entry.ExerciseID, entry.SetNumber)
			}
			return nil, fmt.Errorf("insert set log [%s #%d]: %w", entry.ExerciseID, entry.SetNumber, err)
		}
	}

	return &session, nil
}
