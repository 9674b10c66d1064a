package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNoActivePlan         = errors.New("no active workout plan")
	ErrPlanExists           = errors.New("user already has an active workout plan")
	ErrPrescriptionNotFound = errors.New("plan exercise not found")
	ErrNotOwner             = errors.New("plan exercise belongs to another user")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create inserts the plan and its prescriptions in a single transaction.
// The partial unique index on user_plan rejects a second active plan,
// surfaced as ErrPlanExists.
func (r *Repo) Create(ctx context.Context, plan Plan, prescriptions []Prescription) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.user.id", plan.UserID))
	span.SetAttributes(attribute.Int("plan.template.id", plan.TemplateID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("create plan, rollback tx: %s", rollbackErr)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			log.Errorf("create plan, commit tx: %s", commitErr)
			err = commitErr
		}
	}()

	err = tx.QueryRow(
		ctx,
		`INSERT INTO user_plan (user_id, template_id, start_date, is_active, squat_max, bench_max, deadlift_max)
			VALUES ($1, $2, $3, TRUE, $4, $5, $6)
			RETURNING id, created_at;`,
		plan.UserID, plan.TemplateID, plan.StartDate, plan.SquatMax, plan.BenchMax, plan.DeadliftMax,
	).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrPlanExists
		}
		return nil, fmt.Errorf("insert plan: %w", err)
	}
	plan.IsActive = true

	for i := range prescriptions {
		p := &prescriptions[i]
		p.PlanID = plan.ID
		err = tx.QueryRow(
			ctx,
			`INSERT INTO plan_exercise (plan_id, exercise_id, muscle_group, sets, reps, weight, rest_time)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id;`,
			p.PlanID, p.ExerciseID, p.MuscleGroup, p.Sets, p.Reps, p.Weight, p.RestTime,
		).Scan(&p.ID)
		if err != nil {
			return nil, fmt.Errorf("insert plan exercise [%s]: %w", p.ExerciseID, err)
		}
	}

	return &plan, nil
}

func (r *Repo) GetActive(ctx context.Context, userID int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.getactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.user.id", userID))

	var plan Plan
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, template_id, start_date, is_active, squat_max, bench_max, deadlift_max, created_at
			FROM user_plan
			WHERE user_id = $1 AND is_active;`,
		userID,
	).Scan(
		&plan.ID, &plan.UserID, &plan.TemplateID, &plan.StartDate, &plan.IsActive,
		&plan.SquatMax, &plan.BenchMax, &plan.DeadliftMax, &plan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActivePlan
		}
		return nil, err
	}

	return &plan, nil
}

// Deactivate clears the active flag on the user's current plan. The plan
// row and its session history are kept.
func (r *Repo) Deactivate(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.deactivate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_plan SET is_active = FALSE WHERE user_id = $1 AND is_active;`,
		userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoActivePlan
	}

	return nil
}

func (r *Repo) ListPrescriptions(ctx context.Context, planID int) (_ []Prescription, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listprescriptions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, plan_id, exercise_id, muscle_group, sets, reps, weight, rest_time
			FROM plan_exercise
			WHERE plan_id = $1
			ORDER BY id;`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prescriptions := make([]Prescription, 0)
	for rows.Next() {
		var p Prescription
		if err := rows.Scan(&p.ID, &p.PlanID, &p.ExerciseID, &p.MuscleGroup, &p.Sets, &p.Reps, &p.Weight, &p.RestTime); err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prescriptions, nil
}

func (r *Repo) AddPrescription(ctx context.Context, p Prescription) (_ *Prescription, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.addprescription")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", p.PlanID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO plan_exercise (plan_id, exercise_id, muscle_group, sets, reps, weight, rest_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		p.PlanID, p.ExerciseID, p.MuscleGroup, p.Sets, p.Reps, p.Weight, p.RestTime,
	).Scan(&p.ID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// prescriptionOwner resolves the owning user of a plan exercise row.
func (r *Repo) prescriptionOwner(ctx context.Context, prescriptionID int) (int, error) {
	var ownerID int
	err := r.db.QueryRow(
		ctx,
		`SELECT up.user_id
			FROM plan_exercise pe
			JOIN user_plan up ON up.id = pe.plan_id
			WHERE pe.id = $1;`,
		prescriptionID,
	).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrPrescriptionNotFound
		}
		return 0, err
	}
	return ownerID, nil
}

func (r *Repo) UpdatePrescription(ctx context.Context, userID int, p Prescription) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.updateprescription")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("prescription.id", p.ID))

	ownerID, err := r.prescriptionOwner(ctx, p.ID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return ErrNotOwner
	}

	// weight is deliberately not part of the update, the stored load
	// survives exercise swaps
	_, err = r.db.Exec(
		ctx,
		`UPDATE plan_exercise
			SET exercise_id = $1, muscle_group = $2, sets = $3, reps = $4, rest_time = $5
			WHERE id = $6;`,
		p.ExerciseID, p.MuscleGroup, p.Sets, p.Reps, p.RestTime, p.ID,
	)
	return err
}

func (r *Repo) DeletePrescription(ctx context.Context, userID, prescriptionID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.deleteprescription")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("prescription.id", prescriptionID))

	ownerID, err := r.prescriptionOwner(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return ErrNotOwner
	}

	_, err = r.db.Exec(ctx, `DELETE FROM plan_exercise WHERE id = $1;`, prescriptionID)
	return err
}
