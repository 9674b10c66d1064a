package plans

import (
	"context"
	"errors"
	"time"

	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/internal/workouts/cycle"
	"github.com/fitstack/fitstack/internal/workouts/templates"

	"go.opentelemetry.io/otel/attribute"
)

// CancelConfirmationPhrase must be sent verbatim to cancel a plan.
const CancelConfirmationPhrase = "I want to cancel"

var ErrBadConfirmation = errors.New("cancellation not confirmed")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plans

type plansRepo interface {
	Create(ctx context.Context, plan Plan, prescriptions []Prescription) (*Plan, error)
	GetActive(ctx context.Context, userID int) (*Plan, error)
	Deactivate(ctx context.Context, userID int) error
}

type templatesStore interface {
	Get(ctx context.Context, id int) (*templates.Template, error)
	Exercises(ctx context.Context, templateID int) ([]templates.Exercise, error)
}

type Service struct {
	repo      plansRepo
	templates templatesStore
}

func NewService(repo plansRepo, templatesStore templatesStore) *Service {
	return &Service{
		repo:      repo,
		templates: templatesStore,
	}
}

type ActivateParams struct {
	UserID      int
	TemplateID  int
	StartDate   time.Time
	SquatMax    float64
	BenchMax    float64
	DeadliftMax float64
}

// Activate creates a plan from a template: every template exercise
// becomes a prescription, with the starting weight derived from the
// lifter's maxes per muscle group.
func (s *Service) Activate(ctx context.Context, params ActivateParams) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.activate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.user.id", params.UserID))
	span.SetAttributes(attribute.Int("plan.template.id", params.TemplateID))

	template, err := s.templates.Get(ctx, params.TemplateID)
	if err != nil {
		return nil, err
	}

	templateExercises, err := s.templates.Exercises(ctx, template.ID)
	if err != nil {
		return nil, err
	}

	prescriptions := make([]Prescription, 0, len(templateExercises))
	for _, te := range templateExercises {
		prescriptions = append(prescriptions, Prescription{
			ExerciseID:  te.ExerciseID,
			MuscleGroup: te.MuscleGroup,
			Sets:        te.Sets,
			Reps:        te.Reps,
			Weight:      InitialLoad(te.MuscleGroup, params.SquatMax, params.BenchMax, params.DeadliftMax),
			RestTime:    te.RestTime,
		})
	}

	return s.repo.Create(ctx, Plan{
		UserID:      params.UserID,
		TemplateID:  template.ID,
		StartDate:   cycle.Date(params.StartDate),
		SquatMax:    params.SquatMax,
		BenchMax:    params.BenchMax,
		DeadliftMax: params.DeadliftMax,
	}, prescriptions)
}

// Cancel deactivates the user's plan, but only when the confirmation
// phrase matches exactly.
func (s *Service) Cancel(ctx context.Context, userID int, confirmation string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.cancel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.user.id", userID))

	if confirmation != CancelConfirmationPhrase {
		return ErrBadConfirmation
	}

	return s.repo.Deactivate(ctx, userID)
}
