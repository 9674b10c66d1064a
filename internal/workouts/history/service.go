package history

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fitstack/fitstack/internal/catalog"
	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/internal/workouts/cycle"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const unknownExerciseName = "Unknown Exercise"

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=history

type historyRepo interface {
	ListMonth(ctx context.Context, userID, year int, month time.Month) (map[string]MonthEntry, error)
	Day(ctx context.Context, userID int, date time.Time) (*sessionRow, []logRow, error)
}

type exerciseCatalog interface {
	GetExercise(ctx context.Context, exerciseID string) (*catalog.Exercise, error)
}

type Service struct {
	repo    historyRepo
	catalog exerciseCatalog
}

func NewService(repo historyRepo, exerciseCatalog exerciseCatalog) *Service {
	return &Service{
		repo:    repo,
		catalog: exerciseCatalog,
	}
}

func (s *Service) Month(ctx context.Context, userID, year int, month time.Month) (_ map[string]MonthEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.month")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.ListMonth(ctx, userID, year, month)
}

// DayDetail returns the logged session for a date, enriched with catalog
// names and images. No session for the date yields nil, not an error.
func (s *Service) DayDetail(ctx context.Context, userID int, date time.Time) (_ *DayDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.daydetail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	date = cycle.Date(date)
	session, logs, err := s.repo.Day(ctx, userID, date)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil, nil
		}
		return nil, err
	}

	detail := &DayDetail{
		Date:            date.Format(dateLayout),
		TemplateName:    session.TemplateName,
		Completed:       session.Completed,
		DurationSeconds: session.DurationSeconds,
		Notes:           session.Notes,
		Exercises:       groupLogs(logs),
	}

	s.enrichFromCatalog(ctx, detail.Exercises)

	return detail, nil
}

// groupLogs folds ordered log rows into per-exercise details, keeping
// the first-seen exercise order and the set order within each.
func groupLogs(logs []logRow) []ExerciseDetail {
	exercises := make([]ExerciseDetail, 0)
	indexByExercise := make(map[string]int)

	for _, l := range logs {
		idx, seen := indexByExercise[l.ExerciseID]
		if !seen {
			exercises = append(exercises, ExerciseDetail{
				ExerciseID:  l.ExerciseID,
				MuscleGroup: l.MuscleGroup,
				Sets:        []SetEntry{},
			})
			idx = len(exercises) - 1
			indexByExercise[l.ExerciseID] = idx
		}
		exercises[idx].Sets = append(exercises[idx].Sets, SetEntry{
			SetNumber: l.SetNumber,
			Weight:    l.Weight,
			Reps:      l.Reps,
			Effort:    l.Effort,
			Completed: l.Completed,
		})
	}

	return exercises
}

func (s *Service) enrichFromCatalog(ctx context.Context, exercises []ExerciseDetail) {
	var wg sync.WaitGroup
	for i := range exercises {
		wg.Add(1)
		go func(ed *ExerciseDetail) {
			defer wg.Done()
			details, err := s.catalog.GetExercise(ctx, ed.ExerciseID)
			if err != nil {
				log.Warnf("catalog lookup for exercise [%s]: %s", ed.ExerciseID, err)
				ed.Name = unknownExerciseName
				return
			}
			ed.Name = details.Name
			ed.Image = details.GifURL
		}(&exercises[i])
	}
	wg.Wait()
}
