package sessions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fitstack/fitstack/internal/catalog"
	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/internal/workouts/cycle"
	"github.com/fitstack/fitstack/internal/workouts/plans"
	"github.com/fitstack/fitstack/internal/workouts/templates"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	dateLayout    = "2006-01-02"
	defaultEffort = "normal"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions

type plansStore interface {
	GetActive(ctx context.Context, userID int) (*plans.Plan, error)
	ListPrescriptions(ctx context.Context, planID int) ([]plans.Prescription, error)
}

type templatesStore interface {
	Get(ctx context.Context, id int) (*templates.Template, error)
	MuscleGroupsForDay(ctx context.Context, templateID, dayIndex int) ([]string, error)
}

type sessionsRepo interface {
	GetSession(ctx context.Context, planID int, date time.Time) (*Session, error)
	Logs(ctx context.Context, sessionID int) ([]SetLog, error)
	SaveSession(ctx context.Context, planID int, date time.Time, dayIndex int, notes string, durationSeconds int, entries []SetLog) (*Session, error)
}

type exerciseCatalog interface {
	GetExercise(ctx context.Context, exerciseID string) (*catalog.Exercise, error)
}

type Service struct {
	plans     plansStore
	templates templatesStore
	repo      sessionsRepo
	catalog   exerciseCatalog
	now       func() time.Time
}

func NewService(plansStore plansStore, templatesStore templatesStore, repo sessionsRepo, exerciseCatalog exerciseCatalog) *Service {
	return &Service{
		plans:     plansStore,
		templates: templatesStore,
		repo:      repo,
		catalog:   exerciseCatalog,
		now:       time.Now,
	}
}

// DayView builds the full workout picture for one date. The day index
// is computed directly from the plan start date every time, never cached.
func (s *Service) DayView(ctx context.Context, userID int, date time.Time) (_ *DayView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.dayview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	plan, err := s.plans.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	template, err := s.templates.Get(ctx, plan.TemplateID)
	if err != nil {
		return nil, err
	}

	date = cycle.Date(date)
	dayIndex, err := cycle.ResolveDay(plan.StartDate, template.CycleDays, date)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("day.index", dayIndex))

	muscleGroups, err := s.templates.MuscleGroupsForDay(ctx, template.ID, dayIndex)
	if err != nil {
		return nil, err
	}

	view := &DayView{
		Date:         date.Format(dateLayout),
		DayIndex:     dayIndex,
		MuscleGroups: muscleGroups,
		Exercises:    []ExerciseView{},
	}
	if len(muscleGroups) == 0 {
		view.Rest = true
		return view, nil
	}

	prescriptions, err := s.plans.ListPrescriptions(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	groupSet := make(map[string]struct{}, len(muscleGroups))
	for _, g := range muscleGroups {
		groupSet[strings.ToLower(g)] = struct{}{}
	}

	logsByExercise, err := s.sessionLogs(ctx, plan.ID, date)
	if err != nil {
		return nil, err
	}

	for _, p := range prescriptions {
		if _, ok := groupSet[strings.ToLower(p.MuscleGroup)]; !ok {
			continue
		}
		view.Exercises = append(view.Exercises, ExerciseView{
			PrescriptionID: p.ID,
			ExerciseID:     p.ExerciseID,
			MuscleGroup:    p.MuscleGroup,
			RestTime:       p.RestTime,
			Sets:           buildSets(p, logsByExercise[p.ExerciseID]),
		})
	}

	s.enrichFromCatalog(ctx, view.Exercises)

	return view, nil
}

// sessionLogs loads saved set logs for the date, grouped by exercise.
// A missing session is not an error, it just means nothing was logged.
func (s *Service) sessionLogs(ctx context.Context, planID int, date time.Time) (map[string][]SetLog, error) {
	session, err := s.repo.GetSession(ctx, planID, date)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return map[string][]SetLog{}, nil
		}
		return nil, err
	}

	logs, err := s.repo.Logs(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	byExercise := make(map[string][]SetLog)
	for _, l := range logs {
		byExercise[l.ExerciseID] = append(byExercise[l.ExerciseID], l)
	}
	return byExercise, nil
}

// buildSets returns the saved logs for the exercise, or synthesizes the
// prescribed number of default sets when nothing was logged.
func buildSets(p plans.Prescription, logged []SetLog) []SetView {
	if len(logged) > 0 {
		sort.Slice(logged, func(i, j int) bool {
			return logged[i].SetNumber < logged[j].SetNumber
		})
		sets := make([]SetView, 0, len(logged))
		for _, l := range logged {
			sets = append(sets, SetView{
				SetNumber: l.SetNumber,
				Weight:    l.Weight,
				Reps:      l.Reps,
				Effort:    l.Effort,
				Completed: l.Completed,
			})
		}
		return sets
	}

	sets := make([]SetView, 0, p.Sets)
	for i := 1; i <= p.Sets; i++ {
		sets = append(sets, SetView{
			SetNumber: i,
			Weight:    p.Weight,
			Reps:      p.Reps,
			Effort:    defaultEffort,
			Completed: false,
		})
	}
	return sets
}

// enrichFromCatalog fills in exercise names and images concurrently. A
// catalog failure leaves the affected exercise's fields empty.
func (s *Service) enrichFromCatalog(ctx context.Context, exercises []ExerciseView) {
	var wg sync.WaitGroup
	for i := range exercises {
		wg.Add(1)
		go func(ev *ExerciseView) {
			defer wg.Done()
			details, err := s.catalog.GetExercise(ctx, ev.ExerciseID)
			if err != nil {
				log.Warnf("catalog lookup for exercise [%s]: %s", ev.ExerciseID, err)
				return
			}
			ev.Name = details.Name
			ev.Image = details.GifURL
		}(&exercises[i])
	}
	wg.Wait()
}

// Today returns summaries for today and tomorrow.
func (s *Service) Today(ctx context.Context, userID int) (_ *TodayView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.today")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan, template, err := s.activePlanAndTemplate(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := cycle.Date(s.now())
	todaySummary, err := s.daySummary(ctx, plan, template, today)
	if err != nil {
		return nil, err
	}
	tomorrowSummary, err := s.daySummary(ctx, plan, template, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &TodayView{
		Today:    *todaySummary,
		Tomorrow: *tomorrowSummary,
	}, nil
}

// WeekSchedule returns seven day summaries starting from today, each
// computed independently from the plan start date.
func (s *Service) WeekSchedule(ctx context.Context, userID int) (_ []DaySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.weekschedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan, template, err := s.activePlanAndTemplate(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := cycle.Date(s.now())
	schedule := make([]DaySummary, 0, 7)
	for offset := 0; offset < 7; offset++ {
		summary, err := s.daySummary(ctx, plan, template, today.AddDate(0, 0, offset))
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, *summary)
	}

	return schedule, nil
}

func (s *Service) activePlanAndTemplate(ctx context.Context, userID int) (*plans.Plan, *templates.Template, error) {
	plan, err := s.plans.GetActive(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	template, err := s.templates.Get(ctx, plan.TemplateID)
	if err != nil {
		return nil, nil, err
	}
	return plan, template, nil
}

// daySummary resolves one date to its place in the cycle. Dates before
// the plan start are presented as rest days.
func (s *Service) daySummary(ctx context.Context, plan *plans.Plan, template *templates.Template, date time.Time) (*DaySummary, error) {
	summary := &DaySummary{
		Date:         date.Format(dateLayout),
		MuscleGroups: []string{},
	}

	dayIndex, err := cycle.ResolveDay(plan.StartDate, template.CycleDays, date)
	if err != nil {
		if errors.Is(err, cycle.ErrDateBeforeStart) {
			summary.Rest = true
			summary.DayName = "Rest"
			return summary, nil
		}
		return nil, err
	}

	summary.DayIndex = dayIndex

	muscleGroups, err := s.templates.MuscleGroupsForDay(ctx, template.ID, dayIndex)
	if err != nil {
		return nil, err
	}
	if len(muscleGroups) == 0 {
		summary.Rest = true
		summary.DayName = "Rest"
		return summary, nil
	}

	summary.DayName = fmt.Sprintf("Day %d", dayIndex)
	summary.MuscleGroups = muscleGroups
	return summary, nil
}

type SaveParams struct {
	UserID          int
	Date            time.Time
	Notes           string
	DurationSeconds int
	Entries         []SetLog
}

// SaveSession stores the submitted entries verbatim as the new truth for
// the date. It never recomputes or fills in anything on the user's behalf.
// The cycle day index is snapshotted onto the session row at save time.
func (s *Service) SaveSession(ctx context.Context, params SaveParams) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.savesession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))

	plan, template, err := s.activePlanAndTemplate(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	date := cycle.Date(params.Date)
	dayIndex, err := cycle.ResolveDay(plan.StartDate, template.CycleDays, date)
	if err != nil {
		return nil, err
	}

	return s.repo.SaveSession(ctx, plan.ID, date, dayIndex, params.Notes, params.DurationSeconds, params.Entries)
}
