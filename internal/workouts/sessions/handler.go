package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fitstack/fitstack/internal/auth"
	"github.com/fitstack/fitstack/internal/telemetry/metrics"
	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/internal/workouts/cycle"
	"github.com/fitstack/fitstack/internal/workouts/plans"
	"github.com/fitstack/fitstack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	DayView(ctx context.Context, userID int, date time.Time) (*DayView, error)
	Today(ctx context.Context, userID int) (*TodayView, error)
	WeekSchedule(ctx context.Context, userID int) ([]DaySummary, error)
	SaveSession(ctx context.Context, params SaveParams) (*Session, error)
}

type SaveLogEntry struct {
	ExerciseID string  `json:"exerciseId"`
	SetNumber  int     `json:"setNumber"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Effort     string  `json:"effort"`
	Completed  bool    `json:"completed"`
}

type SaveLogRequest struct {
	Date            string         `json:"date"`
	Notes           string         `json:"notes"`
	DurationSeconds int            `json:"durationSeconds"`
	Entries         []SaveLogEntry `json:"entries"`
}

type Handler struct {
	service        sessionsService
	metricsManager *metrics.Manager
}

func NewHandler(service sessionsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.today")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	todayView, err := handler.service.Today(ctx, userID)
	if err != nil {
		handler.writeServiceError(w, userID, "today view", err)
		return
	}

	handler.writeJSON(w, todayView, http.StatusOK)
}

func (handler *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.schedule")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	schedule, err := handler.service.WeekSchedule(ctx, userID)
	if err != nil {
		handler.writeServiceError(w, userID, "week schedule", err)
		return
	}

	handler.writeJSON(w, schedule, http.StatusOK)
}

func (handler *Handler) HandleDayDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.daydetail")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	dayView, err := handler.service.DayView(ctx, userID, date)
	if err != nil {
		handler.writeServiceError(w, userID, "day view", err)
		return
	}

	handler.writeJSON(w, dayView, http.StatusOK)
}

func (handler *Handler) HandleSaveLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.savelog")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var saveReq SaveLogRequest
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	date, err := time.Parse(dateLayout, saveReq.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	for _, entry := range saveReq.Entries {
		if entry.ExerciseID == "" || entry.SetNumber <= 0 {
			http.Error(w, "invalid log entry", http.StatusBadRequest)
			return
		}
	}

	entries := make([]SetLog, 0, len(saveReq.Entries))
	for _, e := range saveReq.Entries {
		effort := e.Effort
		if effort == "" {
			effort = defaultEffort
		}
		entries = append(entries, SetLog{
			ExerciseID: e.ExerciseID,
			SetNumber:  e.SetNumber,
			Weight:     e.Weight,
			Reps:       e.Reps,
			Effort:     effort,
			Completed:  e.Completed,
		})
	}

	session, err := handler.service.SaveSession(ctx, SaveParams{
		UserID:          userID,
		Date:            date,
		Notes:           saveReq.Notes,
		DurationSeconds: saveReq.DurationSeconds,
		Entries:         entries,
	})
	if err != nil {
		handler.writeServiceError(w, userID, "save log", err)
		return
	}

	handler.metricsManager.CounterSessionsSaved.Inc()
	log.Debugf("user %d saved session %d with %d entries", userID, session.ID, len(entries))

	handler.writeJSON(w, session, http.StatusOK)
}

func (handler *Handler) writeServiceError(w http.ResponseWriter, userID int, op string, err error) {
	switch {
	case errors.Is(err, plans.ErrNoActivePlan):
		http.Error(w, "no active workout plan", http.StatusNotFound)
	case errors.Is(err, cycle.ErrDateBeforeStart):
		http.Error(w, "date is before the plan start", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidSetLog):
		http.Error(w, "invalid set log entry", http.StatusBadRequest)
	default:
		log.Errorf("%s for user %d: %s", op, userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (handler *Handler) writeJSON(w http.ResponseWriter, payload interface{}, statusCode int) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, statusCode)
}
