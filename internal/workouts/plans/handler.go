package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fitstack/fitstack/internal/auth"
	"github.com/fitstack/fitstack/internal/telemetry/metrics"
	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/internal/workouts/templates"
	"github.com/fitstack/fitstack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type plansService interface {
	Activate(ctx context.Context, params ActivateParams) (*Plan, error)
	Cancel(ctx context.Context, userID int, confirmation string) error
}

type prescriptionsRepo interface {
	GetActive(ctx context.Context, userID int) (*Plan, error)
	ListPrescriptions(ctx context.Context, planID int) ([]Prescription, error)
	AddPrescription(ctx context.Context, p Prescription) (*Prescription, error)
	UpdatePrescription(ctx context.Context, userID int, p Prescription) error
	DeletePrescription(ctx context.Context, userID, prescriptionID int) error
}

type ActivateRequest struct {
	TemplateID  int     `json:"templateId"`
	StartDate   string  `json:"startDate"`
	SquatMax    float64 `json:"squatMax"`
	BenchMax    float64 `json:"benchMax"`
	DeadliftMax float64 `json:"deadliftMax"`
}

type CancelRequest struct {
	Confirmation string `json:"confirmation"`
}

type AddExerciseRequest struct {
	ExerciseID  string `json:"exerciseId"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
}

// UpdateExerciseRequest replaces what a prescription asks for going
// forward. The stored weight is left alone, progression owns it.
type UpdateExerciseRequest struct {
	ExerciseID  string `json:"exerciseId"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestTime    int    `json:"restTime"`
}

type ActivePlanResponse struct {
	Plan      *Plan          `json:"plan"`
	Exercises []Prescription `json:"exercises"`
}

type Handler struct {
	service        plansService
	repo           prescriptionsRepo
	metricsManager *metrics.Manager
}

func NewHandler(service plansService, repo prescriptionsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.activate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var activateReq ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&activateReq); err != nil {
		log.Warnf("activate plan, decode request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if activateReq.TemplateID <= 0 {
		http.Error(w, "template id missing", http.StatusBadRequest)
		return
	}
	startDate, err := time.Parse(dateLayout, activateReq.StartDate)
	if err != nil {
		http.Error(w, "invalid start date", http.StatusBadRequest)
		return
	}
	if activateReq.SquatMax <= 0 || activateReq.BenchMax <= 0 || activateReq.DeadliftMax <= 0 {
		http.Error(w, "one rep maxes must be positive", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.Activate(ctx, ActivateParams{
		UserID:      userID,
		TemplateID:  activateReq.TemplateID,
		StartDate:   startDate,
		SquatMax:    activateReq.SquatMax,
		BenchMax:    activateReq.BenchMax,
		DeadliftMax: activateReq.DeadliftMax,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanExists):
			http.Error(w, "active plan already exists", http.StatusConflict)
		case errors.Is(err, templates.ErrTemplateNotFound):
			http.Error(w, "workout template not found", http.StatusNotFound)
		default:
			log.Errorf("activate plan for user %d: %s", userID, err)
			http.Error(w, "failed to activate plan", http.StatusInternalServerError)
		}
		return
	}

	handler.metricsManager.CounterPlansActivated.Inc()
	log.Debugf("user %d activated plan %d from template %d", userID, plan.ID, plan.TemplateID)

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal activated plan: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.getactive")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	plan, err := handler.repo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoActivePlan) {
			http.Error(w, "no active workout plan", http.StatusNotFound)
			return
		}
		log.Errorf("get active plan for user %d: %s", userID, err)
		http.Error(w, "failed to get active plan", http.StatusInternalServerError)
		return
	}

	prescriptions, err := handler.repo.ListPrescriptions(ctx, plan.ID)
	if err != nil {
		log.Errorf("list plan exercises for plan %d: %s", plan.ID, err)
		http.Error(w, "failed to get plan exercises", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ActivePlanResponse{
		Plan:      plan,
		Exercises: prescriptions,
	})
	if err != nil {
		log.Errorf("marshal active plan: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.cancel")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var cancelReq CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&cancelReq); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := handler.service.Cancel(ctx, userID, cancelReq.Confirmation); err != nil {
		switch {
		case errors.Is(err, ErrBadConfirmation):
			http.Error(w, "cancellation not confirmed", http.StatusBadRequest)
		case errors.Is(err, ErrNoActivePlan):
			http.Error(w, "no active workout plan", http.StatusNotFound)
		default:
			log.Errorf("cancel plan for user %d: %s", userID, err)
			http.Error(w, "failed to cancel plan", http.StatusInternalServerError)
		}
		return
	}

	handler.metricsManager.CounterPlansCancelled.Inc()
	log.Debugf("user %d cancelled active plan", userID)

	pkg.WriteJSONResponseOK(w, `{"cancelled":true}`)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.addexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var addReq AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if addReq.ExerciseID == "" || addReq.MuscleGroup == "" {
		http.Error(w, "exercise id and muscle group required", http.StatusBadRequest)
		return
	}
	if addReq.Sets <= 0 || addReq.Reps <= 0 {
		http.Error(w, "sets and reps must be positive", http.StatusBadRequest)
		return
	}

	plan, err := handler.repo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoActivePlan) {
			http.Error(w, "no active workout plan", http.StatusNotFound)
			return
		}
		log.Errorf("add plan exercise, get active plan for user %d: %s", userID, err)
		http.Error(w, "failed to get active plan", http.StatusInternalServerError)
		return
	}

	added, err := handler.repo.AddPrescription(ctx, Prescription{
		PlanID:      plan.ID,
		ExerciseID:  addReq.ExerciseID,
		MuscleGroup: addReq.MuscleGroup,
		Sets:        addReq.Sets,
		Reps:        addReq.Reps,
		Weight:      0,
		RestTime:    60,
	})
	if err != nil {
		log.Errorf("add plan exercise for user %d: %s", userID, err)
		http.Error(w, "failed to add exercise", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added plan exercise: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.updateexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	prescriptionID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	var updateReq UpdateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if updateReq.ExerciseID == "" || updateReq.MuscleGroup == "" {
		http.Error(w, "exerciseId and muscleGroup are required", http.StatusBadRequest)
		return
	}

	err = handler.repo.UpdatePrescription(ctx, userID, Prescription{
		ID:          prescriptionID,
		ExerciseID:  updateReq.ExerciseID,
		MuscleGroup: updateReq.MuscleGroup,
		Sets:        updateReq.Sets,
		Reps:        updateReq.Reps,
		RestTime:    updateReq.RestTime,
	})
	if err != nil {
		handler.writeExerciseError(w, userID, prescriptionID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.deleteexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	prescriptionID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeletePrescription(ctx, userID, prescriptionID); err != nil {
		handler.writeExerciseError(w, userID, prescriptionID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deleted":true}`)
}

func (handler *Handler) writeExerciseError(w http.ResponseWriter, userID, prescriptionID int, err error) {
	switch {
	case errors.Is(err, ErrPrescriptionNotFound):
		http.Error(w, "plan exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		http.Error(w, "not your plan exercise", http.StatusForbidden)
	default:
		log.Errorf("plan exercise %d for user %d: %s", prescriptionID, userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
