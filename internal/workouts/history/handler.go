package history

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fitstack/fitstack/internal/auth"
	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=history_test

type historyService interface {
	Month(ctx context.Context, userID, year int, month time.Month) (map[string]MonthEntry, error)
	DayDetail(ctx context.Context, userID int, date time.Time) (*DayDetail, error)
}

type Handler struct {
	service historyService
}

func NewHandler(service historyService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.month")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	entries, err := handler.service.Month(ctx, userID, year, time.Month(monthNum))
	if err != nil {
		log.Errorf("history month %d-%d for user %d: %s", year, monthNum, userID, err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal history month: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

func (handler *Handler) HandleDayDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.daydetail")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	date, err := time.Parse(dateLayout, mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	detail, err := handler.service.DayDetail(ctx, userID, date)
	if err != nil {
		log.Errorf("history day detail for user %d: %s", userID, err)
		http.Error(w, "failed to get day detail", http.StatusInternalServerError)
		return
	}

	// nil detail means no session that day, serialized as JSON null
	detailJson, err := json.Marshal(detail)
	if err != nil {
		log.Errorf("marshal history day detail: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, detailJson, http.StatusOK)
}
