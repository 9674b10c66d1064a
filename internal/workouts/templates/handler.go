package templates

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fitstack/fitstack/internal/telemetry/tracing"
	"github.com/fitstack/fitstack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=templates_mocks_test.go -package=templates_test

type templatesRepo interface {
	List(ctx context.Context) ([]Template, error)
}

type ListResponse struct {
	Templates []Template `json:"templates"`
}

type Handler struct {
	repo templatesRepo
}

func NewHandler(repo templatesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	templatesList, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list workout templates: %s", err)
		http.Error(w, "failed to get workout templates", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Templates: templatesList,
	})
	if err != nil {
		log.Errorf("marshal workout templates: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}
