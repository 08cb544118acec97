package playbook

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/txsn/navigator/internal/platform/request"
	"github.com/txsn/navigator/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the playbook endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listPlaybooks)
	router.Get("/{id}/steps", handler.listSteps)
	return router
}

/*
GET /api/v1/playbooks.

Request:
  - category: string (bills_coverage | meds | transport)

Response:
  - 200: []Playbook ordered by urgency_level
*/
func (handler *Handler) listPlaybooks(writer http.ResponseWriter, request *http.Request) {
	category := requestutil.Query(request, "category")

	playbooks, err := handler.service.ListPlaybooks(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, playbooks)
}

/*
GET /api/v1/playbooks/{id}/steps.

Response:
  - 200: []Step ordered by step_order
  - 404: Playbook not found
*/
func (handler *Handler) listSteps(writer http.ResponseWriter, request *http.Request) {
	playbookID := requestutil.Param(request, "id")

	steps, err := handler.service.ListSteps(request.Context(), playbookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, steps)
}
