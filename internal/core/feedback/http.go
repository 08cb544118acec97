package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/txsn/navigator/internal/platform/i18n"
	requestutil "github.com/txsn/navigator/internal/platform/request"
	"github.com/txsn/navigator/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the feedback endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.submit)
	return router
}

// submitResponse pairs the stored report with a localized acknowledgement
// the client shows verbatim.
type submitResponse struct {
	Report  *Report `json:"report"`
	Message string  `json:"message"`
}

/*
POST /api/v1/feedback.

Request:
  - body: SubmitRequest (resource_id, issue_type, optional message/location)

Response:
  - 201: stored report plus a localized thank-you message
  - 400: validation failure
  - 422: unknown resource_id
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var payload SubmitRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.Submit(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lang := i18n.Parse(report.Language)
	respond.Created(writer, submitResponse{
		Report:  report,
		Message: i18n.T(lang, i18n.KeyFeedbackThanks),
	})
}
