package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/txsn/navigator/internal/platform/i18n"
	requestutil "github.com/txsn/navigator/internal/platform/request"
	"github.com/txsn/navigator/internal/platform/respond"
	"github.com/txsn/navigator/pkg/convert"
	"github.com/txsn/navigator/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the resource endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listResources)
	router.Get("/match", handler.match)
	return router
}

/*
GET /api/v1/resources.

Request:
  - category: string, optional (bills_coverage | meds | transport)
  - page, limit: pagination

Response:
  - 200: []Resource ordered by title, with pagination metadata
*/
func (handler *Handler) listResources(writer http.ResponseWriter, request *http.Request) {
	category := requestutil.Query(request, "category")
	params := pagination.FromRequest(request)

	resources, total, err := handler.service.ListResources(
		request.Context(), category, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, resources, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/resources/match.

Request:
  - category: string (bills_coverage | meds | transport)
  - county, region: strings (at least one required)
  - mode: pick | other (default pick)
  - playbook_id: UUID, optional — prefer the curated list for this playbook
  - rank: 0..3, optional client-side tier filter (0 = all)
  - q: optional free-text filter (accent-insensitive)
  - zip: optional 5-digit ZIP, unlocks ZIP-gated locators
  - lang: en | es (also negotiated from Accept-Language)

Response:
  - 200: MatchResult (location, source, annotated matches, optional notice)
  - 400: validation failure
*/
func (handler *Handler) match(writer http.ResponseWriter, request *http.Request) {
	matchRequest := MatchRequest{
		Category:   requestutil.Query(request, "category"),
		County:     requestutil.Query(request, "county"),
		Region:     requestutil.Query(request, "region"),
		Mode:       requestutil.Query(request, "mode"),
		PlaybookID: requestutil.Query(request, "playbook_id"),
		Rank:       convert.ToIntD(requestutil.Query(request, "rank"), 0),
		Query:      requestutil.Query(request, "q"),
		Zip:        requestutil.Query(request, "zip"),
		Lang:       i18n.FromRequest(request),
	}

	result, err := handler.service.Match(request.Context(), matchRequest)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
