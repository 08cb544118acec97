package county

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/txsn/navigator/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the county endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listCounties)
	router.Get("/regions", handler.listRegions)
	return router
}

// listCounties handles GET /api/v1/counties.
func (handler *Handler) listCounties(writer http.ResponseWriter, request *http.Request) {
	counties, err := handler.service.ListCounties(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, counties)
}

// listRegions handles GET /api/v1/counties/regions.
func (handler *Handler) listRegions(writer http.ResponseWriter, request *http.Request) {
	regions, err := handler.service.ListRegions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, regions)
}
