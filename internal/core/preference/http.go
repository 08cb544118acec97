package preference

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

// Routes returns a [chi.Router] with the preference endpoints. All of them
// require the X-Client-ID header.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/zip", handler.getZip)
	router.Put("/zip", handler.setZip)
	return router
}

/*
GET /api/v1/preferences/zip.

Response:
  - 200: ZipPreference
  - 404: no ZIP remembered for this client
*/
func (handler *Handler) getZip(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.ClientID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pref, err := handler.service.GetZip(request.Context(), clientID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pref)
}

/*
PUT /api/v1/preferences/zip.

Request:
  - body: ZipPreference; an empty zip clears the stored value

Response:
  - 200: the stored (or cleared) ZipPreference
  - 400: malformed ZIP
*/
func (handler *Handler) setZip(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.ClientID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload ZipPreference
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pref, err := handler.service.SetZip(request.Context(), clientID, payload.Zip)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pref)
}
