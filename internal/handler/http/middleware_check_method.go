package http

import (
	"net/http"

	"github.com/MKhiriev/go-business-card/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod answers requests with a wrong method. A path that exists
// for no method at all is reported as 404 instead of chi's 405.
func CheckHTTPMethod(router chi.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		for _, method := range []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
			http.MethodPatch, http.MethodHead, http.MethodOptions,
		} {
			rctx.Reset()
			if router.Match(rctx, method, r.URL.Path) {
				writeError(w, http.StatusMethodNotAllowed, models.KindInvalidRequest, "method not allowed")
				return
			}
		}

		notFound(w, r)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, models.KindNotFound, "route not found")
}
