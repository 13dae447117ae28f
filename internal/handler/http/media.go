package http

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/store"
	"github.com/MKhiriev/go-business-card/models"
	"github.com/go-chi/chi/v5"
)

// getMedia serves a stored photo. The content type is sniffed from the
// file itself.
func (h *Handler) getMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")
	if r.URL.RawPath != "" {
		// chi matched on the raw path, so the parameter is still escaped
		unescaped, err := url.PathUnescape(key)
		if err != nil {
			writeError(w, http.StatusNotFound, models.KindNotFound, "photo not found")
			return
		}
		key = unescaped
	}

	f, err := h.media.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) || errors.Is(err, store.ErrInvalidBlobKey) {
			writeError(w, http.StatusNotFound, models.KindNotFound, "photo not found")
			return
		}
		log.Err(err).Str("func", "*Handler.getMedia").Str("key", key).Msg("failed to open photo")
		writeError(w, http.StatusInternalServerError, models.KindInternal, "failed to read photo")
		return
	}
	defer f.Close()

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, key, time.Time{}, f)
}
