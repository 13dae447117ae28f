package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	t.Run("generates an id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		traceID := w.Header().Get(traceIDHeader)
		assert.Len(t, traceID, 36)
		assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
	})

	t.Run("keeps the incoming id", func(t *testing.T) {
		buf.Reset()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(traceIDHeader, "trace-1")
		w := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(w, r)

		assert.Equal(t, "trace-1", w.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"trace-1"`)
	})
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short"))
	})

	w := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cards?card_id=1", nil))

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":5`)
	assert.Contains(t, out, `"uri":"/cards?card_id=1"`)
	assert.Contains(t, out, `"trace_id"`)
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.status)
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Length", "999")
		w.Write(b)
	})

	t.Run("compresses when accepted", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello"))
		r.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(w, r)

		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		assert.Empty(t, w.Header().Get("Content-Length"))

		zr, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		b, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(b))
	})

	t.Run("decompresses request bodies", func(t *testing.T) {
		var body bytes.Buffer
		zw := gzip.NewWriter(&body)
		zw.Write([]byte("packed"))
		zw.Close()

		r := httptest.NewRequest(http.MethodPost, "/", &body)
		r.Header.Set("Content-Encoding", "gzip")
		w := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(w, r)

		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, "packed", w.Body.String())
	})

	t.Run("rejects broken gzip", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
		r.Header.Set("Content-Encoding", "gzip")
		w := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"kind":"invalid_request","message":"invalid gzip body"}`, w.Body.String())
	})
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/cards", func(w http.ResponseWriter, r *http.Request) {})
	check := CheckHTTPMethod(router)

	w := httptest.NewRecorder()
	check(w, httptest.NewRequest(http.MethodPatch, "/cards", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"kind":"invalid_request","message":"method not allowed"}`, w.Body.String())

	w = httptest.NewRecorder()
	check(w, httptest.NewRequest(http.MethodPatch, "/nothing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"kind":"not_found","message":"route not found"}`, w.Body.String())
}
