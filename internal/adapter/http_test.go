package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-business-card/internal/config"
	myHTTP "github.com/MKhiriev/go-business-card/internal/handler/http"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/service"
	"github.com/MKhiriev/go-business-card/internal/store"
	"github.com/MKhiriev/go-business-card/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI runs the real HTTP stack over in-memory storages.
func newTestAPI(t *testing.T) CardAPI {
	t.Helper()

	cfg := &config.StructuredConfig{}
	cfg.Storage.Driver = config.DriverMemory
	cfg.Storage.BlobDriver = config.BlobDriverFile
	cfg.Storage.Files.BlobDir = t.TempDir()

	storages, err := store.NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(myHTTP.NewHandler(services, storages.BlobReader, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	api, err := NewHTTPCardAPI(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return api
}

func TestHTTPCardAPI_Cards(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	card := models.Card{CardID: "ana", Name: "Ana", Email: "ana@example.com", WhatsApp: "+5511999999999", Bio: "hi"}
	require.NoError(t, api.CreateCard(ctx, card))
	assert.ErrorIs(t, api.CreateCard(ctx, card), ErrConflict)

	bio := "updated"
	require.NoError(t, api.UpdateCard(ctx, models.CardUpdate{CardID: "ana", Bio: &bio}))

	got, err := api.GetCard(ctx, "ana")
	require.NoError(t, err)
	card.Bio = bio
	assert.Equal(t, card, got)

	require.NoError(t, api.DeleteCard(ctx, "ana"))
	_, err = api.GetCard(ctx, "ana")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPCardAPI_InvalidCard(t *testing.T) {
	api := newTestAPI(t)

	err := api.CreateCard(context.Background(), models.Card{CardID: "ana", Name: "Ana", Email: "nope", WhatsApp: "1"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestHTTPCardAPI_Accounts(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	user := models.User{Name: "Ana", Email: "ana@example.com", Password: "secret", CardID: "ana"}
	require.NoError(t, api.Register(ctx, user))
	assert.ErrorIs(t, api.Register(ctx, user), ErrConflict)

	cardID, err := api.Login(ctx, models.LoginRequest{Email: user.Email, Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "ana", cardID)

	_, err = api.Login(ctx, models.LoginRequest{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMapHTTPError_PlainBodies(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, body: "404 page not found", want: ErrNotFound},
		{name: "method not allowed", status: http.StatusMethodNotAllowed, want: ErrInvalidRequest},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, body: "upstream", want: ErrServer},
		{name: "envelope wins", status: http.StatusBadRequest, body: `{"kind":"delete_failed","message":"Error deleting card"}`, want: ErrDeleteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			api, err := NewHTTPCardAPI(config.Adapter{HTTPAddress: srv.URL}, logger.Nop())
			require.NoError(t, err)

			assert.ErrorIs(t, api.DeleteCard(context.Background(), "ana"), tt.want)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" localhost:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)

	_, err = NewHTTPCardAPI(config.Adapter{}, logger.Nop())
	assert.Error(t, err)
}
