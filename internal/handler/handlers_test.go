package handler

import (
	"testing"

	"github.com/MKhiriev/go-business-card/internal/config"
	"github.com/MKhiriev/go-business-card/internal/handler/lambda"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns empty services. The handlers only keep the
// service references, so nothing is called during construction.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Server.HTTPAddress = ":8080"

	h, err := NewHandlers(newTestServices(), nil, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.Lambda)
}

func TestNewHandlers_Lambda(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.App.Function = "get-card"

	h, err := NewHandlers(newTestServices(), nil, cfg, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, h.HTTP)
	assert.NotNil(t, h.Lambda)
}

func TestNewHandlers_UnknownFunction(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.App.Function = "list-cards"

	_, err := NewHandlers(newTestServices(), nil, cfg, logger.Nop())

	assert.ErrorIs(t, err, lambda.ErrUnknownFunction)
}

func TestNewHandlers_NoServices(t *testing.T) {
	_, err := NewHandlers(nil, nil, &config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServices)
}
