package handler

import (
	"github.com/MKhiriev/go-business-card/internal/config"
	"github.com/MKhiriev/go-business-card/internal/handler/http"
	"github.com/MKhiriev/go-business-card/internal/handler/lambda"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/service"
	"github.com/MKhiriev/go-business-card/internal/store"
)

type Handlers struct {
	HTTP   *http.Handler
	Lambda *lambda.Handler
}

// NewHandlers creates the HTTP handler when an HTTP address is configured.
// The Lambda handler is always created so that a misnamed APP_FUNCTION fails
// at startup.
func NewHandlers(services *service.Services, media store.BlobReader, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, media, logger)
	}

	lambdaHandler, err := lambda.NewHandler(services, cfg.App.Function, logger)
	if err != nil {
		return nil, err
	}
	handlers.Lambda = lambdaHandler

	return handlers, nil
}
