package http

import (
	"github.com/MKhiriev/go-business-card/internal/handler/gateway"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/service"
	"github.com/MKhiriev/go-business-card/internal/store"
)

// maxBodyBytes bounds request bodies. Photos arrive base64 encoded inside
// the JSON body.
const maxBodyBytes = 10 << 20

type Handler struct {
	gateway  *gateway.Handler
	services *service.Services

	// media is nil when photos are not served by this process.
	media store.BlobReader

	metrics *metrics
	logger  *logger.Logger
}

func NewHandler(services *service.Services, media store.BlobReader, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		gateway:  gateway.NewHandler(services, logger),
		services: services,
		media:    media,
		metrics:  newMetrics(),
		logger:   logger,
	}
}
