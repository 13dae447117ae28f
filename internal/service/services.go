package service

import (
	"fmt"

	"github.com/MKhiriev/go-business-card/internal/config"
	"github.com/MKhiriev/go-business-card/internal/crypto"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/media"
	"github.com/MKhiriev/go-business-card/internal/store"
	"github.com/MKhiriev/go-business-card/internal/validators"
)

type Services struct {
	CardService    CardService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. Every service that accepts
// client input is wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	validator := validators.NewRequestValidator()
	uploader := media.NewUploader(storages.BlobStorage, logger)

	return &Services{
		CardService: NewCardValidationService(validator).
			Wrap(NewCardService(storages.CardRepository, uploader, cfg.App, logger)),
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, hasher, logger)),
		AppInfoService: NewAppInfoService(cfg.App, logger),
	}, nil
}
