package main

import (
	"context"

	"github.com/MKhiriev/go-business-card/internal/config"
	"github.com/MKhiriev/go-business-card/internal/handler"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/service"
	"github.com/MKhiriev/go-business-card/internal/store"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var buildVersion string

// Connections are built once per execution environment and reused by every
// invocation.
func main() {
	log := logger.NewLogger("card-lambda")
	cfg, err := config.GetEnvConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages.BlobReader, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	awslambda.Start(handlers.Lambda.Handle)
}
