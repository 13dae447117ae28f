package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-business-card/internal/adapter"
	"github.com/MKhiriev/go-business-card/internal/client"
	"github.com/MKhiriev/go-business-card/internal/config"
	"github.com/MKhiriev/go-business-card/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: card-client <command> [flags]

commands:
  card-create -f card.json [-photo me.png]
  card-update -id <card_id> [-f fields.json] [-photo me.png]
  card-get    -id <card_id>
  card-delete -id <card_id>
  register    -name <name> -email <email> -password <password> -card-id <card_id> [-phone <phone>]
  login       -email <email> -password <password>
  version

The API address is read from ADAPTER_ADDRESS.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if os.Args[1] == "version" {
		printBuildInfo()
		return
	}

	log := logger.NewCLILogger("card-client")
	cfg, err := config.GetEnvConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	api, err := adapter.NewHTTPCardAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = client.NewApp(api, os.Stdout, log).Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n%s", err, usage)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
