package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/author-haven/internal/adapter"
	"github.com/MKhiriev/author-haven/internal/config"
	"github.com/MKhiriev/author-haven/internal/handler"
	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/server"
	"github.com/MKhiriev/author-haven/internal/service"
	"github.com/MKhiriev/author-haven/internal/store"
	"github.com/MKhiriev/author-haven/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine, real environments set variables directly
	_ = godotenv.Load()

	log := logger.NewLogger("author-haven-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	mailSender, err := newMailSender(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail client")
	}

	services := service.NewServices(storages, cfg, mailSender, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(ctx, storages, cfg.Workers, log).Run()

	srv.RunServer()
}

// newMailSender builds the mail adapter. An unset mail configuration is not
// fatal: activation and reset mail are then skipped by the services.
func newMailSender(cfg config.Mail, log *logger.Logger) (service.MailSender, error) {
	client, err := adapter.NewMailClient(cfg, log)
	if err != nil {
		if errors.Is(err, adapter.ErrMailNotConfigured) {
			log.Warn().Msg("mail provider not configured, transactional mail disabled")
			return nil, nil
		}
		return nil, err
	}

	return client, nil
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
