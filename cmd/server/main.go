package main

import (
	"context"
	"fmt"

	"github.com/pkms-go/diary-keeper/internal/config"
	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/handler"
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/server"
	"github.com/pkms-go/diary-keeper/internal/service"
	"github.com/pkms-go/diary-keeper/internal/session"
	"github.com/pkms-go/diary-keeper/internal/store"
	"github.com/pkms-go/diary-keeper/internal/workers"
	"github.com/pkms-go/diary-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("diary-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("data_dir", cfg.Storage.Files.DataDir).
		Str("address", cfg.Server.HTTPAddress).
		Dur("session_timeout", cfg.Diary.SessionTimeout).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	sessions := session.NewStore(hasher,
		session.WithTimeout(cfg.Diary.SessionTimeout),
		session.WithLogger(log),
	)
	defer sessions.Close()

	background := workers.New(session.NewJanitor(sessions, cfg.Diary.JanitorInterval, log))
	background.Start(ctx)
	defer background.Stop()

	services, err := service.NewServices(store.NewRepositories(db, log), sessions, hasher, buildInfo(cfg.App), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// buildInfo prefers the linker-injected version, then the configured one,
// then "dev".
func buildInfo(cfg config.App) models.AppBuildInfo {
	version := buildVersion
	if version == "" {
		version = cfg.Version
	}
	if version == "" {
		version = "dev"
	}
	return models.NewAppBuildInfo(version, buildDate, buildCommit)
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
