package main

import (
	"context"
	"fmt"

	"github.com/vkarpenko/card-vault/internal/adapter"
	"github.com/vkarpenko/card-vault/internal/config"
	httphandler "github.com/vkarpenko/card-vault/internal/handler/http"
	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/internal/server"
	"github.com/vkarpenko/card-vault/internal/service"
	"github.com/vkarpenko/card-vault/internal/store"
	"github.com/vkarpenko/card-vault/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := &store.Storages{
		CardVault:         store.NewCardVault(utils.NewUUIDGenerator(), log),
		UserRepository:    store.NewUserRepository(db, log),
		SessionRepository: store.NewSessionRepository(db, log),
	}

	thirdParty := adapter.NewThirdPartyHTTPClient(adapter.HTTPClientConfig{
		Timeout: cfg.Relay.UpstreamTimeout,
	}, log)

	services := service.NewServices(storages, thirdParty, cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
