package service

import (
	"github.com/vkarpenko/card-vault/internal/adapter"
	"github.com/vkarpenko/card-vault/internal/config"
	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/internal/store"
)

// Services bundles every service-layer component for injection into the
// transport layer.
type Services struct {
	AuthService  AuthService
	CardService  CardService
	RelayService RelayService
}

// NewServices wires the service layer over the given storages and
// third-party client.
func NewServices(
	storages *store.Storages,
	client adapter.ThirdPartyClient,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.Auth, cfg.Relay, logger),
		CardService:  NewCardService(storages.CardVault, nil, logger),
		RelayService: NewRelayService(storages.CardVault, client, logger),
	}
}
