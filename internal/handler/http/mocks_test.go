package http

import (
	"context"

	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/internal/service"
	"github.com/vkarpenko/card-vault/models"
)

// Hand-written function-field mocks shared by the handler tests.

type mockAuthSvc struct {
	registerFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn    func(ctx context.Context, user models.User) (models.Session, error)
	authUserFn func(ctx context.Context, header string) (int64, error)
	authM2MFn  func(header string) bool
}

func (m *mockAuthSvc) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerFn(ctx, user)
}

func (m *mockAuthSvc) Login(ctx context.Context, user models.User) (models.Session, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthSvc) AuthenticateUser(ctx context.Context, header string) (int64, error) {
	return m.authUserFn(ctx, header)
}

func (m *mockAuthSvc) AuthenticateM2M(header string) bool {
	return m.authM2MFn(header)
}

type mockCardSvc struct {
	tokenizeFn func(ctx context.Context, ownerID int64, value string) (string, error)
}

func (m *mockCardSvc) Tokenize(ctx context.Context, ownerID int64, value string) (string, error) {
	return m.tokenizeFn(ctx, ownerID, value)
}

type mockRelaySvc struct {
	relayFn func(ctx context.Context, req models.RelayRequest) (models.RelayResponse, error)
	calls   int
}

func (m *mockRelaySvc) Relay(ctx context.Context, req models.RelayRequest) (models.RelayResponse, error) {
	m.calls++
	return m.relayFn(ctx, req)
}

// newTestHandler returns a *Handler (not http.Handler) so individual handler
// methods can be called directly without going through the router.
func newTestHandler(auth service.AuthService, cards service.CardService, relay service.RelayService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:  auth,
			CardService:  cards,
			RelayService: relay,
		},
	}
}
