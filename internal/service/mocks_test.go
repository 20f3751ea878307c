package service

import (
	"context"

	"github.com/vkarpenko/card-vault/models"
)

// Hand-written function-field mocks shared by the service tests.

type mockUserRepo struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, login string) (models.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return m.findFn(ctx, login)
}

type mockSessionRepo struct {
	createFn func(ctx context.Context, session models.Session) error
	findFn   func(ctx context.Context, token string) (models.Session, error)
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, session models.Session) error {
	return m.createFn(ctx, session)
}

func (m *mockSessionRepo) FindSession(ctx context.Context, token string) (models.Session, error) {
	return m.findFn(ctx, token)
}

type mockVault struct {
	tokenizeFn func(ctx context.Context, ownerID int64, sensitiveValue string) (string, error)
	resolveFn  func(ctx context.Context, ownerID int64) []models.Card
	reverseFn  func(ctx context.Context, referenceID string) (string, error)
}

func (m *mockVault) Tokenize(ctx context.Context, ownerID int64, sensitiveValue string) (string, error) {
	return m.tokenizeFn(ctx, ownerID, sensitiveValue)
}

func (m *mockVault) Resolve(ctx context.Context, ownerID int64) []models.Card {
	return m.resolveFn(ctx, ownerID)
}

func (m *mockVault) ReverseLookup(ctx context.Context, referenceID string) (string, error) {
	return m.reverseFn(ctx, referenceID)
}

type mockThirdParty struct {
	sendFn func(ctx context.Context, call models.UpstreamCall) (string, error)
	calls  int
}

func (m *mockThirdParty) Send(ctx context.Context, call models.UpstreamCall) (string, error) {
	m.calls++
	return m.sendFn(ctx, call)
}
