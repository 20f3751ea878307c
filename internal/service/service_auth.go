package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vkarpenko/card-vault/internal/config"
	"github.com/vkarpenko/card-vault/internal/crypto"
	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/internal/store"
	"github.com/vkarpenko/card-vault/internal/utils"
	"github.com/vkarpenko/card-vault/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, session issue and
// lookup, and membership checks against the static M2M credential set.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository records issued bearer sessions and resolves
	// presented tokens back to owner ids.
	sessionRepository store.SessionRepository

	// hasher derives and verifies argon2id password digests.
	hasher *crypto.PasswordHasher

	// m2mCredentials is the immutable set of bearer secrets authorized for
	// relay calls. Membership here says nothing about which owner's cards a
	// relay call may substitute.
	m2mCredentials map[string]struct{}

	// tokenSignKey is the HMAC secret used to sign session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionRepository store.SessionRepository,
	authCfg config.Auth,
	relayCfg config.Relay,
	logger *logger.Logger,
) AuthService {
	credentials := make(map[string]struct{}, len(relayCfg.M2MCredentials))
	for _, credential := range relayCfg.M2MCredentials {
		if credential != "" {
			credentials[credential] = struct{}{}
		}
	}

	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		hasher:            crypto.NewPasswordHasher(),
		m2mCredentials:    credentials,
		tokenSignKey:      authCfg.TokenSignKey,
		tokenIssuer:       authCfg.TokenIssuer,
		tokenDuration:     authCfg.TokenDuration,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Login and Password are non-empty, hashes the
// password, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken, see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = passwordHash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a new session.
//
// It looks the account up by login, verifies the password against the
// stored digest, signs a session JWT, and records the session so the auth
// gate can resolve it by lookup alone.
//
// Returns the issued session or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found, see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not verify.
func (a *authService) Login(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.Session{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !a.hasher.Verify(user.Password, foundUser.PasswordHash) {
		log.Error().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.Session{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	session := models.Session{
		Token:     token.SignedString,
		UserID:    foundUser.UserID,
		ExpiresAt: time.Now().Add(a.tokenDuration),
	}

	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	return session, nil
}

// AuthenticateUser implements [AuthService]. Authentication is a pure read:
// extract the bearer string, look the session up, check expiry. Every
// failure mode collapses to ErrUnauthorized so handlers cannot leak which
// step rejected the credential.
func (a *authService) AuthenticateUser(ctx context.Context, authorizationHeader string) (int64, error) {
	token, ok := utils.ParseBearerToken(authorizationHeader)
	if !ok {
		return 0, ErrUnauthorized
	}

	session, err := a.sessionRepository.FindSession(ctx, token)
	if err != nil {
		return 0, ErrUnauthorized
	}

	if time.Now().After(session.ExpiresAt) {
		return 0, ErrUnauthorized
	}

	return session.UserID, nil
}

// AuthenticateM2M implements [AuthService]. A missing or unknown credential
// yields false; no error is ever raised.
func (a *authService) AuthenticateM2M(authorizationHeader string) bool {
	token, ok := utils.ParseBearerToken(authorizationHeader)
	if !ok {
		return false
	}

	_, member := a.m2mCredentials[token]
	return member
}
