package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("SessionRepository created")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	_, err := r.db.ExecContext(ctx, createSession, session.Token, session.UserID, session.ExpiresAt)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: inserting session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *sessionRepository) FindSession(ctx context.Context, token string) (models.Session, error) {
	var session models.Session
	row := r.db.QueryRowContext(ctx, findSession, token)

	if err := row.Scan(&session.Token, &session.UserID, &session.ExpiresAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}

		r.logger.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error: scanning session")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}
