package postgres

import (
	"context"
	"errors"
	"fmt"

	xerrors "github.com/WINZED31/Baladeya/internal/pkg/errors"
	"github.com/WINZED31/Baladeya/internal/pkg/session"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository is the durable half of the session store.
type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) InsertSession(ctx context.Context, data *session.Data) error {
	query := `
		INSERT INTO sessions (token, user_id, created_at, last_activity_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		data.Token, data.UserID, data.CreatedAt, data.LastActivityAt, data.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindSessionByToken(ctx context.Context, token string) (*session.Data, error) {
	query := `
		SELECT token, user_id, created_at, last_activity_at, expires_at
		FROM sessions
		WHERE token = $1 AND expires_at > now()
	`

	var data session.Data
	err := r.db.QueryRow(ctx, query, token).Scan(
		&data.Token, &data.UserID, &data.CreatedAt, &data.LastActivityAt, &data.ExpiresAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &data, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) TouchSession(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `UPDATE sessions SET last_activity_at = now() WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}
