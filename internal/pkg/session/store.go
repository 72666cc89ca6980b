package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	xerrors "github.com/WINZED31/Baladeya/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DBStore is the durable half of the session store. The Postgres
// repository satisfies it.
type DBStore interface {
	InsertSession(ctx context.Context, data *Data) error
	FindSessionByToken(ctx context.Context, token string) (*Data, error)
	DeleteSession(ctx context.Context, token string) error
	TouchSession(ctx context.Context, token string) error
}

// Store validates sessions against Redis first and falls back to Postgres
// on a miss, restoring the row to Redis for the next render.
type Store struct {
	client *redis.Client
	db     DBStore
	logger *zap.Logger
}

func NewStore(client *redis.Client, db DBStore, logger *zap.Logger) *Store {
	return &Store{client: client, db: db, logger: logger}
}

// Create stores a new session in Redis and Postgres.
func (s *Store) Create(ctx context.Context, data *Data) error {
	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(data.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}

	if err := s.db.InsertSession(ctx, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Get resolves a token to session data. An unknown or expired token yields
// ErrSessionExpired; the caller purges its client-side state in response.
func (s *Store) Get(ctx context.Context, token string) (*Data, error) {
	payload, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err == nil {
		var data Data
		if err := json.Unmarshal(payload, &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session: %w", err)
		}
		if data.Expired(time.Now()) {
			return nil, xerrors.ErrSessionExpired
		}
		return &data, nil
	}
	if err != redis.Nil {
		s.logger.Warn("redis error, falling back to database", zap.Error(err))
	}

	data, dbErr := s.db.FindSessionByToken(ctx, token)
	if dbErr != nil {
		return nil, xerrors.ErrSessionExpired
	}
	if data.Expired(time.Now()) {
		return nil, xerrors.ErrSessionExpired
	}

	// Redis missed but the durable row is live; restore the fast path.
	go s.restore(context.Background(), data)

	return data, nil
}

// Touch refreshes the last-activity timestamp in both halves.
func (s *Store) Touch(ctx context.Context, token string) error {
	payload, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err == nil {
		var data Data
		if err := json.Unmarshal(payload, &data); err == nil {
			data.LastActivityAt = time.Now()
			if updated, err := json.Marshal(&data); err == nil {
				if ttl := time.Until(data.ExpiresAt); ttl > 0 {
					s.client.Set(ctx, sessionKey(token), updated, ttl)
				}
			}
		}
	}
	return s.db.TouchSession(ctx, token)
}

// Delete ends a session in both halves. Redis failure is logged only:
// the durable delete decides.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		s.logger.Warn("failed to delete session from redis", zap.Error(err))
	}
	return s.db.DeleteSession(ctx, token)
}

func (s *Store) restore(ctx context.Context, data *Data) {
	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, sessionKey(data.Token), payload, ttl).Err(); err != nil {
		s.logger.Warn("failed to restore session to redis", zap.Error(err))
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
