package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WINZED31/Baladeya/internal/domain/user"
	xerrors "github.com/WINZED31/Baladeya/internal/pkg/errors"
	"github.com/WINZED31/Baladeya/internal/pkg/session"
	"github.com/WINZED31/Baladeya/internal/pkg/validate"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence surface the gate needs.
type UserStore interface {
	Create(ctx context.Context, u *user.User, passwordHash string) error
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindCredentials(ctx context.Context, username string) (*user.User, string, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	IsAdmin(ctx context.Context, id int64) (bool, error)
	SetLastActive(ctx context.Context, id int64) error
}

// SessionStore is satisfied by the Redis-backed session store.
type SessionStore interface {
	Create(ctx context.Context, data *session.Data) error
	Get(ctx context.Context, token string) (*session.Data, error)
	Delete(ctx context.Context, token string) error
	Touch(ctx context.Context, token string) error
}

// LoginLimiter throttles credential guessing.
type LoginLimiter interface {
	CheckLoginAttempt(ctx context.Context, ip, username string) (bool, int64, error)
	ResetLoginAttempts(ctx context.Context, ip, username string) error
}

type Service struct {
	users      UserStore
	sessions   SessionStore
	limiter    LoginLimiter
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewService(users UserStore, sessions SessionStore, limiter LoginLimiter, sessionTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		limiter:    limiter,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// ========== Signup ==========

// Signup validates the six required fields and creates a citizen account.
// Validation failures return before any store write is attempted.
func (s *Service) Signup(ctx context.Context, req *user.SignupRequest) (*user.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" ||
		req.Name == "" || req.Phone == "" || req.NationalID == "" {
		return nil, xerrors.ErrInvalidInput
	}

	validEmail, normalizedEmail := validate.Email(req.Email)
	if !validEmail {
		return nil, xerrors.ErrInvalidEmail
	}
	if !validate.Phone(req.Phone) {
		return nil, xerrors.ErrInvalidPhone
	}

	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, xerrors.ErrDuplicateEntry
	}

	exists, err = s.users.ExistsByEmail(ctx, normalizedEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, xerrors.ErrDuplicateEntry
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Username:   req.Username,
		Email:      normalizedEmail,
		Name:       req.Name,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		Role:       user.RoleCitizen,
	}
	if err := s.users.Create(ctx, u, string(hashed)); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// ========== Login / Logout ==========

// Login authenticates a username/password pair and opens a session.
// The returned token is the only credential handed to the client.
func (s *Service) Login(ctx context.Context, username, password, ip string) (*user.User, string, error) {
	allowed, _, err := s.limiter.CheckLoginAttempt(ctx, ip, username)
	if err != nil {
		return nil, "", fmt.Errorf("rate limiter error: %w", err)
	}
	if !allowed {
		return nil, "", xerrors.ErrRateLimited
	}

	u, hash, err := s.users.FindCredentials(ctx, username)
	if err != nil {
		return nil, "", xerrors.ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, "", xerrors.ErrBadCredentials
	}

	now := time.Now()
	data := &session.Data{
		Token:          session.NewToken(),
		UserID:         u.ID,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, data); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.limiter.ResetLoginAttempts(ctx, ip, username); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	return u, data.Token, nil
}

// Logout ends the session. Best-effort: store failure is logged and the
// caller clears its client-side state regardless.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Warn("failed to end session", zap.Error(err))
	}
}

// ========== Session validation ==========

// ValidateSession resolves a session token to its user. Any failure
// (unknown token, expired session, vanished user) collapses to
// ErrSessionExpired so the caller purges client state and re-renders
// anonymously.
func (s *Service) ValidateSession(ctx context.Context, token string) (*user.User, error) {
	data, err := s.sessions.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, xerrors.ErrSessionExpired) {
			s.logger.Warn("session lookup failed", zap.Error(err))
		}
		return nil, xerrors.ErrSessionExpired
	}

	u, err := s.users.FindByID(ctx, data.UserID)
	if err != nil {
		return nil, xerrors.ErrSessionExpired
	}
	return u, nil
}

// TouchSession refreshes the session's last-activity timestamp.
func (s *Service) TouchSession(ctx context.Context, token string) {
	if err := s.sessions.Touch(ctx, token); err != nil {
		s.logger.Warn("failed to touch session", zap.Error(err))
	}
}

// IsAdmin re-checks the role on every render; it is never cached because
// the role can change out-of-band.
func (s *Service) IsAdmin(ctx context.Context, userID int64) bool {
	admin, err := s.users.IsAdmin(ctx, userID)
	if err != nil {
		if !errors.Is(err, xerrors.ErrNotFound) {
			s.logger.Warn("role check failed", zap.Int64("user_id", userID), zap.Error(err))
		}
		return false
	}
	return admin
}

// EnsureAdminExists seeds the administrator account on startup when it is
// missing. An existing account with the same username is left untouched.
func (s *Service) EnsureAdminExists(ctx context.Context, username, email, password, name string) error {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	u := &user.User{
		Username: username,
		Email:    email,
		Name:     name,
		Role:     user.RoleAdmin,
	}
	if err := s.users.Create(ctx, u, string(hashed)); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	s.logger.Info("seeded admin account", zap.String("username", username))
	return nil
}

// UpdateUserActivity records that the user rendered an authenticated page.
func (s *Service) UpdateUserActivity(ctx context.Context, userID int64) {
	if err := s.users.SetLastActive(ctx, userID); err != nil {
		s.logger.Warn("failed to update user activity", zap.Int64("user_id", userID), zap.Error(err))
	}
}
