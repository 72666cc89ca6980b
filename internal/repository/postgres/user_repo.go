package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/WINZED31/Baladeya/internal/domain/user"
	xerrors "github.com/WINZED31/Baladeya/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user with its password hash.
func (r *UserRepository) Create(ctx context.Context, u *user.User, passwordHash string) error {
	query := `
		INSERT INTO users (username, email, password_hash, name, phone, national_id, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, last_active_at
	`

	err := r.db.QueryRow(
		ctx, query,
		u.Username, u.Email, passwordHash, u.Name, u.Phone, u.NationalID, u.Role,
	).Scan(&u.ID, &u.CreatedAt, &u.LastActiveAt)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT id, username, email, name, phone, national_id, role, created_at, last_active_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.Name, &u.Phone, &u.NationalID,
		&u.Role, &u.CreatedAt, &u.LastActiveAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// FindCredentials retrieves a user and its password hash by username.
func (r *UserRepository) FindCredentials(ctx context.Context, username string) (*user.User, string, error) {
	query := `
		SELECT id, username, email, password_hash, name, phone, national_id, role, created_at, last_active_at
		FROM users
		WHERE username = $1
	`

	var u user.User
	var hash string
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.Email, &hash, &u.Name, &u.Phone, &u.NationalID,
		&u.Role, &u.CreatedAt, &u.LastActiveAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", xerrors.ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to find credentials: %w", err)
	}
	return &u, hash, nil
}

// ExistsByUsername checks whether a username is already taken.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// ExistsByEmail checks whether an email is already registered.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// IsAdmin reports whether the user currently holds the admin role.
func (r *UserRepository) IsAdmin(ctx context.Context, id int64) (bool, error) {
	var role user.Role
	err := r.db.QueryRow(ctx, `SELECT role FROM users WHERE id = $1`, id).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, xerrors.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return role == user.RoleAdmin, nil
}

// SetLastActive updates the user's last-activity timestamp.
func (r *UserRepository) SetLastActive(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_active_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update user activity: %w", err)
	}
	return nil
}
