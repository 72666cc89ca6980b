package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WINZED31/Baladeya/internal/domain/user"
	xerrors "github.com/WINZED31/Baladeya/internal/pkg/errors"
	"github.com/WINZED31/Baladeya/internal/pkg/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	createFn      func(ctx context.Context, u *user.User, hash string) error
	findByIDFn    func(ctx context.Context, id int64) (*user.User, error)
	credentialsFn func(ctx context.Context, username string) (*user.User, string, error)
	usernameFn    func(ctx context.Context, username string) (bool, error)
	emailFn       func(ctx context.Context, email string) (bool, error)
	isAdminFn     func(ctx context.Context, id int64) (bool, error)

	createCalls int
}

func (f *fakeUserStore) Create(ctx context.Context, u *user.User, hash string) error {
	f.createCalls++
	if f.createFn == nil {
		u.ID = 1
		return nil
	}
	return f.createFn(ctx, u, hash)
}

func (f *fakeUserStore) FindByID(ctx context.Context, id int64) (*user.User, error) {
	if f.findByIDFn == nil {
		return nil, xerrors.ErrNotFound
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserStore) FindCredentials(ctx context.Context, username string) (*user.User, string, error) {
	if f.credentialsFn == nil {
		return nil, "", xerrors.ErrNotFound
	}
	return f.credentialsFn(ctx, username)
}

func (f *fakeUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if f.usernameFn == nil {
		return false, nil
	}
	return f.usernameFn(ctx, username)
}

func (f *fakeUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.emailFn == nil {
		return false, nil
	}
	return f.emailFn(ctx, email)
}

func (f *fakeUserStore) IsAdmin(ctx context.Context, id int64) (bool, error) {
	if f.isAdminFn == nil {
		return false, nil
	}
	return f.isAdminFn(ctx, id)
}

func (f *fakeUserStore) SetLastActive(ctx context.Context, id int64) error { return nil }

type fakeSessionStore struct {
	sessions map[string]*session.Data

	createCalls int
	deleteCalls int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*session.Data)}
}

func (f *fakeSessionStore) Create(ctx context.Context, data *session.Data) error {
	f.createCalls++
	f.sessions[data.Token] = data
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, token string) (*session.Data, error) {
	data, ok := f.sessions[token]
	if !ok || data.Expired(time.Now()) {
		return nil, xerrors.ErrSessionExpired
	}
	return data, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, token string) error {
	f.deleteCalls++
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionStore) Touch(ctx context.Context, token string) error { return nil }

type fakeLimiter struct {
	allowed bool
}

func (f *fakeLimiter) CheckLoginAttempt(ctx context.Context, ip, username string) (bool, int64, error) {
	return f.allowed, 0, nil
}

func (f *fakeLimiter) ResetLoginAttempts(ctx context.Context, ip, username string) error {
	return nil
}

func newTestService(users *fakeUserStore, sessions *fakeSessionStore) *Service {
	return NewService(users, sessions, &fakeLimiter{allowed: true}, time.Hour, zap.NewNop())
}

func validSignup() *user.SignupRequest {
	return &user.SignupRequest{
		Username:   "amine",
		Email:      "amine@example.com",
		Password:   "secret123",
		Name:       "Amine B.",
		Phone:      "0551234567",
		NationalID: "123456789012",
	}
}

func TestSignupSuccess(t *testing.T) {
	users := &fakeUserStore{}
	svc := newTestService(users, newFakeSessionStore())

	u, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != user.RoleCitizen {
		t.Errorf("new accounts should be citizens, got %s", u.Role)
	}
	if users.createCalls != 1 {
		t.Errorf("expected 1 create call, got %d", users.createCalls)
	}
}

func TestSignupNormalizesEmail(t *testing.T) {
	users := &fakeUserStore{}
	svc := newTestService(users, newFakeSessionStore())

	req := validSignup()
	req.Email = "  Amine@Example.COM "
	u, err := svc.Signup(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "amine@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
}

func TestSignupMissingFieldSkipsCreate(t *testing.T) {
	fields := []func(*user.SignupRequest){
		func(r *user.SignupRequest) { r.Username = "" },
		func(r *user.SignupRequest) { r.Email = "" },
		func(r *user.SignupRequest) { r.Password = "" },
		func(r *user.SignupRequest) { r.Name = "" },
		func(r *user.SignupRequest) { r.Phone = "" },
		func(r *user.SignupRequest) { r.NationalID = "" },
	}
	for i, clear := range fields {
		users := &fakeUserStore{}
		svc := newTestService(users, newFakeSessionStore())

		req := validSignup()
		clear(req)
		if _, err := svc.Signup(context.Background(), req); !errors.Is(err, xerrors.ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
		if users.createCalls != 0 {
			t.Errorf("case %d: create called despite missing field", i)
		}
	}
}

func TestSignupInvalidEmailSkipsCreate(t *testing.T) {
	users := &fakeUserStore{}
	svc := newTestService(users, newFakeSessionStore())

	req := validSignup()
	req.Email = "not-an-email"
	if _, err := svc.Signup(context.Background(), req); !errors.Is(err, xerrors.ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
	if users.createCalls != 0 {
		t.Error("create called despite invalid email")
	}
}

func TestSignupInvalidPhoneSkipsCreate(t *testing.T) {
	users := &fakeUserStore{}
	svc := newTestService(users, newFakeSessionStore())

	req := validSignup()
	req.Phone = "12345"
	if _, err := svc.Signup(context.Background(), req); !errors.Is(err, xerrors.ErrInvalidPhone) {
		t.Errorf("expected ErrInvalidPhone, got %v", err)
	}
	if users.createCalls != 0 {
		t.Error("create called despite invalid phone")
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	users := &fakeUserStore{
		usernameFn: func(ctx context.Context, username string) (bool, error) { return true, nil },
	}
	svc := newTestService(users, newFakeSessionStore())

	if _, err := svc.Signup(context.Background(), validSignup()); !errors.Is(err, xerrors.ErrDuplicateEntry) {
		t.Errorf("expected ErrDuplicateEntry, got %v", err)
	}
	if users.createCalls != 0 {
		t.Error("create called despite duplicate username")
	}
}

func TestLoginSuccess(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users := &fakeUserStore{
		credentialsFn: func(ctx context.Context, username string) (*user.User, string, error) {
			return &user.User{ID: 7, Username: username}, string(hash), nil
		},
	}
	sessions := newFakeSessionStore()
	svc := newTestService(users, sessions)

	u, token, err := svc.Login(context.Background(), "amine", "secret123", "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 7 {
		t.Errorf("wrong user resolved: %d", u.ID)
	}
	if token == "" {
		t.Error("empty session token")
	}
	if sessions.createCalls != 1 {
		t.Errorf("expected 1 session create, got %d", sessions.createCalls)
	}
}

func TestLoginBadPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users := &fakeUserStore{
		credentialsFn: func(ctx context.Context, username string) (*user.User, string, error) {
			return &user.User{ID: 7}, string(hash), nil
		},
	}
	sessions := newFakeSessionStore()
	svc := newTestService(users, sessions)

	if _, _, err := svc.Login(context.Background(), "amine", "wrong", "10.0.0.1"); !errors.Is(err, xerrors.ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials, got %v", err)
	}
	if sessions.createCalls != 0 {
		t.Error("session created for failed login")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(&fakeUserStore{}, newFakeSessionStore())
	if _, _, err := svc.Login(context.Background(), "ghost", "pw", "10.0.0.1"); !errors.Is(err, xerrors.ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials, got %v", err)
	}
}

func TestLoginRateLimited(t *testing.T) {
	svc := NewService(&fakeUserStore{}, newFakeSessionStore(), &fakeLimiter{allowed: false}, time.Hour, zap.NewNop())
	if _, _, err := svc.Login(context.Background(), "amine", "pw", "10.0.0.1"); !errors.Is(err, xerrors.ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestValidateSessionIdempotent(t *testing.T) {
	users := &fakeUserStore{
		findByIDFn: func(ctx context.Context, id int64) (*user.User, error) {
			return &user.User{ID: id, Username: "amine"}, nil
		},
	}
	sessions := newFakeSessionStore()
	sessions.sessions["tok"] = &session.Data{Token: "tok", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	svc := newTestService(users, sessions)

	first, err1 := svc.ValidateSession(context.Background(), "tok")
	second, err2 := svc.ValidateSession(context.Background(), "tok")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first.ID != second.ID {
		t.Error("two validations of an unchanged session disagree")
	}
}

func TestValidateSessionExpired(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.sessions["tok"] = &session.Data{Token: "tok", UserID: 7, ExpiresAt: time.Now().Add(-time.Minute)}
	svc := newTestService(&fakeUserStore{}, sessions)

	if _, err := svc.ValidateSession(context.Background(), "tok"); !errors.Is(err, xerrors.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}

func TestValidateSessionVanishedUser(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.sessions["tok"] = &session.Data{Token: "tok", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	svc := newTestService(&fakeUserStore{}, sessions)

	if _, err := svc.ValidateSession(context.Background(), "tok"); !errors.Is(err, xerrors.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired for vanished user, got %v", err)
	}
}

func TestLogoutBestEffort(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.sessions["tok"] = &session.Data{Token: "tok", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	svc := newTestService(&fakeUserStore{}, sessions)

	svc.Logout(context.Background(), "tok")
	if sessions.deleteCalls != 1 {
		t.Errorf("expected 1 delete call, got %d", sessions.deleteCalls)
	}

	// Logging out an already-gone session must not panic or retry.
	svc.Logout(context.Background(), "tok")
	svc.Logout(context.Background(), "")
}

func TestIsAdmin(t *testing.T) {
	users := &fakeUserStore{
		isAdminFn: func(ctx context.Context, id int64) (bool, error) {
			return id == 1, nil
		},
	}
	svc := newTestService(users, newFakeSessionStore())

	if !svc.IsAdmin(context.Background(), 1) {
		t.Error("user 1 should be admin")
	}
	if svc.IsAdmin(context.Background(), 2) {
		t.Error("user 2 should not be admin")
	}
}
