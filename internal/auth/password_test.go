package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rvcoutinho/santinho/internal/models"
)

// memoryUserStorage is an in-memory UserStorage for tests.
type memoryUserStorage struct {
	users map[string]*models.User // keyed by username
}

func newMemoryUserStorage() *memoryUserStorage {
	return &memoryUserStorage{users: make(map[string]*models.User)}
}

func (m *memoryUserStorage) CreateUser(_ context.Context, user *models.User) error {
	if _, exists := m.users[user.Username]; exists {
		return errors.New("UNIQUE constraint failed: users.username")
	}
	m.users[user.Username] = user
	return nil
}

func (m *memoryUserStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	return m.users[username], nil
}

func (m *memoryUserStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := NewPasswordAuthenticator(newMemoryUserStorage())
	ctx := context.Background()

	user, err := a.Register(ctx, "maria", "correct horse battery")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == "" {
		t.Error("expected user ID to be set")
	}
	if user.PasswordHash == "correct horse battery" {
		t.Error("password must not be stored verbatim")
	}
	if !strings.HasPrefix(user.PasswordHash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", user.PasswordHash)
	}

	got, err := a.Authenticate(ctx, "maria", "correct horse battery")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated wrong user: got %s, want %s", got.ID, user.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	a := NewPasswordAuthenticator(newMemoryUserStorage())
	ctx := context.Background()

	if _, err := a.Register(ctx, "maria", "correct horse battery"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := a.Authenticate(ctx, "maria", "wrong password!")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	a := NewPasswordAuthenticator(newMemoryUserStorage())

	_, err := a.Authenticate(context.Background(), "nobody", "whatever12")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	a := NewPasswordAuthenticator(newMemoryUserStorage())
	ctx := context.Background()

	if _, err := a.Register(ctx, "", "long enough secret"); !errors.Is(err, ErrMissingUsername) {
		t.Errorf("expected ErrMissingUsername, got %v", err)
	}
	if _, err := a.Register(ctx, "maria", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	a := NewPasswordAuthenticator(newMemoryUserStorage())
	ctx := context.Background()

	if _, err := a.Register(ctx, "maria", "first password"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, err := a.Register(ctx, "maria", "second password")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}
