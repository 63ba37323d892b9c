package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rvcoutinho/santinho/internal/models"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret-key-32-bytes-long!!!", time.Hour)
	user := models.NewUser("maria", "hash")

	token, err := m.Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID mismatch: got %s, want %s", claims.UserID, user.ID)
	}
	if claims.Username != "maria" {
		t.Errorf("Username mismatch: got %s, want maria", claims.Username)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret-one", time.Hour)
	verifier := NewSessionManager("secret-two", time.Hour)

	token, err := issuer.Issue(models.NewUser("maria", "hash"))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Hour)

	token, err := m.Issue(models.NewUser("maria", "hash"))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession for expired token, got %v", err)
	}
}

func TestFromRequest(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	user := models.NewUser("maria", "hash")

	token, err := m.Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/post", nil)
	r.AddCookie(m.Cookie(token))

	claims, err := m.FromRequest(r)
	if err != nil {
		t.Fatalf("FromRequest failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID mismatch: got %s, want %s", claims.UserID, user.ID)
	}
}

func TestFromRequestNoCookie(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/post", nil)
	if _, err := m.FromRequest(r); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestCookieAttributes(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	c := m.Cookie("token")
	if !c.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if c.Path != "/" {
		t.Errorf("cookie path: got %s, want /", c.Path)
	}
	if c.MaxAge != 3600 {
		t.Errorf("cookie max age: got %d, want 3600", c.MaxAge)
	}

	cleared := m.ClearCookie()
	if cleared.MaxAge >= 0 {
		t.Error("ClearCookie must expire the cookie")
	}
}
