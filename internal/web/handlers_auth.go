package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/rvcoutinho/santinho/internal/auth"
)

// formPage is the template data for the login and register forms.
type formPage struct {
	Username string
	Error    string
}

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	users    auth.Authenticator
	sessions *auth.SessionManager
	render   *Renderer
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users auth.Authenticator, sessions *auth.SessionManager, render *Renderer) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, render: render}
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, http.StatusOK, "login", formPage{})
}

// Login handles POST /login. A failed login answers with the literal
// plain-text body "Invalid credentials"; no session cookie is set.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.users.Authenticate(r.Context(), username, password)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, "Invalid credentials")
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		serverError(w, err)
		return
	}

	http.SetCookie(w, h.sessions.Cookie(token))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterForm handles GET /register.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, http.StatusOK, "register", formPage{})
}

// Register handles POST /register. Success redirects to the login page;
// rejected input re-renders the form with an inline error.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	_, err := h.users.Register(r.Context(), username, password)
	switch {
	case err == nil:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case errors.Is(err, auth.ErrUsernameTaken),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrMissingUsername):
		h.render.Render(w, http.StatusBadRequest, "register", formPage{Error: err.Error()})
	default:
		serverError(w, err)
	}
}

// Logout handles GET /logout. Requires a session; clears it.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessions.ClearCookie())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
