package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rvcoutinho/santinho/internal/auth"
	"github.com/rvcoutinho/santinho/internal/middleware"
	"github.com/rvcoutinho/santinho/internal/service"
)

// NewRouter wires all routes and middleware into one handler.
func NewRouter(
	users auth.Authenticator,
	sessions *auth.SessionManager,
	posts *service.PostService,
	feed *service.FeedService,
	render *Renderer,
	uploadDir string,
) http.Handler {
	mux := http.NewServeMux()

	requireSession := middleware.RequireSession(sessions)
	optionalSession := middleware.OptionalSession(sessions)

	homeHandler := NewHomeHandler(feed, render)
	authHandler := NewAuthHandler(users, sessions, render)
	postHandler := NewPostHandler(posts, render)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Feed + ranking homepage (anonymous allowed)
	mux.HandleFunc("GET /{$}", optionalSession(homeHandler.Index))

	// Authentication
	mux.HandleFunc("GET /login", authHandler.LoginForm)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /register", authHandler.RegisterForm)
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("GET /logout", requireSession(authHandler.Logout))

	// Post submission (session required)
	mux.HandleFunc("GET /post", requireSession(postHandler.Form))
	mux.HandleFunc("POST /post", requireSession(postHandler.Create))

	// Stored photos
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(uploadDir))))

	return middleware.WithLogging(middleware.Metrics(mux))
}
