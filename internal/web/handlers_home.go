// Package web serves santinho's HTML surface: the feed/ranking
// homepage, the auth forms and the post submission form.
package web

import (
	"log/slog"
	"net/http"

	"github.com/rvcoutinho/santinho/internal/middleware"
	"github.com/rvcoutinho/santinho/internal/service"
)

// homePage is the template data for the homepage.
type homePage struct {
	Username string
	Home     *service.HomeData
}

// HomeHandler renders the post feed and candidate ranking.
type HomeHandler struct {
	feed   *service.FeedService
	render *Renderer
}

// NewHomeHandler creates a new homepage handler.
func NewHomeHandler(feed *service.FeedService, render *Renderer) *HomeHandler {
	return &HomeHandler{feed: feed, render: render}
}

// Index handles GET /.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	data, err := h.feed.Home(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}

	h.render.Render(w, http.StatusOK, "index", homePage{
		Username: middleware.GetUsername(r.Context()),
		Home:     data,
	})
}

// serverError answers a request whose handler failed unexpectedly.
func serverError(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
