package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/rvcoutinho/santinho/internal/middleware"
	"github.com/rvcoutinho/santinho/internal/models"
	"github.com/rvcoutinho/santinho/internal/service"
)

// maxPhotoMemory caps how much of a multipart upload is buffered in
// memory before spilling to temp files.
const maxPhotoMemory = 32 << 20

// postPage is the template data for the submission form.
type postPage struct {
	Username   string
	Error      string
	Candidates []models.Candidate
}

// PostHandler serves the flyer post submission form.
type PostHandler struct {
	posts  *service.PostService
	render *Renderer
}

// NewPostHandler creates a new post handler.
func NewPostHandler(posts *service.PostService, render *Renderer) *PostHandler {
	return &PostHandler{posts: posts, render: render}
}

// Form handles GET /post.
func (h *PostHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "")
}

// Create handles POST /post. Success redirects home; invalid input
// re-renders the form with an inline error.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoMemory); err != nil {
		h.renderForm(w, r, http.StatusBadRequest, "invalid form submission")
		return
	}

	var photo io.Reader
	var photoName string
	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		photo = file
		photoName = header.Filename
	}

	_, err := h.posts.Create(
		r.Context(),
		middleware.GetUserID(r.Context()),
		r.FormValue("candidate"),
		r.FormValue("flyer_count"),
		photoName,
		photo,
	)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, service.ErrMissingCandidate),
		errors.Is(err, service.ErrBadFlyerCount),
		errors.Is(err, service.ErrMissingPhoto):
		h.renderForm(w, r, http.StatusBadRequest, err.Error())
	default:
		serverError(w, err)
	}
}

func (h *PostHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	candidates, err := h.posts.Candidates(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}

	h.render.Render(w, status, "post", postPage{
		Username:   middleware.GetUsername(r.Context()),
		Error:      errMsg,
		Candidates: candidates,
	})
}
