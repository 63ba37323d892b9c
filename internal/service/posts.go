// Package service implements the application operations behind the web
// handlers.
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rvcoutinho/santinho/internal/models"
	"github.com/rvcoutinho/santinho/internal/storage"
	"github.com/rvcoutinho/santinho/internal/upload"
)

var (
	ErrMissingCandidate = errors.New("candidate name required")
	ErrBadFlyerCount    = errors.New("flyer count must be a positive integer")
	ErrMissingPhoto     = errors.New("photo required")
)

// PostService creates flyer posts: it stores the proof photo and writes
// the post (with candidate resolution) in one storage transaction.
type PostService struct {
	store  storage.Store
	photos *upload.PhotoStore
	logger *slog.Logger
}

// NewPostService creates a new post service.
func NewPostService(store storage.Store, photos *upload.PhotoStore) *PostService {
	return &PostService{
		store:  store,
		photos: photos,
		logger: slog.Default(),
	}
}

// Create validates the submission, saves the photo and records the
// post for the given user. The candidate is resolved by name, created
// on first reference.
func (s *PostService) Create(ctx context.Context, userID, candidateName, flyerCountRaw, photoName string, photo io.Reader) (*models.Post, error) {
	candidateName = strings.TrimSpace(candidateName)
	if candidateName == "" {
		return nil, ErrMissingCandidate
	}

	flyerCount, err := strconv.Atoi(strings.TrimSpace(flyerCountRaw))
	if err != nil || flyerCount < 1 {
		return nil, ErrBadFlyerCount
	}

	if photo == nil {
		return nil, ErrMissingPhoto
	}

	photoURL, err := s.photos.Save(photoName, photo)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:     userID,
		FlyerCount: flyerCount,
		PhotoURL:   photoURL,
	}
	if err := s.store.CreatePost(ctx, post, candidateName); err != nil {
		// The photo is already on disk; orphaned files are not cleaned
		// up, matching the write-only upload directory contract.
		return nil, err
	}

	s.logger.Info("post created",
		"post_id", post.ID,
		"user_id", userID,
		"candidate", candidateName,
		"flyers", flyerCount,
	)
	return post, nil
}

// Candidates lists known candidates for the submission form.
func (s *PostService) Candidates(ctx context.Context) ([]models.Candidate, error) {
	return s.store.ListCandidates(ctx)
}
