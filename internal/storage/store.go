// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/rvcoutinho/santinho/internal/models"
)

// Store defines the interface for santinho's storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user. The user's ID and CreatedAt are
	// populated by the store if unset.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns (nil, nil) if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// ResolveCandidate returns the candidate with the given name,
	// creating it if absent. The lookup and insert are atomic: two
	// concurrent resolutions of a new name converge on one row.
	ResolveCandidate(ctx context.Context, name string) (*models.Candidate, error)

	// ListCandidates returns all known candidates ordered by name.
	ListCandidates(ctx context.Context) ([]models.Candidate, error)

	// CreatePost resolves the candidate by name and inserts the post in
	// a single transaction. The post's ID, CandidateID and CreatedAt
	// fields are populated by the store if unset.
	CreatePost(ctx context.Context, post *models.Post, candidateName string) error

	// ListFeed returns all posts joined with author and candidate names,
	// newest first.
	ListFeed(ctx context.Context) ([]models.FeedItem, error)

	// RankCandidates returns candidates with at least one post, ordered
	// by total flyer count descending (name ascending on ties).
	RankCandidates(ctx context.Context) ([]models.RankingEntry, error)

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int64, error)

	// CountPosts returns the number of submitted posts.
	CountPosts(ctx context.Context) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
