package service

import (
	"context"

	"github.com/rvcoutinho/santinho/internal/models"
	"github.com/rvcoutinho/santinho/internal/storage"
)

// HomeData is everything the homepage renders: the chronological post
// feed and the candidate ranking.
type HomeData struct {
	Feed       []models.FeedItem
	Ranking    []models.RankingEntry
	TotalPosts int64
	TotalUsers int64
}

// FeedService assembles the homepage data.
type FeedService struct {
	store storage.Store
}

// NewFeedService creates a new feed service.
func NewFeedService(store storage.Store) *FeedService {
	return &FeedService{store: store}
}

// Home returns the post feed (newest first) and the candidate ranking
// (highest flyer total first).
func (s *FeedService) Home(ctx context.Context) (*HomeData, error) {
	feed, err := s.store.ListFeed(ctx)
	if err != nil {
		return nil, err
	}

	ranking, err := s.store.RankCandidates(ctx)
	if err != nil {
		return nil, err
	}

	totalPosts, err := s.store.CountPosts(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &HomeData{
		Feed:       feed,
		Ranking:    ranking,
		TotalPosts: totalPosts,
		TotalUsers: totalUsers,
	}, nil
}
