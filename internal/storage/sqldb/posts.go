package sqldb

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rvcoutinho/santinho/internal/models"
)

// ResolveCandidate returns the candidate with the given name, creating
// it if absent. INSERT ... ON CONFLICT DO NOTHING plus the follow-up
// select makes the get-or-create atomic: concurrent resolutions of the
// same new name converge on a single row.
func (s *DB) ResolveCandidate(ctx context.Context, name string) (*models.Candidate, error) {
	return s.resolveCandidate(ctx, s.db, name)
}

func (s *DB) resolveCandidate(ctx context.Context, ext sqlx.ExtContext, name string) (*models.Candidate, error) {
	query, args, err := s.sb.
		Insert("candidates").
		Columns("id", "name", "party").
		Values(uuid.New().String(), name, "").
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate insert: %w", err)
	}
	if _, err := ext.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to upsert candidate: %w", err)
	}

	query, args, err = s.sb.
		Select("id", "name", "party").
		From("candidates").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate query: %w", err)
	}

	candidate := &models.Candidate{}
	if err := sqlx.GetContext(ctx, ext, candidate, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

// ListCandidates returns all known candidates ordered by name.
func (s *DB) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	query, args, err := s.sb.
		Select("id", "name", "party").
		From("candidates").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build candidates query: %w", err)
	}

	candidates := []models.Candidate{}
	if err := s.db.SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// CreatePost resolves the candidate by name and inserts the post inside
// one transaction, so a failed insert leaves no orphan candidate
// reference. ID, CandidateID and CreatedAt are backfilled if unset.
func (s *DB) CreatePost(ctx context.Context, post *models.Post, candidateName string) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt == 0 {
		post.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	candidate, err := s.resolveCandidate(ctx, tx, candidateName)
	if err != nil {
		return err
	}
	post.CandidateID = candidate.ID

	query, args, err := s.sb.
		Insert("posts").
		Columns("id", "user_id", "candidate_id", "flyer_count", "photo_url", "created_at").
		Values(post.ID, post.UserID, post.CandidateID, post.FlyerCount, post.PhotoURL, post.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListFeed returns all posts joined with author and candidate names,
// newest first. The post ID breaks timestamp ties so the order is
// stable.
func (s *DB) ListFeed(ctx context.Context) ([]models.FeedItem, error) {
	query, args, err := s.sb.
		Select(
			"p.id", "p.user_id", "p.candidate_id", "p.flyer_count",
			"p.photo_url", "p.created_at",
			"u.username AS username",
			"c.name AS candidate_name",
		).
		From("posts p").
		Join("users u ON u.id = p.user_id").
		Join("candidates c ON c.id = p.candidate_id").
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build feed query: %w", err)
	}

	feed := []models.FeedItem{}
	if err := s.db.SelectContext(ctx, &feed, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}
	return feed, nil
}

// RankCandidates sums flyer counts per candidate, largest total first.
// The inner join excludes candidates with no posts; ties are broken by
// candidate name.
func (s *DB) RankCandidates(ctx context.Context) ([]models.RankingEntry, error) {
	query, args, err := s.sb.
		Select(
			"c.id AS candidate_id",
			"c.name AS name",
			"c.party AS party",
			"SUM(p.flyer_count) AS total_flyers",
		).
		From("candidates c").
		Join("posts p ON p.candidate_id = c.id").
		GroupBy("c.id", "c.name", "c.party").
		OrderBy("total_flyers DESC", "c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build ranking query: %w", err)
	}

	ranking := []models.RankingEntry{}
	if err := s.db.SelectContext(ctx, &ranking, query, args...); err != nil {
		return nil, fmt.Errorf("failed to rank candidates: %w", err)
	}
	return ranking, nil
}
