package models

// Post is one photographic record of flyers posted for a candidate.
// Posts are append-only: there are no edit or delete operations.
type Post struct {
	// ID is the unique identifier for the post (UUID format).
	ID string `db:"id"`

	// UserID references the user who submitted the post.
	UserID string `db:"user_id"`

	// CandidateID references the candidate the flyers are for.
	CandidateID string `db:"candidate_id"`

	// FlyerCount is the number of flyers the photo documents.
	FlyerCount int `db:"flyer_count"`

	// PhotoURL is the public path of the stored proof photo.
	PhotoURL string `db:"photo_url"`

	// CreatedAt is the Unix timestamp assigned at insert time.
	CreatedAt int64 `db:"created_at"`
}

// FeedItem is a post joined with display names for the home feed.
type FeedItem struct {
	Post
	Username      string `db:"username"`
	CandidateName string `db:"candidate_name"`
}

// RankingEntry is one row of the candidate ranking: a candidate and the
// sum of flyer counts across all its posts.
type RankingEntry struct {
	CandidateID string `db:"candidate_id"`
	Name        string `db:"name"`
	Party       string `db:"party"`
	TotalFlyers int64  `db:"total_flyers"`
}
