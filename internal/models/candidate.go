package models

// Candidate represents a political candidate that flyer posts refer to.
// Candidates are created lazily the first time a post names them.
type Candidate struct {
	// ID is the unique identifier for the candidate (UUID format).
	ID string `db:"id"`

	// Name is the candidate's name as submitted on the post form.
	// Unique: concurrent posts for the same new name resolve to one row.
	Name string `db:"name"`

	// Party is the candidate's party affiliation, if known.
	Party string `db:"party"`
}
