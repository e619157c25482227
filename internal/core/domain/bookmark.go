package domain

import (
	"errors"
	"time"
)

var ErrBookmarkExists = errors.New("bookmark already exists")
var ErrBookmarkNotFound = errors.New("bookmark not found")

// Bookmark links a user to a job they want to track. At most one bookmark
// may exist per (UserID, JobID) pair; the storage layer enforces this with
// a unique compound index so the second of two racing inserts is rejected.
type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	JobID     string    `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}
