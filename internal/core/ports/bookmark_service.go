package ports

import (
	"context"
	"time"
)

// BookmarkView is a bookmark joined with the job attributes shown in lists.
type BookmarkView struct {
	ID              string
	UserID          string
	JobID           string
	JobTitle        string
	JobDepartment   string
	LastDateToApply time.Time
	CreatedAt       time.Time
}

// ListBookmarksInput carries all parameters for the bookmark list endpoint.
type ListBookmarksInput struct {
	UserID string
	Page   int
	Limit  int
	// Sort is "created_at" (default, ascending) or "-created_at".
	Sort string
}

// BookmarkPage is one page of a user's bookmarks.
type BookmarkPage struct {
	Items      []BookmarkView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BookmarkService defines use-case operations for bookmarks.
type BookmarkService interface {
	// Add bookmarks jobID for userID. Returns domain.ErrJobNotFound when
	// the job does not exist and domain.ErrBookmarkExists when the pair is
	// already bookmarked, including when two identical adds race.
	Add(ctx context.Context, userID, jobID string) (*BookmarkView, error)
	// Remove deletes the bookmark. The second caller in a race observes
	// domain.ErrBookmarkNotFound, not silent success.
	Remove(ctx context.Context, userID, jobID string) error
	List(ctx context.Context, input ListBookmarksInput) (*BookmarkPage, error)
}
