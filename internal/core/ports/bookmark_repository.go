package ports

import (
	"context"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
)

// ListBookmarksFilter carries the query parameters for a user's bookmark page.
type ListBookmarksFilter struct {
	UserID   string
	Page     int  // 1-based
	Limit    int  // max rows per page (capped at 100 by the service)
	SortDesc bool // default ordering is creation time ascending
}

// BookmarkRepository defines persistence operations for bookmarks.
//
// Insert must be atomic with respect to the uniqueness of (userID, jobID):
// when two identical inserts race, exactly one succeeds and the other
// returns domain.ErrBookmarkExists. A separate exists-check followed by an
// insert does not satisfy this contract.
type BookmarkRepository interface {
	// Insert persists a new bookmark, stamping its creation time at write.
	Insert(ctx context.Context, userID, jobID string) (*domain.Bookmark, error)
	// Delete removes the bookmark for (userID, jobID), returning
	// domain.ErrBookmarkNotFound when no such row exists.
	Delete(ctx context.Context, userID, jobID string) error
	// ListByUser returns a page of the user's bookmarks and the total count.
	ListByUser(ctx context.Context, filter ListBookmarksFilter) ([]*domain.Bookmark, int64, error)
}
