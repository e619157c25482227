package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/govjobtrack/jobtrack/internal/api/metrics"
	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

// BookmarkService implements bookmark use cases. The at-most-one-per-
// (user, job) invariant lives in the repository's atomic insert; this
// service only translates outcomes and shapes the joined views.
type BookmarkService struct {
	bookmarks ports.BookmarkRepository
	jobs      ports.JobRepository
	logger    zerolog.Logger
}

func NewBookmarkService(bookmarks ports.BookmarkRepository, jobs ports.JobRepository, logger zerolog.Logger) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks, jobs: jobs, logger: logger}
}

// Add bookmarks jobID for userID. The insert itself is the uniqueness
// check: when two identical adds race, the storage layer rejects exactly
// one with domain.ErrBookmarkExists.
func (s *BookmarkService) Add(ctx context.Context, userID, jobID string) (*ports.BookmarkView, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	bm, err := s.bookmarks.Insert(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrBookmarkExists) {
			metrics.BookmarkConflictsTotal.Inc()
		}
		return nil, err
	}

	metrics.BookmarksCreatedTotal.Inc()
	s.logger.Info().Str("bookmark_id", bm.ID).Str("user_id", userID).Str("job_id", jobID).Msg("bookmark created")

	return &ports.BookmarkView{
		ID:              bm.ID,
		UserID:          bm.UserID,
		JobID:           bm.JobID,
		JobTitle:        job.Title,
		JobDepartment:   job.Department,
		LastDateToApply: job.LastDateToApply,
		CreatedAt:       bm.CreatedAt,
	}, nil
}

// Remove deletes the bookmark for (userID, jobID). The post-condition "no
// bookmark for this key" holds either way, but a caller racing a removal
// still observes domain.ErrBookmarkNotFound rather than silent success.
func (s *BookmarkService) Remove(ctx context.Context, userID, jobID string) error {
	if err := s.bookmarks.Delete(ctx, userID, jobID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("job_id", jobID).Msg("bookmark removed")
	return nil
}

// List returns one page of the user's bookmarks joined with job display
// attributes, ordered by creation time ascending unless "-created_at" is
// requested.
func (s *BookmarkService) List(ctx context.Context, input ports.ListBookmarksInput) (*ports.BookmarkPage, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.bookmarks.ListByUser(ctx, ports.ListBookmarksFilter{
		UserID:   input.UserID,
		Page:     page,
		Limit:    limit,
		SortDesc: input.Sort == "-created_at",
	})
	if err != nil {
		return nil, err
	}

	jobIDs := make([]string, 0, len(items))
	for _, bm := range items {
		jobIDs = append(jobIDs, bm.JobID)
	}
	jobs, err := s.jobs.FindByIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	views := make([]ports.BookmarkView, 0, len(items))
	for _, bm := range items {
		view := ports.BookmarkView{
			ID:        bm.ID,
			UserID:    bm.UserID,
			JobID:     bm.JobID,
			CreatedAt: bm.CreatedAt,
		}
		// A job deleted after bookmarking leaves the row with empty
		// display fields rather than failing the whole page.
		if j, ok := byID[bm.JobID]; ok {
			view.JobTitle = j.Title
			view.JobDepartment = j.Department
			view.LastDateToApply = j.LastDateToApply
		}
		views = append(views, view)
	}

	return &ports.BookmarkPage{
		Items:      views,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
