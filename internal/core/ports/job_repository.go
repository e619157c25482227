package ports

import (
	"context"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
)

// ListJobsFilter carries the query parameters for listing jobs.
type ListJobsFilter struct {
	Department string // optional: exact match on department
	Page       int    // 1-based
	Limit      int    // max rows per page (capped at 100 by the service)
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// FindByIDs returns the jobs matching the given ids; missing ids are
	// simply absent from the result, not an error.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Job, error)
	// List returns a page of jobs sorted by posted date descending and the
	// total count matching the filter.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
	Update(ctx context.Context, job *domain.Job) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
