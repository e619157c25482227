package ports

import (
	"context"
	"time"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
)

// JobInput carries the writable fields of a job posting.
type JobInput struct {
	Title           string
	Department      string
	Description     string
	Qualification   string
	ApplicationLink string
	LastDateToApply time.Time
}

// ListJobsInput carries all parameters for the job list endpoint.
type ListJobsInput struct {
	Department string
	Page       int
	Limit      int
}

// JobPage is one page of job postings.
type JobPage struct {
	Items      []*domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService defines use-case operations for job postings.
type JobService interface {
	// Create posts a new job attributed to the admin identified by actorID.
	Create(ctx context.Context, actorID string, input JobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, input ListJobsInput) (*JobPage, error)
	Update(ctx context.Context, id string, input JobInput) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
