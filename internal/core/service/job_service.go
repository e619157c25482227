package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/govjobtrack/jobtrack/internal/api/metrics"
	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

const maxPageSize = 100

// JobService implements job posting use cases.
type JobService struct {
	jobs   ports.JobRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, users: users, logger: logger}
}

// Create posts a new job attributed to the acting admin.
func (s *JobService) Create(ctx context.Context, actorID string, input ports.JobInput) (*domain.Job, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		Title:           input.Title,
		Department:      input.Department,
		Description:     input.Description,
		Qualification:   input.Qualification,
		ApplicationLink: input.ApplicationLink,
		LastDateToApply: input.LastDateToApply,
		PostedDate:      time.Now().UTC(),
		CreatedByID:     actor.ID,
		CreatedByEmail:  actor.Email,
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()
	s.logger.Info().Str("job_id", created.ID).Str("created_by", actor.ID).Msg("job created")
	return created, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, input ports.ListJobsInput) (*ports.JobPage, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.jobs.List(ctx, ports.ListJobsFilter{
		Department: input.Department,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.JobPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Update rewrites the writable fields of an existing job. Attribution and
// posted date are preserved.
func (s *JobService) Update(ctx context.Context, id string, input ports.JobInput) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Title = input.Title
	job.Department = input.Department
	job.Description = input.Description
	job.Qualification = input.Qualification
	job.ApplicationLink = input.ApplicationLink
	job.LastDateToApply = input.LastDateToApply

	updated, err := s.jobs.Update(ctx, job)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", id).Msg("job updated")
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("job_id", id).Msg("job deleted")
	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
