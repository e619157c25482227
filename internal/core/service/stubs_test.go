package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User // keyed by email
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("u%d", r.seq)
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memJobRepo struct {
	mu   sync.Mutex
	seq  int
	jobs map[string]*domain.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *memJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	clone := *job
	clone.ID = fmt.Sprintf("j%d", r.seq)
	r.jobs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *memJobRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Job, 0, len(ids))
	for _, id := range ids {
		if j, ok := r.jobs[id]; ok {
			clone := *j
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memJobRepo) List(_ context.Context, filter ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if filter.Department != "" && j.Department != filter.Department {
			continue
		}
		clone := *j
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, k int) bool {
		return matched[i].PostedDate.After(matched[k].PostedDate)
	})
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *memJobRepo) Update(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *job
	r.jobs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memJobRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

// memBookmarkRepo honors the BookmarkRepository atomicity contract: the
// uniqueness check and the insert happen under one lock, so concurrent
// identical inserts admit exactly one row.
type memBookmarkRepo struct {
	mu   sync.Mutex
	seq  int
	rows map[[2]string]*domain.Bookmark // keyed by (userID, jobID)
}

func newMemBookmarkRepo() *memBookmarkRepo {
	return &memBookmarkRepo{rows: make(map[[2]string]*domain.Bookmark)}
}

func (r *memBookmarkRepo) Insert(_ context.Context, userID, jobID string) (*domain.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{userID, jobID}
	if _, exists := r.rows[key]; exists {
		return nil, domain.ErrBookmarkExists
	}
	r.seq++
	bm := &domain.Bookmark{
		ID:        fmt.Sprintf("b%d", r.seq),
		UserID:    userID,
		JobID:     jobID,
		CreatedAt: time.Now().UTC(),
	}
	r.rows[key] = bm
	clone := *bm
	return &clone, nil
}

func (r *memBookmarkRepo) Delete(_ context.Context, userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{userID, jobID}
	if _, exists := r.rows[key]; !exists {
		return domain.ErrBookmarkNotFound
	}
	delete(r.rows, key)
	return nil
}

func (r *memBookmarkRepo) ListByUser(_ context.Context, filter ports.ListBookmarksFilter) ([]*domain.Bookmark, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*domain.Bookmark, 0, len(r.rows))
	for _, bm := range r.rows {
		if bm.UserID != filter.UserID {
			continue
		}
		clone := *bm
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, k int) bool {
		if filter.SortDesc {
			return matched[i].CreatedAt.After(matched[k].CreatedAt)
		}
		return matched[i].CreatedAt.Before(matched[k].CreatedAt)
	})
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *memBookmarkRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
