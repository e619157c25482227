package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

func seedAdmin(t *testing.T, users *memUserRepo) *domain.User {
	t.Helper()
	admin, err := users.Create(context.Background(), &domain.User{
		Email: "admin@example.com",
		Roles: []string{domain.RoleAdmin},
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func TestJobService_Create_AttributesActor(t *testing.T) {
	users := newMemUserRepo()
	jobs := newMemJobRepo()
	svc := NewJobService(jobs, users, zerolog.Nop())

	admin := seedAdmin(t, users)

	job, err := svc.Create(context.Background(), admin.ID, ports.JobInput{
		Title:           "Tax Officer",
		Department:      "Revenue",
		LastDateToApply: time.Now().UTC().Add(14 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.CreatedByID != admin.ID || job.CreatedByEmail != "admin@example.com" {
		t.Fatalf("attribution missing: %+v", job)
	}
	if job.PostedDate.IsZero() {
		t.Fatalf("posted date not stamped")
	}
}

func TestJobService_Create_UnknownActor(t *testing.T) {
	svc := NewJobService(newMemJobRepo(), newMemUserRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "ghost", ports.JobInput{Title: "X"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestJobService_Get_NotFound(t *testing.T) {
	svc := NewJobService(newMemJobRepo(), newMemUserRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Update_PreservesAttribution(t *testing.T) {
	users := newMemUserRepo()
	jobs := newMemJobRepo()
	svc := NewJobService(jobs, users, zerolog.Nop())

	admin := seedAdmin(t, users)
	job, err := svc.Create(context.Background(), admin.ID, ports.JobInput{
		Title:      "Typist",
		Department: "Records",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), job.ID, ports.JobInput{
		Title:      "Senior Typist",
		Department: "Records",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Senior Typist" {
		t.Fatalf("title not updated: %+v", updated)
	}
	if updated.CreatedByID != admin.ID || !updated.PostedDate.Equal(job.PostedDate) {
		t.Fatalf("attribution or posted date lost: %+v", updated)
	}
}

func TestJobService_Update_NotFound(t *testing.T) {
	svc := NewJobService(newMemJobRepo(), newMemUserRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.JobInput{Title: "X"}); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Delete(t *testing.T) {
	users := newMemUserRepo()
	jobs := newMemJobRepo()
	svc := NewJobService(jobs, users, zerolog.Nop())

	admin := seedAdmin(t, users)
	job, err := svc.Create(context.Background(), admin.ID, ports.JobInput{Title: "Courier"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), job.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), job.ID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound on second delete, got %v", err)
	}
}

func TestJobService_List_FilterAndPagination(t *testing.T) {
	users := newMemUserRepo()
	jobs := newMemJobRepo()
	svc := NewJobService(jobs, users, zerolog.Nop())

	admin := seedAdmin(t, users)
	for i := 0; i < 25; i++ {
		dept := "Revenue"
		if i%5 == 0 {
			dept = "Transport"
		}
		if _, err := svc.Create(context.Background(), admin.ID, ports.JobInput{
			Title:      fmt.Sprintf("Post %d", i),
			Department: dept,
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	// Defaults: page 1, limit 10.
	page, err := svc.List(context.Background(), ports.ListJobsInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 25 || len(page.Items) != 10 || page.Page != 1 || page.Limit != 10 || page.TotalPages != 3 {
		t.Fatalf("unexpected page: total=%d len=%d page=%d limit=%d totalPages=%d",
			page.Total, len(page.Items), page.Page, page.Limit, page.TotalPages)
	}

	// Department filter narrows the count.
	page, err = svc.List(context.Background(), ports.ListJobsInput{Department: "Transport"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if page.Total != 5 {
		t.Fatalf("expected 5 transport jobs, got %d", page.Total)
	}

	// A page beyond the data is empty, not an error.
	page, err = svc.List(context.Background(), ports.ListJobsInput{Page: 9, Limit: 10})
	if err != nil {
		t.Fatalf("out-of-range list: %v", err)
	}
	if len(page.Items) != 0 || page.Total != 25 {
		t.Fatalf("expected empty page with full total, got %+v", page)
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 10},
		{-3, -1, 1, 10},
		{2, 50, 2, 50},
		{1, 500, 1, maxPageSize},
	}
	for _, tc := range cases {
		page, limit := normalizePage(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Fatalf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
