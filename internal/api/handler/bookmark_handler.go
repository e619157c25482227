package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

// BookmarkHandler handles HTTP requests for bookmark operations.
type BookmarkHandler struct {
	service ports.BookmarkService
}

func NewBookmarkHandler(service ports.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

type bookmarkResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	JobID           string    `json:"job_id"`
	JobTitle        string    `json:"job_title"`
	JobDepartment   string    `json:"job_department"`
	LastDateToApply string    `json:"last_date_to_apply,omitempty"`
	BookmarkedAt    time.Time `json:"bookmarked_at"`
}

type bookmarkPageResponse struct {
	Items      []bookmarkResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

func toBookmarkResponse(v ports.BookmarkView) bookmarkResponse {
	resp := bookmarkResponse{
		ID:            v.ID,
		UserID:        v.UserID,
		JobID:         v.JobID,
		JobTitle:      v.JobTitle,
		JobDepartment: v.JobDepartment,
		BookmarkedAt:  v.CreatedAt,
	}
	if !v.LastDateToApply.IsZero() {
		resp.LastDateToApply = v.LastDateToApply.Format(dateLayout)
	}
	return resp
}

// Add handles POST /v1/bookmarks/jobs/:jobID (user role).
//
// @Summary      Bookmark a job
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        jobID  path      string  true  "Job id"
// @Success      201    {object}  bookmarkResponse
// @Failure      404    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /v1/bookmarks/jobs/{jobID} [post]
func (h *BookmarkHandler) Add(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	view, err := h.service.Add(c.Request().Context(), p.UserID, c.Param("jobID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBookmarkResponse(*view))
}

// Remove handles DELETE /v1/bookmarks/jobs/:jobID (user role).
//
// @Summary      Remove a bookmark
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        jobID  path      string  true  "Job id"
// @Success      200    {object}  messageResponse
// @Failure      404    {object}  map[string]string
// @Router       /v1/bookmarks/jobs/{jobID} [delete]
func (h *BookmarkHandler) Remove(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), p.UserID, c.Param("jobID")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Bookmark removed successfully!"})
}

// List handles GET /v1/bookmarks (user role).
//
// @Summary      List the caller's bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int     false  "1-based page number"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Param        sort   query     string  false  "created_at (default) or -created_at"
// @Success      200    {object}  bookmarkPageResponse
// @Router       /v1/bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListBookmarksInput{
		UserID: p.UserID,
		Page:   page,
		Limit:  limit,
		Sort:   c.QueryParam("sort"),
	})
	if err != nil {
		return err
	}

	items := make([]bookmarkResponse, 0, len(result.Items))
	for _, v := range result.Items {
		items = append(items, toBookmarkResponse(v))
	}
	return c.JSON(http.StatusOK, bookmarkPageResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}
