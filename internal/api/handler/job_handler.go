package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

const dateLayout = "2006-01-02"

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type jobRequest struct {
	Title           string `json:"title"              validate:"required,max=255"`
	Department      string `json:"department"         validate:"required,max=150"`
	Description     string `json:"description"        validate:"required"`
	Qualification   string `json:"qualification"      validate:"required"`
	ApplicationLink string `json:"application_link"   validate:"omitempty,max=500"`
	LastDateToApply string `json:"last_date_to_apply" validate:"omitempty,datetime=2006-01-02"`
}

type jobResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Department      string    `json:"department"`
	Description     string    `json:"description"`
	Qualification   string    `json:"qualification"`
	ApplicationLink string    `json:"application_link,omitempty"`
	LastDateToApply string    `json:"last_date_to_apply,omitempty"`
	PostedDate      time.Time `json:"posted_date"`
	CreatedByID     string    `json:"created_by_id"`
	CreatedByEmail  string    `json:"created_by_email"`
}

type jobPageResponse struct {
	Items      []jobResponse `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}

func toJobResponse(job *domain.Job) jobResponse {
	resp := jobResponse{
		ID:              job.ID,
		Title:           job.Title,
		Department:      job.Department,
		Description:     job.Description,
		Qualification:   job.Qualification,
		ApplicationLink: job.ApplicationLink,
		PostedDate:      job.PostedDate,
		CreatedByID:     job.CreatedByID,
		CreatedByEmail:  job.CreatedByEmail,
	}
	if !job.LastDateToApply.IsZero() {
		resp.LastDateToApply = job.LastDateToApply.Format(dateLayout)
	}
	return resp
}

func (r *jobRequest) toInput() (ports.JobInput, error) {
	input := ports.JobInput{
		Title:           r.Title,
		Department:      r.Department,
		Description:     r.Description,
		Qualification:   r.Qualification,
		ApplicationLink: r.ApplicationLink,
	}
	if r.LastDateToApply != "" {
		deadline, err := time.Parse(dateLayout, r.LastDateToApply)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "last_date_to_apply must be YYYY-MM-DD")
		}
		input.LastDateToApply = deadline
	}
	return input, nil
}

// Create handles POST /v1/jobs (admin only).
//
// @Summary      Post a new job opening
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	job, err := h.service.Create(c.Request().Context(), p.UserID, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// Get handles GET /v1/jobs/:id (public).
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// List handles GET /v1/jobs (public).
//
// @Summary      List job openings
// @Tags         jobs
// @Produce      json
// @Param        page        query     int     false  "1-based page number"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Param        department  query     string  false  "Filter by department"
// @Success      200         {object}  jobPageResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListJobsInput{
		Department: c.QueryParam("department"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	items := make([]jobResponse, 0, len(result.Items))
	for _, job := range result.Items {
		items = append(items, toJobResponse(job))
	}
	return c.JSON(http.StatusOK, jobPageResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Update handles PUT /v1/jobs/:id (admin only).
//
// @Summary      Update a job opening
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Job id"
// @Param        body  body      jobRequest  true  "Job details"
// @Success      200   {object}  jobResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	job, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Delete handles DELETE /v1/jobs/:id (admin only).
//
// @Summary      Delete a job opening
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted successfully!"})
}
