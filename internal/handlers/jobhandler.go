package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/search"
)

// JobReader is the part of the job service the HTTP layer reads through.
type JobReader interface {
	List(ctx context.Context, f search.Filter, p search.Paging) ([]models.Job, error)
	Featured(ctx context.Context, limit int) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
}

type JobHandler struct {
	Jobs   JobReader
	Logger *log.Logger
}

func NewJobHandler(jobs JobReader, logger *log.Logger) *JobHandler {
	return &JobHandler{
		Jobs:   jobs,
		Logger: logger,
	}
}

// ListJobs is GET /api/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	query := c.Request.URL.Query()
	filter, err := search.ParseFilter(query)
	if err != nil {
		respondError(c, h.Logger, "ListJobs", err, "")
		return
	}
	paging, err := search.ParsePaging(query, search.DefaultLimit)
	if err != nil {
		respondError(c, h.Logger, "ListJobs", err, "")
		return
	}

	jobs, err := h.Jobs.List(c.Request.Context(), filter, paging)
	if err != nil {
		respondError(c, h.Logger, "ListJobs", err, "")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// FeaturedJobs is GET /api/jobs/featured
func (h *JobHandler) FeaturedJobs(c *gin.Context) {
	paging, err := search.ParsePaging(c.Request.URL.Query(), search.FeaturedLimit)
	if err != nil {
		respondError(c, h.Logger, "FeaturedJobs", err, "")
		return
	}

	jobs, err := h.Jobs.Featured(c.Request.Context(), paging.Limit)
	if err != nil {
		respondError(c, h.Logger, "FeaturedJobs", err, "")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is GET /api/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "GetJob", err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}
