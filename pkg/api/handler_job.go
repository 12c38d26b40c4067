package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/callscope-ai/callscope/ent/job"
)

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job id is required")
	}

	queued, err := s.jobService.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toJobResponse(queued))
}

// listJobsHandler handles GET /api/v1/jobs?status=...&kind=...&limit=...
func (s *Server) listJobsHandler(c *echo.Context) error {
	var status job.Status
	if v := c.QueryParam("status"); v != "" {
		if err := job.StatusValidator(job.Status(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		status = job.Status(v)
	}
	var kind job.Kind
	if v := c.QueryParam("kind"); v != "" {
		if err := job.KindValidator(job.Kind(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid kind: "+v)
		}
		kind = job.Kind(v)
	}
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: "+v)
		}
		limit = n
	}

	jobs, err := s.jobService.ListJobs(c.Request().Context(), status, kind, limit)
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]*JobResponse, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, toJobResponse(j))
	}
	return c.JSON(http.StatusOK, items)
}
