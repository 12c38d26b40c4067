package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/callscope-ai/callscope/pkg/services"
)

// sandboxEvaluateHandler handles POST /api/v1/blueprints/:id/sandbox-evaluate.
// mode=sync runs the evaluation inline and returns the finished run;
// mode=async (the default) queues it for the worker pool.
func (s *Server) sandboxEvaluateHandler(c *echo.Context) error {
	blueprintID := c.Param("id")
	if blueprintID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "blueprint id is required")
	}

	var req SandboxEvaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	switch req.Mode {
	case "", "sync", "async":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "mode must be sync or async")
	}

	run, err := s.sandboxService.CreateRun(c.Request().Context(), services.CreateSandboxRunInput{
		BlueprintID:    blueprintID,
		RecordingID:    req.Input.RecordingID,
		Transcript:     req.Input.Transcript,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
		Synchronous:    req.Mode == "sync",
	})
	if err != nil {
		return mapServiceError(err)
	}

	httpStatus := http.StatusAccepted
	if req.Mode == "sync" {
		httpStatus = http.StatusOK
	}
	return c.JSON(httpStatus, toSandboxRunResponse(run))
}

// getSandboxRunHandler handles GET /api/v1/blueprints/:id/sandbox-runs/:run_id.
func (s *Server) getSandboxRunHandler(c *echo.Context) error {
	blueprintID := c.Param("id")
	runID := c.Param("run_id")
	if blueprintID == "" || runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "blueprint id and run id are required")
	}

	run, err := s.sandboxService.GetRun(c.Request().Context(), blueprintID, runID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toSandboxRunResponse(run))
}
