package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/callscope-ai/callscope/pkg/blueprint"
)

// The /tasks handlers accept direct task deliveries over HTTP. They run
// the same executor functions the queue dispatcher calls, so a task can
// be replayed through either path with the same effect.

// taskCompileBlueprintHandler handles POST /api/v1/tasks/compile-blueprint.
func (s *Server) taskCompileBlueprintHandler(c *echo.Context) error {
	if s.compiler == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "task handlers not configured")
	}

	var req TaskCompileBlueprintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.BlueprintVersionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "blueprint_version_id field is required")
	}

	opts := blueprint.CompileOptions{}
	if req.CompileOptions != nil {
		opts.ForceNormalizeWeights = req.CompileOptions.ForceNormalizeWeights
	}

	result, err := s.compiler.Compile(c.Request().Context(), req.BlueprintVersionID, opts)
	if err != nil {
		return mapServiceError(err)
	}
	if !result.Success {
		return echo.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("blueprint version %s failed validation: %s", req.BlueprintVersionID, result.Errors[0].Message))
	}

	return c.JSON(http.StatusOK, result)
}

// taskProcessRecordingHandler handles POST /api/v1/tasks/process-recording.
func (s *Server) taskProcessRecordingHandler(c *echo.Context) error {
	if s.pipeline == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "task handlers not configured")
	}

	var req TaskProcessRecordingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RecordingID == "" || req.BlueprintID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "recording_id and blueprint_id fields are required")
	}

	if err := s.pipeline.EvaluateRecording(c.Request().Context(), req.RecordingID, req.BlueprintID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &TaskResponse{Status: "completed"})
}

// taskSandboxEvaluateHandler handles POST /api/v1/tasks/sandbox-evaluate.
func (s *Server) taskSandboxEvaluateHandler(c *echo.Context) error {
	if s.pipeline == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "task handlers not configured")
	}

	var req TaskSandboxEvaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SandboxRunID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sandbox_run_id field is required")
	}

	if err := s.pipeline.ExecuteSandbox(c.Request().Context(), req.SandboxRunID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &TaskResponse{Status: "completed"})
}
