package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/callscope-ai/callscope/pkg/services"
)

// createRecordingHandler handles POST /api/v1/recordings.
func (s *Server) createRecordingHandler(c *echo.Context) error {
	var req CreateRecordingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := s.recordingService.CreateRecording(c.Request().Context(), req.CompanyID, req.AudioURL)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, toRecordingResponse(rec))
}

// getRecordingHandler handles GET /api/v1/recordings/:id.
func (s *Server) getRecordingHandler(c *echo.Context) error {
	recordingID := c.Param("id")
	if recordingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "recording id is required")
	}

	rec, err := s.recordingService.GetRecording(c.Request().Context(), recordingID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toRecordingResponse(rec))
}

// deleteRecordingHandler handles DELETE /api/v1/recordings/:id.
func (s *Server) deleteRecordingHandler(c *echo.Context) error {
	recordingID := c.Param("id")
	if recordingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "recording id is required")
	}

	if err := s.recordingService.DeleteRecording(c.Request().Context(), recordingID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// evaluateRecordingHandler handles POST /api/v1/recordings/:id/evaluate.
func (s *Server) evaluateRecordingHandler(c *echo.Context) error {
	recordingID := c.Param("id")
	if recordingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "recording id is required")
	}

	var req EvaluateRecordingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.BlueprintID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "blueprint_id field is required")
	}

	result, err := s.evaluationService.RequestEvaluation(c.Request().Context(), recordingID, req.BlueprintID)
	if err != nil {
		// A pending evaluation already covers this recording; point the
		// caller at it instead of failing outright.
		if errors.Is(err, services.ErrAlreadyExists) && result != nil {
			return c.JSON(http.StatusConflict, &EvaluateResponse{
				EvaluationID: result.Evaluation.ID,
				Status:       string(result.Evaluation.Status),
			})
		}
		return mapServiceError(err)
	}

	resp := &EvaluateResponse{
		EvaluationID: result.Evaluation.ID,
		Status:       string(result.Evaluation.Status),
	}
	if result.Job != nil {
		resp.JobID = result.Job.ID
	}
	httpStatus := http.StatusAccepted
	if result.Job == nil {
		// Completed evaluation returned as-is, nothing was queued.
		httpStatus = http.StatusOK
	}
	return c.JSON(httpStatus, resp)
}

// getEvaluationHandler handles GET /api/v1/evaluations/:recording_id.
func (s *Server) getEvaluationHandler(c *echo.Context) error {
	recordingID := c.Param("recording_id")
	if recordingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "recording id is required")
	}

	eval, err := s.evaluationService.GetEvaluation(c.Request().Context(), recordingID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toEvaluationResponse(eval))
}
