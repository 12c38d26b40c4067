package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/callscope-ai/callscope/pkg/models"
	"github.com/callscope-ai/callscope/pkg/services"
)

// createBlueprintHandler handles POST /api/v1/blueprints.
func (s *Server) createBlueprintHandler(c *echo.Context) error {
	var req CreateBlueprintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := services.CreateBlueprintInput{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
		Language:    req.Language,
	}
	for _, st := range req.Stages {
		stage := services.StageInput{
			Name:          st.StageName,
			OrderingIndex: st.OrderingIndex,
			Weight:        st.Weight,
			Metadata:      st.Metadata,
		}
		for _, b := range st.Behaviors {
			stage.Behaviors = append(stage.Behaviors, services.BehaviorInput{
				Name:           b.BehaviorName,
				Description:    b.Description,
				Type:           models.BehaviorType(b.BehaviorType),
				DetectionMode:  models.DetectionMode(b.DetectionMode),
				Phrases:        b.Phrases,
				Weight:         b.Weight,
				CriticalAction: models.CriticalAction(b.CriticalAction),
				UIOrder:        b.UIOrder,
				Metadata:       b.Metadata,
			})
		}
		input.Stages = append(input.Stages, stage)
	}

	detail, err := s.blueprintService.CreateBlueprint(c.Request().Context(), input)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, toBlueprintResponse(detail))
}

// getBlueprintHandler handles GET /api/v1/blueprints/:id.
func (s *Server) getBlueprintHandler(c *echo.Context) error {
	blueprintID := c.Param("id")
	if blueprintID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "blueprint id is required")
	}

	detail, err := s.blueprintService.GetBlueprint(c.Request().Context(), blueprintID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toBlueprintResponse(detail))
}

// listBlueprintsHandler handles GET /api/v1/blueprints?company_id=...
func (s *Server) listBlueprintsHandler(c *echo.Context) error {
	companyID := c.QueryParam("company_id")
	if companyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "company_id query parameter is required")
	}

	blueprints, err := s.blueprintService.ListBlueprints(c.Request().Context(), companyID)
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]BlueprintListItem, 0, len(blueprints))
	for _, bp := range blueprints {
		items = append(items, BlueprintListItem{
			BlueprintID:   bp.ID,
			Name:          bp.Name,
			Status:        string(bp.Status),
			VersionNumber: bp.VersionNumber,
			CreatedAt:     bp.CreatedAt,
			UpdatedAt:     bp.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, items)
}

// archiveBlueprintHandler handles DELETE /api/v1/blueprints/:id.
// Blueprints are archived, never hard-deleted: published versions may
// still be referenced by evaluations.
func (s *Server) archiveBlueprintHandler(c *echo.Context) error {
	blueprintID := c.Param("id")
	if blueprintID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "blueprint id is required")
	}

	if err := s.blueprintService.ArchiveBlueprint(c.Request().Context(), blueprintID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// publishBlueprintHandler handles POST /api/v1/blueprints/:id/publish.
func (s *Server) publishBlueprintHandler(c *echo.Context) error {
	blueprintID := c.Param("id")
	if blueprintID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "blueprint id is required")
	}

	var req PublishBlueprintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := s.blueprintService.Publish(c.Request().Context(), blueprintID, services.PublishOptions{
		PublishedBy:           extractAuthor(c),
		PublishNote:           req.PublishNote,
		ForceNormalizeWeights: req.ForceNormalizeWeights,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &PublishResponse{
		JobID:              result.Job.ID,
		BlueprintVersionID: result.Version.ID,
		VersionNumber:      result.Version.VersionNumber,
		Status:             jobPublicStatus(result.Job),
		Links: PublishLinks{
			Status: "/api/v1/blueprints/" + blueprintID + "/publish-status/" + result.Job.ID,
		},
	})
}

// publishStatusHandler handles GET /api/v1/blueprints/:id/publish-status/:job_id.
func (s *Server) publishStatusHandler(c *echo.Context) error {
	blueprintID := c.Param("id")
	jobID := c.Param("job_id")
	if blueprintID == "" || jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "blueprint id and job id are required")
	}

	status, err := s.blueprintService.GetPublishStatus(c.Request().Context(), blueprintID, jobID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &PublishStatusResponse{
		JobID:                 status.Job.ID,
		Status:                jobPublicStatus(status.Job),
		BlueprintStatus:       string(status.BlueprintStatus),
		CompiledFlowVersionID: status.CompiledFlowVersionID,
	}
	if status.Job.ErrorMessage != nil {
		resp.ErrorMessage = *status.Job.ErrorMessage
	}
	return c.JSON(http.StatusOK, resp)
}
