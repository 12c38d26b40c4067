package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/job"
)

func TestSandboxEvaluateHandler_RejectsUnknownMode(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.POST("/api/v1/blueprints/:id/sandbox-evaluate", s.sandboxEvaluateHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/blueprints/bp-1/sandbox-evaluate",
		strings.NewReader(`{"mode":"streaming","input":{"recording_id":"rec-1"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mode must be sync or async")
}

func TestEvaluateRecordingHandler_RequiresBlueprintID(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.POST("/api/v1/recordings/:id/evaluate", s.evaluateRecordingHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recordings/rec-1/evaluate",
		strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "blueprint_id field is required")
}

func TestTaskHandlers_UnconfiguredReturn503(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name    string
		handler echo.HandlerFunc
		body    string
	}{
		{"compile-blueprint", s.taskCompileBlueprintHandler, `{"blueprint_version_id":"v-1"}`},
		{"process-recording", s.taskProcessRecordingHandler, `{"recording_id":"rec-1","blueprint_id":"bp-1"}`},
		{"sandbox-evaluate", s.taskSandboxEvaluateHandler, `{"sandbox_run_id":"run-1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/"+tt.name, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := tt.handler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusServiceUnavailable, he.Code)
				}
			}
		})
	}
}

func TestJobPublicStatus(t *testing.T) {
	tests := []struct {
		status job.Status
		want   string
	}{
		{job.StatusPending, "queued"},
		{job.StatusInProgress, "running"},
		{job.StatusCompleted, "succeeded"},
		{job.StatusFailed, "failed"},
		{job.StatusTimedOut, "failed"},
		{job.StatusCancelled, "failed"},
	}
	for _, tt := range tests {
		got := jobPublicStatus(&ent.Job{Status: tt.status})
		require.Equal(t, tt.want, got, "status %s", tt.status)
	}
}
