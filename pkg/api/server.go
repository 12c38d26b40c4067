package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	echo "github.com/labstack/echo/v5"

	"github.com/callscope-ai/callscope/pkg/blueprint"
	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/database"
	"github.com/callscope-ai/callscope/pkg/pipeline"
	"github.com/callscope-ai/callscope/pkg/queue"
	"github.com/callscope-ai/callscope/pkg/services"
)

// Server is the HTTP surface over the service layer. All routes under
// /api/v1 require a bearer token when one is configured; /health is
// always open so orchestrators can probe it.
type Server struct {
	cfg *config.Config
	db  *database.Client

	blueprintService  *services.BlueprintService
	recordingService  *services.RecordingService
	evaluationService *services.EvaluationService
	sandboxService    *services.SandboxService
	jobService        *services.JobService

	workerPool *queue.WorkerPool

	// Task handlers share these with the queue dispatcher so the HTTP
	// path and the worker path run identical code.
	compiler *blueprint.Compiler
	pipeline *pipeline.Executor

	echo    *echo.Echo
	httpSrv *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	blueprints *services.BlueprintService,
	recordings *services.RecordingService,
	evaluations *services.EvaluationService,
	sandbox *services.SandboxService,
	jobs *services.JobService,
	workerPool *queue.WorkerPool,
	compiler *blueprint.Compiler,
	pipelineExec *pipeline.Executor,
) *Server {
	if cfg == nil {
		panic("NewServer: cfg must not be nil")
	}
	if db == nil {
		panic("NewServer: db must not be nil")
	}

	s := &Server{
		cfg:               cfg,
		db:                db,
		blueprintService:  blueprints,
		recordingService:  recordings,
		evaluationService: evaluations,
		sandboxService:    sandbox,
		jobService:        jobs,
		workerPool:        workerPool,
		compiler:          compiler,
		pipeline:          pipelineExec,
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")

	token := ""
	if s.cfg.Server != nil && s.cfg.Server.AuthTokenEnv != "" {
		token = os.Getenv(s.cfg.Server.AuthTokenEnv)
	}
	if token != "" {
		v1.Use(bearerAuth(token))
	} else {
		slog.Warn("API auth token not set; /api/v1 endpoints are unauthenticated")
	}

	v1.POST("/blueprints", s.createBlueprintHandler)
	v1.GET("/blueprints", s.listBlueprintsHandler)
	v1.GET("/blueprints/:id", s.getBlueprintHandler)
	v1.DELETE("/blueprints/:id", s.archiveBlueprintHandler)
	v1.POST("/blueprints/:id/publish", s.publishBlueprintHandler)
	v1.GET("/blueprints/:id/publish-status/:job_id", s.publishStatusHandler)
	v1.POST("/blueprints/:id/sandbox-evaluate", s.sandboxEvaluateHandler)
	v1.GET("/blueprints/:id/sandbox-runs/:run_id", s.getSandboxRunHandler)

	v1.POST("/recordings", s.createRecordingHandler)
	v1.GET("/recordings/:id", s.getRecordingHandler)
	v1.DELETE("/recordings/:id", s.deleteRecordingHandler)
	v1.POST("/recordings/:id/evaluate", s.evaluateRecordingHandler)
	v1.GET("/evaluations/:recording_id", s.getEvaluationHandler)

	v1.GET("/jobs", s.listJobsHandler)
	v1.GET("/jobs/:id", s.getJobHandler)

	// Internal task handlers: the queue dispatcher calls the same
	// executor functions, so replaying a task over HTTP is safe.
	v1.POST("/tasks/compile-blueprint", s.taskCompileBlueprintHandler)
	v1.POST("/tasks/process-recording", s.taskProcessRecordingHandler)
	v1.POST("/tasks/sandbox-evaluate", s.taskSandboxEvaluateHandler)

	return e
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	if s.cfg.Server != nil {
		srv.ReadTimeout = s.cfg.Server.ReadTimeout
		srv.WriteTimeout = s.cfg.Server.WriteTimeout
	}
	s.httpSrv = srv
	return srv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
