// Callscope server — provides the HTTP API, manages queue workers, and
// runs the call evaluation pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/callscope-ai/callscope/pkg/api"
	"github.com/callscope-ai/callscope/pkg/asr"
	"github.com/callscope-ai/callscope/pkg/blueprint"
	"github.com/callscope-ai/callscope/pkg/cleanup"
	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/database"
	"github.com/callscope-ai/callscope/pkg/embedding"
	"github.com/callscope-ai/callscope/pkg/llm"
	"github.com/callscope-ai/callscope/pkg/pipeline"
	"github.com/callscope-ai/callscope/pkg/queue"
	"github.com/callscope-ai/callscope/pkg/redact"
	"github.com/callscope-ai/callscope/pkg/services"
	"github.com/callscope-ai/callscope/pkg/storage"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting callscope",
		"pod_id", podID,
		"config_dir", *configDir)

	// 2. Initialize database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup recovery of jobs this pod abandoned in a crash
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, cfg.Queue, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. LLM judge and embedding backends. Both are optional: without an
	// API key the pipeline degrades to deterministic-only evaluation.
	var llmClient llm.Client
	if apiKey := os.Getenv(cfg.LLM.APIKeyEnv); apiKey != "" {
		client, err := llm.NewGenAIClient(ctx, apiKey, cfg.LLM)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "error", err)
			os.Exit(1)
		}
		llmClient = client
		slog.Info("LLM judge initialized", "model", cfg.LLM.Model)
	} else {
		slog.Warn("LLM API key not set; stage evaluations will use the deterministic fallback",
			"env", cfg.LLM.APIKeyEnv)
	}

	var embedProvider embedding.Provider
	if apiKey := os.Getenv(cfg.Embedding.APIKeyEnv); apiKey != "" {
		provider, err := embedding.NewGenAIProvider(ctx, apiKey, cfg.Embedding.Model)
		if err != nil {
			slog.Error("Failed to initialize embedding provider", "error", err)
			os.Exit(1)
		}
		embedProvider = provider
		slog.Info("Embedding provider initialized", "model", cfg.Embedding.Model)
	} else {
		slog.Warn("Embedding API key not set; semantic matching degrades to exact matching",
			"env", cfg.Embedding.APIKeyEnv)
	}
	embeddings := embedding.NewService(embedProvider, cfg.Embedding)

	// 5. Pipeline and compiler
	redactor := redact.NewService(cfg.Redaction)
	runner := pipeline.NewRunner(cfg.Pipeline, embeddings, llmClient, redactor)
	asrProvider := asr.NewHTTPProvider(cfg.ASR)
	store := storage.NewHTTPStore(cfg.Storage)
	executor := pipeline.NewExecutor(dbClient.Client, runner, asrProvider, store, cfg.Pipeline)
	compiler := blueprint.NewCompiler(dbClient.Client)

	// 6. Start worker pool (before HTTP server)
	dispatcher := queue.NewDispatcher(compiler, executor)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, dispatcher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Domain services
	blueprintService := services.NewBlueprintService(dbClient.Client, compiler)
	recordingService := services.NewRecordingService(dbClient.Client)
	evaluationService := services.NewEvaluationService(dbClient.Client)
	sandboxService := services.NewSandboxService(dbClient.Client, blueprintService, executor, redactor)
	jobService := services.NewJobService(dbClient.Client)
	slog.Info("Services initialized")

	// 7a. Retention purge loop
	var cleanupService *cleanup.Service
	if cfg.Retention.Enabled {
		cleanupService = cleanup.NewService(cfg.Retention, recordingService, evaluationService)
		cleanupService.Start(ctx)
		defer cleanupService.Stop()
	}

	// 8. Create and start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient,
		blueprintService, recordingService, evaluationService, sandboxService, jobService,
		workerPool, compiler, executor)

	errCh := make(chan error, 1)
	go func() {
		port := getEnv("HTTP_PORT", strconv.Itoa(cfg.Server.Port))
		addr := cfg.Server.Host + ":" + port
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Callscope started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: finish active jobs, then drain HTTP
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Callscope stopped")
}
