package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "callscope.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	dir := writeConfig(t, "{}\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.InDelta(t, 0.72, cfg.Pipeline.SemanticThreshold, 1e-9)
	assert.Equal(t, 70, cfg.Pipeline.DefaultPassThreshold)
	assert.Equal(t, "gemini-embedding-001", cfg.Embedding.Model)
	assert.True(t, cfg.Redaction.Enabled)
	assert.Equal(t, "pii", cfg.Redaction.PatternGroup)
	assert.Equal(t, dir, cfg.ConfigDir())
}

func TestInitialize_Overrides(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
queue:
  worker_count: 3
  job_timeout: 5m
pipeline:
  semantic_threshold: 0.8
  max_transcript_seconds: 900
llm:
  model: gemini-2.5-pro
redaction:
  enabled: false
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.JobTimeout)
	// Unset queue values keep their defaults.
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.InDelta(t, 0.8, cfg.Pipeline.SemanticThreshold, 1e-9)
	assert.InDelta(t, 900, cfg.Pipeline.MaxTranscriptSeconds, 1e-9)
	// Unset pipeline values keep their defaults.
	assert.InDelta(t, 1.5, cfg.Pipeline.MergeGapSeconds, 1e-9)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.False(t, cfg.Redaction.Enabled)
	assert.Equal(t, "pii", cfg.Redaction.PatternGroup)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("CALLSCOPE_TEST_ASR_URL", "https://asr.internal.example.com")

	dir := writeConfig(t, `
asr:
  base_url: "{{.CALLSCOPE_TEST_ASR_URL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "https://asr.internal.example.com", cfg.ASR.BaseURL)
}

func TestInitialize_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "queue: [not a map\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	dir := writeConfig(t, `
pipeline:
  semantic_threshold: 1.5
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "semantic_threshold")
}
