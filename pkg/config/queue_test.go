package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQueueConfig(t *testing.T) {
	cfg := DefaultQueueConfig()

	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, 5, cfg.MaxConcurrentJobs)
	assert.Equal(t, 1*time.Second, cfg.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 15*time.Minute, cfg.JobTimeout)
	assert.Equal(t, 15*time.Minute, cfg.GracefulShutdownTimeout)
	assert.Equal(t, 5*time.Minute, cfg.OrphanDetectionInterval)
	assert.Equal(t, 5*time.Minute, cfg.OrphanThreshold)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 4, cfg.MaxAttempts)
	assert.Equal(t, []time.Duration{time.Second, 3 * time.Second, 10 * time.Second}, cfg.RetryBackoffs)
}

func TestQueueRetryBackoff(t *testing.T) {
	cfg := DefaultQueueConfig()

	assert.Equal(t, 1*time.Second, cfg.RetryBackoff(1))
	assert.Equal(t, 3*time.Second, cfg.RetryBackoff(2))
	assert.Equal(t, 10*time.Second, cfg.RetryBackoff(3))
	// Past the end of the list the last backoff repeats.
	assert.Equal(t, 10*time.Second, cfg.RetryBackoff(7))
	// Out-of-range retry numbers clamp.
	assert.Equal(t, 1*time.Second, cfg.RetryBackoff(0))

	empty := &QueueConfig{}
	assert.Equal(t, time.Duration(0), empty.RetryBackoff(1))
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name    string
		queue   *QueueConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			queue:   DefaultQueueConfig(),
			wantErr: false,
		},
		{
			name:    "nil queue",
			queue:   nil,
			wantErr: true,
			errMsg:  "queue configuration is nil",
		},
		{
			name: "worker count too low",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.WorkerCount = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "worker_count must be between 1 and 50",
		},
		{
			name: "worker count too high",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.WorkerCount = 51
				return q
			}(),
			wantErr: true,
			errMsg:  "worker_count must be between 1 and 50",
		},
		{
			name: "max concurrent jobs too low",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.MaxConcurrentJobs = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "max_concurrent_jobs must be between 1 and 100",
		},
		{
			name: "poll interval zero",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.PollInterval = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "poll_interval must be positive",
		},
		{
			name: "job timeout zero",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.JobTimeout = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "job_timeout must be positive",
		},
		{
			name: "orphan threshold below heartbeat",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.OrphanThreshold = 10 * time.Second
				return q
			}(),
			wantErr: true,
			errMsg:  "orphan_threshold must exceed heartbeat_interval",
		},
		{
			name: "max attempts zero",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.MaxAttempts = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "max_attempts must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQueue(tt.queue)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
