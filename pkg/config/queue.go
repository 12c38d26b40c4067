package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of concurrent jobs being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the maximum time a single job can be processed.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown. Should match JobTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// HeartbeatInterval is how often an in-progress job refreshes
	// last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// MaxAttempts is the number of times a job may run before it is
	// marked failed permanently. Retries are scheduled via run_after.
	MaxAttempts int `yaml:"max_attempts"`

	// RetryBackoffs are the delays applied before attempt 2, 3, ... N.
	// The last entry repeats when attempts exceed the list length.
	RetryBackoffs []time.Duration `yaml:"retry_backoffs"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		MaxAttempts:             4,
		RetryBackoffs: []time.Duration{
			1 * time.Second,
			3 * time.Second,
			10 * time.Second,
		},
	}
}

// RetryBackoff returns the delay before the given retry (1-based).
// Falls back to the last configured backoff for later attempts.
func (q *QueueConfig) RetryBackoff(retry int) time.Duration {
	if len(q.RetryBackoffs) == 0 {
		return 0
	}
	if retry < 1 {
		retry = 1
	}
	if retry > len(q.RetryBackoffs) {
		retry = len(q.RetryBackoffs)
	}
	return q.RetryBackoffs[retry-1]
}
