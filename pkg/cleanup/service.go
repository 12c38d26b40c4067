// Package cleanup provides data retention enforcement.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/services"
)

// Service periodically purges soft-deleted recordings and evaluations
// once their retention window has passed. All operations are idempotent
// and safe to run from multiple pods.
type Service struct {
	config      *config.RetentionConfig
	recordings  *services.RecordingService
	evaluations *services.EvaluationService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	recordings *services.RecordingService,
	evaluations *services.EvaluationService,
) *Service {
	return &Service{
		config:      cfg,
		recordings:  recordings,
		evaluations: evaluations,
	}
}

// Start launches the background purge loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"retention_days", s.config.SoftDeleteRetentionDays,
		"interval", s.config.PurgeInterval)
}

// Stop signals the purge loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.purge()

	ticker := time.NewTicker(s.config.PurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purge()
		}
	}
}

func (s *Service) purge() {
	cutoff := time.Now().AddDate(0, 0, -s.config.SoftDeleteRetentionDays)

	count, err := s.recordings.PurgeSoftDeleted(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: recording purge failed", "error", err)
	} else if count > 0 {
		slog.Info("Retention: purged soft-deleted recordings", "count", count)
	}

	count, err = s.evaluations.PurgeSoftDeleted(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: evaluation purge failed", "error", err)
	} else if count > 0 {
		slog.Info("Retention: purged soft-deleted evaluations", "count", count)
	}
}
