package services

import (
	"context"
	"fmt"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/job"
)

// JobService exposes read access to background jobs.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	if client == nil {
		panic("NewJobService: client must not be nil")
	}
	return &JobService{client: client}
}

// GetJob loads one job by ID.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	queued, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return queued, nil
}

// ListJobs returns recent jobs, optionally filtered by status and kind.
func (s *JobService) ListJobs(ctx context.Context, status job.Status, kind job.Kind, limit int) ([]*ent.Job, error) {
	q := s.client.Job.Query()
	if status != "" {
		q = q.Where(job.StatusEQ(status))
	}
	if kind != "" {
		q = q.Where(job.KindEQ(kind))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	jobs, err := q.
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}
