package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/callscope-ai/callscope/ent"
	entrecording "github.com/callscope-ai/callscope/ent/recording"
)

// RecordingService manages recording registration and lookup. Audio
// itself lives in object storage; rows here only reference it.
type RecordingService struct {
	client *ent.Client
}

// NewRecordingService creates a new RecordingService.
func NewRecordingService(client *ent.Client) *RecordingService {
	if client == nil {
		panic("NewRecordingService: client must not be nil")
	}
	return &RecordingService{client: client}
}

// CreateRecording registers a stored call recording for evaluation.
func (s *RecordingService) CreateRecording(ctx context.Context, companyID, audioURL string) (*ent.Recording, error) {
	if companyID == "" {
		return nil, NewValidationError("company_id", "company id is required")
	}
	if audioURL == "" {
		return nil, NewValidationError("audio_url", "audio url is required")
	}

	rec, err := s.client.Recording.Create().
		SetID(uuid.NewString()).
		SetCompanyID(companyID).
		SetAudioURL(audioURL).
		SetStatus(entrecording.StatusQueued).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording: %w", err)
	}
	return rec, nil
}

// GetRecording loads one live recording.
func (s *RecordingService) GetRecording(ctx context.Context, recordingID string) (*ent.Recording, error) {
	rec, err := s.client.Recording.Query().
		Where(entrecording.ID(recordingID), entrecording.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load recording: %w", err)
	}
	return rec, nil
}

// DeleteRecording soft-deletes a recording. Its evaluation history is
// kept but no longer reachable through the live lookup paths.
func (s *RecordingService) DeleteRecording(ctx context.Context, recordingID string) error {
	n, err := s.client.Recording.Update().
		Where(entrecording.ID(recordingID), entrecording.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete recording: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeSoftDeleted hard-deletes recordings soft-deleted before the
// cutoff. Transcripts and evaluations go with them via cascade.
func (s *RecordingService) PurgeSoftDeleted(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.Recording.Delete().
		Where(entrecording.DeletedAtNotNil(), entrecording.DeletedAtLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge recordings: %w", err)
	}
	return n, nil
}
