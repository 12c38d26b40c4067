package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/ent"
	entrecording "github.com/callscope-ai/callscope/ent/recording"
	testdb "github.com/callscope-ai/callscope/test/database"
)

func TestCreateRecording(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewRecordingService(client)
	ctx := context.Background()

	rec, err := svc.CreateRecording(ctx, "acme", "s3://calls/2026/call-001.wav")
	require.NoError(t, err)
	assert.Equal(t, "acme", rec.CompanyID)
	assert.Equal(t, "s3://calls/2026/call-001.wav", rec.AudioURL)
	assert.Equal(t, entrecording.StatusQueued, rec.Status)
	assert.Nil(t, rec.DeletedAt)

	t.Run("missing company id", func(t *testing.T) {
		_, err := svc.CreateRecording(ctx, "", "s3://calls/x.wav")
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing audio url", func(t *testing.T) {
		_, err := svc.CreateRecording(ctx, "acme", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestGetRecording(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewRecordingService(client)
	ctx := context.Background()

	rec, err := svc.CreateRecording(ctx, "acme", "s3://calls/call-002.wav")
	require.NoError(t, err)

	loaded, err := svc.GetRecording(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, loaded.ID)

	_, err = svc.GetRecording(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRecording(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewRecordingService(client)
	ctx := context.Background()

	rec, err := svc.CreateRecording(ctx, "acme", "s3://calls/call-003.wav")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecording(ctx, rec.ID))

	// Soft-deleted rows drop out of live lookups but stay in the table.
	_, err = svc.GetRecording(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	raw, err := client.Recording.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.NotNil(t, raw.DeletedAt)

	// Deleting again is a not-found, not a second delete.
	assert.ErrorIs(t, svc.DeleteRecording(ctx, rec.ID), ErrNotFound)
}

func TestPurgeSoftDeletedRecordings(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewRecordingService(client)
	ctx := context.Background()

	expired, err := svc.CreateRecording(ctx, "acme", "s3://calls/expired.wav")
	require.NoError(t, err)
	recent, err := svc.CreateRecording(ctx, "acme", "s3://calls/recent.wav")
	require.NoError(t, err)
	live, err := svc.CreateRecording(ctx, "acme", "s3://calls/live.wav")
	require.NoError(t, err)

	err = client.Recording.UpdateOneID(expired.ID).
		SetDeletedAt(time.Now().AddDate(0, 0, -45)).
		Exec(ctx)
	require.NoError(t, err)
	err = client.Recording.UpdateOneID(recent.ID).
		SetDeletedAt(time.Now().AddDate(0, 0, -1)).
		Exec(ctx)
	require.NoError(t, err)

	cutoff := time.Now().AddDate(0, 0, -30)
	n, err := svc.PurgeSoftDeleted(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = client.Recording.Get(ctx, expired.ID)
	assert.True(t, ent.IsNotFound(err), "expired recording should be gone")

	_, err = client.Recording.Get(ctx, recent.ID)
	assert.NoError(t, err, "recording inside the retention window must survive")
	_, err = client.Recording.Get(ctx, live.ID)
	assert.NoError(t, err, "live recording must survive")
}
