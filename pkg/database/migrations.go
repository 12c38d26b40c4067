package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on transcript text and the
// final evaluation explanation.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for transcript full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_transcripts_text_gin
		ON transcripts USING gin(to_tsvector('english', transcript_text))`)
	if err != nil {
		return fmt.Errorf("failed to create transcript_text GIN index: %w", err)
	}

	// GIN index for evaluation explanation full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_evaluations_explanation_gin
		ON evaluations USING gin(to_tsvector('english', COALESCE(final_evaluation->>'explanation', '')))`)
	if err != nil {
		return fmt.Errorf("failed to create evaluation explanation GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates the partial unique indexes that carry
// the live-row invariants. Ent's programmatic migration (used by tests)
// does not emit the WHERE clauses, so they are created here with raw SQL.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// One live evaluation per recording; soft-deleted rows don't count.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS evaluation_recording_id
		ON evaluations (recording_id) WHERE deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create evaluation live-row index: %w", err)
	}

	// Sandbox idempotency keys are unique only when present.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS sandboxrun_idempotency_key
		ON sandbox_runs (idempotency_key) WHERE idempotency_key IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create sandbox idempotency index: %w", err)
	}

	return nil
}
