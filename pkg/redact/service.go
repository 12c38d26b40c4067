package redact

import (
	"log/slog"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
)

// Service applies PII redaction to transcript text before it is stored
// or shown to the LLM judge. Created once at application startup
// (singleton). Thread-safe and stateless aside from compiled patterns.
//
// Redaction is idempotent: placeholders like {{PHONE}} never match any
// pattern, so re-redacting already redacted text is a no-op.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
}

// NewService creates a redaction service with compiled patterns.
// All patterns are compiled eagerly at creation time. Invalid patterns
// are logged and skipped.
func NewService(cfg *config.RedactionConfig) *Service {
	if cfg == nil {
		panic("redact.NewService: cfg is nil")
	}

	s := &Service{
		enabled: cfg.Enabled,
	}
	if cfg.Enabled {
		s.patterns = compileGroup(cfg.PatternGroup)
	}

	slog.Info("Redaction service initialized",
		"enabled", cfg.Enabled,
		"pattern_group", cfg.PatternGroup,
		"compiled_patterns", len(s.patterns))

	return s
}

// Enabled reports whether redaction is active.
func (s *Service) Enabled() bool {
	return s.enabled
}

// RedactText applies all compiled patterns to the given text.
func (s *Service) RedactText(text string) string {
	if !s.enabled || text == "" {
		return text
	}

	redacted := text
	for _, p := range s.patterns {
		redacted = p.Regex.ReplaceAllString(redacted, p.Replacement)
	}
	return redacted
}

// RedactTranscript returns a deep copy of the transcript with the full
// text and every segment redacted. The input is never mutated; callers
// keep the raw transcript out of storage by persisting only the copy.
func (s *Service) RedactTranscript(t *models.Transcript) *models.Transcript {
	if t == nil {
		return nil
	}

	out := &models.Transcript{
		RecordingID: t.RecordingID,
		Text:        s.RedactText(t.Text),
		Segments:    make([]models.Segment, len(t.Segments)),
		Confidence:  t.Confidence,
	}
	for i, seg := range t.Segments {
		out.Segments[i] = seg
		out.Segments[i].Text = s.RedactText(seg.Text)
	}
	if len(t.Sentiment) > 0 {
		out.Sentiment = make([]models.SentimentSpan, len(t.Sentiment))
		copy(out.Sentiment, t.Sentiment)
	}
	return out
}
