package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(&config.RedactionConfig{
		Enabled:      true,
		PatternGroup: "pii",
	})
}

func TestRedactText_Patterns(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "email",
			input: "send it to jane.doe@example.com please",
			want:  "send it to {{EMAIL}} please",
		},
		{
			name:  "phone with punctuation",
			input: "call me back at (555) 123-4567 tomorrow",
			want:  "call me back at {{PHONE}} tomorrow",
		},
		{
			name:  "bare ten digit phone",
			input: "my number is 5551234567",
			want:  "my number is {{PHONE}}",
		},
		{
			name:  "card number with spaces",
			input: "the card is 4111 1111 1111 1111 expiring soon",
			want:  "the card is {{CARD_NUMBER}} expiring soon",
		},
		{
			name:  "ssn",
			input: "social is 123-45-6789 okay",
			want:  "social is {{SSN}} okay",
		},
		{
			name:  "account number after keyword",
			input: "my account number is 889900112233",
			want:  "my account number is {{ACCOUNT_NUMBER}}",
		},
		{
			name:  "order id after keyword",
			input: "the order number is ORD-2231-X",
			want:  "the order number is {{ORDER_ID}}",
		},
		{
			name:  "street address",
			input: "I live at 42 Maple Grove Avenue in town",
			want:  "I live at {{ADDRESS}} in town",
		},
		{
			name:  "name after self identification",
			input: "Hi, my name is Dana Smith and I can help",
			want:  "Hi, my name is {{NAME}} and I can help",
		},
		{
			name:  "no pii",
			input: "I would like to cancel my subscription",
			want:  "I would like to cancel my subscription",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.RedactText(tt.input))
		})
	}
}

func TestRedactText_Idempotent(t *testing.T) {
	svc := newTestService(t)

	input := "my name is Dana, card 4111 1111 1111 1111, email d@x.io, call 555-123-4567"
	once := svc.RedactText(input)
	twice := svc.RedactText(once)

	assert.Equal(t, once, twice)
	assert.NotContains(t, once, "4111")
	assert.NotContains(t, once, "d@x.io")
}

func TestRedactText_Disabled(t *testing.T) {
	svc := NewService(&config.RedactionConfig{Enabled: false})

	input := "email jane.doe@example.com"
	assert.Equal(t, input, svc.RedactText(input))
	assert.False(t, svc.Enabled())
}

func TestRedactTranscript_CopiesAndRedacts(t *testing.T) {
	svc := newTestService(t)

	in := &models.Transcript{
		RecordingID: "rec-1",
		Text:        "my name is Dana Smith, reach me at dana@example.com",
		Segments: []models.Segment{
			{Speaker: models.SpeakerAgent, Text: "my name is Dana Smith", StartS: 0, EndS: 2.5, Confidence: 0.93},
			{Speaker: models.SpeakerCaller, Text: "reach me at dana@example.com", StartS: 3, EndS: 5, Confidence: 0.88},
		},
		Sentiment:  []models.SentimentSpan{{StartS: 0, EndS: 5, Label: "neutral", Score: 0.7}},
		Confidence: 0.9,
	}

	out := svc.RedactTranscript(in)
	require.NotNil(t, out)

	assert.Equal(t, "my name is {{NAME}}, reach me at {{EMAIL}}", out.Text)
	assert.Equal(t, "my name is {{NAME}}", out.Segments[0].Text)
	assert.Equal(t, "reach me at {{EMAIL}}", out.Segments[1].Text)

	// Timing, speakers, and confidence survive untouched.
	assert.Equal(t, models.SpeakerAgent, out.Segments[0].Speaker)
	assert.InDelta(t, 2.5, out.Segments[0].EndS, 1e-9)
	assert.InDelta(t, 0.9, out.Confidence, 1e-9)
	assert.Len(t, out.Sentiment, 1)

	// Input is not mutated.
	assert.Contains(t, in.Text, "dana@example.com")
	assert.Contains(t, in.Segments[0].Text, "Dana Smith")
}

func TestRedactTranscript_Nil(t *testing.T) {
	svc := newTestService(t)
	assert.Nil(t, svc.RedactTranscript(nil))
}
