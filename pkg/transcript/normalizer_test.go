package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(config.DefaultPipelineConfig())
}

func seg(speaker models.Speaker, text string, start, end, conf float64) models.Segment {
	return models.Segment{Speaker: speaker, Text: text, StartS: start, EndS: end, Confidence: conf}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fillers removed",
			input: "Um, I want to, uh, cancel my plan",
			want:  "I want to, cancel my plan",
		},
		{
			name:  "noise markers collapse",
			input: "[background noise] sure [inaudible] one moment (coughs)",
			want:  "{noise} sure {noise} one moment {noise}",
		},
		{
			name:  "adjacent noise markers collapse to one",
			input: "[static] [static] hello",
			want:  "{noise} hello",
		},
		{
			name:  "whitespace and punctuation spacing",
			input: "thank  you ,  have a good day !",
			want:  "thank you, have a good day!",
		},
		{
			name:  "only fillers drops to empty",
			input: "um, uh.",
			want:  "",
		},
		{
			name:  "plain text untouched",
			input: "how can I help you today",
			want:  "how can I help you today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.input))
		})
	}
}

func TestNormalize_MergesSameSpeakerRuns(t *testing.T) {
	n := newTestNormalizer()

	in := &models.Transcript{
		RecordingID: "rec-1",
		Segments: []models.Segment{
			seg(models.SpeakerAgent, "thanks for calling", 0, 2, 0.95),
			seg(models.SpeakerAgent, "how can I help", 3.0, 4.5, 0.80), // gap 1.0 <= 1.5
			seg(models.SpeakerCaller, "I need help", 5, 6, 0.90),
			seg(models.SpeakerCaller, "with my bill", 8.0, 9.0, 0.85), // gap 2.0 > 1.5
		},
		Confidence: 0.9,
	}

	res := n.Normalize(in, Options{})
	segs := res.Transcript.Segments

	require.Len(t, segs, 3)
	assert.Equal(t, "thanks for calling how can I help", segs[0].Text)
	assert.InDelta(t, 0, segs[0].StartS, 1e-9)
	assert.InDelta(t, 4.5, segs[0].EndS, 1e-9)
	// Merged confidence is the minimum of the pair.
	assert.InDelta(t, 0.80, segs[0].Confidence, 1e-9)

	assert.Equal(t, "I need help", segs[1].Text)
	assert.Equal(t, "with my bill", segs[2].Text)

	assert.Equal(t, 4, res.Meta.OriginalSegments)
	assert.Equal(t, 3, res.Meta.KeptSegments)
	assert.Equal(t, 1, res.Meta.SpeakerChanges)
	assert.False(t, res.Meta.Trimmed)
}

func TestNormalize_MergeGapBoundaryInclusive(t *testing.T) {
	n := newTestNormalizer()

	in := &models.Transcript{
		Segments: []models.Segment{
			seg(models.SpeakerAgent, "one", 0, 1, 0.9),
			seg(models.SpeakerAgent, "two", 2.5, 3, 0.9), // gap exactly 1.5
		},
	}

	res := n.Normalize(in, Options{})
	require.Len(t, res.Transcript.Segments, 1)
	assert.Equal(t, "one two", res.Transcript.Segments[0].Text)
}

func TestNormalize_DropsEmptiedSegmentsKeepsOriginal(t *testing.T) {
	n := newTestNormalizer()

	in := &models.Transcript{
		Segments: []models.Segment{
			seg(models.SpeakerCaller, "umm", 0, 1, 0.5),
			seg(models.SpeakerAgent, "hello there", 2, 3, 0.9),
		},
	}

	res := n.Normalize(in, Options{})
	require.Len(t, res.Transcript.Segments, 1)
	assert.Equal(t, "hello there", res.Transcript.Segments[0].Text)

	// Original input is preserved verbatim for audit.
	require.Len(t, res.Original, 2)
	assert.Equal(t, "umm", res.Original[0].Text)
}

func TestNormalize_RenderedText(t *testing.T) {
	n := newTestNormalizer()

	in := &models.Transcript{
		Segments: []models.Segment{
			seg(models.SpeakerAgent, "thanks for calling", 0, 2, 0.9),
			seg(models.SpeakerCaller, "hi", 4, 5, 0.9),
			seg(models.SpeakerOther, "this call is recorded", 6, 7, 0.9),
		},
	}

	res := n.Normalize(in, Options{})
	assert.Equal(t,
		"Agent: thanks for calling\nCaller: hi\nOther: this call is recorded",
		res.Transcript.Text)
}

func TestNormalize_TrimsLongCalls(t *testing.T) {
	n := newTestNormalizer()

	// Build a 1500s call: one segment every 10s.
	var segs []models.Segment
	for i := 0; i < 150; i++ {
		start := float64(i) * 10
		segs = append(segs, seg(models.SpeakerCaller, "segment text here", start, start+8, 0.9))
	}

	keyEvent := 700.0
	res := n.Normalize(&models.Transcript{Segments: segs}, Options{KeyEvents: []float64{keyEvent}})

	require.True(t, res.Meta.Trimmed)
	require.NotEmpty(t, res.Transcript.Segments)
	assert.Less(t, len(res.Transcript.Segments), 150)

	for _, s := range res.Transcript.Segments {
		inHead := s.StartS <= 120
		inTail := s.EndS >= 1498-120
		nearEvent := s.EndS >= keyEvent-30 && s.StartS <= keyEvent+30
		assert.True(t, inHead || inTail || nearEvent,
			"segment [%v,%v] outside every keep range", s.StartS, s.EndS)
	}

	// The key-event neighborhood survives trimming.
	found := false
	for _, s := range res.Transcript.Segments {
		if s.StartS <= keyEvent && keyEvent <= s.EndS {
			found = true
		}
	}
	assert.True(t, found, "segment covering the key event was trimmed away")
}

func TestNormalize_ShortCallNotTrimmed(t *testing.T) {
	n := newTestNormalizer()

	in := &models.Transcript{
		Segments: []models.Segment{
			seg(models.SpeakerAgent, "hello", 0, 2, 0.9),
			seg(models.SpeakerCaller, "hi", 100, 102, 0.9),
		},
	}

	res := n.Normalize(in, Options{})
	assert.False(t, res.Meta.Trimmed)
	assert.Len(t, res.Transcript.Segments, 2)
}

func TestNormalize_CompressionRatio(t *testing.T) {
	n := newTestNormalizer()

	in := &models.Transcript{
		Text: strings.Repeat("x", 100),
		Segments: []models.Segment{
			seg(models.SpeakerAgent, "hello", 0, 1, 0.9),
		},
	}

	res := n.Normalize(in, Options{})
	// "Agent: hello" is 12 chars against 100 original.
	assert.InDelta(t, 0.12, res.Meta.CompressionRatio, 1e-9)
}
