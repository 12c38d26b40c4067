// Package transcript cleans and restructures diarized ASR output before
// detection: filler removal, same-speaker merging, and trimming of very
// long calls around key events.
package transcript

import (
	"fmt"
	"strings"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
)

// Normalizer cleans diarized transcripts. Pure with respect to its
// inputs; safe for concurrent use.
type Normalizer struct {
	cfg *config.PipelineConfig
}

// NewNormalizer creates a normalizer with the given pipeline settings.
func NewNormalizer(cfg *config.PipelineConfig) *Normalizer {
	if cfg == nil {
		panic("transcript.NewNormalizer: cfg is nil")
	}
	return &Normalizer{cfg: cfg}
}

// Options tune a single normalization run.
type Options struct {
	// KeyEvents are timestamps (seconds) that must survive trimming,
	// typically exact-phrase rule hits found in a cheap pre-pass.
	KeyEvents []float64
}

// Result is the output of Normalize.
type Result struct {
	// Transcript holds the cleaned segments and reconstructed text.
	Transcript *models.Transcript

	// Original preserves the input segments verbatim for audit.
	Original []models.Segment

	// Meta describes what normalization did.
	Meta models.NormalizeMeta
}

// Normalize cleans each segment, merges same-speaker runs, trims long
// calls around key events, and reconstructs readable "Role: text" output.
// The input transcript is not mutated.
func (n *Normalizer) Normalize(t *models.Transcript, opts Options) *Result {
	original := make([]models.Segment, len(t.Segments))
	copy(original, t.Segments)

	// 1. Clean; drop segments that end up empty.
	cleaned := make([]models.Segment, 0, len(t.Segments))
	for _, seg := range t.Segments {
		text := cleanText(seg.Text)
		if text == "" {
			continue
		}
		seg.Text = text
		cleaned = append(cleaned, seg)
	}

	// 2. Merge consecutive same-speaker segments with a small gap,
	// taking the minimum confidence of the pair.
	merged := n.merge(cleaned)

	// 3. Trim long calls to the edges plus context around key events.
	trimmed := false
	if dur := segmentsDuration(merged); dur > n.cfg.MaxTranscriptSeconds {
		merged = n.trim(merged, dur, opts.KeyEvents)
		trimmed = true
	}

	out := &models.Transcript{
		RecordingID: t.RecordingID,
		Text:        renderText(merged),
		Segments:    merged,
		Sentiment:   t.Sentiment,
		Confidence:  t.Confidence,
	}

	return &Result{
		Transcript: out,
		Original:   original,
		Meta: models.NormalizeMeta{
			OriginalSegments: len(t.Segments),
			KeptSegments:     len(merged),
			SpeakerChanges:   speakerChanges(merged),
			CompressionRatio: compressionRatio(t, out),
			Trimmed:          trimmed,
		},
	}
}

func (n *Normalizer) merge(segs []models.Segment) []models.Segment {
	if len(segs) == 0 {
		return segs
	}

	out := make([]models.Segment, 0, len(segs))
	cur := segs[0]
	for _, seg := range segs[1:] {
		gap := seg.StartS - cur.EndS
		if seg.Speaker == cur.Speaker && gap <= n.cfg.MergeGapSeconds {
			cur.Text = cur.Text + " " + seg.Text
			cur.EndS = seg.EndS
			if seg.Confidence < cur.Confidence {
				cur.Confidence = seg.Confidence
			}
			continue
		}
		out = append(out, cur)
		cur = seg
	}
	return append(out, cur)
}

type timeRange struct {
	start, end float64
}

func (n *Normalizer) trim(segs []models.Segment, dur float64, keyEvents []float64) []models.Segment {
	ranges := []timeRange{
		{0, n.cfg.TrimEdgeSeconds},
		{dur - n.cfg.TrimEdgeSeconds, dur},
	}
	for _, t := range keyEvents {
		ranges = append(ranges, timeRange{t - n.cfg.TrimContextSeconds, t + n.cfg.TrimContextSeconds})
	}

	out := make([]models.Segment, 0, len(segs))
	for _, seg := range segs {
		for _, r := range ranges {
			if seg.EndS >= r.start && seg.StartS <= r.end {
				out = append(out, seg)
				break
			}
		}
	}
	return out
}

func segmentsDuration(segs []models.Segment) float64 {
	if len(segs) == 0 {
		return 0
	}
	return segs[len(segs)-1].EndS
}

func speakerChanges(segs []models.Segment) int {
	changes := 0
	for i := 1; i < len(segs); i++ {
		if segs[i].Speaker != segs[i-1].Speaker {
			changes++
		}
	}
	return changes
}

func compressionRatio(in, out *models.Transcript) float64 {
	orig := len(in.Text)
	if orig == 0 {
		for _, seg := range in.Segments {
			orig += len(seg.Text)
		}
	}
	if orig == 0 {
		return 1
	}
	return float64(len(out.Text)) / float64(orig)
}

// renderText reconstructs the human-readable transcript as one
// "Role: text" line per segment in temporal order.
func renderText(segs []models.Segment) string {
	var b strings.Builder
	for i, seg := range segs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", roleLabel(seg.Speaker), seg.Text)
	}
	return b.String()
}

func roleLabel(s models.Speaker) string {
	switch s {
	case models.SpeakerAgent:
		return "Agent"
	case models.SpeakerCaller:
		return "Caller"
	default:
		return "Other"
	}
}
