// Package models contains domain types shared across services, the evaluation
// pipeline, and the HTTP API.
package models

// Speaker identifies who produced a diarized segment.
type Speaker string

// Speaker values.
const (
	SpeakerAgent  Speaker = "agent"
	SpeakerCaller Speaker = "caller"
	SpeakerOther  Speaker = "other"
)

// Segment is a single diarized utterance with timing and ASR confidence.
type Segment struct {
	Speaker    Speaker `json:"speaker"`
	Text       string  `json:"text"`
	StartS     float64 `json:"start_s"`
	EndS       float64 `json:"end_s"`
	Confidence float64 `json:"confidence"`
}

// SentimentSpan is an optional per-range sentiment annotation from the ASR
// provider. Score is in [-1, 1].
type SentimentSpan struct {
	StartS float64 `json:"start_s"`
	EndS   float64 `json:"end_s"`
	Score  float64 `json:"score"`
}

// Transcript is the diarized output of ASR for one recording.
type Transcript struct {
	RecordingID string          `json:"recording_id"`
	Text        string          `json:"transcript_text"`
	Segments    []Segment       `json:"diarized_segments"`
	Sentiment   []SentimentSpan `json:"sentiment_analysis,omitempty"`
	Confidence  float64         `json:"confidence"`
}

// Duration returns the end time of the last segment, in seconds.
func (t *Transcript) Duration() float64 {
	if len(t.Segments) == 0 {
		return 0
	}
	return t.Segments[len(t.Segments)-1].EndS
}

// NormalizeMeta describes what the transcript normalizer did.
type NormalizeMeta struct {
	OriginalSegments int     `json:"original_segments"`
	KeptSegments     int     `json:"kept_segments"`
	SpeakerChanges   int     `json:"speaker_changes"`
	CompressionRatio float64 `json:"compression_ratio"`
	Trimmed          bool    `json:"trimmed"`
}
