// Package asr wraps the external speech-to-text provider behind a
// minimal transcription interface.
package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
)

// Provider transcribes one recording by its (signed) audio URL.
type Provider interface {
	Transcribe(ctx context.Context, audioURL string) (*models.Transcript, error)
}

// retryBackoffs for transient provider failures.
var retryBackoffs = []time.Duration{1 * time.Second, 3 * time.Second, 10 * time.Second}

// HTTPProvider is the production ASR adapter.
type HTTPProvider struct {
	cfg        *config.ASRConfig
	httpClient *http.Client
	token      string
}

// NewHTTPProvider creates an ASR client. The bearer token is read from
// the environment variable named in the config.
func NewHTTPProvider(cfg *config.ASRConfig) *HTTPProvider {
	if cfg == nil {
		panic("asr configuration is required")
	}
	return &HTTPProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		token:      os.Getenv(cfg.TokenEnv),
	}
}

type transcribeRequest struct {
	AudioURL string `json:"audio_url"`
}

type transcribeResponse struct {
	TranscriptText   string                 `json:"transcript_text"`
	DiarizedSegments []models.Segment       `json:"diarized_segments"`
	Confidence       float64                `json:"confidence"`
	Sentiment        []models.SentimentSpan `json:"sentiment_analysis,omitempty"`
}

// Transcribe requests a diarized transcript, retrying transient failures.
func (p *HTTPProvider) Transcribe(ctx context.Context, audioURL string) (*models.Transcript, error) {
	body, err := json.Marshal(transcribeRequest{AudioURL: audioURL})
	if err != nil {
		return nil, fmt.Errorf("failed to encode transcription request: %w", err)
	}

	retries := p.cfg.MaxRetries
	if retries > len(retryBackoffs) {
		retries = len(retryBackoffs)
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			backoff := retryBackoffs[attempt-1]
			slog.Warn("ASR request failed, retrying",
				"attempt", attempt, "backoff", backoff, "error", lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		tr, retryable, err := p.transcribeOnce(ctx, body)
		if err == nil {
			return tr, nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("transcription failed after retries: %w", lastErr)
}

func (p *HTTPProvider) transcribeOnce(ctx context.Context, body []byte) (*models.Transcript, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.cfg.BaseURL+"/v1/transcribe", bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("ASR request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		// Server-side failures are retryable; a rejected request is not.
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, fmt.Errorf("ASR returned %d: %s", resp.StatusCode, string(msg))
	}

	var decoded transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, false, fmt.Errorf("invalid ASR response: %w", err)
	}
	if len(decoded.DiarizedSegments) == 0 {
		return nil, false, fmt.Errorf("ASR response has no segments")
	}

	return &models.Transcript{
		Text:       decoded.TranscriptText,
		Segments:   decoded.DiarizedSegments,
		Sentiment:  decoded.Sentiment,
		Confidence: decoded.Confidence,
	}, false, nil
}
