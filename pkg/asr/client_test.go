package asr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
)

func testProvider(t *testing.T, handler http.HandlerFunc) *HTTPProvider {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultASRConfig()
	cfg.BaseURL = srv.URL
	cfg.RequestTimeout = 5 * time.Second
	p := NewHTTPProvider(cfg)
	// No real sleeping between attempts in tests.
	return p
}

func okResponse() transcribeResponse {
	return transcribeResponse{
		TranscriptText: "thank you for calling",
		DiarizedSegments: []models.Segment{
			{Speaker: models.SpeakerAgent, Text: "thank you for calling", StartS: 0, EndS: 2, Confidence: 0.92},
		},
		Confidence: 0.92,
	}
}

func TestTranscribe_Success(t *testing.T) {
	t.Setenv("ASR_API_TOKEN", "secret-token")

	var gotAuth, gotURL string
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req transcribeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotURL = req.AudioURL
		json.NewEncoder(w).Encode(okResponse())
	})

	tr, err := p.Transcribe(context.Background(), "https://signed.example/call.wav")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "https://signed.example/call.wav", gotURL)
	assert.Equal(t, "thank you for calling", tr.Text)
	assert.Len(t, tr.Segments, 1)
	assert.Equal(t, 0.92, tr.Confidence)
}

func TestTranscribe_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "try later", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(okResponse())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tr, err := p.Transcribe(ctx, "https://signed.example/call.wav")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.NotNil(t, tr)
}

func TestTranscribe_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad audio url", http.StatusBadRequest)
	})

	_, err := p.Transcribe(context.Background(), "not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestTranscribe_EmptySegmentsRejected(t *testing.T) {
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(transcribeResponse{TranscriptText: "x", Confidence: 0.9})
	})

	_, err := p.Transcribe(context.Background(), "https://signed.example/call.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no segments")
}
