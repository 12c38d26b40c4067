// Package embedding produces L2-normalized vectors for semantic
// detection, with a process-local cache and a deterministic fallback for
// provider outages.
package embedding

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/callscope-ai/callscope/pkg/config"
)

// Provider is the upstream embedding backend.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Service wraps a Provider with caching and fallback. Safe for
// concurrent use. A nil provider runs in fallback-only mode (tests,
// air-gapped deployments).
type Service struct {
	provider Provider
	cfg      *config.EmbeddingConfig

	available atomic.Bool

	mu       sync.Mutex
	cache    map[[sha256.Size]byte][]float32
	inflight map[[sha256.Size]byte]chan struct{}
}

// NewService creates an embedding service.
func NewService(provider Provider, cfg *config.EmbeddingConfig) *Service {
	if cfg == nil {
		panic("embedding.NewService: cfg is nil")
	}

	s := &Service{
		provider: provider,
		cfg:      cfg,
		cache:    make(map[[sha256.Size]byte][]float32),
		inflight: make(map[[sha256.Size]byte]chan struct{}),
	}
	s.available.Store(provider != nil)

	slog.Info("Embedding service initialized",
		"model", cfg.Model,
		"dimensions", cfg.Dimensions,
		"fallback_only", provider == nil)

	return s
}

// Available reports whether the last provider call succeeded. Detection
// results computed while unavailable carry a fallback flag downstream.
func (s *Service) Available() bool {
	return s.available.Load()
}

// Embed returns an L2-normalized vector for the text. Provider results
// are cached by content hash; concurrent requests for the same text
// share one upstream call. On provider failure the deterministic
// fallback vector is returned and the service is marked unavailable
// until a later call succeeds.
func (s *Service) Embed(ctx context.Context, text string) []float32 {
	if s.provider == nil {
		return fallbackVector(text, int(s.cfg.Dimensions))
	}

	key := sha256.Sum256([]byte(text))

	for {
		s.mu.Lock()
		if vec, ok := s.cache[key]; ok {
			s.mu.Unlock()
			return vec
		}
		if wait, ok := s.inflight[key]; ok {
			s.mu.Unlock()
			select {
			case <-wait:
				continue // re-check cache
			case <-ctx.Done():
				return fallbackVector(text, int(s.cfg.Dimensions))
			}
		}
		done := make(chan struct{})
		s.inflight[key] = done
		s.mu.Unlock()

		vec := s.embedUpstream(ctx, text, key)

		s.mu.Lock()
		delete(s.inflight, key)
		close(done)
		s.mu.Unlock()

		return vec
	}
}

// embedUpstream performs the provider call and caches a successful
// result. Fallback vectors are never cached so the real embedding is
// fetched once the provider recovers.
func (s *Service) embedUpstream(ctx context.Context, text string, key [sha256.Size]byte) []float32 {
	callCtx := ctx
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	vec, err := s.provider.Embed(callCtx, text)
	if err != nil {
		if s.available.CompareAndSwap(true, false) {
			slog.Warn("Embedding provider unavailable, using deterministic fallback", "error", err)
		}
		return fallbackVector(text, int(s.cfg.Dimensions))
	}
	s.available.Store(true)

	normalize(vec)

	s.mu.Lock()
	if len(s.cache) >= s.cfg.CacheSize && s.cfg.CacheSize > 0 {
		// Cache full: drop an arbitrary entry. Good enough for a
		// process-local cache with hash keys.
		for k := range s.cache {
			delete(s.cache, k)
			break
		}
	}
	s.cache[key] = vec
	s.mu.Unlock()

	return vec
}

// CacheLen returns the number of cached embeddings.
func (s *Service) CacheLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// Similarity maps the cosine similarity of two vectors into [0, 1].
// Zero-length or mismatched vectors score 0.
func Similarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(na) * math.Sqrt(nb))
	sim := (cos + 1) / 2
	return math.Max(0, math.Min(1, sim))
}

// normalize scales the vector to unit L2 norm in place.
func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
