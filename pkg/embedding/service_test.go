package embedding

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/pkg/config"
)

type stubProvider struct {
	mu    sync.Mutex
	calls int
	fail  bool
	vec   []float32
}

func (p *stubProvider) Embed(_ context.Context, _ string) ([]float32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.fail {
		return nil, errors.New("upstream down")
	}
	out := make([]float32, len(p.vec))
	copy(out, p.vec)
	return out, nil
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func testConfig() *config.EmbeddingConfig {
	cfg := config.DefaultEmbeddingConfig()
	cfg.Dimensions = 16
	cfg.CacheSize = 8
	return cfg
}

func TestFallbackVector_Deterministic(t *testing.T) {
	a := fallbackVector("please verify your account details", 768)
	b := fallbackVector("please verify your account details", 768)
	c := fallbackVector("completely different utterance", 768)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 768)

	// Output is unit-length.
	var norm float64
	for _, v := range a {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-6)
}

func TestFallbackVector_SimilarTextScoresHigher(t *testing.T) {
	base := fallbackVector("I want to cancel my subscription today", 768)
	close_ := fallbackVector("I want to cancel my subscription now", 768)
	far := fallbackVector("the weather is lovely in spring", 768)

	assert.Greater(t, Similarity(base, close_), Similarity(base, far))
}

func TestSimilarity_Bounds(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{-1, 0}
	c := []float32{0, 1}

	assert.InDelta(t, 1.0, Similarity(a, a), 1e-9)
	assert.InDelta(t, 0.0, Similarity(a, b), 1e-9)
	assert.InDelta(t, 0.5, Similarity(a, c), 1e-9)

	assert.Zero(t, Similarity(nil, a))
	assert.Zero(t, Similarity(a, []float32{1, 2, 3}))
	assert.Zero(t, Similarity([]float32{0, 0}, a))
}

func TestEmbed_CachesProviderResults(t *testing.T) {
	provider := &stubProvider{vec: []float32{3, 4, 0, 0}}
	cfg := testConfig()
	cfg.Dimensions = 4
	svc := NewService(provider, cfg)

	v1 := svc.Embed(context.Background(), "hello")
	v2 := svc.Embed(context.Background(), "hello")

	assert.Equal(t, 1, provider.callCount())
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, svc.CacheLen())
	assert.True(t, svc.Available())

	// Provider output is L2-normalized.
	assert.InDelta(t, 0.6, float64(v1[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(v1[1]), 1e-6)
}

func TestEmbed_FallbackOnProviderFailure(t *testing.T) {
	provider := &stubProvider{fail: true}
	svc := NewService(provider, testConfig())

	v1 := svc.Embed(context.Background(), "some text")
	assert.False(t, svc.Available())
	assert.Len(t, v1, 16)

	// Fallback results are not cached; recovery picks up real vectors.
	assert.Equal(t, 0, svc.CacheLen())

	provider.mu.Lock()
	provider.fail = false
	provider.vec = make([]float32, 16)
	provider.vec[0] = 1
	provider.mu.Unlock()

	v2 := svc.Embed(context.Background(), "some text")
	assert.True(t, svc.Available())
	assert.NotEqual(t, v1, v2)
	assert.Equal(t, 1, svc.CacheLen())
}

func TestEmbed_NilProviderIsFallbackOnly(t *testing.T) {
	svc := NewService(nil, testConfig())

	require.False(t, svc.Available())
	v := svc.Embed(context.Background(), "text")
	assert.Equal(t, fallbackVector("text", 16), v)
}

func TestEmbed_ConcurrentRequestsShareOneCall(t *testing.T) {
	provider := &stubProvider{vec: []float32{1, 0, 0, 0}}
	cfg := testConfig()
	cfg.Dimensions = 4
	svc := NewService(provider, cfg)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Embed(context.Background(), "same text")
		}()
	}
	wg.Wait()

	// The in-flight guard dedupes concurrent identical requests. Allow
	// a small race margin but far fewer calls than goroutines.
	assert.LessOrEqual(t, provider.callCount(), 2)
	assert.Equal(t, 1, svc.CacheLen())
}
