package embedding

import (
	"hash/fnv"
	"strings"
)

// fallbackVector builds a deterministic pseudo-embedding from word,
// bigram, and trigram hash features. The same text always produces the
// same vector, so semantic detection stays reproducible while the real
// provider is down. Scores from these vectors are weaker than real
// embeddings; callers must check Available() before trusting them.
func fallbackVector(text string, dims int) []float32 {
	vec := make([]float32, dims)

	words := strings.Fields(strings.ToLower(text))
	for i, w := range words {
		addFeature(vec, w, 1.0)
		if i+1 < len(words) {
			addFeature(vec, w+" "+words[i+1], 0.5)
		}
		if i+2 < len(words) {
			addFeature(vec, w+" "+words[i+1]+" "+words[i+2], 0.25)
		}
	}

	normalize(vec)
	return vec
}

// addFeature hashes the feature into two buckets with opposing signs so
// fallback vectors spread over the whole space instead of the positive
// orthant.
func addFeature(vec []float32, feature string, weight float32) {
	h := fnv.New64a()
	h.Write([]byte(feature))
	sum := h.Sum64()

	idx := int(sum % uint64(len(vec)))
	sign := float32(1)
	if sum&(1<<63) != 0 {
		sign = -1
	}
	vec[idx] += sign * weight

	idx2 := int((sum >> 16) % uint64(len(vec)))
	vec[idx2] += sign * weight * 0.5
}
