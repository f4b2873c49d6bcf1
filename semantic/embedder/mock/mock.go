// Package mock provides a deterministic embedder for tests and offline runs.
package mock

import (
	"context"
	"hash/fnv"
	"math"
)

const defaultDimensions = 384 // all-MiniLM-L6-v2 size, matches the onnx embedder

// MockEmbedder generates deterministic embeddings from a text hash. Equal
// texts always embed identically, which is all the tip index needs in tests.
type MockEmbedder struct {
	dimensions int
}

// Option configures the embedder.
type Option func(*MockEmbedder)

// WithDimensions overrides the embedding size.
func WithDimensions(n int) Option {
	return func(m *MockEmbedder) {
		if n > 0 {
			m.dimensions = n
		}
	}
}

// New creates a new mock embedder.
func New(opts ...Option) *MockEmbedder {
	m := &MockEmbedder{dimensions: defaultDimensions}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Embed creates a deterministic embedding from text. Each dimension mixes
// the position into an LCG stream seeded by the text hash, so truncating or
// growing the dimension count never shifts earlier components.
func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	h := fnv.New64a()
	h.Write([]byte(text))
	hash := h.Sum64()

	embedding := make([]float32, m.dimensions)
	for i := range embedding {
		seed := hash ^ (uint64(i+1) * 0x9e3779b97f4a7c15)
		seed = seed*6364136223846793005 + 1442695040888963407
		embedding[i] = float32(int64(seed)) / float32(math.MaxInt64)
	}

	return normalize(embedding), nil
}

// Dimensions returns the embedding size.
func (m *MockEmbedder) Dimensions() int {
	return m.dimensions
}

// normalize converts embedding to unit vector.
func normalize(vec []float32) []float32 {
	var norm float32
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}

	norm = float32(math.Sqrt(float64(norm)))
	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = v / norm
	}
	return normalized
}
