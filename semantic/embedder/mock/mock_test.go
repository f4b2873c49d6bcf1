package mock

import (
	"context"
	"math"
	"testing"
)

func TestEmbedDeterministic(t *testing.T) {
	m := New()
	ctx := context.Background()

	first, err := m.Embed(ctx, "beans and rice")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	second, err := m.Embed(ctx, "beans and rice")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("component %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestEmbedDistinguishesTexts(t *testing.T) {
	m := New()
	ctx := context.Background()

	a, _ := m.Embed(ctx, "farmers market")
	b, _ := m.Embed(ctx, "food pantry")

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different texts produced identical embeddings")
	}
}

func TestEmbedUnitVector(t *testing.T) {
	m := New()
	vec, err := m.Embed(context.Background(), "seasonal produce")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vec) != m.Dimensions() {
		t.Fatalf("length = %d, want %d", len(vec), m.Dimensions())
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-3 {
		t.Errorf("norm = %v, want 1", math.Sqrt(norm))
	}
}

func TestWithDimensions(t *testing.T) {
	m := New(WithDimensions(16))
	if m.Dimensions() != 16 {
		t.Fatalf("Dimensions = %d, want 16", m.Dimensions())
	}

	small, err := m.Embed(context.Background(), "halal protein")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(small) != 16 {
		t.Fatalf("length = %d, want 16", len(small))
	}
}
