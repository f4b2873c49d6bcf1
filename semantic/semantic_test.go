package semantic

import (
	"context"
	"testing"

	"github.com/nutrichat/nutrichat-go/semantic/embedder/mock"
	"github.com/nutrichat/nutrichat-go/tips"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := NewIndex(mock.New())
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return ix
}

func TestSearchEmptyIndex(t *testing.T) {
	ix := newTestIndex(t)

	got, err := ix.Search(context.Background(), "anything", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results from empty index, got %d", len(got))
	}
}

func TestIndexAndSearch(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	if err := ix.IndexTips(ctx, tips.All()); err != nil {
		t.Fatalf("IndexTips: %v", err)
	}

	got, err := ix.Search(ctx, "cheap meals for the week", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("result count = %d, want 3", len(got))
	}
	seen := map[string]bool{}
	for _, tip := range got {
		if tip.ID == "" || tip.Content == "" {
			t.Errorf("result missing fields: %+v", tip)
		}
		if seen[tip.ID] {
			t.Errorf("duplicate result %s", tip.ID)
		}
		seen[tip.ID] = true
	}
}

func TestSearchLimitExceedsIndexSize(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	all := tips.All()
	if err := ix.IndexTips(ctx, all[:2]); err != nil {
		t.Fatalf("IndexTips: %v", err)
	}

	got, err := ix.Search(ctx, "budget groceries", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("result count = %d, want 2 (whole index)", len(got))
	}
}

func TestSearchDeterministic(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()
	if err := ix.IndexTips(ctx, tips.All()); err != nil {
		t.Fatalf("IndexTips: %v", err)
	}

	first, err := ix.Search(ctx, "SNAP at the farmers market", 2)
	if err != nil {
		t.Fatalf("first Search: %v", err)
	}
	second, err := ix.Search(ctx, "SNAP at the farmers market", 2)
	if err != nil {
		t.Fatalf("second Search: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("result %d differs: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestSearchZeroLimit(t *testing.T) {
	ix := newTestIndex(t)
	got, err := ix.Search(context.Background(), "anything", 0)
	if err != nil || got != nil {
		t.Errorf("Search with zero limit: got %v, %v; want nil, nil", got, err)
	}
}
