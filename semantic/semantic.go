// Package semantic provides vector search over the nutrition tip catalog.
// Tips are embedded once at startup; chat queries are embedded per call and
// matched by cosine similarity.
package semantic

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	chromem "github.com/philippgille/chromem-go"

	"github.com/nutrichat/nutrichat-go/core"
)

// Embedder converts text into a vector. Implementations: mock (deterministic
// hash-based, for tests and offline runs) and onnx (all-MiniLM-L6-v2 behind
// the onnx build tag).
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}

// Index is an in-memory vector index over nutrition tips.
// chromem-go keeps everything in memory; the index is rebuilt on startup
// from the static catalog, so there is nothing to persist.
type Index struct {
	embedder Embedder
	col      *chromem.Collection

	mu   sync.RWMutex
	tips map[string]core.NutritionTip
}

// NewIndex creates an empty tip index backed by the given embedder.
func NewIndex(embedder Embedder) (*Index, error) {
	db := chromem.NewDB()
	col, err := db.CreateCollection(
		"nutrition_tips",
		nil, // embeddings are provided, not computed by chromem
		nil, // default cosine distance
	)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &Index{
		embedder: embedder,
		col:      col,
		tips:     make(map[string]core.NutritionTip),
	}, nil
}

// IndexTips embeds and stores the given tips. Called once at startup with
// the full catalog.
func (ix *Index) IndexTips(ctx context.Context, list []core.NutritionTip) error {
	for _, tip := range list {
		text := tip.Title + ". " + tip.Content
		embedding, err := ix.embedder.Embed(ctx, text)
		if err != nil {
			return fmt.Errorf("embed tip %s: %w", tip.ID, err)
		}

		doc := chromem.Document{
			ID:        tip.ID,
			Content:   text,
			Embedding: embedding,
			Metadata: map[string]string{
				"target_goal": string(tip.TargetGoal),
			},
		}
		if err := ix.col.AddDocument(ctx, doc); err != nil {
			return fmt.Errorf("index tip %s: %w", tip.ID, err)
		}

		ix.mu.Lock()
		ix.tips[tip.ID] = tip
		ix.mu.Unlock()
	}
	log.Printf("[SEMANTIC] Indexed %d tips", len(list))
	return nil
}

// Search returns up to limit tips ranked by similarity to the query.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]core.NutritionTip, error) {
	if limit <= 0 {
		return nil, nil
	}

	embedding, err := ix.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	// chromem-go requires nResults <= collection size; back off until the
	// query fits or the collection turns out to be empty.
	var results []chromem.Result
	for n := limit; n >= 1; n-- {
		results, err = ix.col.QueryEmbedding(ctx, embedding, n, nil, nil)
		if err == nil {
			break
		}
		if isInsufficientDocsError(err) {
			if n == 1 {
				return nil, nil
			}
			continue
		}
		return nil, fmt.Errorf("query tips: %w", err)
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	matched := make([]core.NutritionTip, 0, len(results))
	for _, result := range results {
		tip, ok := ix.tips[result.ID]
		if !ok {
			log.Printf("[SEMANTIC] Skipping unknown result id %s", result.ID)
			continue
		}
		matched = append(matched, tip)
	}
	return matched, nil
}

func isInsufficientDocsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "nResults must be") || strings.Contains(msg, "number of documents")
}
