package retrieval

import (
	"context"
	"fmt"

	"github.com/tripmesh/tripmesh/log"
)

const (
	defaultK              = 5
	defaultScoreThreshold = 0.5
	relaxedScoreThreshold = 0.3
)

// Context is the outcome of a retrieval pass: the matching documents plus
// their deduplicated sources in first-seen order.
type Context struct {
	Documents []Document
	Sources   []string
}

// Empty reports whether retrieval found nothing.
func (c *Context) Empty() bool {
	return c == nil || len(c.Documents) == 0
}

// Retriever searches a vector store with a widening fallback chain: strict
// score threshold first, then a relaxed threshold, then plain top-k
// similarity. A query that matches nothing yields an empty Context rather
// than an error; stage failures are logged and treated as empty.
type Retriever struct {
	store          VectorStore
	embedder       Embedder
	k              int
	scoreThreshold float64
	logger         log.Logger
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithK sets how many documents each stage requests.
func WithK(k int) RetrieverOption {
	return func(r *Retriever) {
		if k > 0 {
			r.k = k
		}
	}
}

// WithScoreThreshold sets the strict first-stage score threshold.
func WithScoreThreshold(threshold float64) RetrieverOption {
	return func(r *Retriever) {
		r.scoreThreshold = threshold
	}
}

// WithLogger sets the logger used for stage failures.
func WithLogger(logger log.Logger) RetrieverOption {
	return func(r *Retriever) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRetriever creates a retriever over the given store and embedder.
func NewRetriever(store VectorStore, embedder Embedder, opts ...RetrieverOption) *Retriever {
	r := &Retriever{
		store:          store,
		embedder:       embedder,
		k:              defaultK,
		scoreThreshold: defaultScoreThreshold,
		logger:         log.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve runs the fallback chain for a query.
func (r *Retriever) Retrieve(ctx context.Context, query string) (*Context, error) {
	embedding, err := r.embedder.EmbedDocument(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	docs := r.searchAboveThreshold(ctx, embedding, r.scoreThreshold)
	if len(docs) == 0 {
		docs = r.searchAboveThreshold(ctx, embedding, relaxedScoreThreshold)
	}
	if len(docs) == 0 {
		docs = r.searchAboveThreshold(ctx, embedding, 0)
	}

	return &Context{
		Documents: docs,
		Sources:   dedupeSources(docs),
	}, nil
}

func (r *Retriever) searchAboveThreshold(ctx context.Context, embedding []float32, threshold float64) []Document {
	results, err := r.store.Search(ctx, embedding, r.k)
	if err != nil {
		r.logger.Warn("vector search failed (threshold %.2f): %v", threshold, err)
		return nil
	}

	docs := make([]Document, 0, len(results))
	for _, result := range results {
		if threshold > 0 && result.Score < threshold {
			continue
		}
		docs = append(docs, result.Document)
	}
	return docs
}

func dedupeSources(docs []Document) []string {
	seen := make(map[string]bool, len(docs))
	sources := make([]string, 0, len(docs))
	for _, doc := range docs {
		src := doc.Source()
		if !seen[src] {
			seen[src] = true
			sources = append(sources, src)
		}
	}
	return sources
}
