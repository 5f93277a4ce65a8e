// Package retrieval provides the vector-store retrieval layer agents use to
// ground their answers in local knowledge before falling back to web search.
package retrieval

import (
	"context"
)

// Document is a chunk of local knowledge with optional metadata and a
// precomputed embedding.
type Document struct {
	ID        string
	Content   string
	Metadata  map[string]any
	Embedding []float32
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document Document
	Score    float64
}

// Embedder generates embeddings for text.
type Embedder interface {
	EmbedDocument(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorStore stores documents and searches them by embedding similarity.
type VectorStore interface {
	// Add stores documents. Documents must carry embeddings.
	Add(ctx context.Context, docs []Document) error
	// Search returns up to k results ordered by descending score.
	Search(ctx context.Context, embedding []float32, k int) ([]SearchResult, error)
}

// Source returns the origin of a document, taken from the first of the
// metadata keys "source", "file_path" and "path" that is set, or "unknown".
func (d Document) Source() string {
	for _, key := range []string{"source", "file_path", "path"} {
		if v, ok := d.Metadata[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return "unknown"
}
