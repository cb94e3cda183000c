package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/timeoff/ai"
	"github.com/poiesic/timeoff/core"
	"github.com/poiesic/timeoff/storage"
)

// Index answers similarity queries over the stored document chunks.
type Index struct {
	chunkRepository storage.ChunkRepository
	embedder        ai.Embedder
	logger          *slog.Logger
}

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
		return nil
	}
}

// NewIndex creates a new document index over the given repository.
func NewIndex(chunkRepository storage.ChunkRepository, provider ai.AIProvider, opts ...Option) (*Index, error) {
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	idx := &Index{
		chunkRepository: chunkRepository,
		embedder:        provider.Embedder(),
		logger:          slog.Default().With("component", "search"),
	}

	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// Search returns up to k chunks whose similarity to the query is at least
// minSimilarity, most similar first. Ties keep insertion order.
func (idx *Index) Search(ctx context.Context, query string, k int, minSimilarity float32) ([]core.DocumentChunk, error) {
	return idx.SearchWithMonitor(ctx, query, k, minSimilarity, nil)
}

// SearchWithMonitor runs a search with monitoring callbacks at each stage.
func (idx *Index) SearchWithMonitor(ctx context.Context, query string, k int, minSimilarity float32, monitor Monitor) ([]core.DocumentChunk, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTopK, k)
	}

	monitor.Start(query)

	vector, err := idx.embedder.EmbedText(ctx, query)
	if err != nil {
		idx.logger.Error("error embedding query", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}
	monitor.AfterQueryEmbedding(vector)

	matches, err := idx.chunkRepository.FindSimilar(ctx, vector, minSimilarity, k)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndex, err)
	}
	monitor.AfterSimilaritySearch(matches)

	chunks := make([]core.DocumentChunk, 0, len(matches))
	for _, match := range matches {
		chunks = append(chunks, *match.Chunk)
	}

	idx.logger.Debug("search complete", "query", query, "hits", len(chunks))
	monitor.Finish(chunks)
	return chunks, nil
}

// Count returns the number of indexed chunks.
func (idx *Index) Count(ctx context.Context) (int, error) {
	return idx.chunkRepository.CountChunks(ctx)
}

// Reload reports whether a persisted index with documents already exists.
// A missing or empty index is not an error; it means the caller should
// rebuild from source documents.
func (idx *Index) Reload(ctx context.Context) bool {
	count, err := idx.chunkRepository.CountChunks(ctx)
	if err != nil {
		idx.logger.Warn("could not read persisted index", "err", err)
		return false
	}
	return count > 0
}
