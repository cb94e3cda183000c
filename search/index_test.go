package search

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/timeoff/ai/mock"
	"github.com/poiesic/timeoff/core"
	"github.com/poiesic/timeoff/storage"
	"github.com/poiesic/timeoff/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// axisEmbedder maps queries onto fixed axes so similarity scores are exact.
func axisEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		switch text {
		case "vacation":
			return []float32{1.0, 0.0, 0.0}, nil
		case "sick":
			return []float32{0.0, 1.0, 0.0}, nil
		default:
			return []float32{0.0, 0.0, 1.0}, nil
		}
	}
	return embedder
}

func newTestIndex(t *testing.T) (*Index, storage.ChunkRepository) {
	t.Helper()

	repo, backend, err := badger.NewMemoryChunkRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	provider := mock.NewMockProviderWithServices(axisEmbedder(), mock.NewMockResponder())
	idx, err := NewIndex(repo, provider)
	require.NoError(t, err)
	return idx, repo
}

func seedChunks(t *testing.T, repo storage.ChunkRepository, chunks ...*core.DocumentChunk) {
	t.Helper()
	_, err := repo.AddChunks(context.Background(), chunks...)
	require.NoError(t, err)
}

func TestNewIndex_Validation(t *testing.T) {
	repo, backend, err := badger.NewMemoryChunkRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewIndex(nil, mock.NewMockProvider())
		assert.ErrorIs(t, err, ErrChunkRepositoryRequired)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewIndex(repo, nil)
		assert.ErrorIs(t, err, ErrAIProviderRequired)
	})
}

func TestSearch_RanksBySimilarity(t *testing.T) {
	idx, repo := newTestIndex(t)

	seedChunks(t, repo,
		&core.DocumentChunk{SourceFile: "sick_leave.md", Seq: 0, FileType: "md", Content: "Sick leave rules", Vector: []float32{0.0, 1.0, 0.0}},
		&core.DocumentChunk{SourceFile: "pto_policy.md", Seq: 0, FileType: "md", Content: "Vacation accrual", Vector: []float32{1.0, 0.0, 0.0}},
		&core.DocumentChunk{SourceFile: "pto_policy.md", Seq: 1, FileType: "md", Content: "Mostly vacation", Vector: []float32{0.9, 0.1, 0.0}},
	)

	chunks, err := idx.Search(context.Background(), "vacation", 10, 0.5)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "Vacation accrual", chunks[0].Content)
	assert.Equal(t, "Mostly vacation", chunks[1].Content)
}

func TestSearch_EmptyIndex(t *testing.T) {
	idx, _ := newTestIndex(t)

	chunks, err := idx.Search(context.Background(), "vacation", 5, 0.5)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSearch_NothingClearsThreshold(t *testing.T) {
	idx, repo := newTestIndex(t)

	seedChunks(t, repo,
		&core.DocumentChunk{SourceFile: "sick_leave.md", Seq: 0, FileType: "md", Content: "Sick leave rules", Vector: []float32{0.0, 1.0, 0.0}},
	)

	chunks, err := idx.Search(context.Background(), "vacation", 5, 0.5)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSearch_RespectsTopK(t *testing.T) {
	idx, repo := newTestIndex(t)

	for i := 0; i < 6; i++ {
		seedChunks(t, repo, &core.DocumentChunk{
			SourceFile: "pto_policy.md",
			Seq:        i,
			FileType:   "md",
			Content:    "Vacation details",
			Vector:     []float32{1.0, 0.0, 0.0},
		})
	}

	chunks, err := idx.Search(context.Background(), "vacation", 4, 0.5)
	require.NoError(t, err)
	assert.Len(t, chunks, 4)
}

func TestSearch_InvalidTopK(t *testing.T) {
	idx, _ := newTestIndex(t)

	_, err := idx.Search(context.Background(), "vacation", 0, 0.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTopK)
}

func TestSearch_EmbeddingFailure(t *testing.T) {
	repo, backend, err := badger.NewMemoryChunkRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	embedErr := errors.New("embedding service down")
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, embedErr
	}

	idx, err := NewIndex(repo, mock.NewMockProviderWithServices(embedder, mock.NewMockResponder()))
	require.NoError(t, err)

	_, err = idx.Search(context.Background(), "vacation", 5, 0.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmbedding)
	assert.ErrorIs(t, err, embedErr)
}

type recordingMonitor struct {
	stages []string
}

func (r *recordingMonitor) Start(_ string)                             { r.stages = append(r.stages, "start") }
func (r *recordingMonitor) AfterQueryEmbedding(_ []float32)            { r.stages = append(r.stages, "embed") }
func (r *recordingMonitor) AfterSimilaritySearch(_ []*core.ChunkMatch) { r.stages = append(r.stages, "search") }
func (r *recordingMonitor) Finish(_ []core.DocumentChunk)              { r.stages = append(r.stages, "finish") }

func TestSearchWithMonitor(t *testing.T) {
	idx, repo := newTestIndex(t)

	seedChunks(t, repo,
		&core.DocumentChunk{SourceFile: "pto_policy.md", Seq: 0, FileType: "md", Content: "Vacation accrual", Vector: []float32{1.0, 0.0, 0.0}},
	)

	monitor := &recordingMonitor{}
	chunks, err := idx.SearchWithMonitor(context.Background(), "vacation", 5, 0.5, monitor)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	assert.Equal(t, []string{"start", "embed", "search", "finish"}, monitor.stages)
}

func TestReload(t *testing.T) {
	idx, repo := newTestIndex(t)

	assert.False(t, idx.Reload(context.Background()), "empty index has nothing to reload")

	seedChunks(t, repo,
		&core.DocumentChunk{SourceFile: "pto_policy.md", Seq: 0, FileType: "md", Content: "Vacation accrual", Vector: []float32{1.0, 0.0, 0.0}},
	)

	assert.True(t, idx.Reload(context.Background()))
}

func TestCount(t *testing.T) {
	idx, repo := newTestIndex(t)

	count, err := idx.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	seedChunks(t, repo,
		&core.DocumentChunk{SourceFile: "a.md", Seq: 0, FileType: "md", Content: "one", Vector: nil},
		&core.DocumentChunk{SourceFile: "a.md", Seq: 1, FileType: "md", Content: "two", Vector: nil},
	)

	count, err = idx.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
