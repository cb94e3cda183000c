package badger

import (
	"context"
	"testing"

	"github.com/poiesic/timeoff/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestFindSimilar_NoChunks(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	vector := []float32{0.1, 0.2, 0.3}

	results, err := backend.FindSimilar(ctx, vector, 0.5, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindSimilar_WithChunks(t *testing.T) {
	repo, backend, err := NewMemoryChunkRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	chunks := []*core.DocumentChunk{
		{
			SourceFile: "pto_policy.md",
			Seq:        0,
			FileType:   "md",
			Content:    "Vacation accrual schedule",
			Vector:     []float32{1.0, 0.0, 0.0}, // Very similar to query
		},
		{
			SourceFile: "pto_policy.md",
			Seq:        1,
			FileType:   "md",
			Content:    "Carryover limits",
			Vector:     []float32{0.9, 0.1, 0.0}, // Somewhat similar
		},
		{
			SourceFile: "sick_leave.md",
			Seq:        0,
			FileType:   "md",
			Content:    "Doctor note requirements",
			Vector:     []float32{0.0, 0.0, 1.0}, // Not similar
		},
		{
			SourceFile: "holidays.md",
			Seq:        0,
			FileType:   "md",
			Content:    "Chunk without an embedding",
			Vector:     nil, // No vector - should be skipped
		},
	}

	added, err := repo.AddChunks(ctx, chunks...)
	require.NoError(t, err)
	require.Len(t, added, 4)

	queryVector := []float32{1.0, 0.0, 0.0}
	results, err := backend.FindSimilar(ctx, queryVector, 0.8, 10)
	require.NoError(t, err)

	require.NotEmpty(t, results)

	// Results should be sorted by score descending
	for i := 0; i < len(results)-1; i++ {
		assert.GreaterOrEqual(t, results[i].Score, results[i+1].Score)
	}

	assert.Equal(t, "Vacation accrual schedule", results[0].Chunk.Content)
	assert.Greater(t, results[0].Score, float32(0.8))
}

func TestFindSimilar_ThresholdFiltering(t *testing.T) {
	repo, backend, err := NewMemoryChunkRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	chunks := []*core.DocumentChunk{
		{
			SourceFile: "a.txt",
			Seq:        0,
			FileType:   "txt",
			Content:    "High similarity",
			Vector:     []float32{1.0, 0.0, 0.0},
		},
		{
			SourceFile: "a.txt",
			Seq:        1,
			FileType:   "txt",
			Content:    "Medium similarity",
			Vector:     []float32{0.7, 0.3, 0.0},
		},
		{
			SourceFile: "a.txt",
			Seq:        2,
			FileType:   "txt",
			Content:    "Low similarity",
			Vector:     []float32{0.3, 0.7, 0.0},
		},
	}

	_, err = repo.AddChunks(ctx, chunks...)
	require.NoError(t, err)

	queryVector := []float32{1.0, 0.0, 0.0}

	t.Run("high threshold", func(t *testing.T) {
		results, err := backend.FindSimilar(ctx, queryVector, 0.95, 10)
		require.NoError(t, err)
		// Only the most similar should pass
		assert.Len(t, results, 1)
	})

	t.Run("medium threshold", func(t *testing.T) {
		results, err := backend.FindSimilar(ctx, queryVector, 0.6, 10)
		require.NoError(t, err)
		// At least high and medium should pass
		assert.GreaterOrEqual(t, len(results), 2)
	})

	t.Run("low threshold", func(t *testing.T) {
		results, err := backend.FindSimilar(ctx, queryVector, 0.2, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, len(results))
	})
}

func TestFindSimilar_LimitResults(t *testing.T) {
	repo, backend, err := NewMemoryChunkRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	chunks := make([]*core.DocumentChunk, 10)
	for i := 0; i < 10; i++ {
		chunks[i] = &core.DocumentChunk{
			SourceFile: "pto_policy.md",
			Seq:        i,
			FileType:   "md",
			Content:    "Chunk",
			Vector:     []float32{0.9, 0.1, 0.0}, // All similar
		}
	}

	_, err = repo.AddChunks(ctx, chunks...)
	require.NoError(t, err)

	queryVector := []float32{1.0, 0.0, 0.0}

	t.Run("limit to 3", func(t *testing.T) {
		results, err := backend.FindSimilar(ctx, queryVector, 0.5, 3)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("limit to 5", func(t *testing.T) {
		results, err := backend.FindSimilar(ctx, queryVector, 0.5, 5)
		require.NoError(t, err)
		assert.Len(t, results, 5)
	})

	t.Run("limit higher than results", func(t *testing.T) {
		results, err := backend.FindSimilar(ctx, queryVector, 0.5, 100)
		require.NoError(t, err)
		assert.Len(t, results, 10)
	})
}

func TestFindSimilar_TiesKeepInsertionOrder(t *testing.T) {
	repo, backend, err := NewMemoryChunkRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	// Identical vectors produce identical scores
	chunks := []*core.DocumentChunk{
		{SourceFile: "first.txt", Seq: 0, FileType: "txt", Content: "first", Vector: []float32{1.0, 0.0}},
		{SourceFile: "second.txt", Seq: 0, FileType: "txt", Content: "second", Vector: []float32{1.0, 0.0}},
		{SourceFile: "third.txt", Seq: 0, FileType: "txt", Content: "third", Vector: []float32{1.0, 0.0}},
	}

	_, err = repo.AddChunks(ctx, chunks...)
	require.NoError(t, err)

	results, err := backend.FindSimilar(ctx, []float32{1.0, 0.0}, 0.5, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "first", results[0].Chunk.Content)
	assert.Equal(t, "second", results[1].Chunk.Content)
	assert.Equal(t, "third", results[2].Chunk.Content)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float32
	}{
		{
			name:     "identical vectors",
			a:        []float32{1.0, 0.0, 0.0},
			b:        []float32{1.0, 0.0, 0.0},
			expected: 1.0,
		},
		{
			name:     "orthogonal vectors",
			a:        []float32{1.0, 0.0, 0.0},
			b:        []float32{0.0, 1.0, 0.0},
			expected: 0.0,
		},
		{
			name:     "opposite vectors",
			a:        []float32{1.0, 0.0, 0.0},
			b:        []float32{-1.0, 0.0, 0.0},
			expected: -1.0,
		},
		{
			name:     "scale invariant",
			a:        []float32{2.0, 0.0},
			b:        []float32{0.5, 0.0},
			expected: 1.0,
		},
		{
			name:     "general case",
			a:        []float32{0.6, 0.8},
			b:        []float32{0.8, 0.6},
			expected: 0.96,
		},
		{
			name:     "empty vectors",
			a:        []float32{},
			b:        []float32{},
			expected: 0.0,
		},
		{
			name:     "zero vectors",
			a:        []float32{0.0, 0.0, 0.0},
			b:        []float32{0.0, 0.0, 0.0},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cosineSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.expected, result, 0.0001)
		})
	}
}

func TestWithTransaction(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	t.Run("successful transaction", func(t *testing.T) {
		err := backend.WithTransaction(ctx, func(ctx context.Context) error {
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("failed transaction", func(t *testing.T) {
		testErr := assert.AnError
		err := backend.WithTransaction(ctx, func(ctx context.Context) error {
			return testErr
		})
		assert.Equal(t, testErr, err)
	})
}

func TestGetSequence(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	seq, err := backend.GetSequence("test_sequence")
	require.NoError(t, err)
	require.NotNil(t, seq)
	defer seq.Release()

	id1, err := seq.Next()
	require.NoError(t, err)

	id2, err := seq.Next()
	require.NoError(t, err)

	assert.Greater(t, id2, id1)
}
