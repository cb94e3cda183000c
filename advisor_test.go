package timeoff

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/timeoff/ai/mock"
	"github.com/poiesic/timeoff/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constantEmbedder maps every text to the same vector so every stored chunk
// clears the similarity threshold.
func constantEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1.0, 0.0, 0.0}, nil
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{1.0, 0.0, 0.0}
		}
		return vectors, nil
	}
	return embedder
}

func newTestAdvisor(t *testing.T, responder *mock.MockResponder) *Advisor {
	t.Helper()

	provider := mock.NewMockProviderWithServices(constantEmbedder(), responder)
	advisor, err := New("", WithProvider(provider))
	require.NoError(t, err)
	t.Cleanup(func() { advisor.Close() })
	return advisor
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New("", WithConfig(&Config{ChunkSize: 0}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, false},
		{"overlap equals size", func(c *Config) { c.ChunkOverlap = c.ChunkSize }, false},
		{"negative threshold", func(c *Config) { c.SimilarityThreshold = -0.1 }, false},
		{"threshold above one", func(c *Config) { c.SimilarityThreshold = 1.1 }, false},
		{"zero top-k", func(c *Config) { c.TopK = 0 }, false},
		{"no formats", func(c *Config) { c.SupportedFormats = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestIngestDocuments_FallsBackToSamples(t *testing.T) {
	advisor := newTestAdvisor(t, mock.NewMockResponder())
	ctx := context.Background()

	indexed, err := advisor.IngestDocuments(ctx)
	require.NoError(t, err)
	assert.Positive(t, indexed)

	stats, err := advisor.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, indexed, stats.IndexedChunks)
	assert.Equal(t, 5, stats.Employees)
	assert.Equal(t, 5, stats.Balances)
	assert.Equal(t, 5, stats.Requests)
	assert.Equal(t, 7, stats.Holidays)
}

func TestEnsureIndexed_SkipsWhenIndexExists(t *testing.T) {
	advisor := newTestAdvisor(t, mock.NewMockResponder())
	ctx := context.Background()

	first, err := advisor.EnsureIndexed(ctx)
	require.NoError(t, err)
	assert.Positive(t, first)

	second, err := advisor.EnsureIndexed(ctx)
	require.NoError(t, err)
	assert.Zero(t, second)
}

func TestAsk(t *testing.T) {
	responder := mock.NewMockResponder()
	responder.RespondFunc = func(ctx context.Context, prompt string) (string, error) {
		return "You have PTO available.", nil
	}
	advisor := newTestAdvisor(t, responder)
	ctx := context.Background()

	_, err := advisor.EnsureIndexed(ctx)
	require.NoError(t, err)

	answer, err := advisor.Ask(ctx, "How much PTO do I have?")
	require.NoError(t, err)
	assert.Equal(t, "You have PTO available.", answer)

	// The rendered prompt carries the question and the balance context
	prompts := responder.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Question: How much PTO do I have?")
	assert.Contains(t, prompts[0], "Total Employees: 5")
}

func TestRetrieve(t *testing.T) {
	advisor := newTestAdvisor(t, mock.NewMockResponder())
	ctx := context.Background()

	_, err := advisor.EnsureIndexed(ctx)
	require.NoError(t, err)

	result := advisor.Retrieve(ctx, "Is Christmas a holiday?")
	assert.Equal(t, core.CategoryHoliday, result.Category)
	assert.NotEmpty(t, result.Documents)
	assert.Len(t, result.Data.Holidays, 7)
}

func TestContextPreview(t *testing.T) {
	advisor := newTestAdvisor(t, mock.NewMockResponder())
	ctx := context.Background()

	_, err := advisor.EnsureIndexed(ctx)
	require.NoError(t, err)

	preview := advisor.ContextPreview(ctx, "What holidays do we observe?")
	assert.Contains(t, preview, "Company Holidays:")
}

func TestSuggest(t *testing.T) {
	advisor := newTestAdvisor(t, mock.NewMockResponder())

	suggestions := advisor.Suggest("How do I request vacation?")
	assert.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 5)
}

func TestDatasetCSVRoundTripThroughAdvisor(t *testing.T) {
	advisor := newTestAdvisor(t, mock.NewMockResponder())
	dir := t.TempDir()

	require.NoError(t, advisor.SaveDataset(dir))
	require.NoError(t, advisor.LoadDataset(dir))

	stats, err := advisor.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Employees)
}

func TestAdvisorPersistsIndexAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	advisor, err := New(dir, WithProvider(mock.NewMockProviderWithServices(constantEmbedder(), mock.NewMockResponder())))
	require.NoError(t, err)

	indexed, err := advisor.EnsureIndexed(ctx)
	require.NoError(t, err)
	assert.Positive(t, indexed)

	firstResult := advisor.Retrieve(ctx, "What is the vacation policy?")
	require.NoError(t, advisor.Close())

	reopened, err := New(dir, WithProvider(mock.NewMockProviderWithServices(constantEmbedder(), mock.NewMockResponder())))
	require.NoError(t, err)
	defer reopened.Close()

	// Reopened advisor reuses the persisted index
	again, err := reopened.EnsureIndexed(ctx)
	require.NoError(t, err)
	assert.Zero(t, again)

	secondResult := reopened.Retrieve(ctx, "What is the vacation policy?")
	require.Len(t, secondResult.Documents, len(firstResult.Documents))
	for i := range secondResult.Documents {
		assert.Equal(t, firstResult.Documents[i].Content, secondResult.Documents[i].Content)
	}
}

func TestAsk_ResponderFailureFallsBack(t *testing.T) {
	responder := mock.NewMockResponder()
	responder.RespondFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("model unavailable")
	}
	advisor := newTestAdvisor(t, responder)

	answer, err := advisor.Ask(context.Background(), "How much PTO do I have?")
	require.NoError(t, err)
	assert.Contains(t, answer, "I apologize")
}

func TestAskQuestionWordsSurviveRendering(t *testing.T) {
	responder := mock.NewMockResponder()
	advisor := newTestAdvisor(t, responder)
	ctx := context.Background()

	// Default mock responder echoes the prompt
	answer, err := advisor.Ask(ctx, "Tell me about carryover")
	require.NoError(t, err)
	assert.True(t, strings.Contains(answer, "carryover"))
}
