// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package timeoff

import (
	"context"
	"log/slog"

	"github.com/poiesic/timeoff/ai"
	"github.com/poiesic/timeoff/ai/openai"
	"github.com/poiesic/timeoff/core"
	"github.com/poiesic/timeoff/dataset"
	"github.com/poiesic/timeoff/ingestion"
	"github.com/poiesic/timeoff/prompt"
	"github.com/poiesic/timeoff/retrieval"
	"github.com/poiesic/timeoff/search"
	"github.com/poiesic/timeoff/storage"
	"github.com/poiesic/timeoff/storage/badger"
)

// Advisor is the top-level entry point: it owns the document index, the
// tabular dataset, and the AI provider, and answers time-off questions.
type Advisor struct {
	config    *Config
	backend   *badger.Backend
	chunkRepo storage.ChunkRepository
	provider  ai.AIProvider
	store     *dataset.Store
	index     *search.Index
	retriever *retrieval.Retriever
	logger    *slog.Logger
}

// AdvisorOption configures an Advisor.
type AdvisorOption func(*advisorOptions)

type advisorOptions struct {
	config   *Config
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithConfig overrides the default advisor configuration.
func WithConfig(config *Config) AdvisorOption {
	return func(o *advisorOptions) {
		o.config = config
	}
}

// WithAIConfig overrides the default AI provider configuration.
func WithAIConfig(aiConfig *ai.Config) AdvisorOption {
	return func(o *advisorOptions) {
		o.aiConfig = aiConfig
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI
// provider construction. Used with mock providers in tests.
func WithProvider(provider ai.AIProvider) AdvisorOption {
	return func(o *advisorOptions) {
		o.provider = provider
	}
}

// New creates an Advisor with its index stored at filePath. An empty
// filePath keeps the index in memory.
func New(filePath string, opts ...AdvisorOption) (*Advisor, error) {
	options := &advisorOptions{
		config:   DefaultConfig(),
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if err := options.config.Validate(); err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	chunkRepo, err := badger.NewChunkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			chunkRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	store, err := dataset.NewStore()
	if err != nil {
		provider.Close()
		chunkRepo.Close()
		backend.Close()
		return nil, err
	}
	store.LoadSample()

	index, err := search.NewIndex(chunkRepo, provider)
	if err != nil {
		provider.Close()
		chunkRepo.Close()
		backend.Close()
		return nil, err
	}

	retriever, err := retrieval.NewRetriever(index, store,
		options.config.TopK, options.config.SimilarityThreshold)
	if err != nil {
		provider.Close()
		chunkRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Advisor{
		config:    options.config,
		backend:   backend,
		chunkRepo: chunkRepo,
		provider:  provider,
		store:     store,
		index:     index,
		retriever: retriever,
		logger:    slog.Default().With("component", "advisor"),
	}, nil
}

// Close releases the AI provider and storage.
func (a *Advisor) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.chunkRepo.Close(); err != nil {
		a.logger.Error("error closing chunk repository", "err", err)
		return err
	}

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ChunkRepository exposes the underlying document chunk storage.
func (a *Advisor) ChunkRepository() storage.ChunkRepository {
	return a.chunkRepo
}

// DataStore exposes the tabular dataset.
func (a *Advisor) DataStore() *dataset.Store {
	return a.store
}

// Index exposes the document index.
func (a *Advisor) Index() *search.Index {
	return a.index
}

// NewIngestionPipeline creates an ingestion pipeline bound to this advisor's
// storage and AI provider.
func (a *Advisor) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.chunkRepo, a.provider, opts...)
}

// IngestDocuments loads documents from the configured data directory,
// falling back to the built-in sample documents when the directory is
// missing or empty, and indexes them. Returns the number of chunks indexed.
func (a *Advisor) IngestDocuments(ctx context.Context) (int, error) {
	splitter, err := ingestion.NewSplitter(a.config.ChunkSize, a.config.ChunkOverlap)
	if err != nil {
		return 0, err
	}

	loader, err := ingestion.NewLoader(a.config.DataDirectory, a.config.SupportedFormats, splitter)
	if err != nil {
		return 0, err
	}

	chunks, err := loader.LoadDocuments()
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		a.logger.Info("no documents found, using sample documents", "dir", a.config.DataDirectory)
		chunks = ingestion.SampleDocuments(splitter)
	}

	pipeline, err := a.NewIngestionPipeline()
	if err != nil {
		return 0, err
	}
	defer pipeline.Release()

	if err := pipeline.Ingest(ctx, chunks...); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// EnsureIndexed ingests documents only when the index is empty, so a
// persisted index survives restarts without re-ingesting. Returns the
// number of chunks newly indexed, zero when the existing index is reused.
func (a *Advisor) EnsureIndexed(ctx context.Context) (int, error) {
	if a.index.Reload(ctx) {
		a.logger.Info("reusing existing index")
		return 0, nil
	}
	return a.IngestDocuments(ctx)
}

// Retrieve composes the retrieval context for a query without calling the
// language model.
func (a *Advisor) Retrieve(ctx context.Context, query string) *core.RetrievalResult {
	return a.retriever.Retrieve(ctx, query)
}

// askFallback is returned when the language model cannot produce an answer.
const askFallback = "I apologize, but I'm having trouble answering that right now. Please try again or contact HR directly."

// Ask answers a question: it retrieves context, renders the category
// template, and sends the prompt to the language model. Model failures do
// not abort the query; a fallback answer is returned instead.
func (a *Advisor) Ask(ctx context.Context, query string) (string, error) {
	result := a.retriever.Retrieve(ctx, query)
	rendered := prompt.Render(result.Category, result, query)

	answer, err := a.provider.Responder().Respond(ctx, rendered)
	if err != nil {
		a.logger.Error("error generating answer", "err", err, "category", result.Category)
		return askFallback, nil
	}
	return answer, nil
}

// ContextPreview formats the retrieval context for a query as readable
// text, without calling the language model.
func (a *Advisor) ContextPreview(ctx context.Context, query string) string {
	return prompt.ContextPreview(a.retriever.Retrieve(ctx, query))
}

// Suggest returns related questions for a query.
func (a *Advisor) Suggest(query string) []string {
	return retrieval.Suggest(query)
}

// LoadDataset replaces the built-in sample dataset with CSV tables from dir.
func (a *Advisor) LoadDataset(dir string) error {
	return a.store.LoadCSV(dir)
}

// SaveDataset writes the current dataset tables to CSV files in dir.
func (a *Advisor) SaveDataset(dir string) error {
	return a.store.SaveCSV(dir)
}

// Stats reports the size of the index and the dataset tables.
type Stats struct {
	IndexedChunks int
	Employees     int
	Balances      int
	Requests      int
	Holidays      int
}

// Stats returns current index and dataset sizes.
func (a *Advisor) Stats(ctx context.Context) (*Stats, error) {
	chunks, err := a.index.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		IndexedChunks: chunks,
		Employees:     len(a.store.Employees()),
		Balances:      len(a.store.Balances()),
		Requests:      len(a.store.Requests()),
		Holidays:      len(a.store.Holidays()),
	}, nil
}
