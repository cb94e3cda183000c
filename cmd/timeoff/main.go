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


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/timeoff"
	"github.com/poiesic/timeoff/ai"
	"github.com/poiesic/timeoff/ai/openai"
	"github.com/poiesic/timeoff/reembed"
	"github.com/poiesic/timeoff/retrieval"
	"github.com/poiesic/timeoff/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "timeoff",
		Usage: "Time-off advisor over policy documents and HR data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single time-off question",
				ArgsUsage: "QUESTION",
				Action:    askCommand,
				Flags:     append(storageFlags(), aiFlags()...),
			},
			{
				Name:   "chat",
				Usage:  "Interactive question loop",
				Action: chatCommand,
				Flags:  append(storageFlags(), aiFlags()...),
			},
			{
				Name:      "context",
				Usage:     "Show the retrieved context for a question without calling the model",
				ArgsUsage: "QUESTION",
				Action:    contextCommand,
				Flags:     append(storageFlags(), aiFlags()...),
			},
			{
				Name:   "ingest",
				Usage:  "Index policy documents from the data directory",
				Action: ingestCommand,
				Flags: append(storageFlags(), append(aiFlags(),
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Maximum chunk length in characters",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  "chunk-overlap",
						Usage: "Characters shared between adjacent chunks",
						Value: 200,
					})...),
			},
			{
				Name:   "stats",
				Usage:  "Show index and dataset sizes",
				Action: statsCommand,
				Flags:  append(storageFlags(), aiFlags()...),
			},
			{
				Name:      "suggest",
				Usage:     "Show related questions for a query",
				ArgsUsage: "QUESTION",
				Action:    suggestCommand,
			},
			{
				Name:   "reembed",
				Usage:  "Rebuild all chunk embeddings with a new embedding model",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB index directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N chunks",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:      "export-data",
				Usage:     "Write the dataset tables to CSV files",
				ArgsUsage: "DIR",
				Action:    exportDataCommand,
				Flags:     append(storageFlags(), aiFlags()...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func storageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB index directory (empty for in-memory)",
			Value:   "./timeoff_db",
		},
		&cli.StringFlag{
			Name:  "data-dir",
			Usage: "Directory of policy documents to index",
			Value: "data/documents",
		},
		&cli.StringFlag{
			Name:  "dataset-dir",
			Usage: "Directory of dataset CSV files (built-in sample data when empty)",
		},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL for embeddings and chat",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model name for answer generation",
			Value: "qwen2.5:3b",
		},
		&cli.Float64Flag{
			Name:  "temperature",
			Usage: "Sampling temperature for answer generation",
			Value: 0.1,
		},
		&cli.IntFlag{
			Name:  "top-k",
			Usage: "Number of document chunks to retrieve per query",
			Value: 5,
		},
		&cli.Float64Flag{
			Name:  "threshold",
			Usage: "Minimum cosine similarity for retrieved chunks",
			Value: 0.7,
		},
	}
}

// openAdvisor builds an advisor from the command flags.
func openAdvisor(c *cli.Context) (*timeoff.Advisor, error) {
	config := timeoff.DefaultConfig()
	config.DataDirectory = c.String("data-dir")
	if c.IsSet("top-k") {
		config.TopK = c.Int("top-k")
	}
	if c.IsSet("threshold") {
		config.SimilarityThreshold = float32(c.Float64("threshold"))
	}
	if c.IsSet("chunk-size") {
		config.ChunkSize = c.Int("chunk-size")
	}
	if c.IsSet("chunk-overlap") {
		config.ChunkOverlap = c.Int("chunk-overlap")
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithTemperature(c.Float64("temperature")),
	)

	advisor, err := timeoff.New(c.String("db"),
		timeoff.WithConfig(config),
		timeoff.WithAIConfig(aiConfig),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open advisor: %w", err)
	}

	if dir := c.String("dataset-dir"); dir != "" {
		if err := advisor.LoadDataset(dir); err != nil {
			advisor.Close()
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
	}
	return advisor, nil
}

func question(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		return "", fmt.Errorf("a question is required")
	}
	return strings.Join(c.Args().Slice(), " "), nil
}

func askCommand(c *cli.Context) error {
	query, err := question(c)
	if err != nil {
		return err
	}

	advisor, err := openAdvisor(c)
	if err != nil {
		return err
	}
	defer advisor.Close()

	ctx := context.Background()
	if _, err := advisor.EnsureIndexed(ctx); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	answer, err := advisor.Ask(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to answer: %w", err)
	}
	fmt.Println(answer)

	if suggestions := advisor.Suggest(query); len(suggestions) > 0 {
		fmt.Println("\nRelated questions:")
		for _, s := range suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
	return nil
}

func chatCommand(c *cli.Context) error {
	advisor, err := openAdvisor(c)
	if err != nil {
		return err
	}
	defer advisor.Close()

	ctx := context.Background()
	if _, err := advisor.EnsureIndexed(ctx); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Println("Ask about time-off policies, balances, and requests. Type 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}

		answer, err := advisor.Ask(ctx, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(answer)
		fmt.Println()
	}
	return scanner.Err()
}

func contextCommand(c *cli.Context) error {
	query, err := question(c)
	if err != nil {
		return err
	}

	advisor, err := openAdvisor(c)
	if err != nil {
		return err
	}
	defer advisor.Close()

	ctx := context.Background()
	if _, err := advisor.EnsureIndexed(ctx); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Println(advisor.ContextPreview(ctx, query))
	return nil
}

func ingestCommand(c *cli.Context) error {
	advisor, err := openAdvisor(c)
	if err != nil {
		return err
	}
	defer advisor.Close()

	indexed, err := advisor.IngestDocuments(context.Background())
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}
	fmt.Printf("Indexed %d chunks\n", indexed)
	return nil
}

func statsCommand(c *cli.Context) error {
	advisor, err := openAdvisor(c)
	if err != nil {
		return err
	}
	defer advisor.Close()

	stats, err := advisor.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to gather stats: %w", err)
	}

	fmt.Printf("Indexed chunks: %d\n", stats.IndexedChunks)
	fmt.Printf("Employees:      %d\n", stats.Employees)
	fmt.Printf("Balances:       %d\n", stats.Balances)
	fmt.Printf("Requests:       %d\n", stats.Requests)
	fmt.Printf("Holidays:       %d\n", stats.Holidays)
	return nil
}

func suggestCommand(c *cli.Context) error {
	query, err := question(c)
	if err != nil {
		return err
	}

	for _, s := range retrieval.Suggest(query) {
		fmt.Println(s)
	}
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewChunkRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)

	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func exportDataCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("a target directory is required")
	}

	advisor, err := openAdvisor(c)
	if err != nil {
		return err
	}
	defer advisor.Close()

	dir := c.Args().First()
	if err := advisor.SaveDataset(dir); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Wrote dataset CSV files to %s\n", dir)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
