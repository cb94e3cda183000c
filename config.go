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
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration that fails validation.
// Configuration is validated once at construction; violations are fatal.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the advisor's retrieval and ingestion settings.
type Config struct {
	// ChunkSize is the maximum chunk length in characters.
	ChunkSize int
	// ChunkOverlap is the number of characters shared between adjacent chunks.
	ChunkOverlap int
	// SimilarityThreshold filters search hits below this cosine similarity.
	SimilarityThreshold float32
	// TopK bounds how many chunks a search returns.
	TopK int
	// DataDirectory is where source policy documents live. When it does not
	// exist, ingestion falls back to the built-in sample documents.
	DataDirectory string
	// SupportedFormats lists ingestable file extensions without the dot.
	SupportedFormats []string
}

// DefaultConfig returns the default advisor configuration.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize:           1000,
		ChunkOverlap:        200,
		SimilarityThreshold: 0.7,
		TopK:                5,
		DataDirectory:       "data/documents",
		SupportedFormats:    []string{"txt", "md"},
	}
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("%w: chunk overlap must be in [0, chunk size), got %d", ErrInvalidConfig, c.ChunkOverlap)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: similarity threshold must be in [0, 1], got %g", ErrInvalidConfig, c.SimilarityThreshold)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("%w: top-k must be positive, got %d", ErrInvalidConfig, c.TopK)
	}
	if len(c.SupportedFormats) == 0 {
		return fmt.Errorf("%w: at least one supported format required", ErrInvalidConfig)
	}
	return nil
}
