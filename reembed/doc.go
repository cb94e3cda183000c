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


// Package reembed provides functionality for reembedding indexed document
// chunks with a new or updated embedding model.
//
// Switching embedding models invalidates every stored vector, since vectors
// from different models are not comparable. This package rebuilds the vectors
// in place without re-splitting the source documents: chunks keep their IDs
// and insertion ordinals, only their vectors change.
//
// It supports batch processing, progress tracking, retry with exponential
// backoff, and vector normalization for cosine similarity search.
package reembed
