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


// Package search provides semantic search over the document index.
//
// The Index type embeds a query, ranks stored chunks by cosine similarity,
// and returns up to k chunks above a similarity threshold, most similar
// first. Equal scores keep insertion order. An empty index or a threshold
// nothing clears yields an empty result, never an error.
package search
