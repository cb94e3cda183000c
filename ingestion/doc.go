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


// Package ingestion turns source policy documents into embedded chunks in
// the document index.
//
// The Splitter cuts document text into bounded chunks, preferring paragraph
// boundaries, then lines, then words. The Loader walks a data directory and
// splits every supported file. The Pipeline embeds chunk batches on a worker
// pool and stores them through a storage.ChunkRepository.
package ingestion
