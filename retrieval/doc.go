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


// Package retrieval composes the per-query context: it classifies the query,
// runs the semantic document search, and attaches the structured dataset
// payloads the query calls for.
//
// Retrieve never fails. Internal errors degrade to an empty document list
// with the failure recorded in the result's data, so a broken embedding
// service still produces an answerable (if thinner) context.
package retrieval
