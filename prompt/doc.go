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


// Package prompt renders retrieval results into language-model prompts.
//
// Each query category maps to a fixed template that receives the
// category-appropriate slice of the retrieved data plus the top-ranked
// document chunks. Missing data renders as a literal "not available"
// placeholder instead of failing, so a thin retrieval result still yields a
// usable prompt.
package prompt
