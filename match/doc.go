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


// Package match ranks support programs against a free-text description of a
// small-business situation.
//
// The Ranker type implements a hybrid retrieval scheme that combines:
//   - Keyword extraction with stop-word filtering
//   - Lexical exact-match detection by substring containment
//   - Vector similarity scoring behind a pluggable Scorer strategy
//     (sparse character-n-gram tf-idf or dense sentence embeddings)
//   - Region-aware hard filtering in the all-match mode
//
// Candidates with literal keyword matches always rank before similarity-only
// candidates: vector similarity on short administrative texts is noisy, so
// keyword containment is the dominant, auditable signal, with similarity as
// tie-break and recall fallback.
package match
