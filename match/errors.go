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


package match

import "errors"

var (
	// ErrScorerRequired is returned when a similarity scorer is not provided.
	ErrScorerRequired = errors.New("similarity scorer required")

	// ErrEmbedderFactoryRequired is returned when an embedding scorer is
	// constructed without a backend factory or embedder.
	ErrEmbedderFactoryRequired = errors.New("embedder factory required")

	// ErrEmbedderInit is returned when the embedding backend fails to
	// initialize on first use. The failure is fatal to the scoring call.
	ErrEmbedderInit = errors.New("embedding backend initialization failed")

	// ErrEmbeddingShape is returned when the embedding backend returns a
	// different number of vectors than texts requested.
	ErrEmbeddingShape = errors.New("unexpected embedding batch shape")

	// ErrScoreMismatch is returned when a scorer returns a score list that
	// is not parallel to the candidate list.
	ErrScoreMismatch = errors.New("scorer returned mismatched score count")
)
