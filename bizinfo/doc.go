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

// Package bizinfo provides a client for the Bizinfo (기업마당) open API,
// the South Korean government portal listing small-business support
// programs.
//
// The client fetches announcement pages, decodes both the JSON and the
// legacy XML response shapes into core.Program records, caches responses
// in-process, and can fan a set of search keywords out over a worker pool
// and merge the de-duplicated results.
package bizinfo
