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

package bizinfo

import "errors"

var (
	// ErrMissingAPIKey indicates no usable API key was supplied.
	ErrMissingAPIKey = errors.New("bizinfo API key is not configured")

	// ErrRequestFailed indicates the portal returned a non-2xx status.
	ErrRequestFailed = errors.New("bizinfo request failed")

	// ErrAPIError indicates the portal accepted the request but returned
	// an application-level error payload.
	ErrAPIError = errors.New("bizinfo API returned an error")

	// ErrUnparsableResponse indicates the response body was neither the
	// JSON nor the XML shape the portal documents.
	ErrUnparsableResponse = errors.New("bizinfo response could not be parsed")

	// ErrInvalidMaxAttempts indicates a non-positive retry attempt count.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
