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


package core

import (
	"fmt"
	"strings"
)

// NormalizeProgram brings a freshly parsed Program into canonical form:
// free-text fields are stripped of markup and collapsed whitespace, date
// fields are trimmed, and a content-based Id is assigned from the title when
// none is set. Missing fields stay empty strings; normalization never fails.
func NormalizeProgram(p *Program) {
	if p == nil {
		return
	}
	p.Title = NormalizeText(p.Title)
	p.Description = NormalizeText(p.Description)
	p.Target = NormalizeText(p.Target)
	p.Category = NormalizeText(p.Category)
	p.Agency = NormalizeText(p.Agency)
	p.Link = strings.TrimSpace(p.Link)
	p.StartDate = strings.TrimSpace(p.StartDate)
	p.EndDate = strings.TrimSpace(p.EndDate)
	if p.Id == 0 && p.Title != "" {
		p.Id = IDFromContent(p.Title)
	}
}

// ValidateProgram validates a Program according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//
// NOT validated (tolerated per the input-shape contract):
//   - Description, Target, Category, Agency, Link (may all be empty)
//   - StartDate/EndDate (unparseable dates are treated as absent downstream)
func ValidateProgram(p *Program) error {
	if p == nil {
		return fmt.Errorf("%w: program is nil", ErrInvalidProgram)
	}

	if p.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProgram, ErrEmptyTitle)
	}

	return nil
}
