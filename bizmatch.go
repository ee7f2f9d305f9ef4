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

// Package bizmatch finds Korean small-business support programs matching
// a business owner's situation, combining the Bizinfo portal catalog with
// hybrid keyword/similarity ranking and structural filters.
package bizmatch

import (
	"context"
	"log/slog"

	"github.com/bizmatch/bizmatch/bizinfo"
	"github.com/bizmatch/bizmatch/core"
	"github.com/bizmatch/bizmatch/filter"
	"github.com/bizmatch/bizmatch/match"
)

// Finder is the top-level entry point. It owns a portal client (or the
// offline sample catalog when no API key is configured) and a ranker.
type Finder struct {
	client *bizinfo.Client
	ranker *match.Ranker
	logger *slog.Logger
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

type finderOptions struct {
	apiKey     string
	scorer     match.Scorer
	clientOpts []bizinfo.ClientOption
}

// WithAPIKey enables live portal fetching. Without a key the Finder
// serves the built-in sample catalog.
func WithAPIKey(key string) FinderOption {
	return func(o *finderOptions) {
		o.apiKey = key
	}
}

// WithScorer replaces the similarity scorer.
// Default is the TF-IDF scorer, which needs no external service.
func WithScorer(scorer match.Scorer) FinderOption {
	return func(o *finderOptions) {
		if scorer != nil {
			o.scorer = scorer
		}
	}
}

// WithClientOptions forwards options to the portal client.
func WithClientOptions(opts ...bizinfo.ClientOption) FinderOption {
	return func(o *finderOptions) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

// NewFinder creates a Finder.
func NewFinder(opts ...FinderOption) (*Finder, error) {
	options := &finderOptions{
		scorer: match.NewTFIDFScorer(),
	}
	for _, opt := range opts {
		opt(options)
	}

	var client *bizinfo.Client
	if options.apiKey != "" {
		var err error
		client, err = bizinfo.NewClient(options.apiKey, options.clientOpts...)
		if err != nil {
			return nil, err
		}
	}

	ranker, err := match.NewRanker(options.scorer)
	if err != nil {
		return nil, err
	}

	return &Finder{
		client: client,
		ranker: ranker,
		logger: slog.Default(),
	}, nil
}

// Offline reports whether the Finder serves the sample catalog instead
// of the live portal.
func (f *Finder) Offline() bool {
	return f.client == nil
}

// Catalog fetches the announcement catalog for a search profile. Offline
// Finders return the sample catalog regardless of profile.
func (f *Finder) Catalog(ctx context.Context, profile bizinfo.SearchProfile, category string) ([]core.Program, error) {
	if f.client == nil {
		f.logger.Warn("no API key configured, serving the sample catalog")
		return bizinfo.SamplePrograms(), nil
	}
	keywords := bizinfo.BuildSearchKeywords(profile)
	return f.client.FetchAll(ctx, keywords, category)
}

// Search ranks a catalog against a free-text business description.
func (f *Finder) Search(ctx context.Context, query string, programs []core.Program, opts match.Options) ([]core.RankedProgram, error) {
	return f.ranker.Rank(ctx, query, programs, opts)
}

// Browse narrows a catalog by structural criteria and sorts it by
// soonest deadline.
func (f *Finder) Browse(programs []core.Program, criteria filter.Criteria) []core.Program {
	return filter.Apply(programs, criteria)
}

// Status probes the portal. Offline Finders report ErrMissingAPIKey.
func (f *Finder) Status(ctx context.Context) error {
	if f.client == nil {
		return bizinfo.ErrMissingAPIKey
	}
	return f.client.Status(ctx)
}
