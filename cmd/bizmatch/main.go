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

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/bizmatch/bizmatch"
	"github.com/bizmatch/bizmatch/ai"
	"github.com/bizmatch/bizmatch/ai/openai"
	"github.com/bizmatch/bizmatch/bizinfo"
	"github.com/bizmatch/bizmatch/core"
	"github.com/bizmatch/bizmatch/filter"
	"github.com/bizmatch/bizmatch/match"
)

func main() {
	app := &cli.App{
		Name:  "bizmatch",
		Usage: "Find Korean small-business support programs matching your situation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Rank support programs against a free-text business description",
				ArgsUsage: "<description>",
				Action:    searchCommand,
				Flags: append(fetchFlags(),
					&cli.IntFlag{
						Name:  "top",
						Usage: "Maximum number of results",
						Value: 30,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum similarity for results without keyword matches",
						Value: 0.2,
					},
					&cli.BoolFlag{
						Name:  "match-all",
						Usage: "Require every query keyword to match (enables region filtering)",
					},
					&cli.StringFlag{
						Name:  "scorer",
						Usage: "Similarity scorer (tfidf, embedding)",
						Value: "tfidf",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "paraphrase-multilingual",
					},
				),
			},
			{
				Name:   "browse",
				Usage:  "List support programs by structural criteria",
				Action: browseCommand,
				Flags: append(fetchFlags(),
					&cli.StringFlag{
						Name:  "sido",
						Usage: "Province or metropolitan city (e.g. 전북특별자치도)",
					},
					&cli.StringFlag{
						Name:  "sigungu",
						Usage: "City, county, or district within the sido",
					},
					&cli.StringSliceFlag{
						Name:  "support-category",
						Usage: "Support categories to include (e.g. 금융, 창업)",
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Application window filter (active, upcoming, all)",
						Value: "active",
					},
				),
			},
			{
				Name:   "status",
				Usage:  "Check Bizinfo API connectivity",
				Action: statusCommand,
				Flags: []cli.Flag{
					apiKeyFlag(),
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func apiKeyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "api-key",
		Usage:   "Bizinfo API key",
		EnvVars: []string{"BIZINFO_API_KEY"},
	}
}

// fetchFlags are the flags shared by every command that pulls a catalog
// from the portal.
func fetchFlags() []cli.Flag {
	return []cli.Flag{
		apiKeyFlag(),
		&cli.StringFlag{
			Name:  "age-group",
			Usage: "Age bracket (청년, 중장년, 시니어)",
		},
		&cli.StringFlag{
			Name:  "business-type",
			Usage: "Business type (e.g. 음식점업)",
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "Region used to build portal search keywords",
		},
		&cli.StringFlag{
			Name:  "category",
			Usage: "Portal announcement category filter",
		},
	}
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")

	scorer, err := buildScorer(c)
	if err != nil {
		return err
	}

	finder, err := bizmatch.NewFinder(
		bizmatch.WithAPIKey(c.String("api-key")),
		bizmatch.WithScorer(scorer),
	)
	if err != nil {
		return err
	}

	programs, err := loadCatalog(ctx, c, finder)
	if err != nil {
		return err
	}
	if len(programs) == 0 {
		fmt.Println("조회된 지원사업이 없습니다.")
		return nil
	}

	opts := match.Options{
		TopN:     c.Int("top"),
		MinScore: c.Float64("min-score"),
		MatchAll: c.Bool("match-all"),
	}

	results, err := finder.Search(ctx, query, programs, opts)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	printResults(results, query)
	return nil
}

func browseCommand(c *cli.Context) error {
	ctx := context.Background()

	finder, err := bizmatch.NewFinder(bizmatch.WithAPIKey(c.String("api-key")))
	if err != nil {
		return err
	}

	programs, err := loadCatalog(ctx, c, finder)
	if err != nil {
		return err
	}

	filtered := finder.Browse(programs, filter.Criteria{
		AgeGroup:     c.String("age-group"),
		Sido:         c.String("sido"),
		Sigungu:      c.String("sigungu"),
		BusinessType: c.String("business-type"),
		Categories:   c.StringSlice("support-category"),
		Status:       filter.StatusFilter(c.String("status")),
	})

	if len(filtered) == 0 {
		fmt.Println("조건에 맞는 지원사업이 없습니다.")
		return nil
	}

	fmt.Printf("%d건의 지원사업\n\n", len(filtered))
	for i := range filtered {
		printProgram(i+1, &filtered[i], "")
	}
	return nil
}

func statusCommand(c *cli.Context) error {
	finder, err := bizmatch.NewFinder(bizmatch.WithAPIKey(c.String("api-key")))
	if err != nil {
		return err
	}
	if err := finder.Status(context.Background()); err != nil {
		return fmt.Errorf("API check failed: %w", err)
	}
	fmt.Println("API 연결 정상")
	return nil
}

// loadCatalog pulls the announcement catalog for the profile flags; the
// Finder falls back to the built-in sample catalog when no API key is
// configured.
func loadCatalog(ctx context.Context, c *cli.Context, finder *bizmatch.Finder) ([]core.Program, error) {
	programs, err := finder.Catalog(ctx, bizinfo.SearchProfile{
		AgeGroup:     c.String("age-group"),
		BusinessType: c.String("business-type"),
		Region:       c.String("region"),
	}, c.String("category"))
	if err != nil {
		return nil, fmt.Errorf("fetching announcements: %w", err)
	}
	return programs, nil
}

func buildScorer(c *cli.Context) (match.Scorer, error) {
	switch c.String("scorer") {
	case "tfidf":
		return match.NewTFIDFScorer(), nil
	case "embedding":
		cfg := ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid embedding configuration: %w", err)
		}
		return match.NewEmbeddingScorer(func() (ai.Embedder, error) {
			return openai.NewEmbedder(cfg)
		})
	default:
		return nil, fmt.Errorf("unknown scorer %q: must be tfidf or embedding", c.String("scorer"))
	}
}

func printResults(results []core.RankedProgram, query string) {
	if len(results) == 0 {
		fmt.Println("조건에 맞는 지원사업이 없습니다.")
		return
	}

	fmt.Printf("%d건의 지원사업\n\n", len(results))
	for i := range results {
		r := &results[i]
		extra := fmt.Sprintf("점수 %.3f", r.Match.FinalScore)
		if r.Match.MatchedCount > 0 {
			extra += fmt.Sprintf(" (키워드 %d/%d: %s)",
				r.Match.MatchedCount, r.Match.TotalKeywords,
				strings.Join(r.Match.MatchedKeywords, ", "))
		}
		if reason := match.Explain(query, &r.Program); reason != "" {
			extra += " " + reason
		}
		printProgram(i+1, &r.Program, extra)
	}
}

func printProgram(rank int, p *core.Program, extra string) {
	now := time.Now()
	fmt.Printf("%d. %s [%s]\n", rank, p.Title, statusText(p, now))
	if p.Agency != "" {
		fmt.Printf("   소관기관: %s\n", p.Agency)
	}
	if p.StartDate != "" || p.EndDate != "" {
		fmt.Printf("   신청기간: %s ~ %s\n", orDash(p.StartDate), orDash(p.EndDate))
	}
	if p.Target != "" {
		fmt.Printf("   지원대상: %s\n", p.Target)
	}
	if extra != "" {
		fmt.Printf("   %s\n", extra)
	}
	if p.Link != "" {
		fmt.Printf("   %s\n", p.Link)
	}
	fmt.Println()
}

// statusText renders the application-window state with a D-day marker.
func statusText(p *core.Program, now time.Time) string {
	switch filter.StatusOf(p.StartDate, p.EndDate, now) {
	case filter.StatusClosed:
		return "마감"
	case filter.StatusClosingSoon:
		end, _ := filter.ParseDate(p.EndDate)
		days := filter.DaysUntil(end, now)
		if days == 0 {
			return "마감임박 D-Day"
		}
		return fmt.Sprintf("마감임박 D-%d", days)
	case filter.StatusUpcoming:
		return "접수예정"
	case filter.StatusActive:
		return "접수중"
	default:
		return "확인필요"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
