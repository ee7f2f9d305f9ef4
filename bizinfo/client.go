package bizinfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/bizmatch/bizmatch/core"
)

const (
	defaultAPIURL = "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do"
	portalBaseURL = "https://www.bizinfo.go.kr"

	defaultPageSize = 20
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 5 * time.Minute
	defaultPoolSize = 4

	fetchMaxAttempts = 3
	fetchBaseDelay   = 500 * time.Millisecond

	// The portal's own setup instructions ship this placeholder; treat it
	// the same as an unset key.
	placeholderKey = "여기에키입력"
)

// Query describes one announcement listing request.
type Query struct {
	Keyword  string
	Category string
	Page     int
	PageSize int
}

// Client talks to the Bizinfo announcement API. Responses are cached
// in-process for a configurable TTL so repeated searches with the same
// criteria do not hammer the portal.
type Client struct {
	apiKey     string
	apiURL     string
	portalURL  string
	httpClient *http.Client
	cache      *gocache.Cache
	cacheTTL   time.Duration
	poolSize   int
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client) error

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) error {
		if hc != nil {
			c.httpClient = hc
		}
		return nil
	}
}

// WithAPIURL overrides the announcement endpoint. Mainly for tests.
func WithAPIURL(apiURL string) ClientOption {
	return func(c *Client) error {
		if apiURL != "" {
			c.apiURL = apiURL
		}
		return nil
	}
}

// WithPortalURL overrides the base URL used to absolutize relative
// announcement links.
func WithPortalURL(portalURL string) ClientOption {
	return func(c *Client) error {
		if portalURL != "" {
			c.portalURL = portalURL
		}
		return nil
	}
}

// WithCacheTTL sets how long listing responses are cached.
// A zero or negative TTL disables caching.
func WithCacheTTL(ttl time.Duration) ClientOption {
	return func(c *Client) error {
		c.cacheTTL = ttl
		return nil
	}
}

// WithPoolSize sets the worker pool size used by FetchAll.
func WithPoolSize(size int) ClientOption {
	return func(c *Client) error {
		if size > 0 {
			c.poolSize = size
		}
		return nil
	}
}

// WithClientLogger sets a custom logger.
// Default is slog.Default().
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClient creates a Bizinfo client. The API key is mandatory; the
// portal rejects unauthenticated calls.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" || apiKey == placeholderKey {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		portalURL:  portalBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		cacheTTL:   defaultCacheTTL,
		poolSize:   defaultPoolSize,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.cacheTTL > 0 {
		c.cache = gocache.New(c.cacheTTL, 2*c.cacheTTL)
	}

	return c, nil
}

// FetchPrograms fetches one page of announcements matching the query.
// Records are normalized at the boundary; items without a usable title
// are dropped.
func (c *Client) FetchPrograms(ctx context.Context, q Query) ([]core.Program, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultPageSize
	}

	cacheKey := fmt.Sprintf("%s|%s|%d|%d", q.Keyword, q.Category, q.Page, q.PageSize)
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			return cached.([]core.Program), nil
		}
	}

	var body []byte
	fetch := func() error {
		var err error
		body, err = c.get(ctx, q)
		return err
	}
	if err := RetryWithBackoff(ctx, fetch, fetchMaxAttempts, fetchBaseDelay); err != nil {
		return nil, err
	}

	raw, err := parsePrograms(body, c.portalURL)
	if err != nil {
		return nil, err
	}

	programs := make([]core.Program, 0, len(raw))
	for i := range raw {
		core.NormalizeProgram(&raw[i])
		if err := core.ValidateProgram(&raw[i]); err != nil {
			c.logger.Warn("dropping unusable announcement", "err", err, "link", raw[i].Link)
			continue
		}
		programs = append(programs, raw[i])
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, programs, gocache.DefaultExpiration)
	}

	c.logger.Debug("fetched announcements",
		"keyword", q.Keyword, "category", q.Category, "page", q.Page, "count", len(programs))
	return programs, nil
}

// FetchAll runs one listing request per keyword on a worker pool and
// merges the results, de-duplicated by title, preserving keyword order.
func (c *Client) FetchAll(ctx context.Context, keywords []string, category string) ([]core.Program, error) {
	if len(keywords) == 0 {
		return []core.Program{}, nil
	}

	pool, err := ants.NewPool(c.poolSize)
	if err != nil {
		return nil, fmt.Errorf("creating fetch pool: %w", err)
	}
	defer pool.Release()

	// Results are collected per keyword slot so the merge order is the
	// caller's keyword order, not worker completion order.
	slots := make([][]core.Program, len(keywords))
	errs := make([]error, len(keywords))

	var wg sync.WaitGroup
	for i, kw := range keywords {
		i, kw := i, kw
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			programs, err := c.FetchPrograms(ctx, Query{Keyword: kw, Category: category})
			if err != nil {
				errs[i] = fmt.Errorf("keyword %q: %w", kw, err)
				return
			}
			slots[i] = programs
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	var merged []core.Program
	seen := make(map[core.ID]struct{})
	for i := range slots {
		if errs[i] != nil {
			// A single failing keyword degrades the merge instead of
			// failing it, unless every keyword failed.
			c.logger.Warn("keyword fetch failed", "err", errs[i])
			continue
		}
		for _, p := range slots[i] {
			id := core.IDFromContent(p.Title)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, p)
		}
	}

	if merged == nil {
		if err := errors.Join(errs...); err != nil {
			return nil, err
		}
		merged = []core.Program{}
	}
	return merged, nil
}

// Status probes the API with a minimal request and reports whether the
// portal is reachable and the key is accepted.
func (c *Client) Status(ctx context.Context) error {
	body, err := c.get(ctx, Query{Page: 1, PageSize: 1})
	if err != nil {
		return err
	}
	if msg, found := apiErrorMessage(body); found {
		return fmt.Errorf("%w: %s", ErrAPIError, msg)
	}
	return nil
}

func (c *Client) get(ctx context.Context, q Query) ([]byte, error) {
	params := url.Values{}
	params.Set("crtfcKey", c.apiKey)
	params.Set("dataType", "json")
	params.Set("pageNo", strconv.Itoa(q.Page))
	params.Set("numOfRows", strconv.Itoa(q.PageSize))
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.Category != "" {
		params.Set("bizPbancCtgy", q.Category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling bizinfo API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
