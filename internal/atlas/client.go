package atlas

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/atlas-cli/internal/model"
)

const (
	// DefaultBaseURL is the EIA Atlas ArcGIS feature-service root.
	DefaultBaseURL = "https://services7.arcgis.com/FGr1D95XCGALKXqM/ArcGIS/rest/services"

	defaultPageSize = 1000
	defaultMaxPages = 1000
)

// Options configures the Atlas client.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration // per page request
	PageSize  int           // default page size when QueryParams leaves it unset
	MaxPages  int           // hard cap on page requests per fetch; <0 disables
	RateLimit rate.Limit    // requests per second; 0 means 10
}

// Client fetches power-plant records from the EIA Atlas feature services.
// Fetches are sequential and synchronous; the client holds no mutable state
// across calls beyond the shared rate limiter, so independent fetches may run
// concurrently.
type Client struct {
	baseURL    string
	userAgent  string
	pageSize   int
	maxPages   int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client with defaults filled in: 30s request timeout,
// 1000-record pages, a 1000-page safety cap and 10 req/s.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "atlas-cli/1.0"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.PageSize == 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxPages == 0 {
		opts.MaxPages = defaultMaxPages
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = 10
	}
	return &Client{
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
		pageSize:  opts.PageSize,
		maxPages:  opts.MaxPages,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(opts.RateLimit, int(opts.RateLimit)),
	}
}

// queryURL builds the query endpoint URL for a service.
func (c *Client) queryURL(service ServiceID) (string, error) {
	path, ok := ServicePath(service)
	if !ok {
		return "", eris.Wrapf(ErrUnknownService, "%q", service)
	}
	return c.baseURL + "/" + path + "/query", nil
}

// fetchPage issues one page request. The GET is a single attempt: retry
// policy belongs to the caller of the whole logical fetch.
func (c *Client) fetchPage(ctx context.Context, endpoint string, params url.Values) (*pageResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "atlas: rate limiter wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "atlas: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrapf(ErrTransport, "%v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Wrapf(ErrTransport, "unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(ErrTransport, "read body: %v", err)
	}

	var page pageResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, eris.Wrapf(ErrMalformedResponse, "decode: %v", err)
	}

	// Some services report errors in-body with HTTP 200.
	if page.Error != nil && page.Error.Message != "" {
		return nil, eris.Wrapf(ErrAPI, "%s (code %d)", page.Error.Message, page.Error.Code)
	}

	return &page, nil
}

// FetchAll retrieves every record the query matches, paging by result offset.
// A positive limit truncates the result to exactly that many records. The
// offset always advances by the number of features actually received: a
// truncated page returns fewer records than requested, and advancing by the
// nominal page size would skip records. Any error aborts the fetch with no
// partial results.
func (c *Client) FetchAll(ctx context.Context, service ServiceID, params QueryParams, limit int) ([]model.Plant, error) {
	endpoint, err := c.queryURL(service)
	if err != nil {
		return nil, err
	}

	log := zap.L().With(zap.String("service", string(service)))

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = c.pageSize
	}
	if limit > 0 && limit < pageSize {
		pageSize = limit
	}

	base := params.Values()
	base.Set("resultRecordCount", strconv.Itoa(pageSize))

	var plants []model.Plant
	offset := 0
	for pages := 0; ; pages++ {
		if c.maxPages > 0 && pages >= c.maxPages {
			return nil, eris.Wrapf(ErrPaginationLimit, "after %d pages at offset %d", pages, offset)
		}

		reqParams := url.Values{}
		for k, v := range base {
			reqParams[k] = v
		}
		reqParams.Set("resultOffset", strconv.Itoa(offset))

		page, err := c.fetchPage(ctx, endpoint, reqParams)
		if err != nil {
			return nil, eris.Wrapf(err, "atlas: fetch page at offset %d", offset)
		}

		if len(page.Features) == 0 {
			break
		}

		for _, f := range page.Features {
			plants = append(plants, parseFeature(f))
		}

		if limit > 0 && len(plants) >= limit {
			plants = plants[:limit]
			break
		}

		// A short page with the transfer-limit flag clear is the final page.
		if len(page.Features) < pageSize && !page.ExceededLimit {
			break
		}

		offset += len(page.Features)
		log.Debug("atlas: fetched page",
			zap.Int("page_features", len(page.Features)),
			zap.Int("total", len(plants)),
			zap.Int("next_offset", offset),
		)
	}

	log.Info("atlas: fetch complete", zap.Int("plants", len(plants)))
	return plants, nil
}
