// Package archive fetches daily NOAAPort TOR product documents from the
// mesonet text archive.
package archive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/stormscope/warning-overlay/internal/config"
	"github.com/stormscope/warning-overlay/internal/domain"
	"github.com/stormscope/warning-overlay/internal/observability"
	"golang.org/x/sync/errgroup"
)

// Client retrieves per-day archive documents over HTTPS with bounded
// concurrency.
type Client struct {
	baseURL     string
	concurrency int
	httpClient  *http.Client
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewClient creates an archive client. A zero FetchTimeout leaves the HTTP
// client without a deadline; cancellation still propagates via context.
func NewClient(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:     cfg.ArchiveBaseURL,
		concurrency: cfg.FetchConcurrency,
		httpClient: &http.Client{
			Timeout: cfg.FetchTimeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// URLFor returns the deterministic archive address for one day's TOR products.
func (c *Client) URLFor(day time.Time) string {
	y, m, d := day.UTC().Date()
	return fmt.Sprintf("%s/%04d/%02d/%02d/text/noaaport/TOR_%04d%02d%02d.txt",
		c.baseURL, y, m, d, y, m, d)
}

// FetchAll issues one GET per day with at most the configured number of
// requests in flight. All fetches must succeed: the first failure cancels
// outstanding work and is returned, and partial results are discarded.
// Document order is not meaningful to callers.
func (c *Client) FetchAll(ctx context.Context, days []time.Time) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	docs := make([]string, len(days))
	for i, day := range days {
		g.Go(func() error {
			doc, err := c.fetchOne(ctx, c.URLFor(day))
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Client) fetchOne(ctx context.Context, url string) (string, error) {
	c.metrics.FetchesInFlight.Inc()
	defer c.metrics.FetchesInFlight.Dec()
	start := time.Now()

	doc, err := c.get(ctx, url)
	if err != nil {
		c.metrics.FetchErrors.Inc()
		return "", err
	}

	c.metrics.DocumentsFetched.Inc()
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	c.logger.Debug("fetched archive document", "url", url, "bytes", len(doc))
	return doc, nil
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.FetchError{URL: url, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: err}
	}
	if !utf8.Valid(body) {
		return "", &domain.FetchError{URL: url, Err: fmt.Errorf("body is not valid UTF-8")}
	}

	return string(body), nil
}
