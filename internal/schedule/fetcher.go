package schedule

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pawpaw2022/siggraph2025/internal/logger"
)

const (
	// UserAgent mimics a browser; the schedule host serves empty responses to
	// obviously non-browser clients.
	UserAgent = "Mozilla/5.0"
	Timeout   = 30 * time.Second

	// requestsPerSecond throttles the sequential per-date fetches so a full
	// run stays polite to the conference host.
	requestsPerSecond = 2
)

// Client fetches the per-date schedule snippets
type Client struct {
	httpClient *http.Client
	urlTmpl    string
	limiter    *rate.Limiter
}

// DateResult records how one date's fetch went
type DateResult struct {
	Date  string
	Bytes int
	Err   error
}

// NewClient creates a schedule client for the given URL template. The
// template must contain a {date} placeholder.
func NewClient(urlTmpl string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: Timeout},
		urlTmpl:    urlTmpl,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// URLFor returns the snippet URL for a single date.
func (c *Client) URLFor(date string) string {
	return strings.ReplaceAll(c.urlTmpl, "{date}", date)
}

// FetchAll fetches every date in order and concatenates the raw bodies.
// A failed date is logged and skipped; partial results are fine. The caller
// decides whether an empty concatenation is fatal. The returned results hold
// one entry per date, in input order, for progress reporting.
func (c *Client) FetchAll(ctx context.Context, dates []string) (string, []DateResult) {
	var all strings.Builder
	results := make([]DateResult, 0, len(dates))

	for _, date := range dates {
		body, err := c.fetchDate(ctx, date)
		if err != nil {
			logger.Warn("fetch failed", logger.Fields{"date": date, "error": err.Error()})
			results = append(results, DateResult{Date: date, Err: err})
			continue
		}
		all.WriteString(body)
		results = append(results, DateResult{Date: date, Bytes: len(body)})
	}

	return all.String(), results
}

// fetchDate performs one GET, honoring the rate limiter.
func (c *Client) fetchDate(ctx context.Context, date string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URLFor(date), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	return string(body), nil
}
