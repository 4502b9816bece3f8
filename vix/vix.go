// Package vix fetches the CBOE volatility index, the market fear gauge used
// for advisory sentiment labeling. Fetch failures are reported as an explicit
// ErrUnavailable so callers can fall back to the unavailable sentiment state
// instead of aborting.
package vix

import (
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultSymbol is the Yahoo Finance ticker of the CBOE volatility index.
const DefaultSymbol = "^VIX"

const defaultBaseURL = "https://query1.finance.yahoo.com"

// ErrUnavailable reports that the fear index could not be fetched. It is the
// only error this package returns.
var ErrUnavailable = fmt.Errorf("fear index unavailable")

// Client fetches index quotes from the Yahoo Finance chart API.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient returns a client with a disk cache expiring daily: the rebalancer
// is run at most a few times a day, there is no point hammering the provider.
func NewClient() *Client {
	return &Client{http: daily(), baseURL: defaultBaseURL}
}

// NewClientAt returns an uncached client pointing at baseURL, for tests.
func NewClientAt(baseURL string) *Client {
	return &Client{http: new(http.Client), baseURL: baseURL}
}

// Latest returns the most recent value of the index. Any failure, from
// transport to a malformed response, wraps ErrUnavailable.
func (c *Client) Latest(symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d",
		c.baseURL, url.PathEscape(symbol))

	var jobj any
	if err := jwget(c.http, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("%w: fetching %q: %v", ErrUnavailable, symbol, err)
	}
	value, err := extractLatest(jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: parsing %q: %v", ErrUnavailable, symbol, err)
	}
	return value, nil
}

// extractLatest pulls the latest quote out of a chart API response.
func extractLatest(jobj any) (float64, error) {
	// the meta block carries the current market price directly
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil || jval == nil {
		// older chart payloads only carry the close series
		path = "$.chart.result[0].indicators.quote[0].close[-1:]"
		jval, err = jsonpath.Get(path, jobj)
		if err != nil {
			return math.NaN(), fmt.Errorf("no quote at %q: %w", path, err)
		}
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("quote at %q is not a number: %v", path, jval)
	}
	return val, nil
}
