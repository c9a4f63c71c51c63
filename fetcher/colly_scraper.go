package fetcher

import (
	"fmt"

	"freelancehunt-scraper/logger"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a new CollyFetcher sending the given User-Agent
func NewCollyFetcher(userAgent string) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
		colly.MaxBodySize(0),
	)
	// Requests carry no cookies and never time out
	c.DisableCookies()
	c.SetRequestTimeout(0)

	return &CollyFetcher{
		collector: c,
	}
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(url string) ([]byte, error) {
	log := logger.Get()

	// Clone shares the HTTP backend but not callbacks, so handlers
	// registered here do not pile up across calls
	c := cf.collector.Clone()

	var body []byte
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	log.Debug().Str("url", url).Msg("Fetching page")
	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrNetwork, url, err)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: fetching %s: empty response", ErrNetwork, url)
	}

	log.Debug().Str("url", url).Int("bytes", len(body)).Msg("Fetched page")
	return body, nil
}
