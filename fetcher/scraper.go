package fetcher

import "errors"

// ErrNetwork is returned when a page cannot be fetched: the connection
// fails, the server answers with a non-success status or the body
// cannot be read.
var ErrNetwork = errors.New("network error")

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch retrieves the raw response body of the given URL
	Fetch(url string) ([]byte, error)
}
