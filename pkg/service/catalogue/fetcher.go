package catalogue

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/utils/safe"
)

// Fetcher downloads the technique catalogue. Fetches are one-shot and
// user-initiated; a failure degrades to the previous or empty catalogue on
// the caller's side, never a hang.
type Fetcher struct {
	client    *http.Client
	delimiter string
}

// FetcherOption configures a Fetcher
type FetcherOption func(*Fetcher)

// WithHTTPClient replaces the HTTP client, mainly for tests
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithDelimiter sets the column delimiter of the fetched table
func WithDelimiter(delimiter string) FetcherOption {
	return func(f *Fetcher) {
		f.delimiter = delimiter
	}
}

// NewFetcher creates a catalogue fetcher with a bounded request timeout
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: 30 * time.Second},
		delimiter: "\t",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads and parses the catalogue from the given URL
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]*model.Technique, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build catalogue request", goerr.V("url", url))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch catalogue", goerr.V("url", url))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected catalogue response status",
			goerr.V("url", url), goerr.V("status", resp.StatusCode))
	}

	techniques, err := Parse(resp.Body, f.delimiter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse fetched catalogue", goerr.V("url", url))
	}
	return techniques, nil
}
