package scraper

import (
	"fmt"
	"net/http"
	"time"
)

// Every assumption about the school site's markup lives in these
// constants. If the school redesigns the page, this is the one place to
// update.
const (
	// baseURL is the plan index page; every relative group link resolves
	// against it.
	baseURL = "https://zsm1.bydgoszcz.pl/strony/plan/"
	// navSelector matches the navigation menu holding the group links.
	navSelector = "nav.nav-menu"
	// timetableSelector matches the lesson table on a group's page.
	timetableSelector = "table.tabela"

	fetchTimeout = 10 * time.Second
)

// Client handles HTTP requests to the school schedule website
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new scraper client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// FetchError is a failed network fetch. It is retryable: the school
// server is regularly slow or briefly down.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Get fetches the given absolute URL and returns the HTTP response
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	// Public sites often block default Go user agents
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status code %d", resp.StatusCode)}
	}

	return resp, nil
}
