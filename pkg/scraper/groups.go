package scraper

import (
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

// Directory resolves group titles to schedule page URLs, backed by a
// day-bounded file cache of the school's plan index page.
type Directory struct {
	indexURL  string
	cachePath string
	now       func() time.Time

	mu sync.Mutex
}

// NewDirectory creates a directory using the default cache location.
func NewDirectory() (*Directory, error) {
	path, err := defaultCachePath()
	if err != nil {
		return nil, err
	}

	return &Directory{
		indexURL:  baseURL,
		cachePath: path,
		now:       time.Now,
	}, nil
}

// isStale reports whether the cached list needs a refresh. Staleness
// counts whole elapsed days truncated toward zero, not a rolling 24-hour
// window: a cache written yesterday at 23:50 is still fresh today at
// 23:40 (23h50m elapsed, zero whole days).
func (d *Directory) isStale(cache *GroupCache) bool {
	if cache == nil || cache.LastUpdated.IsZero() {
		return true
	}
	return int(d.now().Sub(cache.LastUpdated).Hours()/24) >= 1
}

// FetchGroups scrapes the plan index page for every group entry in the
// navigation menu. An index page without the menu yields zero groups,
// not an error; only transport failures do.
func (d *Directory) FetchGroups() ([]Group, error) {
	c := colly.NewCollector()
	c.SetRequestTimeout(fetchTimeout)
	extensions.RandomUserAgent(c)

	var groups []Group
	c.OnHTML(navSelector+" a", func(e *colly.HTMLElement) {
		// Only anchors wrapping a labeled box are group entries; the menu
		// also holds plain-text links.
		title := strings.Join(strings.Fields(e.ChildText("div.box")), " ")
		href := e.Attr("href")
		if title == "" || href == "" {
			return
		}
		groups = append(groups, Group{
			Title: title,
			URL:   e.Request.AbsoluteURL(href),
		})
	})

	if err := c.Visit(d.indexURL); err != nil {
		return nil, &FetchError{URL: d.indexURL, Err: err}
	}

	return groups, nil
}

// Groups returns the cached group list when fresh, refreshing it from
// the index page otherwise. The cache file is only written on refresh,
// and always as a full replacement.
func (d *Directory) Groups() ([]Group, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if cache, ok := readCache(d.cachePath); ok && !d.isStale(cache) {
		return cache.Groups, nil
	}

	groups, err := d.FetchGroups()
	if err != nil {
		return nil, err
	}

	writeCache(d.cachePath, &GroupCache{
		LastUpdated: d.now(),
		Groups:      groups,
	})

	return groups, nil
}
