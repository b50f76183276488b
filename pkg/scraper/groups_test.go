package scraper

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const indexHTML = `<html><body>
<nav class="nav-menu">
  <a href="plany/o1.html"><div class="box"> 1TI </div></a>
  <a href="plany/o2.html"><div class="box">2TI</div></a>
  <a href="kontakt.html">Kontakt</a>
  <a href="plany/o3.html"><div class="box">3E</div></a>
</nav>
</body></html>`

func newTestDirectory(t *testing.T, indexURL string, now time.Time) *Directory {
	t.Helper()
	return &Directory{
		indexURL:  indexURL,
		cachePath: tempCachePath(t),
		now:       func() time.Time { return now },
	}
}

func TestFetchGroups(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(indexHTML))
	}))
	defer srv.Close()

	d := newTestDirectory(t, srv.URL+"/strony/plan/", time.Now())

	groups, err := d.FetchGroups()
	if err != nil {
		t.Fatalf("FetchGroups failed: %v", err)
	}

	// The plain-text Kontakt link has no box and must not become a group
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d: %+v", len(groups), groups)
	}
	if groups[0].Title != "1TI" {
		t.Errorf("expected trimmed title 1TI, got %q", groups[0].Title)
	}
	if want := srv.URL + "/strony/plan/plany/o1.html"; groups[0].URL != want {
		t.Errorf("expected resolved URL %s, got %s", want, groups[0].URL)
	}
	if groups[2].Title != "3E" {
		t.Errorf("insertion order not preserved: %+v", groups)
	}
}

func TestFetchGroupsMissingMenu(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>redesigned page</p></body></html>"))
	}))
	defer srv.Close()

	d := newTestDirectory(t, srv.URL+"/", time.Now())

	groups, err := d.FetchGroups()
	if err != nil {
		t.Fatalf("a missing menu must not be an error, got %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected zero groups, got %+v", groups)
	}
}

func TestGroupsUsesFreshCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			hits.Add(1)
		}
		w.Write([]byte(indexHTML))
	}))
	defer srv.Close()

	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.Local)
	d := newTestDirectory(t, srv.URL+"/", now)

	cached := []Group{{Title: "cached", URL: "https://example.com/o1.html"}}
	writeCache(d.cachePath, &GroupCache{LastUpdated: now.Add(-time.Hour), Groups: cached})

	groups, err := d.Groups()
	if err != nil {
		t.Fatalf("Groups failed: %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("a fresh cache must not trigger a fetch, got %d requests", hits.Load())
	}
	if len(groups) != 1 || groups[0].Title != "cached" {
		t.Errorf("expected the cached list back, got %+v", groups)
	}
}

func TestGroupsRefreshesStaleCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			hits.Add(1)
		}
		w.Write([]byte(indexHTML))
	}))
	defer srv.Close()

	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.Local)
	d := newTestDirectory(t, srv.URL+"/", now)

	stale := []Group{{Title: "old", URL: "https://example.com/o1.html"}}
	writeCache(d.cachePath, &GroupCache{LastUpdated: now.AddDate(0, 0, -3), Groups: stale})

	groups, err := d.Groups()
	if err != nil {
		t.Fatalf("Groups failed: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("a stale cache must trigger exactly one fetch, got %d requests", hits.Load())
	}
	if len(groups) != 3 {
		t.Fatalf("expected the fresh list, got %+v", groups)
	}

	// The cache file is replaced wholesale with the fresh list and stamp
	cache, ok := readCache(d.cachePath)
	if !ok {
		t.Fatalf("expected the refreshed cache to be readable")
	}
	if !cache.LastUpdated.Equal(now) {
		t.Errorf("expected the cache stamp to be the refresh time, got %v", cache.LastUpdated)
	}
	if len(cache.Groups) != 3 || cache.Groups[0].Title != "1TI" {
		t.Errorf("expected the old list to be fully replaced, got %+v", cache.Groups)
	}
}

func TestGroupsAbsentCacheFetches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			hits.Add(1)
		}
		w.Write([]byte(indexHTML))
	}))
	defer srv.Close()

	d := newTestDirectory(t, srv.URL+"/", time.Now())

	if _, err := d.Groups(); err != nil {
		t.Fatalf("Groups failed: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("an absent cache must trigger exactly one fetch, got %d requests", hits.Load())
	}
	if _, ok := readCache(d.cachePath); !ok {
		t.Errorf("expected a cache file to be created on first fetch")
	}
}

func TestGroupsFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	d := newTestDirectory(t, srv.URL+"/missing", time.Now())

	if _, err := d.Groups(); err == nil {
		t.Errorf("expected an error when the index page cannot be fetched")
	}
}
