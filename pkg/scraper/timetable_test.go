package scraper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

const timetableHTML = `<html><body>
<h1>Plan lekcji</h1>
<table class="tabela">
  <tr><th>Nr</th><th>Godz</th><th>Pon</th><th>Wt</th><th>Śr</th><th>Czw</th><th>Pt</th></tr>
  <tr><td>1</td><td>07:05-07:50</td><td>Math
      <span>s.12</span></td><td></td><td></td><td></td><td></td></tr>
  <tr><td>2</td><td>08:00-08:45</td><td></td><td>Physics</td></tr>
</table>
</body></html>`

func TestParseTimetable(t *testing.T) {
	tt, err := ParseTimetable(strings.NewReader(timetableHTML))
	if err != nil {
		t.Fatalf("ParseTimetable failed: %v", err)
	}

	wantHeaders := []string{"Nr", "Godz", "Pon", "Wt", "Śr", "Czw", "Pt"}
	if !reflect.DeepEqual(tt.Headers, wantHeaders) {
		t.Errorf("headers = %v, want %v", tt.Headers, wantHeaders)
	}

	if len(tt.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(tt.Rows))
	}

	// Nested markup and newlines inside a cell collapse to single spaces
	if tt.Rows[0][2] != "Math s.12" {
		t.Errorf("expected cell text 'Math s.12', got %q", tt.Rows[0][2])
	}

	// The second row is deliberately short; the parser must not pad it
	if len(tt.Rows[1]) != 4 {
		t.Errorf("expected the ragged row to keep 4 cells, got %d", len(tt.Rows[1]))
	}
	if tt.Rows[1][3] != "Physics" {
		t.Errorf("expected Physics in row 2 column 3, got %q", tt.Rows[1][3])
	}
}

func TestParseTimetableTableNotFound(t *testing.T) {
	_, err := ParseTimetable(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if !errors.Is(err, ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}

func TestFetchTimetable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(timetableHTML))
	}))
	defer srv.Close()

	tt, err := NewClient().FetchTimetable(srv.URL)
	if err != nil {
		t.Fatalf("FetchTimetable failed: %v", err)
	}
	if len(tt.Headers) != 7 || len(tt.Rows) != 2 {
		t.Errorf("unexpected timetable shape: %d headers, %d rows", len(tt.Headers), len(tt.Rows))
	}
}

func TestFetchTimetableServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient().FetchTimetable(srv.URL)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a FetchError for a 500 response, got %v", err)
	}
	if fe.URL != srv.URL {
		t.Errorf("FetchError should carry the URL, got %q", fe.URL)
	}
}
