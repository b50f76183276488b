package scraper

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrTableNotFound means the fetched page carries no recognizable lesson
// table. This is not retryable; it usually means the school changed the
// page layout. The message is shown to users as-is.
var ErrTableNotFound = errors.New("could not find the lesson table on the schedule page")

// ParseTimetable extracts the weekly lesson table from a schedule page.
// Header cells come from the first table row, data cells from every row
// after it. Cell text is trimmed and internal whitespace collapsed.
func ParseTimetable(r io.Reader) (*Timetable, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find(timetableSelector).First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	tt := &Timetable{}

	rows := table.Find("tr")
	rows.First().Find("th").Each(func(i int, th *goquery.Selection) {
		tt.Headers = append(tt.Headers, cleanCell(th.Text()))
	})

	if rows.Length() > 1 {
		rows.Slice(1, rows.Length()).Each(func(i int, tr *goquery.Selection) {
			var row []string
			tr.Find("td").Each(func(j int, td *goquery.Selection) {
				row = append(row, cleanCell(td.Text()))
			})
			tt.Rows = append(tt.Rows, row)
		})
	}

	return tt, nil
}

// FetchTimetable downloads and parses the timetable for a group's
// schedule page. There is no caching here: schedule pages change
// intra-day with no freshness signal, so every query re-fetches.
func (c *Client) FetchTimetable(url string) (*Timetable, error) {
	resp, err := c.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return ParseTimetable(resp.Body)
}

// cleanCell trims a cell and collapses runs of whitespace (nested markup
// leaves newlines and double spaces inside cell text).
func cleanCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
