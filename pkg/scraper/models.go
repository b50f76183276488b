package scraper

// Group represents one class/cohort entry from the school's plan index page (e.g. "1TI", "3E")
type Group struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Timetable is the parsed weekly lesson table for one group.
// Column 0 of each row holds the period number as text, column 1 the time
// label, and columns 2..N-1 line up with Headers[2..N-1], one per weekday
// Monday..Friday. Row widths are not guaranteed uniform; consumers must
// bounds-check per row.
type Timetable struct {
	Headers []string
	Rows    [][]string
}
