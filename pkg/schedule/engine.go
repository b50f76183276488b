package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/Dima111000/shedule-zsm-1/pkg/bells"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
)

// dayColumnOffset is the number of leading non-day columns in a
// timetable row: period number and time label.
const dayColumnOffset = 2

// Engine answers "today" and "right now" queries. It holds no state
// besides the clock, which is injectable for tests.
type Engine struct {
	Now func() time.Time
}

// NewEngine creates an engine on the wall clock.
func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

// weekday is today's 0-based Monday..Sunday index.
func (e *Engine) weekday() int {
	return (int(e.Now().Weekday()) + 6) % 7
}

// LessonsForDay collects every non-blank lesson in the column for
// dayIndex (0 = Monday .. 4 = Friday), preserving row order. A dayIndex
// with no matching column yields KindDayNotInTimetable; an existing but
// empty column yields KindNoLessons.
func LessonsForDay(tt *scraper.Timetable, dayIndex int) Answer {
	column := dayIndex + dayColumnOffset
	if dayIndex < 0 || column >= len(tt.Headers) {
		return Answer{Kind: KindDayNotInTimetable}
	}

	answer := Answer{Kind: KindLessons, Day: tt.Headers[column]}
	for _, row := range tt.Rows {
		if column >= len(row) || strings.TrimSpace(row[column]) == "" {
			continue
		}
		var label string
		if len(row) > 1 {
			label = row[1]
		}
		answer.Entries = append(answer.Entries, Entry{TimeLabel: label, Lesson: row[column]})
	}

	if len(answer.Entries) == 0 {
		return Answer{Kind: KindNoLessons, Day: answer.Day}
	}
	return answer
}

// LessonsForToday resolves today's column. On Saturday and Sunday this
// necessarily answers KindDayNotInTimetable.
func (e *Engine) LessonsForToday(tt *scraper.Timetable) Answer {
	return LessonsForDay(tt, e.weekday())
}

// CurrentLesson resolves the lesson in progress right now, matching the
// active bell period against the row whose first cell carries the same
// 1-based period number. Rows with non-numeric first cells (section
// dividers and the like) are skipped, not errors.
func (e *Engine) CurrentLesson(tt *scraper.Timetable) Answer {
	period := bells.CurrentPeriod(e.Now())
	if period < 0 {
		return Answer{Kind: KindOutsideBellSchedule}
	}

	column := e.weekday() + dayColumnOffset
	if column >= len(tt.Headers) {
		return Answer{Kind: KindDayNotInTimetable}
	}

	for _, row := range tt.Rows {
		if len(row) == 0 {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil || n != period+1 {
			continue
		}
		if column < len(row) && strings.TrimSpace(row[column]) != "" {
			var label string
			if len(row) > 1 {
				label = row[1]
			}
			return Answer{
				Kind:    KindLessons,
				Day:     tt.Headers[column],
				Period:  period + 1,
				Entries: []Entry{{TimeLabel: label, Lesson: row[column]}},
			}
		}
		return Answer{Kind: KindNoLessons, Day: tt.Headers[column], Period: period + 1}
	}

	return Answer{Kind: KindNoLessons, Day: tt.Headers[column], Period: period + 1}
}
