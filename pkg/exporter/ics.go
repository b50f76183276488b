package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS materializes the weekly timetable as calendar events in
// the Monday..Friday week containing now, and writes the result to w.
// Rows whose time label doesn't parse are skipped.
func GenerateICS(tt *scraper.Timetable, now time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))

	for day := 0; day < len(schedule.DayNames); day++ {
		answer := schedule.LessonsForDay(tt, day)
		if answer.Kind != schedule.KindLessons {
			continue
		}

		date := monday.AddDate(0, 0, day)
		for i, entry := range answer.Entries {
			start, end, err := entryTimes(entry.TimeLabel, date)
			if err != nil {
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%d", start.Format("20060102T150405"), i))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(entry.Lesson)
			event.SetDescription(answer.Day)
		}
	}

	return cal.SerializeTo(w)
}

// entryTimes splits a "07:05-07:50" time label into concrete start and
// end times on the given date. Some tables use an en dash.
func entryTimes(label string, date time.Time) (time.Time, time.Time, error) {
	parts := strings.SplitN(strings.ReplaceAll(label, "–", "-"), "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed time label %q", label)
	}

	start, err := onDate(strings.TrimSpace(parts[0]), date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := onDate(strings.TrimSpace(parts[1]), date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}

func onDate(clock string, date time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
