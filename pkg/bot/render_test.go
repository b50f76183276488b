package bot

import (
	"errors"
	"strings"
	"testing"

	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
)

func TestRenderAnswer(t *testing.T) {
	a := schedule.Answer{
		Kind: schedule.KindLessons,
		Day:  "Wt",
		Entries: []schedule.Entry{
			{TimeLabel: "07:05-07:50", Lesson: "Math"},
			{TimeLabel: "08:00-08:45", Lesson: "Physics"},
		},
	}

	text := renderAnswer(a)
	if !strings.Contains(text, "Wt") {
		t.Errorf("expected the day name in the message: %q", text)
	}
	if !strings.Contains(text, "07:05-07:50 → Math") {
		t.Errorf("expected a time → lesson line: %q", text)
	}

	// NoLessons and DayNotInTimetable must read differently: one is an
	// empty school day, the other is not a school day at all.
	noLessons := renderAnswer(schedule.Answer{Kind: schedule.KindNoLessons, Day: "Wt"})
	weekend := renderAnswer(schedule.Answer{Kind: schedule.KindDayNotInTimetable})
	if noLessons == weekend {
		t.Errorf("NoLessons and DayNotInTimetable must render distinctly, both were %q", noLessons)
	}
}

func TestRenderCurrent(t *testing.T) {
	a := schedule.Answer{
		Kind:    schedule.KindLessons,
		Day:     "Wt",
		Period:  2,
		Entries: []schedule.Entry{{TimeLabel: "08:00-08:45", Lesson: "Physics"}},
	}

	text := renderCurrent(a)
	if !strings.Contains(text, "Lesson 2") || !strings.Contains(text, "Physics") {
		t.Errorf("expected the period number and lesson: %q", text)
	}

	gap := renderCurrent(schedule.Answer{Kind: schedule.KindOutsideBellSchedule})
	if !strings.Contains(gap, "break") {
		t.Errorf("expected a break message: %q", gap)
	}
}

func TestRenderBells(t *testing.T) {
	text := renderBells()
	if !strings.Contains(text, "1. 07:05–07:50") {
		t.Errorf("expected the first bell line: %q", text)
	}
	if !strings.Contains(text, "9. 14:35–15:20") {
		t.Errorf("expected the ninth bell line: %q", text)
	}
}

func TestErrorText(t *testing.T) {
	// The table-not-found message is user-facing and surfaced verbatim
	if got := errorText(scraper.ErrTableNotFound); got != scraper.ErrTableNotFound.Error() {
		t.Errorf("expected the parse error verbatim, got %q", got)
	}

	fe := &scraper.FetchError{URL: "https://example.com", Err: errors.New("timeout")}
	if got := errorText(fe); !strings.Contains(got, "try again") {
		t.Errorf("fetch errors must read as retryable, got %q", got)
	}
}
