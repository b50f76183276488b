package bot

import (
	"fmt"
	"strings"

	"github.com/Dima111000/shedule-zsm-1/pkg/bells"
	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
)

// renderAnswer turns a day-scoped answer into message text.
func renderAnswer(a schedule.Answer) string {
	switch a.Kind {
	case schedule.KindDayNotInTimetable:
		return "No lessons today — it's not a school day. 🎉"
	case schedule.KindNoLessons:
		if a.Day != "" {
			return fmt.Sprintf("📅 %s:\nNo lessons.", a.Day)
		}
		return "No lessons."
	}

	lines := []string{fmt.Sprintf("📅 %s:", a.Day)}
	for _, e := range a.Entries {
		lines = append(lines, fmt.Sprintf("%s → %s", e.TimeLabel, e.Lesson))
	}
	return strings.Join(lines, "\n")
}

// renderCurrent turns a current-lesson answer into message text.
func renderCurrent(a schedule.Answer) string {
	switch a.Kind {
	case schedule.KindOutsideBellSchedule:
		return "It's a break right now, or the school day is over."
	case schedule.KindDayNotInTimetable:
		return "It's the weekend — no lessons now. 🎉"
	case schedule.KindNoLessons:
		return "No lesson is running right now."
	}
	return fmt.Sprintf("Lesson %d is on now:\n%s", a.Period, a.Entries[0].Lesson)
}

// renderBells prints the bell plan as a numbered list.
func renderBells() string {
	lines := []string{"Bell schedule:"}
	for i, iv := range bells.All() {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, iv))
	}
	return strings.Join(lines, "\n")
}
