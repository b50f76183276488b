// Package schedule answers day-scoped and point-in-time queries against
// a parsed timetable.
package schedule

// AnswerKind discriminates the possible outcomes of a timetable query.
// None of these are errors; transport failures surface as plain errors
// before an Answer is ever produced.
type AnswerKind int

const (
	// KindLessons carries one or more lesson entries for the resolved day.
	KindLessons AnswerKind = iota
	// KindNoLessons means the day (or period) resolved to an existing
	// column but it holds no non-blank entries.
	KindNoLessons
	// KindDayNotInTimetable means the requested day has no column at all.
	// For Saturday and Sunday this is the expected weekend signal, since
	// timetables carry only five day columns.
	KindDayNotInTimetable
	// KindOutsideBellSchedule means the current time falls in a break
	// between lesson slots, so there is no period to resolve.
	KindOutsideBellSchedule
)

// Entry is a single lesson line: the row's time label and the cell text.
type Entry struct {
	TimeLabel string
	Lesson    string
}

// Answer is the result of a timetable query. Entries is non-empty
// exactly when Kind is KindLessons; Day carries the header label of the
// resolved day column when one was found; Period is the 1-based lesson
// number for current-lesson answers.
type Answer struct {
	Kind    AnswerKind
	Day     string
	Period  int
	Entries []Entry
}

// DayNames are the Monday..Friday labels used by day pickers. Indexes
// match the day-index convention (0 = Monday).
var DayNames = []string{"Poniedziałek", "Wtorek", "Środa", "Czwartek", "Piątek"}
