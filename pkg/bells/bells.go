// Package bells holds the school's fixed bell plan: nine lesson slots
// per day, hand-authored, never recomputed at runtime.
package bells

import (
	"fmt"
	"time"
)

// Interval is one lesson slot, in minutes since midnight. Both bounds
// are inclusive.
type Interval struct {
	Start int
	End   int
}

// intervals is sorted by start time and non-overlapping by construction.
var intervals = []Interval{
	{at(7, 5), at(7, 50)},
	{at(8, 0), at(8, 45)},
	{at(8, 55), at(9, 40)},
	{at(9, 50), at(10, 35)},
	{at(10, 45), at(11, 30)},
	{at(11, 40), at(12, 25)},
	{at(12, 45), at(13, 30)},
	{at(13, 40), at(14, 25)},
	{at(14, 35), at(15, 20)},
}

func at(h, m int) int { return h*60 + m }

// All returns the bell plan in slot order.
func All() []Interval { return intervals }

// Count returns the number of lesson slots in a school day.
func Count() int { return len(intervals) }

// CurrentPeriod returns the 0-based index of the slot active at t, or -1
// when t falls in a break between slots or outside the school day.
// Only the time of day of t matters.
func CurrentPeriod(t time.Time) int {
	m := t.Hour()*60 + t.Minute()
	for i, iv := range intervals {
		if iv.Start <= m && m <= iv.End {
			return i
		}
	}
	return -1
}

func (iv Interval) String() string {
	return fmt.Sprintf("%02d:%02d–%02d:%02d", iv.Start/60, iv.Start%60, iv.End/60, iv.End%60)
}
