// Package timeslot models booking windows as half-open intervals of minutes since midnight.
package timeslot

import (
	"fmt"
	"iter"
	"smartoffice/shared/constant"
	"time"
)

const (
	DefaultDayStart = 9 * constant.MinutesPerHour
	DefaultDayEnd   = 17 * constant.MinutesPerHour
	DefaultStep     = 30
)

// Interval is [Start, End) in minutes of day.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect. Touching intervals do not.
func Overlaps(a, b Interval) bool {
	return !(a.End <= b.Start || a.Start >= b.End)
}

// IsValid reports whether dayStart <= start < end <= dayEnd.
func IsValid(start, end, dayStart, dayEnd int) bool {
	return dayStart <= start && start < end && end <= dayEnd
}

// Contains reports whether minute falls inside the interval.
func (i Interval) Contains(minute int) bool {
	return i.Start <= minute && minute < i.End
}

func (i Interval) String() string {
	return FormatClock(i.Start) + "–" + FormatClock(i.End)
}

// Day is the bookable window of a business day.
type Day struct {
	Start int
	End   int
}

func DefaultDay() Day {
	return Day{Start: DefaultDayStart, End: DefaultDayEnd}
}

// Admits reports whether the interval is valid and inside the day.
func (d Day) Admits(i Interval) bool {
	return IsValid(i.Start, i.End, d.Start, d.End)
}

// Starts yields slot start times from dayStart to dayEnd inclusive, step minutes apart.
// The sequence holds no state, so every range over it starts again at dayStart.
func Starts(dayStart, dayEnd, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step <= 0 {
			return
		}

		for minute := dayStart; minute <= dayEnd; minute += step {
			if !yield(minute) {
				return
			}
		}
	}
}

// FormatClock renders minutes of day as HH:MM.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/constant.MinutesPerHour, minute%constant.MinutesPerHour)
}

// ParseClock parses HH:MM into minutes of day.
func ParseClock(value string) (int, error) {
	parsed, err := time.Parse(constant.ClockFormat, value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", value, err)
	}

	return parsed.Hour()*constant.MinutesPerHour + parsed.Minute(), nil
}
