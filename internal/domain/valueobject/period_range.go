// Package valueobject contains domain value objects for the Finance Tracker system.
package valueobject

import (
	"fmt"
	"strconv"
	"time"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// DisplayDateLayout is the layout used for dates inside period labels.
const DisplayDateLayout = "Jan 2, 2006"

// PeriodRange is an inclusive date window with a human readable label.
// End is the last nanosecond of the final day.
type PeriodRange struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside the range, bounds included.
func (r PeriodRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ResolvePeriodRange returns the current period containing now.
// Ranges are always "this period", never anchored to a goal's start date.
// Unknown periods and "none" fall back to the current month.
func ResolvePeriodRange(period entity.GoalPeriod, now time.Time) PeriodRange {
	today := entity.TruncateToDay(now)

	switch period {
	case entity.GoalPeriodDaily:
		return PeriodRange{
			Start: today,
			End:   endOfDay(today),
			Label: today.Format(DisplayDateLayout),
		}

	case entity.GoalPeriodWeekly:
		// Week starts on Sunday
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return PeriodRange{
			Start: start,
			End:   endOfDay(start.AddDate(0, 0, 6)),
			Label: fmt.Sprintf("Week of %s", start.Format(DisplayDateLayout)),
		}

	case entity.GoalPeriodYearly:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return PeriodRange{
			Start: start,
			End:   endOfDay(time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)),
			Label: strconv.Itoa(today.Year()),
		}

	default:
		return CurrentMonthRange(now)
	}
}

// CurrentMonthRange returns the calendar month containing now.
func CurrentMonthRange(now time.Time) PeriodRange {
	today := entity.TruncateToDay(now)
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return PeriodRange{
		Start: start,
		End:   endOfDay(start.AddDate(0, 1, -1)),
		Label: start.Format("January 2006"),
	}
}

// CumulativeRange returns the window from the start day through the end of
// now's day. The label is left to the caller.
func CumulativeRange(start, now time.Time) PeriodRange {
	return PeriodRange{
		Start: entity.TruncateToDay(start),
		End:   endOfDay(entity.TruncateToDay(now)),
	}
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999999999, time.UTC)
}
