package timematch

import (
	"fmt"
	"time"

	"go.llib.dev/frameless/pkg/compare"

	"go.llib.dev/timematch/datekit"
)

// Temporal is the field and ordering surface shared by every date/time variant
// the matchers accept. time.Time, datekit.Date and datekit.LocalDateTime
// satisfy it out of the box.
type Temporal[T any] interface {
	compare.Interface[T]
	Year() int
	Month() time.Month
	Day() int
}

// CalendarShiftable is a Temporal that can be shifted by calendar amounts.
type CalendarShiftable[T any] interface {
	Temporal[T]
	AddDate(years, months, days int) T
}

// DurationShiftable is a Temporal that can be shifted by an exact duration.
// datekit.Date intentionally isn't one, a calendar date only takes calendar amounts.
type DurationShiftable[T any] interface {
	Temporal[T]
	Add(time.Duration) T
}

// HaveSameYear matches values that share the calendar year of oth.
// Every other field is ignored, the zone or offset of a timestamp included.
func HaveSameYear[T Temporal[T]](oth T) Matcher[T] {
	return func(got T) MatchResult {
		return MatchResult{
			Passed:   got.Year() == oth.Year(),
			Failure:  fmt.Sprintf("%v should have year %d", got, oth.Year()),
			Negation: fmt.Sprintf("%v should not have year %d", got, oth.Year()),
		}
	}
}

// HaveSameMonth matches values that share the calendar month of oth.
// Every other field is ignored, the zone or offset of a timestamp included.
func HaveSameMonth[T Temporal[T]](oth T) Matcher[T] {
	return func(got T) MatchResult {
		return MatchResult{
			Passed:   got.Month() == oth.Month(),
			Failure:  fmt.Sprintf("%v should have month %s", got, oth.Month()),
			Negation: fmt.Sprintf("%v should not have month %s", got, oth.Month()),
		}
	}
}

// HaveSameDay matches values that share the day of month of oth.
// Every other field is ignored, the zone or offset of a timestamp included.
func HaveSameDay[T Temporal[T]](oth T) Matcher[T] {
	return func(got T) MatchResult {
		return MatchResult{
			Passed:   got.Day() == oth.Day(),
			Failure:  fmt.Sprintf("%v should have day of month %d, but was %d", got, oth.Day(), got.Day()),
			Negation: fmt.Sprintf("%v should not have day of month %d", got, oth.Day()),
		}
	}
}

// BeBefore matches values that are strictly earlier than oth.
// For timestamps carrying a zone or offset the ordering is by instant,
// so two values with different zones still order correctly.
func BeBefore[T Temporal[T]](oth T) Matcher[T] {
	return func(got T) MatchResult {
		return MatchResult{
			Passed:   compare.IsLess(got.Compare(oth)),
			Failure:  fmt.Sprintf("%v should be before %v", got, oth),
			Negation: fmt.Sprintf("%v should not be before %v", got, oth),
		}
	}
}

// BeAfter matches values that are strictly later than oth.
func BeAfter[T Temporal[T]](oth T) Matcher[T] {
	return func(got T) MatchResult {
		return MatchResult{
			Passed:   compare.IsLess(oth.Compare(got)),
			Failure:  fmt.Sprintf("%v should be after %v", got, oth),
			Negation: fmt.Sprintf("%v should not be after %v", got, oth),
		}
	}
}

// BeWithin matches values that are no further than a calendar period from anchor,
// both interval ends included.
// The interval ends inherit the calendar arithmetic of AddDate,
// short month overflow included.
// For timestamps carrying a zone or offset, the period shifts the anchor's
// own wall clock, and the interval check compares instants.
func BeWithin[T CalendarShiftable[T]](tolerance datekit.Period, anchor T) Matcher[T] {
	var (
		from = anchor.AddDate(-tolerance.Years, -tolerance.Months, -tolerance.Days)
		till = anchor.AddDate(tolerance.Years, tolerance.Months, tolerance.Days)
	)
	return func(got T) MatchResult {
		return MatchResult{
			Passed: compare.IsLessOrEqual(from.Compare(got)) &&
				compare.IsLessOrEqual(got.Compare(till)),
			Failure:  fmt.Sprintf("%v should be within %s of %v", got, tolerance, anchor),
			Negation: fmt.Sprintf("%v should not be within %s of %v", got, tolerance, anchor),
		}
	}
}

// BeWithinDuration matches values that are no further than an exact duration
// from anchor, both interval ends included.
func BeWithinDuration[T DurationShiftable[T]](tolerance time.Duration, anchor T) Matcher[T] {
	var (
		from = anchor.Add(-tolerance)
		till = anchor.Add(tolerance)
	)
	return func(got T) MatchResult {
		return MatchResult{
			Passed: compare.IsLessOrEqual(from.Compare(got)) &&
				compare.IsLessOrEqual(got.Compare(till)),
			Failure:  fmt.Sprintf("%v should be within %s of %v", got, tolerance, anchor),
			Negation: fmt.Sprintf("%v should not be within %s of %v", got, tolerance, anchor),
		}
	}
}
