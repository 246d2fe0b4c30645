// Package datekit is a collection of date/time value types used by the matchers:
// a calendar date, a zone-less wall-clock timestamp,
// and constructors for zoned and fixed-offset timestamps.
package datekit

import (
	"encoding"
	"fmt"
	"time"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Date is a calendar date: year, month and day of month,
// without time-of-day or time zone.
type Date time.Time

const dateLayout = "2006-01-02"

// DateOf returns the calendar date for the given year, month and day.
// Out of range values normalise the same way time.Date does,
// so DateOf(2000, time.February, 33) is the 4th of March 2000.
func DateOf(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

const ErrParseDate errorkit.Error = "ErrParseDate"

// Parse interprets raw in the "2006-01-02" layout.
func (Date) Parse(raw string) (Date, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return Date{}, ErrParseDate.F("unable to parse Date: %s\n%w", raw, err)
	}
	return Date(t), nil
}

func (d Date) Year() int { return time.Time(d).Year() }

func (d Date) Month() time.Month { return time.Time(d).Month() }

func (d Date) Day() int { return time.Time(d).Day() }

// Compare orders dates chronologically by year, month and day.
func (d Date) Compare(oth Date) int {
	return time.Time(d).Compare(time.Time(oth))
}

// AddDate returns the date shifted by the given calendar amounts,
// following the normalisation policy of time.Time.AddDate.
func (d Date) AddDate(years, months, days int) Date {
	return Date(time.Time(d).AddDate(years, months, days))
}

// ToTime returns the midnight of the date in the given location.
func (d Date) ToTime(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

func (d Date) IsZero() bool { return time.Time(d).IsZero() }

func (d Date) String() string { return time.Time(d).Format(dateLayout) }

var _ encoding.TextMarshaler = (*Date)(nil)

func (d Date) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

var _ encoding.TextUnmarshaler = (*Date)(nil)

func (d *Date) UnmarshalText(text []byte) error {
	v, err := Date{}.Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// LocalDateTime is a wall-clock timestamp without a time zone.
// It is backed by a time.Time pinned to UTC,
// which makes Compare a pure comparison of the stored calendar and clock fields.
type LocalDateTime time.Time

const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

// LocalDateTimeOf returns the zone-less timestamp for the given calendar and clock fields.
// Out of range values normalise the same way time.Date does.
func LocalDateTimeOf(year int, month time.Month, day, hour, min, sec, nsec int) LocalDateTime {
	return LocalDateTime(time.Date(year, month, day, hour, min, sec, nsec, time.UTC))
}

const ErrParseLocalDateTime errorkit.Error = "ErrParseLocalDateTime"

// Parse interprets raw in the "2006-01-02T15:04:05.999999999" layout,
// where the fraction part is optional.
func (LocalDateTime) Parse(raw string) (LocalDateTime, error) {
	t, err := time.Parse(localDateTimeLayout, raw)
	if err != nil {
		return LocalDateTime{}, ErrParseLocalDateTime.F("unable to parse LocalDateTime: %s\n%w", raw, err)
	}
	return LocalDateTime(t), nil
}

func (dt LocalDateTime) Year() int { return time.Time(dt).Year() }

func (dt LocalDateTime) Month() time.Month { return time.Time(dt).Month() }

func (dt LocalDateTime) Day() int { return time.Time(dt).Day() }

// Clock returns the hour, minute and second of the timestamp.
func (dt LocalDateTime) Clock() (hour, min, sec int) { return time.Time(dt).Clock() }

// Compare orders timestamps by their wall-clock fields,
// from year down to the nanosecond.
func (dt LocalDateTime) Compare(oth LocalDateTime) int {
	return time.Time(dt).Compare(time.Time(oth))
}

// Add returns the timestamp shifted by an exact duration amount.
func (dt LocalDateTime) Add(d time.Duration) LocalDateTime {
	return LocalDateTime(time.Time(dt).Add(d))
}

// AddDate returns the timestamp shifted by the given calendar amounts,
// following the normalisation policy of time.Time.AddDate.
func (dt LocalDateTime) AddDate(years, months, days int) LocalDateTime {
	return LocalDateTime(time.Time(dt).AddDate(years, months, days))
}

func (dt LocalDateTime) IsZero() bool { return time.Time(dt).IsZero() }

func (dt LocalDateTime) String() string { return time.Time(dt).Format(localDateTimeLayout) }

var _ encoding.TextMarshaler = (*LocalDateTime)(nil)

func (dt LocalDateTime) MarshalText() (text []byte, err error) {
	return []byte(dt.String()), nil
}

var _ encoding.TextUnmarshaler = (*LocalDateTime)(nil)

func (dt *LocalDateTime) UnmarshalText(text []byte) error {
	v, err := LocalDateTime{}.Parse(string(text))
	if err != nil {
		return err
	}
	*dt = v
	return nil
}

// ZonedOf returns a timestamp bound to a geographic time zone.
// It is syntax sugar over time.Date, the matchers accept any time.Time.
func ZonedOf(year int, month time.Month, day, hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(year, month, day, hour, min, sec, nsec, loc)
}

// OffsetOf returns a timestamp bound to a fixed UTC offset.
func OffsetOf(year int, month time.Month, day, hour, min, sec, nsec int, offset time.Duration) time.Time {
	zone := time.FixedZone(offsetZoneName(offset), int(offset/time.Second))
	return time.Date(year, month, day, hour, min, sec, nsec, zone)
}

func offsetZoneName(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign, offset = "-", -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, int(offset/time.Hour), int((offset%time.Hour)/time.Minute))
}
