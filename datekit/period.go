package datekit

import (
	"encoding"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Period is an amount of calendar time expressed in years, months and days.
// Adding a Period to a time follows calendar arithmetic,
// so the length of a Period in absolute time depends on what it is added to.
type Period struct {
	Years  int
	Months int
	Days   int
}

// Years returns a Period of n calendar years.
func Years(n int) Period { return Period{Years: n} }

// Months returns a Period of n calendar months.
func Months(n int) Period { return Period{Months: n} }

// Weeks returns a Period of n calendar weeks.
func Weeks(n int) Period { return Period{Days: 7 * n} }

// Days returns a Period of n calendar days.
func Days(n int) Period { return Period{Days: n} }

// Add combines two periods component-wise.
func (p Period) Add(oth Period) Period {
	p.Years += oth.Years
	p.Months += oth.Months
	p.Days += oth.Days
	return p
}

// Negate flips the sign of every component.
func (p Period) Negate() Period {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
}

func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// AddTo shifts the given time by the period,
// following the normalisation policy of time.Time.AddDate.
func (p Period) AddTo(t time.Time) time.Time {
	return t.AddDate(p.Years, p.Months, p.Days)
}

// String formats the period in the ISO 8601 style, like "P1Y2M3D".
// The zero Period formats as "P0D".
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var sb strings.Builder
	sb.WriteString("P")
	if p.Years != 0 {
		sb.WriteString(strconv.Itoa(p.Years))
		sb.WriteString("Y")
	}
	if p.Months != 0 {
		sb.WriteString(strconv.Itoa(p.Months))
		sb.WriteString("M")
	}
	if p.Days != 0 {
		sb.WriteString(strconv.Itoa(p.Days))
		sb.WriteString("D")
	}
	return sb.String()
}

const ErrParsePeriod errorkit.Error = "ErrParsePeriod"

var periodRegexp = regexp.MustCompile(`^(-)?P(?:(-?\d+)Y)?(?:(-?\d+)M)?(?:(-?\d+)W)?(?:(-?\d+)D)?$`)

// Parse interprets raw as an ISO 8601 style period, like "P3D" or "-P1Y2M".
// Weeks are accepted and folded into days.
// Components may carry their own sign, as String produces for mixed-sign
// periods; a leading "-" negates the whole period after the components are
// read, so "-P-3D" is three days.
func (Period) Parse(raw string) (Period, error) {
	m := periodRegexp.FindStringSubmatch(raw)
	if m == nil {
		return Period{}, ErrParsePeriod.F("unable to parse Period: %s", raw)
	}
	if m[2] == "" && m[3] == "" && m[4] == "" && m[5] == "" {
		return Period{}, ErrParsePeriod.F("unable to parse Period, no components: %s", raw)
	}
	var (
		p   Period
		err error
	)
	if p.Years, err = atoi(m[2]); err != nil {
		return Period{}, ErrParsePeriod.F("unable to parse Period: %s\n%w", raw, err)
	}
	if p.Months, err = atoi(m[3]); err != nil {
		return Period{}, ErrParsePeriod.F("unable to parse Period: %s\n%w", raw, err)
	}
	weeks, err := atoi(m[4])
	if err != nil {
		return Period{}, ErrParsePeriod.F("unable to parse Period: %s\n%w", raw, err)
	}
	days, err := atoi(m[5])
	if err != nil {
		return Period{}, ErrParsePeriod.F("unable to parse Period: %s\n%w", raw, err)
	}
	p.Days = 7*weeks + days
	if m[1] == "-" {
		p = p.Negate()
	}
	return p, nil
}

func atoi(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

var _ encoding.TextMarshaler = (*Period)(nil)

func (p Period) MarshalText() (text []byte, err error) {
	return []byte(p.String()), nil
}

var _ encoding.TextUnmarshaler = (*Period)(nil)

func (p *Period) UnmarshalText(text []byte) error {
	v, err := Period{}.Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
