package pacific

import (
	"math"
	"sync"
	"time"
)

// All contract dates in the system are Pacific calendar dates pinned to
// midnight. The zone is resolved per-instant so daylight-saving
// transitions inside a term window are accounted for.

const zoneName = "America/Los_Angeles"

var (
	loadOnce sync.Once
	loc      *time.Location
)

func location() *time.Location {
	loadOnce.Do(func() {
		l, err := time.LoadLocation(zoneName)
		if err != nil {
			// Host without tzdata: fall back to standard time.
			l = time.FixedZone("PST", -8*60*60)
		}
		loc = l
	})
	return loc
}

// Offset reports the UTC offset in effect at t. PDT means UTC-7,
// anything else (PST included) means UTC-8.
func Offset(t time.Time) time.Duration {
	name, _ := t.In(location()).Zone()
	if name == "PDT" {
		return -7 * time.Hour
	}
	return -8 * time.Hour
}

// Midnight truncates t to midnight of its Pacific calendar date.
func Midnight(t time.Time) time.Time {
	y, m, d := t.In(location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, location())
}

// AddMonths adds calendar months with day-of-month clamping: Jan 31 plus
// one month lands on Feb 28/29, not Mar 2/3. The result is Pacific
// midnight of the target date.
func AddMonths(t time.Time, months int) time.Time {
	base := t.In(location())
	y, m, d := base.Date()

	total := int(m) - 1 + months
	year := y + total/12
	month := time.Month(total%12 + 1)
	if total < 0 {
		// Go's integer division truncates toward zero.
		year = y + (total-11)/12
		month = time.Month((total%12+12)%12 + 1)
	}

	if last := daysIn(year, month); d > last {
		d = last
	}
	return time.Date(year, month, d, 0, 0, 0, 0, location())
}

// AddDays shifts by whole calendar days, re-anchoring to Pacific
// midnight so a DST boundary inside the span cannot skew the result.
func AddDays(t time.Time, days int) time.Time {
	return Midnight(Midnight(t).AddDate(0, 0, days))
}

// DaysBetween returns the number of Pacific calendar days from a to b.
// Positive when b is after a.
func DaysBetween(a, b time.Time) int {
	d := Midnight(b).Sub(Midnight(a))
	// DST makes some day spans 23 or 25 hours; rounding absorbs that.
	return int(math.Round(d.Hours() / 24))
}

// ParseDate reads a YYYY-MM-DD string as Pacific midnight. Plain dates
// parsed as UTC would belong to the previous Pacific day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Clock yields "today" as a Pacific calendar date. Injected everywhere
// the sweep or deriver needs the current date so tests can pin it.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the host clock.
type SystemClock struct{}

func (SystemClock) Today() time.Time {
	return Midnight(time.Now())
}

// FixedClock always reports the same date.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Today() time.Time {
	return Midnight(c.T)
}
