package pacific

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, location())
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "jan 31 plus one month clamps to feb 28",
			start:  date(2025, time.January, 31),
			months: 1,
			want:   date(2025, time.February, 28),
		},
		{
			name:   "jan 31 plus one month in leap year clamps to feb 29",
			start:  date(2024, time.January, 31),
			months: 1,
			want:   date(2024, time.February, 29),
		},
		{
			name:   "may 31 plus one month clamps to jun 30",
			start:  date(2024, time.May, 31),
			months: 1,
			want:   date(2024, time.June, 30),
		},
		{
			name:   "mid-month is unaffected",
			start:  date(2024, time.January, 15),
			months: 12,
			want:   date(2025, time.January, 15),
		},
		{
			name:   "year rollover",
			start:  date(2024, time.November, 30),
			months: 3,
			want:   date(2025, time.February, 28),
		},
		{
			name:   "negative months",
			start:  date(2024, time.March, 31),
			months: -1,
			want:   date(2024, time.February, 29),
		},
		{
			name:   "zero months",
			start:  date(2024, time.June, 10),
			months: 0,
			want:   date(2024, time.June, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestAddMonthsNeverOverflows(t *testing.T) {
	// setMonth-style overflow would turn Jan 31 + 1 month into Mar 2/3.
	got := AddMonths(date(2025, time.January, 31), 1)
	if got.Month() != time.February {
		t.Fatalf("expected February, got %v", got.Month())
	}
}

func TestOffset(t *testing.T) {
	winter := date(2024, time.January, 15)
	if Offset(winter) != -8*time.Hour {
		t.Errorf("winter offset = %v, want -8h", Offset(winter))
	}

	summer := date(2024, time.July, 15)
	if Offset(summer) != -7*time.Hour {
		t.Errorf("summer offset = %v, want -7h", Offset(summer))
	}
}

func TestAddDaysAcrossDSTBoundary(t *testing.T) {
	// The spring-forward day (2024-03-10) is 23 hours long.
	got := AddDays(date(2024, time.March, 9), 2)
	want := date(2024, time.March, 11)
	if !got.Equal(want) {
		t.Errorf("AddDays across DST = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2024, time.June, 1), date(2024, time.June, 1), 0},
		{"one day forward", date(2024, time.June, 1), date(2024, time.June, 2), 1},
		{"one day back", date(2024, time.June, 2), date(2024, time.June, 1), -1},
		{"across spring forward", date(2024, time.March, 9), date(2024, time.March, 12), 3},
		{"across fall back", date(2024, time.November, 2), date(2024, time.November, 5), 3},
		{"sixty days out", date(2024, time.January, 1), date(2024, time.March, 1), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMidnightNormalizes(t *testing.T) {
	noon := time.Date(2024, time.June, 15, 12, 30, 45, 0, time.UTC)
	got := Midnight(noon)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("Midnight left time-of-day: %v", got)
	}
}

func TestParseDateStaysOnPacificDay(t *testing.T) {
	got, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.January || got.Day() != 15 {
		t.Errorf("ParseDate landed on %v", got)
	}
	if got.Hour() != 0 {
		t.Errorf("ParseDate not at midnight: %v", got)
	}

	if _, err := ParseDate("not a date"); err == nil {
		t.Error("ParseDate accepted garbage")
	}
}

func TestFixedClock(t *testing.T) {
	pinned := time.Date(2024, time.February, 29, 17, 0, 0, 0, time.UTC)
	c := FixedClock{T: pinned}
	if got := c.Today(); got.Hour() != 0 {
		t.Errorf("FixedClock.Today() not at midnight: %v", got)
	}
}
