package renewal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func pacificDate(y int, m time.Month, d int) time.Time {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		loc = time.FixedZone("PST", -8*60*60)
	}
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func TestComputeEventsNilEffectiveDate(t *testing.T) {
	got := ComputeEvents(Terms{AutoRenews: true})
	assert.Empty(t, got)
}

func TestComputeEventsManualContract(t *testing.T) {
	effective := pacificDate(2024, time.January, 15)
	got := ComputeEvents(Terms{
		EffectiveDate:     timePtr(effective),
		InitialTermMonths: intPtr(12),
		AutoRenews:        false,
		NoticePeriodDays:  intPtr(30), // ignored without auto-renew
	})

	require.Len(t, got, 1)
	assert.Equal(t, KindTermEnd, got[0].Kind)
	assert.Equal(t, "Contract term ends", got[0].Title)
	assert.Equal(t, pacificDate(2025, time.January, 15), got[0].EventDate)
	assert.False(t, got[0].AutoRenews)
}

func TestComputeEventsAutoRenewWithNotice(t *testing.T) {
	effective := pacificDate(2024, time.January, 15)
	got := ComputeEvents(Terms{
		EffectiveDate:     timePtr(effective),
		InitialTermMonths: intPtr(12),
		AutoRenews:        true,
		NoticePeriodDays:  intPtr(30),
	})

	require.Len(t, got, 2)

	notice := got[0]
	assert.Equal(t, KindNotice, notice.Kind)
	assert.Equal(t, "Notice deadline (30 days before renewal)", notice.Title)
	assert.Equal(t, pacificDate(2024, time.December, 16), notice.EventDate)
	assert.True(t, notice.AutoRenews)

	info := got[1]
	assert.Equal(t, KindInfo, info.Kind)
	assert.Equal(t, "Auto-renewal activates", info.Title)
	assert.Equal(t, pacificDate(2025, time.January, 15), info.EventDate)

	for _, d := range got {
		assert.NotEqual(t, KindTermEnd, d.Kind, "auto-renewing contracts never get a term_end")
	}
}

func TestComputeEventsAutoRenewWithoutNotice(t *testing.T) {
	effective := pacificDate(2024, time.March, 1)
	got := ComputeEvents(Terms{
		EffectiveDate:     timePtr(effective),
		InitialTermMonths: intPtr(6),
		AutoRenews:        true,
	})

	require.Len(t, got, 1)
	assert.Equal(t, KindInfo, got[0].Kind)
	assert.Equal(t, pacificDate(2024, time.September, 1), got[0].EventDate)
}

func TestComputeEventsZeroNoticePeriod(t *testing.T) {
	effective := pacificDate(2024, time.March, 1)
	got := ComputeEvents(Terms{
		EffectiveDate:     timePtr(effective),
		AutoRenews:        true,
		NoticePeriodDays:  intPtr(0),
		InitialTermMonths: intPtr(12),
	})

	// Zero notice means no notice event at all.
	require.Len(t, got, 1)
	assert.Equal(t, KindInfo, got[0].Kind)
}

func TestComputeEventsDefaultTerm(t *testing.T) {
	effective := pacificDate(2024, time.June, 30)
	got := ComputeEvents(Terms{
		EffectiveDate: timePtr(effective),
		AutoRenews:    false,
	})

	require.Len(t, got, 1)
	assert.Equal(t, pacificDate(2025, time.June, 30), got[0].EventDate)
}

func TestComputeEventsMonthEndClamping(t *testing.T) {
	// Jan 31 + 1 month must land on the last day of February.
	effective := pacificDate(2025, time.January, 31)
	got := ComputeEvents(Terms{
		EffectiveDate:     timePtr(effective),
		InitialTermMonths: intPtr(1),
		AutoRenews:        false,
	})

	require.Len(t, got, 1)
	assert.Equal(t, pacificDate(2025, time.February, 28), got[0].EventDate)
}

func TestComputeEventsNoticeLongerThanTerm(t *testing.T) {
	effective := pacificDate(2024, time.January, 15)
	got := ComputeEvents(Terms{
		EffectiveDate:     timePtr(effective),
		InitialTermMonths: intPtr(1),
		AutoRenews:        true,
		NoticePeriodDays:  intPtr(90),
	})

	require.Len(t, got, 2)
	// The notice event lands before the effective date; it is emitted
	// anyway and left to the caller.
	assert.True(t, got[0].EventDate.Before(effective))
}
