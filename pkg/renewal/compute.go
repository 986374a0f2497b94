package renewal

import (
	"fmt"
	"time"

	"contract-renewal-be/pkg/pacific"
)

// Kind classifies a renewal-lifecycle event.
type Kind string

const (
	// KindNotice is the deadline by which a party must act before
	// auto-renewal locks in.
	KindNotice Kind = "notice"
	// KindTermEnd is the hard expiry/renewal date of a contract that
	// does not renew on its own.
	KindTermEnd Kind = "term_end"
	// KindInfo marks the day auto-renewal activates. Informational
	// only; it never drives further computation and is excluded from
	// timeline rendering.
	KindInfo Kind = "info"
)

// DefaultTermMonths applies whenever a term length is absent.
const DefaultTermMonths = 12

// Terms is the immutable input to the deriver. Callers build it from an
// agreement record; the deriver never sees (or mutates) stored state.
type Terms struct {
	EffectiveDate     *time.Time
	InitialTermMonths *int
	AutoRenews        bool
	RenewalTermMonths *int
	NoticePeriodDays  *int
}

// Draft is one derived event before persistence. No identifiers are
// assigned; the caller attaches the owning agreement id.
type Draft struct {
	Title      string
	EventDate  time.Time
	Kind       Kind
	AutoRenews bool
}

// ComputeEvents derives the lifecycle events for one cycle of an
// agreement. A nil effective date means there is nothing to schedule
// yet and yields an empty slice.
//
// Manual contracts get a single term_end at the cycle boundary.
// Auto-renewing contracts get an optional notice deadline plus an info
// marker at the boundary, and never a term_end: the renewal boundary is
// implicitly the info event's date.
func ComputeEvents(t Terms) []Draft {
	if t.EffectiveDate == nil {
		return nil
	}

	months := DefaultTermMonths
	if t.InitialTermMonths != nil {
		months = *t.InitialTermMonths
	}
	cycleEnd := pacific.AddMonths(*t.EffectiveDate, months)

	if !t.AutoRenews {
		return []Draft{{
			Title:      "Contract term ends",
			EventDate:  cycleEnd,
			Kind:       KindTermEnd,
			AutoRenews: false,
		}}
	}

	var events []Draft
	if t.NoticePeriodDays != nil && *t.NoticePeriodDays != 0 {
		// A notice period longer than the term lands before the
		// effective date. Not rejected; the caller decides.
		events = append(events, Draft{
			Title:      fmt.Sprintf("Notice deadline (%d days before renewal)", *t.NoticePeriodDays),
			EventDate:  pacific.AddDays(cycleEnd, -*t.NoticePeriodDays),
			Kind:       KindNotice,
			AutoRenews: true,
		})
	}

	events = append(events, Draft{
		Title:      "Auto-renewal activates",
		EventDate:  cycleEnd,
		Kind:       KindInfo,
		AutoRenews: true,
	})

	return events
}
