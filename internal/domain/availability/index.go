package availability

import (
	"sort"

	"cloud.google.com/go/civil"
)

// Availability is the calendar view of one unit derived from a snapshot of
// its blocked ranges.
type Availability struct {
	// Today is the first bookable day; every earlier day counts as fully blocked.
	Today civil.Date
	// FullyBlocked lists the range-derived blocked nights in ascending order.
	FullyBlocked []civil.Date
	// PartiallyBlocked lists checkout days open only after the earliest check-in time.
	PartiallyBlocked []civil.Date

	fully   map[civil.Date]struct{}
	partial map[civil.Date]struct{}
}

// ComputeAvailability derives fully and partially blocked days. Overlapping or
// adjacent ranges are merged without duplicates. Any invalid range fails the
// whole computation; no partial result is returned.
func ComputeAvailability(ranges []BlockedRange, today civil.Date) (Availability, error) {
	if !today.IsValid() {
		return Availability{}, newDataError("today", today.String(), nil)
	}

	fully := make(map[civil.Date]struct{})
	for _, r := range ranges {
		if err := r.validate(); err != nil {
			return Availability{}, err
		}
		for d := r.StartDate; d.Before(r.EndDate); d = d.AddDays(1) {
			fully[d] = struct{}{}
		}
	}

	partial := make(map[civil.Date]struct{})
	for _, r := range ranges {
		if !r.HasCheckout() {
			continue
		}
		if r.EndDate.Before(today) {
			continue
		}
		if _, blocked := fully[r.EndDate]; blocked {
			continue
		}
		partial[r.EndDate] = struct{}{}
	}

	return Availability{
		Today:            today,
		FullyBlocked:     sortedDates(fully),
		PartiallyBlocked: sortedDates(partial),
		fully:            fully,
		partial:          partial,
	}, nil
}

// ComputeAvailabilityFromRaw parses a stored snapshot and computes its availability.
func ComputeAvailabilityFromRaw(raws []RawBlockedRange, today civil.Date) (Availability, error) {
	ranges, err := ParseBlockedRanges(raws)
	if err != nil {
		return Availability{}, err
	}
	return ComputeAvailability(ranges, today)
}

// IsFullyBlocked reports whether no check-in is possible on d at any time.
func (a Availability) IsFullyBlocked(d civil.Date) bool {
	if d.Before(a.Today) {
		return true
	}
	_, ok := a.fully[d]
	return ok
}

func (a Availability) IsPartiallyBlocked(d civil.Date) bool {
	_, ok := a.partial[d]
	return ok
}

func sortedDates(set map[civil.Date]struct{}) []civil.Date {
	dates := make([]civil.Date, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
