package availability

import (
	"errors"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// BlockedRange is one interval during which a unit cannot host a new stay.
// EndDate is exclusive for nights; on EndDate itself check-in opens only after
// EndTime plus the cleaning buffer.
type BlockedRange struct {
	AccommodationID uuid.UUID
	StartDate       civil.Date
	EndDate         civil.Date
	// EndTime is the checkout time on EndDate. Manual blocks never carry one.
	EndTime  *TimeOfDay
	IsManual bool
}

// HasCheckout reports whether the range ends with a guest checkout on EndDate.
func (r BlockedRange) HasCheckout() bool {
	return !r.IsManual && r.EndTime != nil
}

// Nights returns the number of blocked nights in [StartDate, EndDate).
func (r BlockedRange) Nights() int {
	return r.EndDate.DaysSince(r.StartDate)
}

func (r BlockedRange) validate() error {
	if !r.StartDate.IsValid() {
		return newDataError("start date", r.StartDate.String(), errors.New("not a calendar date"))
	}
	if !r.EndDate.IsValid() {
		return newDataError("end date", r.EndDate.String(), errors.New("not a calendar date"))
	}
	if !r.StartDate.Before(r.EndDate) {
		return newDataError("range", r.StartDate.String()+"/"+r.EndDate.String(), errors.New("start date must be before end date"))
	}
	return nil
}

// RawBlockedRange is a range as the data store serializes it: ISO dates and an
// optional "HH:MM[:SS]" checkout time.
type RawBlockedRange struct {
	AccommodationID uuid.UUID
	StartDate       string
	EndDate         string
	EndTime         *string
	IsManual        bool
}

// ParseBlockedRange converts a stored range, failing with a *DataError on any
// unparseable or inverted value.
func ParseBlockedRange(raw RawBlockedRange) (BlockedRange, error) {
	start, err := civil.ParseDate(raw.StartDate)
	if err != nil {
		return BlockedRange{}, newDataError("start date", raw.StartDate, err)
	}
	end, err := civil.ParseDate(raw.EndDate)
	if err != nil {
		return BlockedRange{}, newDataError("end date", raw.EndDate, err)
	}

	r := BlockedRange{
		AccommodationID: raw.AccommodationID,
		StartDate:       start,
		EndDate:         end,
		IsManual:        raw.IsManual,
	}

	// Manual blocks have no checkout semantics; a stray time on one is ignored.
	if raw.EndTime != nil && !raw.IsManual {
		t, err := ParseTimeOfDay(*raw.EndTime)
		if err != nil {
			return BlockedRange{}, newDataError("end time", *raw.EndTime, err)
		}
		r.EndTime = &t
	}

	if err := r.validate(); err != nil {
		return BlockedRange{}, err
	}
	return r, nil
}

func ParseBlockedRanges(raws []RawBlockedRange) ([]BlockedRange, error) {
	ranges := make([]BlockedRange, 0, len(raws))
	for _, raw := range raws {
		r, err := ParseBlockedRange(raw)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}
