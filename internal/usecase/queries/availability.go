package queries

import (
	"context"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/pkg/clock"
	"pousada-booking/internal/pkg/errs"
	"pousada-booking/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// AvailabilityQueries answer the guest-facing booking questions. Each call
// reads one snapshot and computes from it; nothing is cached between calls.
type AvailabilityQueries interface {
	Calendar(ctx context.Context, accommodationID uuid.UUID) (*CalendarView, error)
	CheckInTimes(ctx context.Context, accommodationID uuid.UUID, date civil.Date) (*CheckInTimesView, error)
	Quote(ctx context.Context, stay availability.ProposedStay) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy shared.Policy
}

func NewAvailabilityQueries(uow shared.UnitOfWork, clk clock.Clock, policy shared.Policy) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, clock: clk, policy: policy}
}

func (q *availabilityQueriesImpl) load(ctx context.Context, accommodationID uuid.UUID) (*shared.Booking, error) {
	var booking *shared.Booking
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		b, err := shared.LoadBooking(ctx, reads, accommodationID, q.clock.Now(), q.policy)
		if err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, accommodationID uuid.UUID) (*CalendarView, error) {
	b, err := q.load(ctx, accommodationID)
	if err != nil {
		return nil, err
	}
	if !b.Exists() {
		return nil, errs.ErrAccommodationNotFound
	}

	return &CalendarView{
		AccommodationID:  accommodationID,
		Today:            b.Today(),
		FullyBlocked:     b.Availability.FullyBlocked,
		PartiallyBlocked: b.Availability.PartiallyBlocked,
	}, nil
}

func (q *availabilityQueriesImpl) CheckInTimes(ctx context.Context, accommodationID uuid.UUID, date civil.Date) (*CheckInTimesView, error) {
	b, err := q.load(ctx, accommodationID)
	if err != nil {
		return nil, err
	}
	if !b.Exists() {
		return nil, errs.ErrAccommodationNotFound
	}

	window, err := b.Window(date)
	if err != nil {
		return nil, err
	}
	return &CheckInTimesView{
		AccommodationID: accommodationID,
		Date:            date,
		DateBlocked:     b.Availability.IsFullyBlocked(date),
		Window:          window,
	}, nil
}

// Quote validates stay without persisting anything. Rejections come back as
// *availability.ValidationError.
func (q *availabilityQueriesImpl) Quote(ctx context.Context, stay availability.ProposedStay) (*QuoteView, error) {
	b, err := q.load(ctx, stay.AccommodationID)
	if err != nil {
		return nil, err
	}

	quote, err := b.Validate(stay)
	if err != nil {
		return nil, err
	}
	return &QuoteView{Stay: stay, Quote: quote}, nil
}
