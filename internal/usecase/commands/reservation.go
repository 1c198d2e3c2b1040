package commands

import (
	"context"
	"log/slog"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/domain/reservation"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/pkg/clock"
	"pousada-booking/internal/pkg/errs"
	"pousada-booking/internal/usecase/queries"
	"pousada-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// NotificationTopic is the outbox topic the messaging automation consumes.
const NotificationTopic = "reservations"

type CreateReservationInput struct {
	Stay       availability.ProposedStay
	GuestName  string
	GuestEmail string
	GuestPhone string
	Note       string
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	policy             shared.Policy
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clock clock.Clock,
	policy shared.Policy,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clock,
		policy:             policy,
	}
}

// CreateReservation revalidates the stay against a fresh snapshot inside the
// write transaction and stores it as pending. A concurrent booking of the same
// nights surfaces as a date_unavailable rejection marked ErrBookingConflict.
func (r *reservationUseCaseImpl) CreateReservation(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error) {
	guest, err := reservation.NewGuest(input.GuestName, input.GuestEmail, input.GuestPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	note, err := reservation.NewNote(input.Note)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var reservationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		booking, err := shared.LoadBooking(ctx, tx.Reads(), input.Stay.AccommodationID, now, r.policy)
		if err != nil {
			return err
		}

		quote, err := booking.Validate(input.Stay)
		if err != nil {
			return err
		}

		res, err := reservation.NewReservation(input.Stay, quote, guest, note, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		id, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			return mapWriteErr(err, input.Stay)
		}
		reservationID = id

		return r.enqueue(ctx, tx, shared.NotificationReservationCreated, res)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation created",
		"reservation_id", reservationID.String(),
		"accommodation_id", input.Stay.AccommodationID.String(),
		"check_in", input.Stay.CheckInDate.String(),
		"check_out", input.Stay.CheckOutDate.String())

	return r.reservationQueries.GetByID(ctx, reservationID)
}

// UpdateStatus moves a reservation along pending -> confirmed -> concluded, or
// to cancelled from any active status.
func (r *reservationUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error) {
	next, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var previous reservation.Status
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		if res == nil {
			return errs.ErrReservationNotFound
		}

		previous = res.Status()
		if err := res.TransitionTo(next, r.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidStatusTransition)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}

		return r.enqueue(ctx, tx, shared.NotificationReservationStatusChanged, res)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation status changed",
		"reservation_id", id.String(),
		"from", previous.String(),
		"to", next.String())

	return r.reservationQueries.GetByID(ctx, id)
}

func (r *reservationUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, kind string, res *reservation.Reservation) error {
	payload, err := shared.ReservationPayload(res)
	if err != nil {
		return errs.Wrap(err, "encode notification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, kind, NotificationTopic, payload, r.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

// mapWriteErr keeps the original error in the chain so that serialization
// failures still reach the unit of work's retry loop.
func mapWriteErr(err error, stay availability.ProposedStay) error {
	if infra.IsKind(err, infra.KindExclusionViolated) {
		ve := availability.NewValidationError(availability.KindDateUnavailable,
			"the selected dates were just booked by another guest")
		d := stay.CheckInDate
		ve.Date = &d
		return errs.Mark(ve, errs.ErrBookingConflict)
	}
	return errs.Mark(err, errs.ErrStoreUnavailable)
}
