package converter

import (
	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/domain/manualblock"
	"pousada-booking/internal/domain/money"
	"pousada-booking/internal/domain/reservation"
	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/pkg/errs"
	"pousada-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

var ErrNullTime = errs.New("time of day is null")

func ReservationToInfra(res *reservation.Reservation) pgstore.CreateReservationParams {
	guest := res.Guest()
	return pgstore.CreateReservationParams{
		ID:              res.ID(),
		AccommodationID: res.AccommodationID(),
		GuestName:       guest.Name(),
		GuestEmail:      guest.Email(),
		GuestPhone:      guest.Phone(),
		CheckInDate:     pgconv.DateToPgtype(res.CheckInDate()),
		CheckInTime:     TimeOfDayToPgtype(res.CheckInTime()),
		CheckOutDate:    pgconv.DateToPgtype(res.CheckOutDate()),
		CheckOutTime:    TimeOfDayToPgtype(res.CheckOutTime()),
		GuestCount:      int32(res.GuestCount()), // #nosec G115 -- bounded by accommodation capacity
		Status:          res.Status().String(),
		TotalPrice:      pgconv.CentsToNumeric(res.TotalPrice().Cents()),
		Note:            pgconv.OptionalTextToPgtype(res.Note().String()),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromRow rebuilds the aggregate from a stored row. Any value that
// does not survive domain validation is reported as an error.
func ReservationFromRow(row pgstore.Reservation) (*reservation.Reservation, error) {
	guest, err := reservation.NewGuest(row.GuestName, row.GuestEmail, row.GuestPhone)
	if err != nil {
		return nil, errs.Wrap(err, "guest")
	}
	note, err := reservation.NewNote(row.Note.String)
	if err != nil {
		return nil, errs.Wrap(err, "note")
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	checkInDate, err := pgconv.DateFromPgtype(row.CheckInDate)
	if err != nil {
		return nil, errs.Wrap(err, "check_in_date")
	}
	checkOutDate, err := pgconv.DateFromPgtype(row.CheckOutDate)
	if err != nil {
		return nil, errs.Wrap(err, "check_out_date")
	}
	checkInTime, err := TimeOfDayFromPgtype(row.CheckInTime)
	if err != nil {
		return nil, errs.Wrap(err, "check_in_time")
	}
	checkOutTime, err := TimeOfDayFromPgtype(row.CheckOutTime)
	if err != nil {
		return nil, errs.Wrap(err, "check_out_time")
	}

	cents, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrap(err, "total_price")
	}
	total, err := money.NewMoney(cents)
	if err != nil {
		return nil, errs.Wrap(err, "total_price")
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.AccommodationID,
		guest,
		checkInDate,
		checkInTime,
		checkOutDate,
		checkOutTime,
		int(row.GuestCount),
		status,
		total,
		note,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ManualBlockToInfra(block *manualblock.ManualBlock) pgstore.CreateManualBlockParams {
	return pgstore.CreateManualBlockParams{
		ID:              block.ID(),
		AccommodationID: block.AccommodationID(),
		StartDate:       pgconv.DateToPgtype(block.StartDate()),
		EndDate:         pgconv.DateToPgtype(block.EndDate()),
		Reason:          block.Reason(),
		CreatedAt:       pgconv.TimeToPgtype(block.CreatedAt()),
	}
}

func ManualBlockFromRow(row pgstore.ManualBlock) (*manualblock.ManualBlock, error) {
	start, err := pgconv.DateFromPgtype(row.StartDate)
	if err != nil {
		return nil, errs.Wrap(err, "start_date")
	}
	end, err := pgconv.DateFromPgtype(row.EndDate)
	if err != nil {
		return nil, errs.Wrap(err, "end_date")
	}
	return manualblock.ReconstructManualBlock(
		row.ID,
		row.AccommodationID,
		start,
		end,
		row.Reason,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func TimeOfDayToPgtype(t availability.TimeOfDay) pgtype.Time {
	return pgconv.MinutesToPgtypeTime(t.MinuteOfDay())
}

func TimeOfDayFromPgtype(pt pgtype.Time) (availability.TimeOfDay, error) {
	minutes, ok := pgconv.MinutesFromPgtypeTime(pt)
	if !ok {
		return availability.TimeOfDay{}, ErrNullTime
	}
	return availability.NewTimeOfDay(minutes/60, minutes%60)
}
