package readstore

import (
	"context"

	"pousada-booking/internal/domain/reservation"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/infra/repository/converter"
	"pousada-booking/internal/pkg/pgconv"
	"pousada-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Reservation, error)
	GetReservationByIDForUpdate(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Reservation, error)
	ListReservations(ctx context.Context, db pgstore.DBTX, arg pgstore.ListReservationsParams) ([]pgstore.Reservation, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgstore.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgstore.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rowToReservationView(row)
}

// FindEntityByID loads the aggregate without locking it.
func (r *ReservationReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	return toEntity(row, err)
}

// FindForUpdate locks the row until the surrounding transaction ends.
func (r *ReservationReadStore) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, r.db, id)
	return toEntity(row, err)
}

func toEntity(row pgstore.Reservation, err error) (*reservation.Reservation, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}

	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is invalid", err, infra.KindCorruptRow)
	}
	return res, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	params := pgstore.ListReservationsParams{
		AccommodationID: pgconv.UUIDPtrToPgtype(filter.AccommodationID),
		Status:          pgconv.StringPtrToPgtype(filter.Status),
		From:            pgconv.DatePtrToPgtype(filter.From),
		Limit:           clampLimit(filter.Limit),
		Offset:          int32(max(filter.Offset, 0)), // #nosec G115 -- offsets come from validated query params
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		view, err := rowToReservationView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func rowToReservationView(row pgstore.Reservation) (*queries.ReservationView, error) {
	checkInDate, err := pgconv.DateFromPgtype(row.CheckInDate)
	if err != nil {
		return nil, corrupt(row.ID, err)
	}
	checkOutDate, err := pgconv.DateFromPgtype(row.CheckOutDate)
	if err != nil {
		return nil, corrupt(row.ID, err)
	}
	checkInTime, err := converter.TimeOfDayFromPgtype(row.CheckInTime)
	if err != nil {
		return nil, corrupt(row.ID, err)
	}
	checkOutTime, err := converter.TimeOfDayFromPgtype(row.CheckOutTime)
	if err != nil {
		return nil, corrupt(row.ID, err)
	}
	total, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, corrupt(row.ID, err)
	}

	return &queries.ReservationView{
		ID:                row.ID,
		AccommodationID:   row.AccommodationID,
		AccommodationName: row.AccommodationName,
		GuestName:         row.GuestName,
		GuestEmail:        row.GuestEmail,
		GuestPhone:        row.GuestPhone,
		CheckInDate:       checkInDate,
		CheckInTime:       checkInTime,
		CheckOutDate:      checkOutDate,
		CheckOutTime:      checkOutTime,
		GuestCount:        int(row.GuestCount),
		Status:            row.Status,
		TotalPriceCents:   total,
		Note:              pgconv.StringPtrFromPgtype(row.Note),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func corrupt(id uuid.UUID, err error) error {
	return infra.WrapRepoErr("stored reservation "+id.String()+" is invalid", err, infra.KindCorruptRow)
}

func clampLimit(limit int) int32 {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return int32(limit) // #nosec G115 -- bounded by maxListLimit
	}
}
