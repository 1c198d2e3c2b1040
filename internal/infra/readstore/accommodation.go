package readstore

import (
	"context"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/pkg/pgconv"
	"pousada-booking/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type AccommodationReadQueries interface {
	GetAccommodationByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Accommodation, error)
	ListBlockedRanges(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBlockedRangesParams) ([]pgstore.BlockedRangeRow, error)
}

// AccommodationReadStore serves the booking snapshot: a unit and the ranges
// that keep it off sale.
type AccommodationReadStore struct {
	queries AccommodationReadQueries
	db      pgstore.DBTX
}

func NewAccommodationReadStore(queries AccommodationReadQueries, db pgstore.DBTX) *AccommodationReadStore {
	return &AccommodationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AccommodationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.AccommodationSnapshot, error) {
	row, err := r.queries.GetAccommodationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("accommodation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get accommodation by id", err)
	}

	price, err := pgconv.CentsFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("accommodation price_per_night", err, infra.KindCorruptRow)
	}
	buffer, err := pgconv.Float64PtrFromNumeric(row.CleaningBufferHours)
	if err != nil {
		return nil, infra.WrapRepoErr("accommodation cleaning_buffer_hours", err, infra.KindCorruptRow)
	}

	return &shared.AccommodationSnapshot{
		ID:                  row.ID,
		Name:                row.Name,
		Capacity:            int(row.Capacity),
		PricePerNightCents:  price,
		CleaningBufferHours: buffer,
	}, nil
}

// BlockedRanges returns ranges as stored; parsing them is left to the caller.
func (r *AccommodationReadStore) BlockedRanges(ctx context.Context, accommodationID uuid.UUID, from civil.Date) ([]availability.RawBlockedRange, error) {
	rows, err := r.queries.ListBlockedRanges(ctx, r.db, pgstore.ListBlockedRangesParams{
		AccommodationID: accommodationID,
		From:            pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked ranges", err)
	}

	raws := make([]availability.RawBlockedRange, len(rows))
	for i, row := range rows {
		raws[i] = availability.RawBlockedRange{
			AccommodationID: row.AccommodationID,
			StartDate:       row.StartDate,
			EndDate:         row.EndDate,
			EndTime:         pgconv.StringPtrFromPgtype(row.EndTime),
			IsManual:        row.IsManual,
		}
	}
	return raws, nil
}
