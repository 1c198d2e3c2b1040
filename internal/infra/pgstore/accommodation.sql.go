package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getAccommodationByID = `
SELECT id, name, capacity, price_per_night, cleaning_buffer_hours
FROM accommodations
WHERE id = $1
`

func (q *Queries) GetAccommodationByID(ctx context.Context, db DBTX, id uuid.UUID) (Accommodation, error) {
	row := db.QueryRow(ctx, getAccommodationByID, id)
	var i Accommodation
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Capacity,
		&i.PricePerNight,
		&i.CleaningBufferHours,
	)
	return i, err
}

const listBlockedRanges = `
SELECT accommodation_id,
       check_in_date::text  AS start_date,
       check_out_date::text AS end_date,
       check_out_time::text AS end_time,
       false                AS is_manual
FROM reservations
WHERE accommodation_id = $1
  AND status IN ('pending', 'confirmed')
  AND check_out_date >= $2
UNION ALL
SELECT accommodation_id,
       start_date::text,
       end_date::text,
       NULL::text,
       true
FROM manual_blocks
WHERE accommodation_id = $1
  AND end_date >= $2
ORDER BY start_date, end_date
`

type ListBlockedRangesParams struct {
	AccommodationID uuid.UUID
	// From drops ranges that ended before this day.
	From pgtype.Date
}

func (q *Queries) ListBlockedRanges(ctx context.Context, db DBTX, arg ListBlockedRangesParams) ([]BlockedRangeRow, error) {
	rows, err := db.Query(ctx, listBlockedRanges, arg.AccommodationID, arg.From)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BlockedRangeRow
	for rows.Next() {
		var i BlockedRangeRow
		if err := rows.Scan(
			&i.AccommodationID,
			&i.StartDate,
			&i.EndDate,
			&i.EndTime,
			&i.IsManual,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
