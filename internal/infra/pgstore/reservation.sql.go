package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `
r.id, r.accommodation_id, a.name,
r.guest_name, r.guest_email, r.guest_phone,
r.check_in_date, r.check_in_time, r.check_out_date, r.check_out_time,
r.guest_count, r.status, r.total_price, r.note, r.created_at, r.updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (Reservation, error) {
	var i Reservation
	err := row.Scan(
		&i.ID,
		&i.AccommodationID,
		&i.AccommodationName,
		&i.GuestName,
		&i.GuestEmail,
		&i.GuestPhone,
		&i.CheckInDate,
		&i.CheckInTime,
		&i.CheckOutDate,
		&i.CheckOutTime,
		&i.GuestCount,
		&i.Status,
		&i.TotalPrice,
		&i.Note,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getReservationByID = `
SELECT` + reservationColumns + `
FROM reservations r
JOIN accommodations a ON a.id = r.accommodation_id
WHERE r.id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const getReservationByIDForUpdate = getReservationByID + `FOR UPDATE OF r
`

func (q *Queries) GetReservationByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByIDForUpdate, id))
}

const listReservations = `
SELECT` + reservationColumns + `
FROM reservations r
JOIN accommodations a ON a.id = r.accommodation_id
WHERE ($1::uuid IS NULL OR r.accommodation_id = $1)
  AND ($2::text IS NULL OR r.status = $2)
  AND ($3::date IS NULL OR r.check_out_date >= $3)
ORDER BY r.check_in_date, r.created_at, r.id
LIMIT $4 OFFSET $5
`

type ListReservationsParams struct {
	AccommodationID pgtype.UUID
	Status          pgtype.Text
	From            pgtype.Date
	Limit           int32
	Offset          int32
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]Reservation, error) {
	rows, err := db.Query(ctx, listReservations,
		arg.AccommodationID,
		arg.Status,
		arg.From,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservation
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createReservation = `
INSERT INTO reservations (
    id, accommodation_id, guest_name, guest_email, guest_phone,
    check_in_date, check_in_time, check_out_date, check_out_time,
    guest_count, status, total_price, note, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
)
RETURNING id
`

type CreateReservationParams struct {
	ID              uuid.UUID
	AccommodationID uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckInDate     pgtype.Date
	CheckInTime     pgtype.Time
	CheckOutDate    pgtype.Date
	CheckOutTime    pgtype.Time
	GuestCount      int32
	Status          string
	TotalPrice      pgtype.Numeric
	Note            pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.AccommodationID,
		arg.GuestName,
		arg.GuestEmail,
		arg.GuestPhone,
		arg.CheckInDate,
		arg.CheckInTime,
		arg.CheckOutDate,
		arg.CheckOutTime,
		arg.GuestCount,
		arg.Status,
		arg.TotalPrice,
		arg.Note,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateReservationStatus = `
UPDATE reservations
SET status = $2, updated_at = $3
WHERE id = $1
`

type UpdateReservationStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
