package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createManualBlock = `
INSERT INTO manual_blocks (id, accommodation_id, start_date, end_date, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type CreateManualBlockParams struct {
	ID              uuid.UUID
	AccommodationID uuid.UUID
	StartDate       pgtype.Date
	EndDate         pgtype.Date
	Reason          string
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateManualBlock(ctx context.Context, db DBTX, arg CreateManualBlockParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createManualBlock,
		arg.ID,
		arg.AccommodationID,
		arg.StartDate,
		arg.EndDate,
		arg.Reason,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const deleteManualBlock = `
DELETE FROM manual_blocks
WHERE id = $1
`

func (q *Queries) DeleteManualBlock(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteManualBlock, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getManualBlockByID = `
SELECT id, accommodation_id, start_date, end_date, reason, created_at
FROM manual_blocks
WHERE id = $1
`

func (q *Queries) GetManualBlockByID(ctx context.Context, db DBTX, id uuid.UUID) (ManualBlock, error) {
	row := db.QueryRow(ctx, getManualBlockByID, id)
	var i ManualBlock
	err := row.Scan(
		&i.ID,
		&i.AccommodationID,
		&i.StartDate,
		&i.EndDate,
		&i.Reason,
		&i.CreatedAt,
	)
	return i, err
}

const listManualBlocks = `
SELECT id, accommodation_id, start_date, end_date, reason, created_at
FROM manual_blocks
WHERE accommodation_id = $1
  AND end_date >= $2
ORDER BY start_date, id
`

type ListManualBlocksParams struct {
	AccommodationID uuid.UUID
	From            pgtype.Date
}

func (q *Queries) ListManualBlocks(ctx context.Context, db DBTX, arg ListManualBlocksParams) ([]ManualBlock, error) {
	rows, err := db.Query(ctx, listManualBlocks, arg.AccommodationID, arg.From)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ManualBlock
	for rows.Next() {
		var i ManualBlock
		if err := rows.Scan(
			&i.ID,
			&i.AccommodationID,
			&i.StartDate,
			&i.EndDate,
			&i.Reason,
			&i.CreatedAt,
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
