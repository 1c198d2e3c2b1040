package readstore

import (
	"context"

	"pousada-booking/internal/domain/manualblock"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/infra/repository/converter"
	"pousada-booking/internal/pkg/pgconv"
	"pousada-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type ManualBlockReadQueries interface {
	GetManualBlockByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.ManualBlock, error)
	ListManualBlocks(ctx context.Context, db pgstore.DBTX, arg pgstore.ListManualBlocksParams) ([]pgstore.ManualBlock, error)
}

type ManualBlockReadStore struct {
	queries ManualBlockReadQueries
	db      pgstore.DBTX
}

func NewManualBlockReadStore(queries ManualBlockReadQueries, db pgstore.DBTX) *ManualBlockReadStore {
	return &ManualBlockReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ManualBlockReadStore) FindByID(ctx context.Context, id uuid.UUID) (*manualblock.ManualBlock, error) {
	row, err := r.queries.GetManualBlockByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("manual block not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get manual block by id", err)
	}

	block, err := converter.ManualBlockFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored manual block is invalid", err, infra.KindCorruptRow)
	}
	return block, nil
}

// ListByAccommodation returns blocks that end on or after from, oldest first.
func (r *ManualBlockReadStore) ListByAccommodation(ctx context.Context, accommodationID uuid.UUID, from civil.Date) ([]*queries.ManualBlockView, error) {
	rows, err := r.queries.ListManualBlocks(ctx, r.db, pgstore.ListManualBlocksParams{
		AccommodationID: accommodationID,
		From:            pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list manual blocks", err)
	}

	views := make([]*queries.ManualBlockView, len(rows))
	for i, row := range rows {
		block, err := converter.ManualBlockFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("stored manual block is invalid", err, infra.KindCorruptRow)
		}
		views[i] = &queries.ManualBlockView{
			ID:              block.ID(),
			AccommodationID: block.AccommodationID(),
			StartDate:       block.StartDate(),
			EndDate:         block.EndDate(),
			Reason:          block.Reason(),
			CreatedAt:       block.CreatedAt(),
		}
	}
	return views, nil
}
