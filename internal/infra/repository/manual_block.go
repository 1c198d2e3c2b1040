package repository

import (
	"context"

	"pousada-booking/internal/domain/manualblock"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ManualBlockWriteQueries interface {
	CreateManualBlock(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateManualBlockParams) (uuid.UUID, error)
	DeleteManualBlock(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
}

type ManualBlockRepository struct {
	queries ManualBlockWriteQueries
	db      pgstore.DBTX
}

func NewManualBlockRepository(queries ManualBlockWriteQueries, db pgstore.DBTX) *ManualBlockRepository {
	return &ManualBlockRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ManualBlockRepository) Create(ctx context.Context, block *manualblock.ManualBlock) (uuid.UUID, error) {
	id, err := r.queries.CreateManualBlock(ctx, r.db, converter.ManualBlockToInfra(block))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create manual block", err)
	}
	return id, nil
}

func (r *ManualBlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteManualBlock(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete manual block", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("manual block not found", nil, infra.KindNotFound)
	}
	return nil
}
