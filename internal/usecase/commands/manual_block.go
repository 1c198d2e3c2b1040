package commands

import (
	"context"
	"log/slog"

	"pousada-booking/internal/domain/manualblock"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/pkg/clock"
	"pousada-booking/internal/pkg/errs"
	"pousada-booking/internal/usecase/queries"
	"pousada-booking/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type CreateManualBlockInput struct {
	AccommodationID uuid.UUID
	StartDate       civil.Date
	EndDate         civil.Date
	Reason          string
}

type ManualBlockCommands interface {
	Create(ctx context.Context, input CreateManualBlockInput) (*queries.ManualBlockView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type manualBlockUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewManualBlockUseCase(uow shared.UnitOfWork, clock clock.Clock) ManualBlockCommands {
	return &manualBlockUseCaseImpl{uow: uow, clock: clock}
}

// Create takes the nights [StartDate, EndDate) off sale. Existing reservations
// are left untouched; the block only stops new bookings.
func (m *manualBlockUseCaseImpl) Create(ctx context.Context, input CreateManualBlockInput) (*queries.ManualBlockView, error) {
	block, err := manualblock.NewManualBlock(input.AccommodationID, input.StartDate, input.EndDate, input.Reason, m.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		acc, err := tx.Reads().AccommodationByID(ctx, input.AccommodationID)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		if acc == nil {
			return errs.ErrAccommodationNotFound
		}

		id, err = tx.ManualBlocks().Create(ctx, block)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrAccommodationNotFound
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("manual block created",
		"manual_block_id", id.String(),
		"accommodation_id", input.AccommodationID.String(),
		"start", block.StartDate().String(),
		"end", block.EndDate().String())

	return &queries.ManualBlockView{
		ID:              id,
		AccommodationID: block.AccommodationID(),
		StartDate:       block.StartDate(),
		EndDate:         block.EndDate(),
		Reason:          block.Reason(),
		CreatedAt:       block.CreatedAt(),
	}, nil
}

func (m *manualBlockUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		block, err := tx.Reads().ManualBlockByID(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		if block == nil {
			return errs.ErrManualBlockNotFound
		}

		if err := tx.ManualBlocks().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrManualBlockNotFound
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("manual block deleted", "manual_block_id", id.String())
	return nil
}
