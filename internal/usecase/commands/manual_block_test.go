//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pousada-booking/internal/domain/manualblock"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/pkg/clock"
	"pousada-booking/internal/pkg/errs"
	"pousada-booking/internal/usecase/commands"
	"pousada-booking/tests/common/builder"
	"pousada-booking/tests/common/uowtest"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManualBlockCommands_Create(t *testing.T) {
	ctx := context.Background()
	acc := builder.NewAccommodationBuilder()
	now := time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC)
	input := commands.CreateManualBlockInput{
		AccommodationID: acc.ID,
		StartDate:       civil.Date{Year: 2024, Month: time.August, Day: 10},
		EndDate:         civil.Date{Year: 2024, Month: time.August, Day: 15},
		Reason:          "  Reforma do telhado ",
	}

	t.Run("creates the block", func(t *testing.T) {
		uow := uowtest.New()
		id := uuid.New()
		uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(acc.BuildSnapshot(), nil)
		uow.ManualBlocks.On("Create", mock.Anything, mock.MatchedBy(func(b *manualblock.ManualBlock) bool {
			return b.StartDate() == input.StartDate && b.EndDate() == input.EndDate
		})).Return(id, nil)

		view, err := commands.NewManualBlockUseCase(uow, clock.NewMockClock(now)).Create(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, id, view.ID)
		assert.Equal(t, "Reforma do telhado", view.Reason)
		assert.Equal(t, now, view.CreatedAt)
		uow.AssertExpectations(t)
	})

	t.Run("inverted range", func(t *testing.T) {
		uow := uowtest.New()
		bad := input
		bad.EndDate = bad.StartDate

		_, err := commands.NewManualBlockUseCase(uow, clock.NewMockClock(now)).Create(ctx, bad)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation), "got %v", err)
		assert.True(t, errs.Is(err, manualblock.ErrInvertedRange), "got %v", err)
		assert.Zero(t, uow.WithinCalls)
	})

	t.Run("unknown accommodation", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(nil, nil)

		_, err := commands.NewManualBlockUseCase(uow, clock.NewMockClock(now)).Create(ctx, input)
		assert.True(t, errs.Is(err, errs.ErrAccommodationNotFound), "got %v", err)
		uow.ManualBlocks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(acc.BuildSnapshot(), nil)
		uow.ManualBlocks.On("Create", mock.Anything, mock.Anything).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create manual block", errors.New("disk full")))

		_, err := commands.NewManualBlockUseCase(uow, clock.NewMockClock(now)).Create(ctx, input)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable), "got %v", err)
	})
}

func TestManualBlockCommands_Delete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC)
	block, err := manualblock.NewManualBlock(uuid.New(),
		civil.Date{Year: 2024, Month: time.August, Day: 10},
		civil.Date{Year: 2024, Month: time.August, Day: 15},
		"Reforma", now)
	require.NoError(t, err)

	t.Run("deletes an existing block", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("ManualBlockByID", mock.Anything, block.ID()).Return(block, nil)
		uow.ManualBlocks.On("Delete", mock.Anything, block.ID()).Return(nil)

		err := commands.NewManualBlockUseCase(uow, clock.NewMockClock(now)).Delete(ctx, block.ID())
		require.NoError(t, err)
		uow.AssertExpectations(t)
	})

	t.Run("missing block", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("ManualBlockByID", mock.Anything, block.ID()).Return(nil, nil)

		err := commands.NewManualBlockUseCase(uow, clock.NewMockClock(now)).Delete(ctx, block.ID())
		assert.True(t, errs.Is(err, errs.ErrManualBlockNotFound), "got %v", err)
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("ManualBlockByID", mock.Anything, block.ID()).Return(block, nil)
		uow.ManualBlocks.On("Delete", mock.Anything, block.ID()).
			Return(infra.WrapRepoErr("manual block not found", nil, infra.KindNotFound))

		err := commands.NewManualBlockUseCase(uow, clock.NewMockClock(now)).Delete(ctx, block.ID())
		assert.True(t, errs.Is(err, errs.ErrManualBlockNotFound), "got %v", err)
	})
}
