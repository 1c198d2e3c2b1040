//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"pousada-booking/internal/infra"
	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/infra/readstore"
	"pousada-booking/internal/pkg/pgconv"
	readstoremock "pousada-booking/tests/mock/readstore"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func manualBlockRow(accID uuid.UUID) pgstore.ManualBlock {
	return pgstore.ManualBlock{
		ID:              uuid.New(),
		AccommodationID: accID,
		StartDate:       pgconv.DateToPgtype(civil.Date{Year: 2024, Month: time.June, Day: 10}),
		EndDate:         pgconv.DateToPgtype(civil.Date{Year: 2024, Month: time.June, Day: 14}),
		Reason:          "manutenção do telhado",
		CreatedAt:       pgconv.TimeToPgtype(time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)),
	}
}

func TestManualBlockReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		mutate     func(*pgstore.ManualBlock)
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: block found"},
		{name: "error: not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", err: errDBConnectionLost, expectKind: infra.KindDBFailure},
		{
			name:       "error: null start date",
			mutate:     func(r *pgstore.ManualBlock) { r.StartDate = pgtype.Date{} },
			expectKind: infra.KindCorruptRow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockManualBlockReadQueries(ctrl)
			store := readstore.NewManualBlockReadStore(mockQueries, &mockDBTX{})
			row := manualBlockRow(uuid.New())
			if tc.mutate != nil {
				tc.mutate(&row)
			}

			mockQueries.EXPECT().GetManualBlockByID(ctx, gomock.Any(), row.ID).Return(row, tc.err)

			block, err := store.FindByID(ctx, row.ID)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, block)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, block.ID())
			assert.Equal(t, "manutenção do telhado", block.Reason())
		})
	}
}

func TestManualBlockReadStore_ListByAccommodation(t *testing.T) {
	ctx := context.Background()
	accID := uuid.New()
	from := civil.Date{Year: 2024, Month: time.June, Day: 1}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockManualBlockReadQueries(ctrl)
	store := readstore.NewManualBlockReadStore(mockQueries, &mockDBTX{})
	row := manualBlockRow(accID)

	mockQueries.EXPECT().
		ListManualBlocks(ctx, gomock.Any(), pgstore.ListManualBlocksParams{AccommodationID: accID, From: pgconv.DateToPgtype(from)}).
		Return([]pgstore.ManualBlock{row}, nil)

	views, err := store.ListByAccommodation(ctx, accID, from)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "2024-06-10", views[0].StartDate.String())
	assert.Equal(t, "2024-06-14", views[0].EndDate.String())
}
