//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pousada-booking/internal/infra"
	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/infra/repository"
	repositorymock "pousada-booking/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC)
	payload := []byte(`{"reservation_id":"x"}`)

	t.Run("success: job queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().
			CreateNotificationJob(ctx, mockDB, gomock.Cond(func(x any) bool {
				p := x.(pgstore.CreateNotificationJobParams)
				return p.Kind == "reservation_created" && p.Status == "queued" && p.RunAt.Time.Equal(runAt) && string(p.Payload) == string(payload)
			})).
			Return(nil)

		err := repo.CreateJob(ctx, "reservation_created", "reservations", payload, runAt)

		require.NoError(t, err)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().CreateNotificationJob(ctx, gomock.Any(), gomock.Any()).Return(errors.New("database connection error"))

		err := repo.CreateJob(ctx, "reservation_created", "reservations", payload, runAt)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
