package queries

import (
	"context"

	"pousada-booking/internal/pkg/clock"
	"pousada-booking/internal/pkg/patch"
	"pousada-booking/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type ManualBlockReadStore interface {
	ListByAccommodation(ctx context.Context, accommodationID uuid.UUID, from civil.Date) ([]*ManualBlockView, error)
}

type ManualBlockQueries interface {
	// List returns blocks ending on or after from. A nil from means today.
	List(ctx context.Context, accommodationID uuid.UUID, from *civil.Date) ([]*ManualBlockView, error)
}

type manualBlockQueriesImpl struct {
	repo   ManualBlockReadStore
	clock  clock.Clock
	policy shared.Policy
}

func NewManualBlockQueries(repo ManualBlockReadStore, clk clock.Clock, policy shared.Policy) ManualBlockQueries {
	return &manualBlockQueriesImpl{repo: repo, clock: clk, policy: policy}
}

func (q *manualBlockQueriesImpl) List(ctx context.Context, accommodationID uuid.UUID, from *civil.Date) ([]*ManualBlockView, error) {
	day := patch.Coalesce(from, q.policy.Today(q.clock.Now()))

	rows, err := q.repo.ListByAccommodation(ctx, accommodationID, day)
	if err != nil {
		return nil, markStoreErr(err)
	}
	return rows, nil
}
