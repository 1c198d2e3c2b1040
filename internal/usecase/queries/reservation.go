package queries

import (
	"context"

	"pousada-booking/internal/infra"
	"pousada-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, markStoreErr(err)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	rows, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, markStoreErr(err)
	}
	return rows, nil
}

func markStoreErr(err error) error {
	if infra.IsKind(err, infra.KindCorruptRow) {
		return errs.Mark(err, errs.ErrAvailabilityDataCorrupted)
	}
	return errs.Mark(err, errs.ErrStoreUnavailable)
}
