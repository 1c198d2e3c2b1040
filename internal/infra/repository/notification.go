package repository

import (
	"context"
	"time"

	"pousada-booking/internal/infra"
	"pousada-booking/internal/infra/pgstore"

	"github.com/jackc/pgx/v5/pgtype"
)

const jobStatusQueued = "queued"

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateNotificationJobParams) error
}

// NotificationRepository writes outbox jobs in the caller's transaction. A
// separate worker delivers them.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      pgstore.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db pgstore.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := pgstore.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  jobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
