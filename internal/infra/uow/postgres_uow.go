package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/domain/manualblock"
	"pousada-booking/internal/domain/reservation"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/infra/readstore"
	"pousada-booking/internal/infra/repository"
	"pousada-booking/internal/pkg/errs"
	"pousada-booking/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultMaxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxBeginner is the part of *pgxpool.Pool the unit of work needs.
type TxBeginner interface {
	pgstore.DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool       TxBeginner
	q          *pgstore.Queries
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool TxBeginner, q *pgstore.Queries, maxRetries int) *PostgresUoW {
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: maxRetries,
		base:       100 * time.Millisecond,
	}
}

// Within runs fn in a Serializable transaction. Two bookings that both passed
// validation on the same snapshot cannot both commit; the loser is retried
// and then sees the winner's row.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// WithinReadOnly gives fn one consistent snapshot across several reads.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.maxRetries

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStoreUnavailable)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrStoreUnavailable)
		}

		waitTime := calculateBackoff(attempt, u.base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStoreUnavailable)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &commandReads{uow: u, dbtx: pgxTx}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgstore.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo  shared.ReservationRepository
	manualBlockRepo  shared.ManualBlockRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) ManualBlocks() shared.ManualBlockRepository {
	if t.manualBlockRepo == nil {
		t.manualBlockRepo = repository.NewManualBlockRepository(t.uow.q, t.dbtx)
	}
	return t.manualBlockRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:     t.uow,
			dbtx:    t.dbtx,
			lockRow: true,
		}
	}
	return t.commandReads
}

// commandReads turns a missing row into (nil, nil).
type commandReads struct {
	uow     *PostgresUoW
	dbtx    pgstore.DBTX
	lockRow bool

	// Lazy-initialized readstores
	accommodationStore *readstore.AccommodationReadStore
	reservationStore   *readstore.ReservationReadStore
	manualBlockStore   *readstore.ManualBlockReadStore
}

func (r *commandReads) accommodations() *readstore.AccommodationReadStore {
	if r.accommodationStore == nil {
		r.accommodationStore = readstore.NewAccommodationReadStore(r.uow.q, r.dbtx)
	}
	return r.accommodationStore
}

func (r *commandReads) AccommodationByID(ctx context.Context, id uuid.UUID) (*shared.AccommodationSnapshot, error) {
	snap, err := r.accommodations().FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, nil
	}
	return snap, err
}

func (r *commandReads) BlockedRanges(ctx context.Context, accommodationID uuid.UUID, from civil.Date) ([]availability.RawBlockedRange, error) {
	return r.accommodations().BlockedRanges(ctx, accommodationID, from)
}

// ReservationByID locks the row when called inside Within.
func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	find := r.reservationStore.FindEntityByID
	if r.lockRow {
		find = r.reservationStore.FindForUpdate
	}
	res, err := find(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, nil
	}
	return res, err
}

func (r *commandReads) ManualBlockByID(ctx context.Context, id uuid.UUID) (*manualblock.ManualBlock, error) {
	if r.manualBlockStore == nil {
		r.manualBlockStore = readstore.NewManualBlockReadStore(r.uow.q, r.dbtx)
	}
	block, err := r.manualBlockStore.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, nil
	}
	return block, err
}
