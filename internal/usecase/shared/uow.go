package shared

import (
	"context"
	"time"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/domain/manualblock"
	"pousada-booking/internal/domain/reservation"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Serializable transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction so that an accommodation and its ranges come from one snapshot
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	ManualBlocks() ManualBlockRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads return nil, nil when the requested row does not exist.
type CommandReads interface {
	AccommodationByID(ctx context.Context, id uuid.UUID) (*AccommodationSnapshot, error)
	// BlockedRanges lists active reservations and manual blocks that end on or after from.
	BlockedRanges(ctx context.Context, accommodationID uuid.UUID, from civil.Date) ([]availability.RawBlockedRange, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ManualBlockByID(ctx context.Context, id uuid.UUID) (*manualblock.ManualBlock, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
}

type ManualBlockRepository interface {
	Create(ctx context.Context, block *manualblock.ManualBlock) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
