//go:build unit || e2e

// Package uowtest provides an in-memory shared.UnitOfWork whose reads and
// repositories are testify mocks.
package uowtest

import (
	"context"
	"time"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/domain/manualblock"
	"pousada-booking/internal/domain/reservation"
	"pousada-booking/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UnitOfWork runs fn directly against its mocks. Within calls are counted so
// tests can tell whether a command reached the transactional part.
type UnitOfWork struct {
	Reads         *Reads
	Reservations  *ReservationRepository
	ManualBlocks  *ManualBlockRepository
	Notifications *NotificationRepository

	WithinCalls   int
	ReadOnlyCalls int
}

func New() *UnitOfWork {
	return &UnitOfWork{
		Reads:         &Reads{},
		Reservations:  &ReservationRepository{},
		ManualBlocks:  &ManualBlockRepository{},
		Notifications: &NotificationRepository{},
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.WithinCalls++
	return fn(ctx, &tx{u: u})
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	u.ReadOnlyCalls++
	return fn(ctx, u.Reads)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return u.Reads
}

// AssertExpectations checks every mock the unit of work hands out.
func (u *UnitOfWork) AssertExpectations(t mock.TestingT) {
	u.Reads.AssertExpectations(t)
	u.Reservations.AssertExpectations(t)
	u.ManualBlocks.AssertExpectations(t)
	u.Notifications.AssertExpectations(t)
}

type tx struct {
	u *UnitOfWork
}

func (t *tx) Reservations() shared.ReservationRepository   { return t.u.Reservations }
func (t *tx) ManualBlocks() shared.ManualBlockRepository   { return t.u.ManualBlocks }
func (t *tx) Notifications() shared.NotificationRepository { return t.u.Notifications }
func (t *tx) Reads() shared.CommandReads                   { return t.u.Reads }

type Reads struct {
	mock.Mock
}

func (m *Reads) AccommodationByID(ctx context.Context, id uuid.UUID) (*shared.AccommodationSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*shared.AccommodationSnapshot)
	return snap, args.Error(1)
}

func (m *Reads) BlockedRanges(ctx context.Context, accommodationID uuid.UUID, from civil.Date) ([]availability.RawBlockedRange, error) {
	args := m.Called(ctx, accommodationID, from)
	ranges, _ := args.Get(0).([]availability.RawBlockedRange)
	return ranges, args.Error(1)
}

func (m *Reads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*reservation.Reservation)
	return res, args.Error(1)
}

func (m *Reads) ManualBlockByID(ctx context.Context, id uuid.UUID) (*manualblock.ManualBlock, error) {
	args := m.Called(ctx, id)
	block, _ := args.Get(0).(*manualblock.ManualBlock)
	return block, args.Error(1)
}

type ReservationRepository struct {
	mock.Mock
}

func (m *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	args := m.Called(ctx, res)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

type ManualBlockRepository struct {
	mock.Mock
}

func (m *ManualBlockRepository) Create(ctx context.Context, block *manualblock.ManualBlock) (uuid.UUID, error) {
	args := m.Called(ctx, block)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *ManualBlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	return m.Called(ctx, kind, topic, payload, runAt).Error(0)
}
