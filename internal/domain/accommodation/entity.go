package accommodation

import (
	"errors"
	"math"
	"strings"

	"pousada-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("accommodation name cannot be empty")
	ErrNameTooLong     = errors.New("accommodation name is too long (max 120 characters)")
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
	ErrNegativeBuffer  = errors.New("cleaning buffer hours cannot be negative")
	ErrNonFiniteBuffer = errors.New("cleaning buffer hours must be a finite number")
	ErrNegativeNightly = errors.New("price per night cannot be negative")
)

const (
	MaxNameLength = 120

	// DefaultCleaningBufferHours applies when the unit has no buffer configured.
	DefaultCleaningBufferHours = 1.0
)

type Accommodation struct {
	id                  uuid.UUID
	name                string
	capacity            int
	pricePerNight       money.Money
	cleaningBufferHours float64
}

// NewAccommodation builds the booking-relevant view of a unit. A nil
// cleaningBufferHours falls back to DefaultCleaningBufferHours.
func NewAccommodation(
	id uuid.UUID,
	name string,
	capacity int,
	pricePerNightCents int64,
	cleaningBufferHours *float64,
) (*Accommodation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	price, err := money.NewMoney(pricePerNightCents)
	if err != nil {
		return nil, ErrNegativeNightly
	}

	buffer := DefaultCleaningBufferHours
	if cleaningBufferHours != nil {
		buffer = *cleaningBufferHours
	}
	if math.IsNaN(buffer) || math.IsInf(buffer, 0) {
		return nil, ErrNonFiniteBuffer
	}
	if buffer < 0 {
		return nil, ErrNegativeBuffer
	}

	return &Accommodation{
		id:                  id,
		name:                name,
		capacity:            capacity,
		pricePerNight:       price,
		cleaningBufferHours: buffer,
	}, nil
}

func (a *Accommodation) Admits(guests int) bool {
	return guests >= 1 && guests <= a.capacity
}

func (a *Accommodation) ID() uuid.UUID                { return a.id }
func (a *Accommodation) Name() string                 { return a.name }
func (a *Accommodation) Capacity() int                { return a.capacity }
func (a *Accommodation) PricePerNight() money.Money   { return a.pricePerNight }
func (a *Accommodation) CleaningBufferHours() float64 { return a.cleaningBufferHours }
