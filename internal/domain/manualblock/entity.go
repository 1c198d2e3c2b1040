package manualblock

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"pousada-booking/internal/domain/availability"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

var (
	ErrInvalidDates  = errors.New("manual block dates must be calendar dates")
	ErrInvertedRange = errors.New("manual block must end after it starts")
	ErrReasonTooLong = errors.New("manual block reason is too long (max 200 characters)")
)

const MaxReasonLength = 200

// ManualBlock takes a unit off sale for [startDate, endDate), e.g. for
// maintenance or an owner stay.
type ManualBlock struct {
	id              uuid.UUID
	accommodationID uuid.UUID
	startDate       civil.Date
	endDate         civil.Date
	reason          string
	createdAt       time.Time
}

func NewManualBlock(accommodationID uuid.UUID, startDate, endDate civil.Date, reason string, now time.Time) (*ManualBlock, error) {
	if !startDate.IsValid() || !endDate.IsValid() {
		return nil, ErrInvalidDates
	}
	if !startDate.Before(endDate) {
		return nil, ErrInvertedRange
	}

	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}

	return &ManualBlock{
		id:              uuid.New(),
		accommodationID: accommodationID,
		startDate:       startDate,
		endDate:         endDate,
		reason:          reason,
		createdAt:       now,
	}, nil
}

func ReconstructManualBlock(id, accommodationID uuid.UUID, startDate, endDate civil.Date, reason string, createdAt time.Time) *ManualBlock {
	return &ManualBlock{
		id:              id,
		accommodationID: accommodationID,
		startDate:       startDate,
		endDate:         endDate,
		reason:          reason,
		createdAt:       createdAt,
	}
}

func (b *ManualBlock) BlockedRange() availability.BlockedRange {
	return availability.BlockedRange{
		AccommodationID: b.accommodationID,
		StartDate:       b.startDate,
		EndDate:         b.endDate,
		IsManual:        true,
	}
}

func (b *ManualBlock) ID() uuid.UUID              { return b.id }
func (b *ManualBlock) AccommodationID() uuid.UUID { return b.accommodationID }
func (b *ManualBlock) StartDate() civil.Date      { return b.startDate }
func (b *ManualBlock) EndDate() civil.Date        { return b.endDate }
func (b *ManualBlock) Reason() string             { return b.reason }
func (b *ManualBlock) CreatedAt() time.Time       { return b.createdAt }
