package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60

	// SlotMinutes is the spacing of offered check-in times.
	SlotMinutes = 30
	// SlotsPerDay is the number of check-in options per day (00:00 to 23:30).
	SlotsPerDay = minutesPerDay / SlotMinutes
)

var ErrMalformedTime = errors.New("time of day must be HH:MM or HH:MM:SS")

// TimeOfDay is a wall-clock time at minute precision with no date attached.
// Ordering compares hour then minute only.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d out of range", ErrMalformedTime, hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay accepts "HH:MM" and the "HH:MM:SS" form Postgres emits for time columns.
// Seconds are validated and dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, ErrMalformedTime
	}

	fields := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 {
			return TimeOfDay{}, ErrMalformedTime
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, ErrMalformedTime
		}
		fields[i] = v
	}
	if len(fields) == 3 && fields[2] > 59 {
		return TimeOfDay{}, ErrMalformedTime
	}

	return NewTimeOfDay(fields[0], fields[1])
}

// TimeOfDayOf truncates t (in its own location) to the minute.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

func (t TimeOfDay) Hour() int   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

// MinuteOfDay returns minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int { return t.minutes }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t.minutes > o.minutes }

// AddMinutes adds n minutes modulo 24h. 23:30 plus 60 minutes is 00:30; the
// date is never rolled forward.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	m := (t.minutes + n) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay{minutes: m}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IsSlot reports whether t falls on a half-hour boundary.
func (t TimeOfDay) IsSlot() bool {
	return t.minutes%SlotMinutes == 0
}

// nextSlotAtOrAfter returns the first half-hour slot not earlier than now's
// wall-clock time. ok is false when no slot is left in the day.
func nextSlotAtOrAfter(now time.Time) (slot TimeOfDay, ok bool) {
	minutes := now.Hour()*60 + now.Minute()
	if now.Second() > 0 || now.Nanosecond() > 0 {
		minutes++
	}
	next := (minutes + SlotMinutes - 1) / SlotMinutes * SlotMinutes
	if next >= minutesPerDay {
		return TimeOfDay{}, false
	}
	return TimeOfDay{minutes: next}, true
}

// DaySlots lists the fixed check-in options 00:00, 00:30, ... 23:30.
func DaySlots() []TimeOfDay {
	slots := make([]TimeOfDay, SlotsPerDay)
	for i := range slots {
		slots[i] = TimeOfDay{minutes: i * SlotMinutes}
	}
	return slots
}
