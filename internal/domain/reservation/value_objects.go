package reservation

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyGuestName    = errors.New("guest name cannot be empty")
	ErrGuestNameTooLong  = errors.New("guest name is too long (max 120 characters)")
	ErrInvalidGuestEmail = errors.New("invalid guest email format")
	ErrInvalidGuestPhone = errors.New("guest phone must have between 10 and 13 digits")
	ErrNoteTooLong       = errors.New("note is too long (max 500 characters)")
)

const (
	MaxGuestNameLength = 120
	MaxNoteLength      = 500
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
)

// Guest is the contact who made the booking.
type Guest struct {
	name  string
	email string
	phone string
}

// NewGuest normalizes and validates the booking contact. Phone punctuation such
// as "(11) 98765-4321" is stripped before validation.
func NewGuest(name, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrEmptyGuestName
	}
	if utf8.RuneCountInString(name) > MaxGuestNameLength {
		return Guest{}, ErrGuestNameTooLong
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return Guest{}, ErrInvalidGuestEmail
	}

	phone = normalizePhone(phone)
	if !phoneRegex.MatchString(phone) {
		return Guest{}, ErrInvalidGuestPhone
	}

	return Guest{name: name, email: email, phone: phone}, nil
}

func normalizePhone(s string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }
func (g Guest) Phone() string { return g.phone }

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
