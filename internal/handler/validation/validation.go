// Package validation registers the booking-specific binding tags on gin's
// validator.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"pousada-booking/internal/domain/availability"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	mu         sync.Mutex
	registered bool
)

// Register adds the tags to gin's default validator:
//
//	hhmm    "HH:MM" (or "HH:MM:SS") time of day
//	isodate "YYYY-MM-DD" calendar date
//
// It fails when gin's binding engine is not a go-playground validator.
func Register() error {
	mu.Lock()
	defer mu.Unlock()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validation: unsupported binding engine %T", binding.Validator.Engine())
	}
	if registered {
		return nil
	}
	if err := RegisterTags(v); err != nil {
		return err
	}
	registered = true
	return nil
}

// RegisterTags adds the booking tags to v.
func RegisterTags(v *validator.Validate) error {
	if err := v.RegisterValidation("hhmm", validateHHMM); err != nil {
		return fmt.Errorf("validation: register hhmm: %w", err)
	}
	if err := v.RegisterValidation("isodate", validateISODate); err != nil {
		return fmt.Errorf("validation: register isodate: %w", err)
	}
	return nil
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := availability.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	d, err := civil.ParseDate(fl.Field().String())
	return err == nil && d.IsValid()
}

// FieldErrors flattens binding errors into field -> message for the response
// detail. Non-validation errors (bad JSON) yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[lowerFirst(fe.Field())] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "hhmm":
		return "must be a time like 14:30"
	case "isodate":
		return "must be a date like 2024-07-01"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
