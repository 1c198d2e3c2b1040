package pgconv

import (
	"database/sql"
	"errors"
	"math/big"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrInvalidFloat64Value = errors.New("invalid float64 value in pgtype.Numeric")
	ErrInvalidNumeric      = errors.New("numeric is null, NaN or infinite")
	ErrSubCentNumeric      = errors.New("numeric has more precision than cents")
	ErrNullDate            = errors.New("date is null")
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// OptionalTextToPgtype stores "" as NULL.
func OptionalTextToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func DateToPgtype(d civil.Date) pgtype.Date {
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func DatePtrToPgtype(d *civil.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*d)
}

func DateFromPgtype(pd pgtype.Date) (civil.Date, error) {
	if !pd.Valid || pd.InfinityModifier != pgtype.Finite {
		return civil.Date{}, ErrNullDate
	}
	return civil.DateOf(pd.Time), nil
}

// MinutesToPgtypeTime stores a minute-of-day as a time-of-day column.
func MinutesToPgtypeTime(minutes int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(minutes) * microsPerMinute, Valid: true}
}

// MinutesFromPgtypeTime truncates any seconds. ok is false for NULL.
func MinutesFromPgtypeTime(pt pgtype.Time) (minutes int, ok bool) {
	if !pt.Valid {
		return 0, false
	}
	return int(pt.Microseconds / microsPerMinute), true
}

func CentsToNumeric(cents int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(cents), Exp: -2, Valid: true}
}

// CentsFromNumeric converts a numeric(_,2) amount to integer cents without
// going through float64.
func CentsFromNumeric(pn pgtype.Numeric) (int64, error) {
	if !pn.Valid || pn.NaN || pn.InfinityModifier != pgtype.Finite || pn.Int == nil {
		return 0, ErrInvalidNumeric
	}

	cents := new(big.Int).Set(pn.Int)
	shift := int64(pn.Exp) + 2
	ten := big.NewInt(10)
	switch {
	case shift > 0:
		cents.Mul(cents, new(big.Int).Exp(ten, big.NewInt(shift), nil))
	case shift < 0:
		var rem big.Int
		cents.QuoRem(cents, new(big.Int).Exp(ten, big.NewInt(-shift), nil), &rem)
		if rem.Sign() != 0 {
			return 0, ErrSubCentNumeric
		}
	}

	if !cents.IsInt64() {
		return 0, ErrInvalidNumeric
	}
	return cents.Int64(), nil
}

func Float64PtrFromNumeric(pn pgtype.Numeric) (*float64, error) {
	if !pn.Valid {
		return nil, nil
	}

	value, err := pn.Float64Value()
	if err != nil || !value.Valid {
		return nil, ErrInvalidFloat64Value
	}

	return &value.Float64, nil
}

func Float64PtrToNumeric(f *float64) (pgtype.Numeric, error) {
	var pn pgtype.Numeric
	if f == nil {
		return pn, nil
	}
	if err := pn.Scan(strconv.FormatFloat(*f, 'f', -1, 64)); err != nil {
		return pgtype.Numeric{}, err
	}
	return pn, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
