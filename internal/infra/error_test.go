//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"pousada-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}, want: infra.KindExclusionViolated},
		{name: "wrapped exclusion violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"}), want: infra.KindExclusionViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "explicit kind wins", err: errors.New("no rows"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to create reservation", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "failed to create reservation")
		})
	}
}

func TestIsKind_UnrelatedError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("boom"), infra.KindDBFailure))
}
