//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultAccommodationName is seeded by SeedReferenceData.
const DefaultAccommodationName = "Chalé Beira-Mar"

type AccommodationFixture struct {
	Name          string
	Capacity      int
	PricePerNight string
	BufferHours   *string
}

func CreateTestAccommodation(t *testing.T, db DBLike, f AccommodationFixture) uuid.UUID {
	t.Helper()

	if f.Name == "" {
		f.Name = "Suite " + uuid.NewString()[:8]
	}
	if f.Capacity == 0 {
		f.Capacity = 4
	}
	if f.PricePerNight == "" {
		f.PricePerNight = "200.00"
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO accommodations (name, capacity, price_per_night, cleaning_buffer_hours)
		 VALUES ($1, $2, $3::numeric, $4::numeric) RETURNING id`,
		f.Name, f.Capacity, f.PricePerNight, f.BufferHours).Scan(&id)
	require.NoError(t, err)

	return id
}

func DefaultAccommodationID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM accommodations WHERE name = $1 LIMIT 1", DefaultAccommodationName).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountNotificationJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO accommodations (name, capacity, price_per_night, cleaning_buffer_hours)
		VALUES ($1, 4, 200.00, NULL)
	`, DefaultAccommodationName)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
