//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"auction-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDateRoundTrip(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	in := time.Date(2026, time.October, 15, 23, 30, 0, 0, tokyo)

	pd := pgconv.DateToPgtype(in)
	assert.True(t, pd.Valid)
	assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestStringToPgtype(t *testing.T) {
	assert.False(t, pgconv.StringToPgtype("").Valid)
	assert.Equal(t, "x", pgconv.StringFromPgtype(pgconv.StringToPgtype("x")))
	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "auction_slots_one_live_per_day"})
	assert.True(t, pgconv.IsUniqueViolation(err))
	assert.Equal(t, "auction_slots_one_live_per_day", pgconv.ConstraintName(err))

	assert.False(t, pgconv.IsUniqueViolation(&pgconn.PgError{Code: "40001"}))
	assert.Equal(t, "", pgconv.ConstraintName(errors.New("plain")))
}
