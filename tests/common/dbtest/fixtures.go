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

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra/repository/converter"
	sqlc "auction-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertSlot writes s as-is, bypassing the scheduler's invariants.
func InsertSlot(t *testing.T, db DBLike, s *auction.Slot) {
	t.Helper()

	rec, err := converter.RecordFromSlot(s)
	require.NoError(t, err)
	require.NoError(t, sqlc.New().InsertSlot(context.Background(), db, rec.ToInsertParams()))
}

// ForceStatus overwrites a slot's status the way a half-applied manual fix would.
func ForceStatus(t *testing.T, db DBLike, externalID uuid.UUID, status auction.Status) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE auction_slots SET status = $1, updated_at = now() WHERE external_id = $2",
		string(status), externalID)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected(), "slot %s not found", externalID)
}

func CountSlots(t *testing.T, db DBLike, date auction.Date, status auction.Status) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM auction_slots WHERE scheduled_date = $1::date AND status = $2",
		date.String(), string(status)).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
