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

	"autoflow/internal/domain/catalog"
	"autoflow/internal/infra/repository"
	"autoflow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedVehicle stores the built vehicle directly, bypassing the API.
func SeedVehicle(t *testing.T, db DBLike, b *builder.VehicleBuilder) *catalog.Vehicle {
	t.Helper()

	v := b.MustBuild()
	err := repository.NewVehicleRepository(db).Create(context.Background(), v)
	require.NoError(t, err)
	return v
}

func SeedOptional(t *testing.T, db DBLike, b *builder.OptionalBuilder) *catalog.Optional {
	t.Helper()

	o := b.MustBuild()
	err := repository.NewOptionalRepository(db).Create(context.Background(), o)
	require.NoError(t, err)
	return o
}

func VehicleStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM vehicles WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

// CountRows counts rows of table matching an optional WHERE clause.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	sql := "SELECT count(*) FROM " + table
	if where != "" {
		sql += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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
