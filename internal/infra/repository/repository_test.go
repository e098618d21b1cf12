//go:build unit

package repository_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"autoflow/internal/infra"
	"autoflow/internal/infra/repository"
	"autoflow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB records the last statement and replays canned results.
type fakeDB struct {
	tag      pgconn.CommandTag
	execErr  error
	row      fakeRow
	queryErr error

	sql  string
	args []any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return f.tag, f.execErr
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, f.queryErr
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	return f.row
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, v := range r.values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func TestVehicleRepository_Writes(t *testing.T) {
	ctx := context.Background()
	vehicle := builder.NewVehicleBuilder().MustBuild()

	tests := []struct {
		name       string
		db         *fakeDB
		run        func(r *repository.VehicleRepository) error
		wantKind   infra.RepositoryErrorKind
		constraint string
	}{
		{
			name:     "update of a missing row",
			db:       &fakeDB{tag: pgconn.NewCommandTag("UPDATE 0")},
			run:      func(r *repository.VehicleRepository) error { return r.Update(ctx, vehicle) },
			wantKind: infra.KindNotFound,
		},
		{
			name:       "duplicate plate",
			db:         &fakeDB{execErr: &pgconn.PgError{Code: "23505", ConstraintName: "vehicles_plate_key"}},
			run:        func(r *repository.VehicleRepository) error { return r.Create(ctx, vehicle) },
			wantKind:   infra.KindDuplicateKey,
			constraint: "vehicles_plate_key",
		},
		{
			name:     "lock of a missing row",
			db:       &fakeDB{row: fakeRow{err: pgx.ErrNoRows}},
			run:      func(r *repository.VehicleRepository) error { _, err := r.GetForUpdate(ctx, vehicle.ID()); return err },
			wantKind: infra.KindNotFound,
		},
		{
			name:     "list on a broken connection",
			db:       &fakeDB{queryErr: errors.New("connection reset")},
			run:      func(r *repository.VehicleRepository) error { _, err := r.List(ctx); return err },
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(repository.NewVehicleRepository(tt.db))
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			assert.Equal(t, tt.constraint, infra.ConstraintOf(err))
		})
	}

	t.Run("update writes the status column", func(t *testing.T) {
		db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 1")}
		require.NoError(t, repository.NewVehicleRepository(db).Update(ctx, vehicle))
		assert.Contains(t, db.sql, "UPDATE vehicles")
		assert.Equal(t, vehicle.ID(), db.args[0])
		assert.Equal(t, "AVAILABLE", db.args[11])
		assert.Equal(t, "20000.00", db.args[6])
	})

	t.Run("lock uses FOR UPDATE", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
		_, _ = repository.NewVehicleRepository(db).GetForUpdate(ctx, vehicle.ID())
		assert.Contains(t, db.sql, "FOR UPDATE")
	})
}

func TestOptionalRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	db := &fakeDB{row: fakeRow{values: []any{id, "NAV", "Navigation system", "", "1500.00", at, at}}}
	o, err := repository.NewOptionalRepository(db).FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, o.ID())
	assert.Equal(t, "NAV", o.Code())
	assert.Equal(t, "1500.00", o.Price().String())
	assert.Equal(t, []any{id}, db.args)
}

func TestOptionalRepository_FindByIDsEmpty(t *testing.T) {
	db := &fakeDB{queryErr: errors.New("must not be called")}
	got, err := repository.NewOptionalRepository(db).FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, db.sql)
}

func TestInvoiceRepository_NextNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("formats the reserved sequence", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{values: []any{7}}}
		n, err := repository.NewInvoiceRepository(db).NextNumber(ctx, 2025)
		require.NoError(t, err)
		assert.Equal(t, "AF-2025-007", n.String())
		assert.Equal(t, []any{2025}, db.args)
		assert.Contains(t, db.sql, "ON CONFLICT (year)")
	})

	t.Run("serialization failures are retryable conflicts", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: &pgconn.PgError{Code: "40001"}}}
		_, err := repository.NewInvoiceRepository(db).NextNumber(ctx, 2025)
		assert.True(t, infra.IsKind(err, infra.KindSerialization), "got %v", err)
	})
}

func TestExistenceChecks(t *testing.T) {
	ctx := context.Background()

	exists, err := repository.NewProposalRepository(&fakeDB{row: fakeRow{values: []any{true}}}).
		ExistsForConfiguration(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repository.NewInvoiceRepository(&fakeDB{row: fakeRow{values: []any{false}}}).
		ExistsForProposal(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repository.NewInvoiceRepository(&fakeDB{row: fakeRow{err: errors.New("timeout")}}).
		ExistsForProposal(ctx, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
}
