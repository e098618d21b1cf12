package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"autoflow/internal/infra/db"
	"autoflow/internal/infra/repository"
	"autoflow/internal/pkg/config"
	"autoflow/internal/pkg/errs"
	"autoflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	// Reads are retried once. Writes are never retried, so a commit is
	// never replayed behind the caller's back.
	maxReadRetries = 1
	retryBase      = 50 * time.Millisecond
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

// Beginner is satisfied by *pgxpool.Pool.
type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool    Beginner
	timeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, cfg config.DBConfig) shared.UnitOfWork {
	return newPostgresUoW(pool, cfg.QueryTimeout)
}

func newPostgresUoW(pool Beginner, timeout time.Duration) *PostgresUoW {
	return &PostgresUoW{pool: pool, timeout: timeout}
}

// ReadCommitted with explicit row locks (FOR UPDATE) on the rows being changed
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()
	return u.runOnce(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only repeatable read for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	options := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, options, fn)
		if err == nil || !shouldRetry(err, attempt, maxReadRetries) {
			return err
		}

		waitTime := calculateBackoff(attempt, retryBase)
		slog.Warn("retrying read-only transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (u *PostgresUoW) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.timeout)
}

func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
	return err
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	vehicles       shared.VehicleRepository
	optionals      shared.OptionalRepository
	configurations shared.ConfigurationRepository
	proposals      shared.ProposalRepository
	invoices       shared.InvoiceRepository
}

func (t *pgTx) Vehicles() shared.VehicleRepository {
	if t.vehicles == nil {
		t.vehicles = repository.NewVehicleRepository(t.dbtx)
	}
	return t.vehicles
}

func (t *pgTx) Optionals() shared.OptionalRepository {
	if t.optionals == nil {
		t.optionals = repository.NewOptionalRepository(t.dbtx)
	}
	return t.optionals
}

func (t *pgTx) Configurations() shared.ConfigurationRepository {
	if t.configurations == nil {
		t.configurations = repository.NewConfigurationRepository(t.dbtx)
	}
	return t.configurations
}

func (t *pgTx) Proposals() shared.ProposalRepository {
	if t.proposals == nil {
		t.proposals = repository.NewProposalRepository(t.dbtx)
	}
	return t.proposals
}

func (t *pgTx) Invoices() shared.InvoiceRepository {
	if t.invoices == nil {
		t.invoices = repository.NewInvoiceRepository(t.dbtx)
	}
	return t.invoices
}
