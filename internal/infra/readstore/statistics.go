package readstore

import (
	"context"
	"time"

	"autoflow/internal/infra"
	"autoflow/internal/infra/db"
	"autoflow/internal/pkg/pgconv"
	"autoflow/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type StatisticsReadStore struct {
	db db.DBTX
}

func NewStatisticsReadStore(db db.DBTX) *StatisticsReadStore {
	return &StatisticsReadStore{db: db}
}

func (r *StatisticsReadStore) Dashboard(ctx context.Context, now time.Time) (*queries.DashboardView, error) {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var (
		view                      queries.DashboardView
		total, thisYear, thisMonth string
	)
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM vehicles),
			(SELECT count(*) FROM proposals),
			(SELECT count(*) FROM invoices),
			(SELECT count(*) FROM invoices WHERE paid_on IS NULL),
			(SELECT COALESCE(sum(amount), 0)::text FROM invoices),
			(SELECT COALESCE(sum(amount), 0)::text FROM invoices WHERE issued_on >= $1::date),
			(SELECT COALESCE(sum(amount), 0)::text FROM invoices WHERE issued_on >= $2::date)`,
		pgtype.Date{Time: yearStart, Valid: true}, pgtype.Date{Time: monthStart, Valid: true},
	).Scan(&view.Vehicles, &view.Proposals, &view.Invoices, &view.UnpaidInvoices, &total, &thisYear, &thisMonth)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate dashboard", err)
	}

	if view.InvoicedTotal, err = pgconv.SumFromText(total); err != nil {
		return nil, infra.WrapRepoErr("invalid invoiced total", err)
	}
	if view.InvoicedThisYear, err = pgconv.SumFromText(thisYear); err != nil {
		return nil, infra.WrapRepoErr("invalid invoiced total", err)
	}
	if view.InvoicedThisMonth, err = pgconv.SumFromText(thisMonth); err != nil {
		return nil, infra.WrapRepoErr("invalid invoiced total", err)
	}

	rows, err := r.db.Query(ctx, `SELECT status, count(*) FROM proposals GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count proposals by status", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c queries.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count", err)
		}
		view.ProposalsByStatus = append(view.ProposalsByStatus, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status counts", err)
	}
	return &view, nil
}
