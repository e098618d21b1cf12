package readstore

import (
	"context"

	"autoflow/internal/infra"
	"autoflow/internal/infra/db"
	"autoflow/internal/pkg/pgconv"
	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceViewColumns = `id, proposal_id, client_id, number, issued_on, amount::text, paid_on, notes, created_at`

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(db db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: db}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+invoiceViewColumns+` FROM invoices WHERE id = $1`, id)
	view, err := scanInvoiceView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find invoice view", err)
	}
	return view, nil
}

func (r *InvoiceReadStore) List(ctx context.Context, filters queries.InvoiceFilters, after *queries.Keyset, limit int32) ([]*queries.InvoiceView, error) {
	var (
		afterAt pgtype.Timestamptz
		afterID *uuid.UUID
	)
	if after != nil {
		afterAt = pgtype.Timestamptz{Time: after.CreatedAt, Valid: true}
		afterID = &after.ID
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+invoiceViewColumns+` FROM invoices
		WHERE ($1::uuid IS NULL OR client_id = $1)
		  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3::uuid))
		ORDER BY created_at DESC, id DESC
		LIMIT $4`,
		filters.ClientID, afterAt, afterID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	defer rows.Close()

	result := make([]*queries.InvoiceView, 0)
	for rows.Next() {
		view, err := scanInvoiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice views", err)
	}
	return result, nil
}

func scanInvoiceView(row pgx.Row) (*queries.InvoiceView, error) {
	var (
		inv              queries.InvoiceView
		amount           string
		issuedOn, paidOn pgtype.Date
	)
	if err := row.Scan(&inv.ID, &inv.ProposalID, &inv.ClientID, &inv.Number, &issuedOn, &amount, &paidOn, &inv.Notes, &inv.CreatedAt); err != nil {
		return nil, err
	}
	m, err := pgconv.MoneyFromText(amount)
	if err != nil {
		return nil, err
	}
	inv.Amount = m
	inv.IssuedOn = *pgconv.DatePtrFromPgtype(issuedOn)
	inv.PaidOn = pgconv.DatePtrFromPgtype(paidOn)
	return &inv, nil
}
