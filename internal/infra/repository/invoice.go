package repository

import (
	"context"
	"time"

	"autoflow/internal/domain/invoice"
	"autoflow/internal/infra"
	"autoflow/internal/infra/db"
	"autoflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `id, proposal_id, client_id, number, issued_on, amount::text, paid_on, notes, created_at`

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(db db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// NextNumber increments the per-year counter. The row lock is held until the
// surrounding transaction ends, so numbers are gap free on commit.
func (r *InvoiceRepository) NextNumber(ctx context.Context, year int) (invoice.Number, error) {
	var seq int
	err := r.db.QueryRow(ctx, `
		INSERT INTO invoice_counters (year, last_seq) VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_seq = invoice_counters.last_seq + 1
		RETURNING last_seq`,
		year,
	).Scan(&seq)
	if err != nil {
		return invoice.Number{}, infra.WrapRepoErr("failed to reserve invoice number", err)
	}
	return invoice.NewNumber(year, seq)
}

// Create relies on invoices_proposal_id_key to reject a second invoice.
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO invoices (id, proposal_id, client_id, number, issued_on, amount, paid_on, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		inv.ID(), inv.ProposalID(), inv.ClientID(), inv.Number().String(),
		pgtype.Date{Time: inv.IssuedOn(), Valid: true}, pgconv.MoneyParam(inv.Amount()),
		pgconv.DateToPgtype(inv.PaidOn()), inv.Notes(), inv.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) ExistsForProposal(ctx context.Context, proposalID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE proposal_id = $1)`, proposalID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check invoice existence", err)
	}
	return exists, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	row := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	return inv, nil
}

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var (
		id, proposalID, clientID uuid.UUID
		number, amount, notes    string
		issuedOn, paidOn         pgtype.Date
		createdAt                time.Time
	)
	if err := row.Scan(&id, &proposalID, &clientID, &number, &issuedOn, &amount, &paidOn, &notes, &createdAt); err != nil {
		return nil, err
	}
	n, err := invoice.ParseNumber(number)
	if err != nil {
		return nil, err
	}
	a, err := pgconv.MoneyFromText(amount)
	if err != nil {
		return nil, err
	}
	return invoice.Reconstruct(
		id, proposalID, clientID, n, *pgconv.DatePtrFromPgtype(issuedOn), a,
		pgconv.DatePtrFromPgtype(paidOn), notes, createdAt,
	), nil
}
