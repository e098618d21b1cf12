package queries

import (
	"context"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/invoice"
	"autoflow/internal/pkg/ptr"
	"autoflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, filters InvoiceFilters, after *Keyset, limit int32) ([]*InvoiceView, error)
}

type InvoiceQueries interface {
	Get(ctx context.Context, a actor.Context, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, a actor.Context, filters InvoiceFilters, cursor *Cursor, limit int) ([]*InvoiceView, *Cursor, error)
}

type invoiceQueriesImpl struct {
	store InvoiceReadStore
}

func NewInvoiceQueries(store InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{store: store}
}

func (q *invoiceQueriesImpl) Get(ctx context.Context, a actor.Context, id uuid.UUID) (*InvoiceView, error) {
	if err := actor.Authorize(a, actor.OpInvoiceRead); err != nil {
		return nil, err
	}
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, invoice.ErrInvoiceNotFound)
	}
	if err := actor.AuthorizeFor(a, actor.OpInvoiceRead, view.ClientID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *invoiceQueriesImpl) List(ctx context.Context, a actor.Context, filters InvoiceFilters, cursor *Cursor, limit int) ([]*InvoiceView, *Cursor, error) {
	if err := actor.Authorize(a, actor.OpInvoiceRead); err != nil {
		return nil, nil, err
	}
	if a.IsClient() {
		filters.ClientID = ptr.Of(a.ID())
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	rows, err := q.store.List(ctx, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := nextPage(rows, limit, func(v *InvoiceView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return rows, next, nil
}
