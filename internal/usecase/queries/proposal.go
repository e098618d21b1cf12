package queries

import (
	"context"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/proposal"
	"autoflow/internal/pkg/ptr"
	"autoflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProposalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProposalView, error)
	// List orders by created_at DESC, id DESC and starts after the keyset when given.
	List(ctx context.Context, filters ProposalFilters, after *Keyset, limit int32) ([]*ProposalView, error)
	History(ctx context.Context, proposalID uuid.UUID) ([]*TransitionView, error)
}

type ProposalQueries interface {
	Get(ctx context.Context, a actor.Context, id uuid.UUID) (*ProposalView, error)
	List(ctx context.Context, a actor.Context, filters ProposalFilters, cursor *Cursor, limit int) ([]*ProposalView, *Cursor, error)
	History(ctx context.Context, a actor.Context, id uuid.UUID) ([]*TransitionView, error)
}

type proposalQueriesImpl struct {
	store ProposalReadStore
}

func NewProposalQueries(store ProposalReadStore) ProposalQueries {
	return &proposalQueriesImpl{store: store}
}

func (q *proposalQueriesImpl) Get(ctx context.Context, a actor.Context, id uuid.UUID) (*ProposalView, error) {
	view, err := q.find(ctx, a, id)
	if err != nil {
		return nil, err
	}
	return redactFor(a, view), nil
}

func (q *proposalQueriesImpl) List(ctx context.Context, a actor.Context, filters ProposalFilters, cursor *Cursor, limit int) ([]*ProposalView, *Cursor, error) {
	if err := actor.Authorize(a, actor.OpProposalRead); err != nil {
		return nil, nil, err
	}
	if filters.Status != nil {
		if _, err := proposal.ParseStatus(*filters.Status); err != nil {
			return nil, nil, err
		}
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
	rows, next := nextPage(rows, limit, func(v *ProposalView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	for i := range rows {
		rows[i] = redactFor(a, rows[i])
	}
	return rows, next, nil
}

func (q *proposalQueriesImpl) History(ctx context.Context, a actor.Context, id uuid.UUID) ([]*TransitionView, error) {
	if _, err := q.find(ctx, a, id); err != nil {
		return nil, err
	}
	return q.store.History(ctx, id)
}

func (q *proposalQueriesImpl) find(ctx context.Context, a actor.Context, id uuid.UUID) (*ProposalView, error) {
	if err := actor.Authorize(a, actor.OpProposalRead); err != nil {
		return nil, err
	}
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, proposal.ErrProposalNotFound)
	}
	if err := actor.AuthorizeFor(a, actor.OpProposalRead, view.ClientID); err != nil {
		return nil, err
	}
	return view, nil
}

// redactFor hides staff-only fields from clients.
func redactFor(a actor.Context, v *ProposalView) *ProposalView {
	if a.IsStaff() {
		return v
	}
	out := *v
	out.InternalNotes = ""
	return &out
}
