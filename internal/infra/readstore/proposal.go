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

const proposalViewSelect = `
	SELECT p.id, p.client_id, p.staff_id, p.configuration_id, c.vehicle_id, v.brand, v.model, p.price::text, p.status,
	       p.created_on, p.expires_on, p.client_notes, p.internal_notes, p.created_at, p.updated_at
	FROM proposals p
	JOIN configurations c ON c.id = p.configuration_id
	JOIN vehicles v ON v.id = c.vehicle_id`

type ProposalReadStore struct {
	db db.DBTX
}

func NewProposalReadStore(db db.DBTX) *ProposalReadStore {
	return &ProposalReadStore{db: db}
}

func (r *ProposalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProposalView, error) {
	row := r.db.QueryRow(ctx, proposalViewSelect+` WHERE p.id = $1`, id)
	view, err := scanProposalView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find proposal view", err)
	}
	return view, nil
}

func (r *ProposalReadStore) List(ctx context.Context, filters queries.ProposalFilters, after *queries.Keyset, limit int32) ([]*queries.ProposalView, error) {
	var (
		afterAt pgtype.Timestamptz
		afterID *uuid.UUID
	)
	if after != nil {
		afterAt = pgtype.Timestamptz{Time: after.CreatedAt, Valid: true}
		afterID = &after.ID
	}

	rows, err := r.db.Query(ctx, proposalViewSelect+`
		WHERE ($1::uuid IS NULL OR p.client_id = $1)
		  AND ($2::uuid IS NULL OR p.staff_id = $2)
		  AND ($3::text IS NULL OR p.status = $3)
		  AND ($4::timestamptz IS NULL OR (p.created_at, p.id) < ($4, $5::uuid))
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $6`,
		filters.ClientID, filters.StaffID, filters.Status, afterAt, afterID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list proposals", err)
	}
	defer rows.Close()

	result := make([]*queries.ProposalView, 0)
	for rows.Next() {
		view, err := scanProposalView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan proposal view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate proposal views", err)
	}
	return result, nil
}

func (r *ProposalReadStore) History(ctx context.Context, proposalID uuid.UUID) ([]*queries.TransitionView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, proposal_id, from_status, to_status, kind, actor_id, actor_role, reason, occurred_at
		FROM proposal_transitions
		WHERE proposal_id = $1
		ORDER BY occurred_at, id`,
		proposalID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list proposal transitions", err)
	}
	defer rows.Close()

	result := make([]*queries.TransitionView, 0)
	for rows.Next() {
		var t queries.TransitionView
		if err := rows.Scan(&t.ID, &t.ProposalID, &t.From, &t.To, &t.Kind, &t.ActorID, &t.ActorRole, &t.Reason, &t.OccurredAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan proposal transition", err)
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate proposal transitions", err)
	}
	return result, nil
}

func scanProposalView(row pgx.Row) (*queries.ProposalView, error) {
	var (
		p                    queries.ProposalView
		price                string
		createdOn, expiresOn pgtype.Date
	)
	if err := row.Scan(
		&p.ID, &p.ClientID, &p.StaffID, &p.ConfigurationID, &p.VehicleID, &p.VehicleBrand, &p.VehicleModel,
		&price, &p.Status, &createdOn, &expiresOn, &p.ClientNotes, &p.InternalNotes, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m, err := pgconv.MoneyFromText(price)
	if err != nil {
		return nil, err
	}
	p.Price = m
	p.CreatedOn = *pgconv.DatePtrFromPgtype(createdOn)
	p.ExpiresOn = pgconv.DatePtrFromPgtype(expiresOn)
	return &p, nil
}
