package repository

import (
	"context"
	"time"

	"autoflow/internal/domain/proposal"
	"autoflow/internal/infra"
	"autoflow/internal/infra/db"
	"autoflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const proposalColumns = `id, client_id, staff_id, configuration_id, price::text, status, created_on, expires_on,
	client_notes, internal_notes, created_at, updated_at`

type ProposalRepository struct {
	db db.DBTX
}

func NewProposalRepository(db db.DBTX) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// Create relies on proposals_configuration_id_key to reject a second proposal.
func (r *ProposalRepository) Create(ctx context.Context, p *proposal.Proposal) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO proposals (id, client_id, staff_id, configuration_id, price, status, created_on, expires_on,
		                       client_notes, internal_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID(), p.ClientID(), p.StaffID(), p.ConfigurationID(), pgconv.MoneyParam(p.Price()), p.Status().String(),
		pgtype.Date{Time: p.CreatedOn(), Valid: true}, pgconv.DateToPgtype(p.ExpiresOn()),
		p.ClientNotes(), p.InternalNotes(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create proposal", err)
	}
	return nil
}

func (r *ProposalRepository) Update(ctx context.Context, p *proposal.Proposal) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE proposals
		SET price = $2, status = $3, expires_on = $4, internal_notes = $5, updated_at = $6
		WHERE id = $1`,
		p.ID(), pgconv.MoneyParam(p.Price()), p.Status().String(), pgconv.DateToPgtype(p.ExpiresOn()),
		p.InternalNotes(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update proposal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("proposal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	row := r.db.QueryRow(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE id = $1`, id)
	p, err := scanProposal(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find proposal", err)
	}
	return p, nil
}

func (r *ProposalRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	row := r.db.QueryRow(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE id = $1 FOR UPDATE`, id)
	p, err := scanProposal(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock proposal", err)
	}
	return p, nil
}

func (r *ProposalRepository) ExistsForConfiguration(ctx context.Context, configurationID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM proposals WHERE configuration_id = $1)`, configurationID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check proposal existence", err)
	}
	return exists, nil
}

func (r *ProposalRepository) ListOverdueForUpdate(ctx context.Context, today time.Time) ([]*proposal.Proposal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+proposalColumns+` FROM proposals
		WHERE status IN ('SUBMITTED', 'ACCEPTED') AND expires_on < $1
		ORDER BY expires_on, id
		FOR UPDATE SKIP LOCKED`,
		pgtype.Date{Time: today, Valid: true},
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue proposals", err)
	}
	defer rows.Close()

	var out []*proposal.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan proposal", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate proposals", err)
	}
	return out, nil
}

func (r *ProposalRepository) RecordTransition(ctx context.Context, rec proposal.TransitionRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO proposal_transitions (id, proposal_id, from_status, to_status, kind, actor_id, actor_role, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.ProposalID, rec.From.String(), rec.To.String(), rec.Kind.String(),
		rec.ActorID, rec.ActorRole.String(), rec.Reason, rec.OccurredAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record proposal transition", err)
	}
	return nil
}

func scanProposal(row pgx.Row) (*proposal.Proposal, error) {
	var (
		id, clientID, configurationID uuid.UUID
		staffID                       *uuid.UUID
		price, status                 string
		createdOn, expiresOn          pgtype.Date
		clientNotes, internalNotes    string
		createdAt, updatedAt          time.Time
	)
	if err := row.Scan(
		&id, &clientID, &staffID, &configurationID, &price, &status, &createdOn, &expiresOn,
		&clientNotes, &internalNotes, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	amount, err := pgconv.MoneyFromText(price)
	if err != nil {
		return nil, err
	}
	return proposal.Reconstruct(
		id, clientID, staffID, configurationID, amount, proposal.Status(status),
		*pgconv.DatePtrFromPgtype(createdOn), pgconv.DatePtrFromPgtype(expiresOn),
		clientNotes, internalNotes, createdAt, updatedAt,
	), nil
}
