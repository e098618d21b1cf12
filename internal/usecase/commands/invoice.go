package commands

import (
	"context"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/invoice"
	"autoflow/internal/domain/proposal"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/usecase/shared"

	"github.com/google/uuid"
)

const constraintOneInvoicePerProposal = "invoices_proposal_id_key"

type RequestInvoiceInput struct {
	Notes  string
	PaidOn *time.Time
}

type InvoiceCommands interface {
	RequestInvoice(ctx context.Context, a actor.Context, proposalID uuid.UUID, in RequestInvoiceInput) (uuid.UUID, error)
}

type invoiceUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewInvoiceUseCase(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) InvoiceCommands {
	return &invoiceUseCaseImpl{uow: uow, publisher: publisher, clock: clk}
}

// RequestInvoice issues the single invoice of a COMPLETED proposal. The
// proposal row lock serializes concurrent requests; the unique constraint on
// invoices.proposal_id backs the existence check.
func (uc *invoiceUseCaseImpl) RequestInvoice(ctx context.Context, a actor.Context, proposalID uuid.UUID, in RequestInvoiceInput) (uuid.UUID, error) {
	if err := actor.Authorize(a, actor.OpInvoiceRequest); err != nil {
		return uuid.Nil, err
	}

	var inv *invoice.Invoice
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		p, err := tx.Proposals().GetForUpdate(ctx, proposalID)
		if err != nil {
			return shared.TranslateRepoErr(err, proposal.ErrProposalNotFound)
		}
		if p.Status() != proposal.StatusCompleted {
			return invoice.ErrProposalNotCompleted
		}

		exists, err := tx.Invoices().ExistsForProposal(ctx, p.ID())
		if err != nil {
			return shared.TranslateRepoErr(err, nil)
		}
		if exists {
			return invoice.ErrInvoiceExists
		}

		number, err := tx.Invoices().NextNumber(ctx, now.Year())
		if err != nil {
			return shared.TranslateRepoErr(err, nil)
		}
		inv, err = invoice.Issue(p, number, in.Notes, in.PaidOn, now)
		if err != nil {
			return err
		}
		if err := tx.Invoices().Create(ctx, inv); err != nil {
			return shared.TranslateDuplicate(err, constraintOneInvoicePerProposal, invoice.ErrInvoiceExists)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	publish(ctx, uc.publisher, shared.TopicInvoiceIssued, shared.InvoiceEvent{
		InvoiceID:  inv.ID(),
		ProposalID: inv.ProposalID(),
		ClientID:   inv.ClientID(),
		Number:     inv.Number().String(),
		Amount:     inv.Amount().String(),
		IssuedOn:   inv.IssuedOn().Format(time.DateOnly),
	})
	return inv.ID(), nil
}
