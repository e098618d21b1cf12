package invoice

import (
	"strings"
	"time"

	"autoflow/internal/domain/money"
	"autoflow/internal/domain/proposal"
	"autoflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errs.NewKind(errs.ErrNotFound, "invoice not found")
	ErrProposalNotCompleted = errs.NewKind(errs.ErrPrecondition, "proposal is not completed")
	ErrInvoiceExists        = errs.NewKind(errs.ErrConflict, "an invoice already exists for this proposal")
	ErrInvalidPaidDate      = errs.NewKind(errs.ErrValidation, "paid date is before the issue date")
)

type Invoice struct {
	id         uuid.UUID
	proposalID uuid.UUID
	clientID   uuid.UUID
	number     Number
	issuedOn   time.Time
	amount     money.Money
	paidOn     *time.Time
	notes      string
	createdAt  time.Time
}

// Issue bills a completed proposal at its agreed price.
func Issue(p *proposal.Proposal, number Number, notes string, paidOn *time.Time, now time.Time) (*Invoice, error) {
	if p.Status() != proposal.StatusCompleted {
		return nil, errs.Wrap(ErrProposalNotCompleted, p.Status().String())
	}

	issuedOn := dateOf(now)
	if paidOn != nil {
		paid := dateOf(*paidOn)
		if paid.Before(issuedOn) {
			return nil, ErrInvalidPaidDate
		}
		paidOn = &paid
	}

	return &Invoice{
		id:         uuid.New(),
		proposalID: p.ID(),
		clientID:   p.ClientID(),
		number:     number,
		issuedOn:   issuedOn,
		amount:     p.Price(),
		paidOn:     paidOn,
		notes:      strings.TrimSpace(notes),
		createdAt:  now,
	}, nil
}

func Reconstruct(
	id, proposalID, clientID uuid.UUID,
	number Number,
	issuedOn time.Time,
	amount money.Money,
	paidOn *time.Time,
	notes string,
	createdAt time.Time,
) *Invoice {
	return &Invoice{
		id:         id,
		proposalID: proposalID,
		clientID:   clientID,
		number:     number,
		issuedOn:   issuedOn,
		amount:     amount,
		paidOn:     paidOn,
		notes:      notes,
		createdAt:  createdAt,
	}
}

func (i *Invoice) ID() uuid.UUID         { return i.id }
func (i *Invoice) ProposalID() uuid.UUID { return i.proposalID }
func (i *Invoice) ClientID() uuid.UUID   { return i.clientID }
func (i *Invoice) Number() Number        { return i.number }
func (i *Invoice) IssuedOn() time.Time   { return i.issuedOn }
func (i *Invoice) Amount() money.Money   { return i.amount }
func (i *Invoice) PaidOn() *time.Time    { return i.paidOn }
func (i *Invoice) Notes() string         { return i.notes }
func (i *Invoice) CreatedAt() time.Time  { return i.createdAt }
func (i *Invoice) IsPaid() bool          { return i.paidOn != nil }

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
