package proposal

import (
	"strings"
	"time"
	"unicode/utf8"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/money"
	"autoflow/internal/pkg/errs"
	"autoflow/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound = errs.NewKind(errs.ErrNotFound, "proposal not found")
	ErrProposalExists   = errs.NewKind(errs.ErrConflict, "a proposal already exists for this configuration")
	ErrTermsStaffOnly   = errs.NewKind(errs.ErrForbidden, "only staff may set proposal terms")
	ErrInvalidExpiry    = errs.NewKind(errs.ErrValidation, "expiry date is before the proposal date")
	ErrNotesTooLong     = errs.NewKind(errs.ErrValidation, "proposal notes too long")
	ErrNotYetExpired    = errs.NewKind(errs.ErrPrecondition, "proposal expiry date has not passed")
)

const MaxNotesLength = 2000

// Terms are the commercial fields staff may set on creation or later.
type Terms struct {
	Price         *money.Money
	ExpiresOn     *time.Time
	InternalNotes *string
}

func (t Terms) isEmpty() bool {
	return t.Price == nil && t.ExpiresOn == nil && t.InternalNotes == nil
}

type Proposal struct {
	id              uuid.UUID
	clientID        uuid.UUID
	staffID         *uuid.UUID
	configurationID uuid.UUID
	price           money.Money
	status          Status
	createdOn       time.Time
	expiresOn       *time.Time
	clientNotes     string
	internalNotes   string
	createdAt       time.Time
	updatedAt       time.Time
}

// New creates a SUBMITTED proposal from a configuration. Staff authors are
// assigned to the proposal and may set terms; clients may only propose their
// own configurations at the configured total.
func New(a actor.Context, cfg *configuration.Configuration, clientNotes string, terms Terms, now time.Time) (*Proposal, TransitionRecord, error) {
	if cfg.IsDeleted() {
		return nil, TransitionRecord{}, configuration.ErrConfigurationDeleted
	}

	p := &Proposal{
		id:              uuid.New(),
		clientID:        cfg.ClientID(),
		configurationID: cfg.ID(),
		price:           cfg.TotalPrice(),
		status:          StatusSubmitted,
		createdOn:       dateOf(now),
		createdAt:       now,
		updatedAt:       now,
	}

	switch {
	case a.IsStaff():
		staffID := a.ID()
		p.staffID = &staffID
		if err := p.applyTerms(terms); err != nil {
			return nil, TransitionRecord{}, err
		}
	case a.IsClient():
		if !a.Owns(cfg.ClientID()) {
			return nil, TransitionRecord{}, errs.Wrap(actor.ErrNotOwner, "configuration")
		}
		if !terms.isEmpty() {
			return nil, TransitionRecord{}, ErrTermsStaffOnly
		}
	default:
		return nil, TransitionRecord{}, actor.ErrAnonymous
	}

	notes, err := normalizeNotes(clientNotes)
	if err != nil {
		return nil, TransitionRecord{}, err
	}
	p.clientNotes = notes

	return p, newRecord(p, "", KindCreate, a, "", now), nil
}

func Reconstruct(
	id, clientID uuid.UUID,
	staffID *uuid.UUID,
	configurationID uuid.UUID,
	price money.Money,
	status Status,
	createdOn time.Time,
	expiresOn *time.Time,
	clientNotes, internalNotes string,
	createdAt, updatedAt time.Time,
) *Proposal {
	return &Proposal{
		id:              id,
		clientID:        clientID,
		staffID:         staffID,
		configurationID: configurationID,
		price:           price,
		status:          status,
		createdOn:       createdOn,
		expiresOn:       expiresOn,
		clientNotes:     clientNotes,
		internalNotes:   internalNotes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Proposal) ID() uuid.UUID              { return p.id }
func (p *Proposal) ClientID() uuid.UUID        { return p.clientID }
func (p *Proposal) StaffID() *uuid.UUID        { return p.staffID }
func (p *Proposal) ConfigurationID() uuid.UUID { return p.configurationID }
func (p *Proposal) Price() money.Money         { return p.price }
func (p *Proposal) Status() Status             { return p.status }
func (p *Proposal) CreatedOn() time.Time       { return p.createdOn }
func (p *Proposal) ExpiresOn() *time.Time      { return p.expiresOn }
func (p *Proposal) ClientNotes() string        { return p.clientNotes }
func (p *Proposal) InternalNotes() string      { return p.internalNotes }
func (p *Proposal) CreatedAt() time.Time       { return p.createdAt }
func (p *Proposal) UpdatedAt() time.Time       { return p.updatedAt }

// IsOverdue reports whether the expiry date lies strictly before today.
func (p *Proposal) IsOverdue(today time.Time) bool {
	return p.expiresOn != nil && p.expiresOn.Before(dateOf(today))
}

func (p *Proposal) Accept(a actor.Context, now time.Time) (TransitionRecord, error) {
	return p.transition(a, StatusAccepted, KindAccept, "", now)
}

func (p *Proposal) Reject(a actor.Context, reason string, now time.Time) (TransitionRecord, error) {
	return p.transition(a, StatusRejected, KindReject, strings.TrimSpace(reason), now)
}

func (p *Proposal) Confirm(a actor.Context, now time.Time) (TransitionRecord, error) {
	return p.transition(a, StatusCompleted, KindConfirm, "", now)
}

// Expire closes a proposal whose expiry date has passed.
func (p *Proposal) Expire(a actor.Context, now time.Time) (TransitionRecord, error) {
	if p.status.IsTerminal() {
		return TransitionRecord{}, errs.Wrap(ErrProposalClosed, p.status.String())
	}
	if !p.IsOverdue(now) {
		return TransitionRecord{}, ErrNotYetExpired
	}
	return p.transition(a, StatusExpired, KindExpire, "expiry date passed", now)
}

// Override moves a non-terminal proposal to any other status. The reason is
// kept in the audit trail.
func (p *Proposal) Override(a actor.Context, to Status, reason string, now time.Time) (TransitionRecord, error) {
	if !to.IsValid() {
		return TransitionRecord{}, errs.Wrap(ErrInvalidStatus, to.String())
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return TransitionRecord{}, ErrOverrideReasonRequired
	}
	return p.transition(a, to, KindOverride, reason, now)
}

func (p *Proposal) transition(a actor.Context, to Status, kind TransitionKind, reason string, now time.Time) (TransitionRecord, error) {
	if p.status.IsTerminal() {
		return TransitionRecord{}, errs.Wrap(ErrProposalClosed, p.status.String())
	}
	if kind == KindOverride {
		if to == p.status {
			return TransitionRecord{}, errs.Wrapf(ErrTransitionNotAllowed, "%s -> %s", p.status, to)
		}
	} else if k, ok := EdgeKind(p.status, to); !ok || k != kind {
		return TransitionRecord{}, errs.Wrapf(ErrTransitionNotAllowed, "%s -> %s", p.status, to)
	}
	if err := mayTrigger(kind, a, p.clientID); err != nil {
		return TransitionRecord{}, err
	}

	from := p.status
	p.status = to
	p.updatedAt = now
	return newRecord(p, from, kind, a, reason, now), nil
}

// UpdateTerms lets staff renegotiate an open proposal.
func (p *Proposal) UpdateTerms(a actor.Context, terms Terms, now time.Time) error {
	if !a.IsStaff() {
		return ErrTermsStaffOnly
	}
	if p.status.IsTerminal() {
		return errs.Wrap(ErrProposalClosed, p.status.String())
	}
	if err := p.applyTerms(terms); err != nil {
		return err
	}
	p.updatedAt = now
	return nil
}

func (p *Proposal) applyTerms(terms Terms) error {
	if terms.ExpiresOn != nil {
		expires := dateOf(*terms.ExpiresOn)
		if expires.Before(p.createdOn) {
			return ErrInvalidExpiry
		}
		p.expiresOn = &expires
	}
	if terms.InternalNotes != nil {
		notes, err := normalizeNotes(*terms.InternalNotes)
		if err != nil {
			return err
		}
		p.internalNotes = notes
	}
	patch.Assign(&p.price, terms.Price)
	return nil
}

func normalizeNotes(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNotesLength {
		return "", ErrNotesTooLong
	}
	return s, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
