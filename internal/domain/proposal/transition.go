package proposal

import (
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransitionNotAllowed   = errs.NewKind(errs.ErrValidation, "proposal transition not allowed")
	ErrProposalClosed         = errs.NewKind(errs.ErrValidation, "proposal is closed")
	ErrOverrideReasonRequired = errs.NewKind(errs.ErrValidation, "override reason is required")
	ErrTransitionRole         = errs.NewKind(errs.ErrForbidden, "role may not trigger this transition")
)

type TransitionKind string

const (
	KindCreate   TransitionKind = "create"
	KindAccept   TransitionKind = "accept"
	KindReject   TransitionKind = "reject"
	KindConfirm  TransitionKind = "confirm"
	KindExpire   TransitionKind = "expire"
	KindOverride TransitionKind = "override"
)

func (k TransitionKind) String() string {
	return string(k)
}

type edge struct {
	from Status
	to   Status
}

// edges lists every regular transition. Override bypasses it.
var edges = map[edge]TransitionKind{
	{StatusSubmitted, StatusAccepted}: KindAccept,
	{StatusSubmitted, StatusRejected}: KindReject,
	{StatusAccepted, StatusRejected}:  KindReject,
	{StatusAccepted, StatusCompleted}: KindConfirm,
	{StatusSubmitted, StatusExpired}:  KindExpire,
	{StatusAccepted, StatusExpired}:   KindExpire,
}

// EdgeKind returns the kind of the regular transition from -> to, if any.
func EdgeKind(from, to Status) (TransitionKind, bool) {
	k, ok := edges[edge{from, to}]
	return k, ok
}

// TransitionRecord is the audit entry of one status change.
type TransitionRecord struct {
	ID         uuid.UUID
	ProposalID uuid.UUID
	From       Status
	To         Status
	Kind       TransitionKind
	ActorID    uuid.UUID
	ActorRole  actor.Role
	Reason     string
	OccurredAt time.Time
}

func newRecord(p *Proposal, from Status, kind TransitionKind, a actor.Context, reason string, now time.Time) TransitionRecord {
	return TransitionRecord{
		ID:         uuid.New(),
		ProposalID: p.id,
		From:       from,
		To:         p.status,
		Kind:       kind,
		ActorID:    a.ID(),
		ActorRole:  a.Role(),
		Reason:     reason,
		OccurredAt: now,
	}
}

// mayTrigger applies the actor column of the transition table.
func mayTrigger(kind TransitionKind, a actor.Context, clientID uuid.UUID) error {
	switch kind {
	case KindAccept, KindExpire, KindOverride:
		if !a.IsStaff() {
			return errs.Wrap(ErrTransitionRole, kind.String())
		}
	case KindReject:
		if a.IsStaff() {
			return nil
		}
		if !a.Owns(clientID) {
			return errs.Wrap(actor.ErrNotOwner, kind.String())
		}
	case KindConfirm:
		if !a.IsClient() {
			return errs.Wrap(ErrTransitionRole, kind.String())
		}
		if !a.Owns(clientID) {
			return errs.Wrap(actor.ErrNotOwner, kind.String())
		}
	default:
		return errs.Wrap(ErrTransitionNotAllowed, kind.String())
	}
	return nil
}
