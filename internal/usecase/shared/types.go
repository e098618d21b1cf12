package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event topics published after a successful commit.
const (
	TopicProposalCreated       = "proposal.created"
	TopicProposalStatusChanged = "proposal.status_changed"
	TopicInvoiceIssued         = "invoice.issued"
)

type ProposalEvent struct {
	ProposalID      uuid.UUID `json:"proposal_id"`
	ConfigurationID uuid.UUID `json:"configuration_id"`
	ClientID        uuid.UUID `json:"client_id"`
	From            string    `json:"from,omitempty"`
	To              string    `json:"to"`
	Kind            string    `json:"kind"`
	ActorID         uuid.UUID `json:"actor_id"`
	ActorRole       string    `json:"actor_role"`
	VehicleEffect   string    `json:"vehicle_effect"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type InvoiceEvent struct {
	InvoiceID  uuid.UUID `json:"invoice_id"`
	ProposalID uuid.UUID `json:"proposal_id"`
	ClientID   uuid.UUID `json:"client_id"`
	Number     string    `json:"number"`
	Amount     string    `json:"amount"`
	IssuedOn   string    `json:"issued_on"`
}

// EventPublisher delivers lifecycle events. Delivery is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// CatalogCache is notified when catalog data changes.
type CatalogCache interface {
	Invalidate()
}
