package shared

import (
	"context"
	"time"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/invoice"
	"autoflow/internal/domain/proposal"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: READ COMMITTED transaction for write operations, never retried
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction, retried at most once on retryable errors
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Vehicles() VehicleRepository
	Optionals() OptionalRepository
	Configurations() ConfigurationRepository
	Proposals() ProposalRepository
	Invoices() InvoiceRepository
}

type VehicleRepository interface {
	Create(ctx context.Context, v *catalog.Vehicle) error
	Update(ctx context.Context, v *catalog.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Vehicle, error)
	// GetForUpdate locks the row until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Vehicle, error)
	List(ctx context.Context) ([]*catalog.Vehicle, error)
}

type OptionalRepository interface {
	Create(ctx context.Context, o *catalog.Optional) error
	Update(ctx context.Context, o *catalog.Optional) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Optional, error)
	// FindByIDs silently skips IDs that no longer exist.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Optional, error)
	List(ctx context.Context) ([]*catalog.Optional, error)
}

type ConfigurationRepository interface {
	Create(ctx context.Context, c *configuration.Configuration) error
	Update(ctx context.Context, c *configuration.Configuration) error
	// FindByID and GetForUpdate also return tombstoned rows.
	FindByID(ctx context.Context, id uuid.UUID) (*configuration.Configuration, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*configuration.Configuration, error)
}

type ProposalRepository interface {
	Create(ctx context.Context, p *proposal.Proposal) error
	Update(ctx context.Context, p *proposal.Proposal) error
	FindByID(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error)
	ExistsForConfiguration(ctx context.Context, configurationID uuid.UUID) (bool, error)
	// ListOverdueForUpdate locks open proposals whose expiry date is before today.
	ListOverdueForUpdate(ctx context.Context, today time.Time) ([]*proposal.Proposal, error)
	RecordTransition(ctx context.Context, rec proposal.TransitionRecord) error
}

type InvoiceRepository interface {
	// NextNumber atomically reserves the next sequence of the year.
	NextNumber(ctx context.Context, year int) (invoice.Number, error)
	Create(ctx context.Context, inv *invoice.Invoice) error
	ExistsForProposal(ctx context.Context, proposalID uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
}
