//go:build unit || e2e

package builder

import (
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/money"
	"autoflow/internal/domain/proposal"
	reqdto "autoflow/internal/handler/dto/request"
	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProposalBuilder struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	StaffID         *uuid.UUID
	ConfigurationID uuid.UUID
	Price           string
	Status          proposal.Status
	CreatedOn       time.Time
	ExpiresOn       *time.Time
	ClientNotes     string
	InternalNotes   string
}

func NewProposalBuilder() *ProposalBuilder {
	staffID := uuid.New()
	return &ProposalBuilder{
		ID:              uuid.New(),
		ClientID:        uuid.New(),
		StaffID:         &staffID,
		ConfigurationID: uuid.New(),
		Price:           "21500",
		Status:          proposal.StatusSubmitted,
		CreatedOn:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ClientNotes:     "Can you deliver before April?",
		InternalNotes:   "Customer is price sensitive",
	}
}

func (b *ProposalBuilder) With(mutate func(*ProposalBuilder)) *ProposalBuilder {
	mutate(b)
	return b
}

// BuildDomain reconstructs a proposal in any status without going through the state machine.
func (b *ProposalBuilder) BuildDomain() *proposal.Proposal {
	return proposal.Reconstruct(
		b.ID,
		b.ClientID,
		b.StaffID,
		b.ConfigurationID,
		money.MustParse(b.Price),
		b.Status,
		b.CreatedOn,
		b.ExpiresOn,
		b.ClientNotes,
		b.InternalNotes,
		b.CreatedOn,
		b.CreatedOn,
	)
}

func (b *ProposalBuilder) ForConfiguration(c *configuration.Configuration) *ProposalBuilder {
	b.ConfigurationID = c.ID()
	b.ClientID = c.ClientID()
	b.Price = c.TotalPrice().String()
	return b
}

func (b *ProposalBuilder) WithStatus(status proposal.Status) *ProposalBuilder {
	b.Status = status
	return b
}

func (b *ProposalBuilder) WithClientID(id uuid.UUID) *ProposalBuilder {
	b.ClientID = id
	return b
}

func (b *ProposalBuilder) WithExpiresOn(t time.Time) *ProposalBuilder {
	b.ExpiresOn = &t
	return b
}

func (b *ProposalBuilder) WithPrice(price string) *ProposalBuilder {
	b.Price = price
	return b
}

func (b *ProposalBuilder) BuildView() *queries.ProposalView {
	return &queries.ProposalView{
		ID:              b.ID,
		ClientID:        b.ClientID,
		StaffID:         b.StaffID,
		ConfigurationID: b.ConfigurationID,
		VehicleID:       uuid.New(),
		VehicleBrand:    "Fiat",
		VehicleModel:    "Panda",
		Price:           money.MustParse(b.Price),
		Status:          b.Status.String(),
		CreatedOn:       b.CreatedOn,
		ExpiresOn:       b.ExpiresOn,
		ClientNotes:     b.ClientNotes,
		InternalNotes:   b.InternalNotes,
		CreatedAt:       b.CreatedOn,
		UpdatedAt:       b.CreatedOn,
	}
}

func (b *ProposalBuilder) BuildCreateRequestDTO() reqdto.CreateProposalRequest {
	return reqdto.CreateProposalRequest{
		ConfigurationID: b.ConfigurationID,
		ClientNotes:     b.ClientNotes,
	}
}

// Actors used across tests.
func ClientActor(id uuid.UUID) actor.Context {
	return mustActor(id, actor.RoleClient)
}

func StaffActor() actor.Context {
	return mustActor(uuid.New(), actor.RoleSalesStaff)
}

func AdminActor() actor.Context {
	return mustActor(uuid.New(), actor.RoleAdmin)
}

func mustActor(id uuid.UUID, role actor.Role) actor.Context {
	a, err := actor.New(id, role)
	if err != nil {
		panic(err)
	}
	return a
}
