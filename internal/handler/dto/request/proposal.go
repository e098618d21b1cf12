package request

import (
	"autoflow/internal/domain/proposal"
	"autoflow/internal/pkg/ptr"
	"autoflow/internal/usecase/commands"
	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type TermsRequest struct {
	Price         *string `json:"price,omitempty" binding:"omitempty,money"`
	ExpiresOn     *string `json:"expires_on,omitempty" binding:"omitempty,datetime=2006-01-02"`
	InternalNotes *string `json:"internal_notes,omitempty" binding:"omitempty,max=2000"`
}

func (r TermsRequest) ToTerms() (proposal.Terms, error) {
	price, err := parseMoneyPtr(r.Price)
	if err != nil {
		return proposal.Terms{}, err
	}
	expiresOn, err := parseDatePtr(r.ExpiresOn)
	if err != nil {
		return proposal.Terms{}, err
	}
	return proposal.Terms{
		Price:         price,
		ExpiresOn:     expiresOn,
		InternalNotes: r.InternalNotes,
	}, nil
}

type CreateProposalRequest struct {
	ConfigurationID uuid.UUID `json:"configuration_id" binding:"required"`
	ClientNotes     string    `json:"client_notes" binding:"max=2000"`
	TermsRequest
}

func (r CreateProposalRequest) ToInput() (commands.CreateProposalInput, error) {
	terms, err := r.ToTerms()
	if err != nil {
		return commands.CreateProposalInput{}, err
	}
	return commands.CreateProposalInput{
		ConfigurationID: r.ConfigurationID,
		ClientNotes:     r.ClientNotes,
		Terms:           terms,
	}, nil
}

type RejectProposalRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type OverrideProposalRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"required,max=500"`
}

type ProposalListQuery struct {
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
	StaffID  string `form:"staff_id" binding:"omitempty,uuid"`
	Status   string `form:"status"`
	PageQuery
}

func (q ProposalListQuery) ToFilters() queries.ProposalFilters {
	f := queries.ProposalFilters{
		ClientID: parseUUIDPtr(q.ClientID),
		StaffID:  parseUUIDPtr(q.StaffID),
	}
	if q.Status != "" {
		f.Status = ptr.Of(q.Status)
	}
	return f
}
