package response

import (
	"time"

	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConfigurationResponse struct {
	ID           uuid.UUID   `json:"id"`
	ClientID     uuid.UUID   `json:"client_id"`
	VehicleID    uuid.UUID   `json:"vehicle_id"`
	VehicleBrand string      `json:"vehicle_brand"`
	VehicleModel string      `json:"vehicle_model"`
	OptionalIDs  []uuid.UUID `json:"optional_ids"`
	BasePrice    string      `json:"base_price"`
	TotalPrice   string      `json:"total_price"`
	Note         string      `json:"note"`
	Locked       bool        `json:"locked"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type ProposalResponse struct {
	ID              uuid.UUID  `json:"id"`
	ClientID        uuid.UUID  `json:"client_id"`
	StaffID         *uuid.UUID `json:"staff_id,omitempty"`
	ConfigurationID uuid.UUID  `json:"configuration_id"`
	VehicleID       uuid.UUID  `json:"vehicle_id"`
	VehicleBrand    string     `json:"vehicle_brand"`
	VehicleModel    string     `json:"vehicle_model"`
	Price           string     `json:"price"`
	Status          string     `json:"status"`
	CreatedOn       time.Time  `json:"created_on"`
	ExpiresOn       *time.Time `json:"expires_on,omitempty"`
	ClientNotes     string     `json:"client_notes"`
	InternalNotes   string     `json:"internal_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type TransitionResponse struct {
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	Kind       string    `json:"kind"`
	ActorID    uuid.UUID `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type InvoiceResponse struct {
	ID         uuid.UUID  `json:"id"`
	ProposalID uuid.UUID  `json:"proposal_id"`
	ClientID   uuid.UUID  `json:"client_id"`
	Number     string     `json:"number"`
	IssuedOn   time.Time  `json:"issued_on"`
	Amount     string     `json:"amount"`
	PaidOn     *time.Time `json:"paid_on,omitempty"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardResponse struct {
	Vehicles          int                   `json:"vehicles"`
	Proposals         int                   `json:"proposals"`
	Invoices          int                   `json:"invoices"`
	UnpaidInvoices    int                   `json:"unpaid_invoices"`
	ProposalsByStatus []StatusCountResponse `json:"proposals_by_status"`
	InvoicedTotal     string                `json:"invoiced_total"`
	InvoicedThisYear  string                `json:"invoiced_this_year"`
	InvoicedThisMonth string                `json:"invoiced_this_month"`
	GeneratedAt       time.Time             `json:"generated_at"`
}

func FromConfigurationView(v *queries.ConfigurationView) (*ConfigurationResponse, error) {
	return from[ConfigurationResponse](v)
}

func FromConfigurationViews(vs []*queries.ConfigurationView) ([]*ConfigurationResponse, error) {
	return fromList[ConfigurationResponse](vs)
}

func FromProposalView(v *queries.ProposalView) (*ProposalResponse, error) {
	return from[ProposalResponse](v)
}

func FromProposalPage(vs []*queries.ProposalView, next *queries.Cursor) (*PageResponse[ProposalResponse], error) {
	items, err := fromList[ProposalResponse](vs)
	if err != nil {
		return nil, err
	}
	return newPage(items, next), nil
}

func FromTransitionViews(vs []*queries.TransitionView) ([]*TransitionResponse, error) {
	return fromList[TransitionResponse](vs)
}

func FromInvoiceView(v *queries.InvoiceView) (*InvoiceResponse, error) {
	return from[InvoiceResponse](v)
}

func FromInvoicePage(vs []*queries.InvoiceView, next *queries.Cursor) (*PageResponse[InvoiceResponse], error) {
	items, err := fromList[InvoiceResponse](vs)
	if err != nil {
		return nil, err
	}
	return newPage(items, next), nil
}

func FromDashboardView(v *queries.DashboardView) (*DashboardResponse, error) {
	return from[DashboardResponse](v)
}

func newPage[T any](items []*T, next *queries.Cursor) *PageResponse[T] {
	page := &PageResponse[T]{Items: items}
	if next != nil {
		page.NextCursor = next.After
	}
	return page
}
