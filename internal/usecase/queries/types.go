package queries

import (
	"time"

	"autoflow/internal/domain/money"

	"github.com/google/uuid"
)

// VehicleView represents read-optimized vehicle data
type VehicleView struct {
	ID        uuid.UUID   `json:"id"`
	Brand     string      `json:"brand"`
	Model     string      `json:"model"`
	Year      int         `json:"year"`
	Plate     string      `json:"plate"`
	VIN       string      `json:"vin"`
	BasePrice money.Money `json:"base_price"`
	Mileage   int         `json:"mileage"`
	Fuel      string      `json:"fuel"`
	Gearbox   string      `json:"gearbox"`
	Colour    string      `json:"colour"`
	Status    string      `json:"status"`
	Listed    bool        `json:"listed"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OptionalView represents read-optimized optional accessory data
type OptionalView struct {
	ID          uuid.UUID   `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Money `json:"price"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ConfigurationView joins the configuration with its vehicle label and lock state
type ConfigurationView struct {
	ID           uuid.UUID   `json:"id"`
	ClientID     uuid.UUID   `json:"client_id"`
	VehicleID    uuid.UUID   `json:"vehicle_id"`
	VehicleBrand string      `json:"vehicle_brand"`
	VehicleModel string      `json:"vehicle_model"`
	OptionalIDs  []uuid.UUID `json:"optional_ids"`
	BasePrice    money.Money `json:"base_price"`
	TotalPrice   money.Money `json:"total_price"`
	Note         string      `json:"note"`
	Locked       bool        `json:"locked"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ProposalView represents read-optimized proposal data. InternalNotes is
// blanked for client actors.
type ProposalView struct {
	ID              uuid.UUID   `json:"id"`
	ClientID        uuid.UUID   `json:"client_id"`
	StaffID         *uuid.UUID  `json:"staff_id,omitempty"`
	ConfigurationID uuid.UUID   `json:"configuration_id"`
	VehicleID       uuid.UUID   `json:"vehicle_id"`
	VehicleBrand    string      `json:"vehicle_brand"`
	VehicleModel    string      `json:"vehicle_model"`
	Price           money.Money `json:"price"`
	Status          string      `json:"status"`
	CreatedOn       time.Time   `json:"created_on"`
	ExpiresOn       *time.Time  `json:"expires_on,omitempty"`
	ClientNotes     string      `json:"client_notes"`
	InternalNotes   string      `json:"internal_notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// TransitionView is one entry of a proposal's audit trail
type TransitionView struct {
	ID         uuid.UUID `json:"id"`
	ProposalID uuid.UUID `json:"proposal_id"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	Kind       string    `json:"kind"`
	ActorID    uuid.UUID `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// InvoiceView represents read-optimized invoice data
type InvoiceView struct {
	ID         uuid.UUID   `json:"id"`
	ProposalID uuid.UUID   `json:"proposal_id"`
	ClientID   uuid.UUID   `json:"client_id"`
	Number     string      `json:"number"`
	IssuedOn   time.Time   `json:"issued_on"`
	Amount     money.Money `json:"amount"`
	PaidOn     *time.Time  `json:"paid_on,omitempty"`
	Notes      string      `json:"notes"`
	CreatedAt  time.Time   `json:"created_at"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardView aggregates the counters shown on the admin dashboard
type DashboardView struct {
	Vehicles          int           `json:"vehicles"`
	Proposals         int           `json:"proposals"`
	Invoices          int           `json:"invoices"`
	UnpaidInvoices    int           `json:"unpaid_invoices"`
	ProposalsByStatus []StatusCount `json:"proposals_by_status"`
	InvoicedTotal     money.Money   `json:"invoiced_total"`
	InvoicedThisYear  money.Money   `json:"invoiced_this_year"`
	InvoicedThisMonth money.Money   `json:"invoiced_this_month"`
	GeneratedAt       time.Time     `json:"generated_at"`
}

type ShowroomFilters struct {
	Brand    string
	Model    string
	MinPrice *money.Money
	MaxPrice *money.Money
}

type ConfigurationFilters struct {
	ClientID *uuid.UUID
}

type ProposalFilters struct {
	ClientID *uuid.UUID
	StaffID  *uuid.UUID
	Status   *string
}

type InvoiceFilters struct {
	ClientID *uuid.UUID
}
