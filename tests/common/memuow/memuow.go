//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for usecase tests.
// Transactions are serialized by one mutex and see a private copy of the
// state, which is published only when fn returns nil.
package memuow

import (
	"context"
	"sort"
	"sync"
	"time"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/invoice"
	"autoflow/internal/domain/proposal"
	"autoflow/internal/infra"
	"autoflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type state struct {
	vehicles       map[uuid.UUID]catalog.Vehicle
	optionals      map[uuid.UUID]catalog.Optional
	configurations map[uuid.UUID]configuration.Configuration
	proposals      map[uuid.UUID]proposal.Proposal
	transitions    []proposal.TransitionRecord
	invoices       map[uuid.UUID]invoice.Invoice
	counters       map[int]int
}

func newState() *state {
	return &state{
		vehicles:       map[uuid.UUID]catalog.Vehicle{},
		optionals:      map[uuid.UUID]catalog.Optional{},
		configurations: map[uuid.UUID]configuration.Configuration{},
		proposals:      map[uuid.UUID]proposal.Proposal{},
		invoices:       map[uuid.UUID]invoice.Invoice{},
		counters:       map[int]int{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.vehicles {
		c.vehicles[k] = v
	}
	for k, v := range s.optionals {
		c.optionals[k] = v
	}
	for k, v := range s.configurations {
		c.configurations[k] = v
	}
	for k, v := range s.proposals {
		c.proposals[k] = v
	}
	c.transitions = append(c.transitions, s.transitions...)
	for k, v := range s.invoices {
		c.invoices[k] = v
	}
	for k, v := range s.counters {
		c.counters[k] = v
	}
	return c
}

type UnitOfWork struct {
	mu      sync.Mutex
	state   *state
	commits int
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

func New() *UnitOfWork {
	return &UnitOfWork{state: newState()}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	working := u.state.clone()
	if err := fn(ctx, &tx{s: working}); err != nil {
		return err
	}
	u.state = working
	u.commits++
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, &tx{s: u.state.clone()})
}

// Commits counts successful write transactions.
func (u *UnitOfWork) Commits() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.commits
}

// Seed stores entities outside of any usecase.
func (u *UnitOfWork) Seed(entities ...any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, e := range entities {
		switch v := e.(type) {
		case *catalog.Vehicle:
			u.state.vehicles[v.ID()] = *v
		case *catalog.Optional:
			u.state.optionals[v.ID()] = *v
		case *configuration.Configuration:
			u.state.configurations[v.ID()] = *v
		case *proposal.Proposal:
			u.state.proposals[v.ID()] = *v
		case *invoice.Invoice:
			u.state.invoices[v.ID()] = *v
		default:
			panic("memuow: cannot seed value of this type")
		}
	}
}

func (u *UnitOfWork) Vehicle(id uuid.UUID) (*catalog.Vehicle, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	v, ok := u.state.vehicles[id]
	return &v, ok
}

func (u *UnitOfWork) Configuration(id uuid.UUID) (*configuration.Configuration, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.state.configurations[id]
	return &c, ok
}

func (u *UnitOfWork) Proposal(id uuid.UUID) (*proposal.Proposal, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.state.proposals[id]
	return &p, ok
}

// Transitions returns the history of one proposal in insertion order.
func (u *UnitOfWork) Transitions(proposalID uuid.UUID) []proposal.TransitionRecord {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []proposal.TransitionRecord
	for _, rec := range u.state.transitions {
		if rec.ProposalID == proposalID {
			out = append(out, rec)
		}
	}
	return out
}

func (u *UnitOfWork) Invoices() []*invoice.Invoice {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*invoice.Invoice, 0, len(u.state.invoices))
	for _, inv := range u.state.invoices {
		out = append(out, &inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number().Sequence() < out[j].Number().Sequence() })
	return out
}

type tx struct {
	s *state
}

func (t *tx) Vehicles() shared.VehicleRepository             { return vehicleRepo{t.s} }
func (t *tx) Optionals() shared.OptionalRepository           { return optionalRepo{t.s} }
func (t *tx) Configurations() shared.ConfigurationRepository { return configurationRepo{t.s} }
func (t *tx) Proposals() shared.ProposalRepository           { return proposalRepo{t.s} }
func (t *tx) Invoices() shared.InvoiceRepository             { return invoiceRepo{t.s} }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

func duplicate(constraint string) error {
	return infra.WrapRepoErr("duplicate key", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

type vehicleRepo struct{ s *state }

func (r vehicleRepo) checkUnique(v *catalog.Vehicle) error {
	for id, other := range r.s.vehicles {
		if id == v.ID() {
			continue
		}
		if other.Plate() == v.Plate() {
			return duplicate("vehicles_plate_key")
		}
		if other.VIN() == v.VIN() {
			return duplicate("vehicles_vin_key")
		}
	}
	return nil
}

func (r vehicleRepo) Create(_ context.Context, v *catalog.Vehicle) error {
	if err := r.checkUnique(v); err != nil {
		return err
	}
	r.s.vehicles[v.ID()] = *v
	return nil
}

func (r vehicleRepo) Update(_ context.Context, v *catalog.Vehicle) error {
	if _, ok := r.s.vehicles[v.ID()]; !ok {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	if err := r.checkUnique(v); err != nil {
		return err
	}
	r.s.vehicles[v.ID()] = *v
	return nil
}

func (r vehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Vehicle, error) {
	v, ok := r.s.vehicles[id]
	if !ok {
		return nil, notFound("failed to find vehicle")
	}
	return &v, nil
}

func (r vehicleRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Vehicle, error) {
	return r.FindByID(ctx, id)
}

func (r vehicleRepo) List(_ context.Context) ([]*catalog.Vehicle, error) {
	out := make([]*catalog.Vehicle, 0, len(r.s.vehicles))
	for _, v := range r.s.vehicles {
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}

type optionalRepo struct{ s *state }

func (r optionalRepo) checkUnique(o *catalog.Optional) error {
	for id, other := range r.s.optionals {
		if id != o.ID() && other.Code() == o.Code() {
			return duplicate("optionals_code_key")
		}
	}
	return nil
}

func (r optionalRepo) Create(_ context.Context, o *catalog.Optional) error {
	if err := r.checkUnique(o); err != nil {
		return err
	}
	r.s.optionals[o.ID()] = *o
	return nil
}

func (r optionalRepo) Update(_ context.Context, o *catalog.Optional) error {
	if _, ok := r.s.optionals[o.ID()]; !ok {
		return infra.WrapRepoErr("optional not found", nil, infra.KindNotFound)
	}
	if err := r.checkUnique(o); err != nil {
		return err
	}
	r.s.optionals[o.ID()] = *o
	return nil
}

func (r optionalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.optionals[id]; !ok {
		return infra.WrapRepoErr("optional not found", nil, infra.KindNotFound)
	}
	delete(r.s.optionals, id)
	return nil
}

func (r optionalRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Optional, error) {
	o, ok := r.s.optionals[id]
	if !ok {
		return nil, notFound("failed to find optional")
	}
	return &o, nil
}

func (r optionalRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*catalog.Optional, error) {
	var out []*catalog.Optional
	for _, id := range ids {
		if o, ok := r.s.optionals[id]; ok {
			out = append(out, &o)
		}
	}
	return out, nil
}

func (r optionalRepo) List(_ context.Context) ([]*catalog.Optional, error) {
	out := make([]*catalog.Optional, 0, len(r.s.optionals))
	for _, o := range r.s.optionals {
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out, nil
}

type configurationRepo struct{ s *state }

func (r configurationRepo) Create(_ context.Context, c *configuration.Configuration) error {
	if _, ok := r.s.vehicles[c.VehicleID()]; !ok {
		return infra.WrapRepoErr("vehicle missing", &pgconn.PgError{Code: "23503", ConstraintName: "configurations_vehicle_id_fkey"})
	}
	r.s.configurations[c.ID()] = *c
	return nil
}

func (r configurationRepo) Update(_ context.Context, c *configuration.Configuration) error {
	if _, ok := r.s.configurations[c.ID()]; !ok {
		return infra.WrapRepoErr("configuration not found", nil, infra.KindNotFound)
	}
	r.s.configurations[c.ID()] = *c
	return nil
}

func (r configurationRepo) FindByID(_ context.Context, id uuid.UUID) (*configuration.Configuration, error) {
	c, ok := r.s.configurations[id]
	if !ok {
		return nil, notFound("failed to find configuration")
	}
	return &c, nil
}

func (r configurationRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*configuration.Configuration, error) {
	return r.FindByID(ctx, id)
}

type proposalRepo struct{ s *state }

func (r proposalRepo) Create(_ context.Context, p *proposal.Proposal) error {
	for _, other := range r.s.proposals {
		if other.ConfigurationID() == p.ConfigurationID() {
			return duplicate("proposals_configuration_id_key")
		}
	}
	r.s.proposals[p.ID()] = *p
	return nil
}

func (r proposalRepo) Update(_ context.Context, p *proposal.Proposal) error {
	if _, ok := r.s.proposals[p.ID()]; !ok {
		return infra.WrapRepoErr("proposal not found", nil, infra.KindNotFound)
	}
	r.s.proposals[p.ID()] = *p
	return nil
}

func (r proposalRepo) FindByID(_ context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	p, ok := r.s.proposals[id]
	if !ok {
		return nil, notFound("failed to find proposal")
	}
	return &p, nil
}

func (r proposalRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	return r.FindByID(ctx, id)
}

func (r proposalRepo) ExistsForConfiguration(_ context.Context, configurationID uuid.UUID) (bool, error) {
	for _, p := range r.s.proposals {
		if p.ConfigurationID() == configurationID {
			return true, nil
		}
	}
	return false, nil
}

func (r proposalRepo) ListOverdueForUpdate(_ context.Context, today time.Time) ([]*proposal.Proposal, error) {
	var out []*proposal.Proposal
	for _, p := range r.s.proposals {
		open := p.Status() == proposal.StatusSubmitted || p.Status() == proposal.StatusAccepted
		if open && p.IsOverdue(today) {
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresOn().Before(*out[j].ExpiresOn()) })
	return out, nil
}

func (r proposalRepo) RecordTransition(_ context.Context, rec proposal.TransitionRecord) error {
	r.s.transitions = append(r.s.transitions, rec)
	return nil
}

type invoiceRepo struct{ s *state }

func (r invoiceRepo) NextNumber(_ context.Context, year int) (invoice.Number, error) {
	r.s.counters[year]++
	return invoice.NewNumber(year, r.s.counters[year])
}

func (r invoiceRepo) Create(_ context.Context, inv *invoice.Invoice) error {
	for _, other := range r.s.invoices {
		if other.ProposalID() == inv.ProposalID() {
			return duplicate("invoices_proposal_id_key")
		}
		if other.Number() == inv.Number() {
			return duplicate("invoices_number_key")
		}
	}
	r.s.invoices[inv.ID()] = *inv
	return nil
}

func (r invoiceRepo) ExistsForProposal(_ context.Context, proposalID uuid.UUID) (bool, error) {
	for _, inv := range r.s.invoices {
		if inv.ProposalID() == proposalID {
			return true, nil
		}
	}
	return false, nil
}

func (r invoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, notFound("failed to find invoice")
	}
	return &inv, nil
}
