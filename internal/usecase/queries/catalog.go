package queries

import (
	"context"
	"sync"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/money"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/pkg/errs"
	"autoflow/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var ErrInvalidPriceRange = errs.NewKind(errs.ErrValidation, "minimum price exceeds maximum price")

type PricingView struct {
	VehicleID uuid.UUID   `json:"vehicle_id"`
	Base      money.Money `json:"base_price"`
	Total     money.Money `json:"total_price"`
	Applied   []uuid.UUID `json:"applied_optional_ids"`
	PricedAt  time.Time   `json:"priced_at"`
}

type VehicleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	List(ctx context.Context) ([]*VehicleView, error)
	// SearchShowroom only returns listed AVAILABLE vehicles.
	SearchShowroom(ctx context.Context, filters ShowroomFilters) ([]*VehicleView, error)
	FindShowroomByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
}

type OptionalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OptionalView, error)
	List(ctx context.Context) ([]*OptionalView, error)
}

type CatalogQueries interface {
	// Snapshot returns the cached catalog, reloading it once the TTL passed.
	Snapshot(ctx context.Context) (*catalog.Snapshot, error)
	Invalidate()
	PreviewPricing(ctx context.Context, a actor.Context, vehicleID uuid.UUID, optionalIDs []uuid.UUID) (*PricingView, error)
	GetVehicle(ctx context.Context, a actor.Context, id uuid.UUID) (*VehicleView, error)
	ListVehicles(ctx context.Context, a actor.Context) ([]*VehicleView, error)
	GetOptional(ctx context.Context, a actor.Context, id uuid.UUID) (*OptionalView, error)
	ListOptionals(ctx context.Context, a actor.Context) ([]*OptionalView, error)
	SearchShowroom(ctx context.Context, filters ShowroomFilters) ([]*VehicleView, error)
	ShowroomVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error)
}

type catalogQueriesImpl struct {
	uow       shared.UnitOfWork
	vehicles  VehicleReadStore
	optionals OptionalReadStore
	calc      configuration.PriceCalculator
	clock     clock.Clock
	ttl       time.Duration

	loads      singleflight.Group
	mu         sync.Mutex
	snapshot   *catalog.Snapshot
	generation uint64
}

func NewCatalogQueries(
	uow shared.UnitOfWork,
	vehicles VehicleReadStore,
	optionals OptionalReadStore,
	calc configuration.PriceCalculator,
	clk clock.Clock,
	ttl time.Duration,
) CatalogQueries {
	return &catalogQueriesImpl{
		uow:       uow,
		vehicles:  vehicles,
		optionals: optionals,
		calc:      calc,
		clock:     clk,
		ttl:       ttl,
	}
}

func (q *catalogQueriesImpl) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	q.mu.Lock()
	if s := q.snapshot; s != nil && q.clock.Now().Sub(s.TakenAt()) < q.ttl {
		q.mu.Unlock()
		return s, nil
	}
	q.mu.Unlock()

	// The shared load outlives any single caller; each unit of work is still
	// bounded by the query timeout.
	loadCtx := context.WithoutCancel(ctx)
	ch := q.loads.DoChan("snapshot", func() (any, error) {
		return q.loadAndStore(loadCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*catalog.Snapshot), nil
	}
}

func (q *catalogQueriesImpl) loadAndStore(ctx context.Context) (*catalog.Snapshot, error) {
	q.mu.Lock()
	generation := q.generation
	q.mu.Unlock()

	snap, err := q.load(ctx)
	if err != nil {
		return nil, err
	}

	q.mu.Lock()
	// a mutation during the load makes this snapshot stale already
	if generation == q.generation {
		q.snapshot = snap
	}
	q.mu.Unlock()
	return snap, nil
}

// load reads vehicles and optionals in two concurrent read-only units; a
// single pgx transaction cannot serve both at once.
func (q *catalogQueriesImpl) load(ctx context.Context) (*catalog.Snapshot, error) {
	var (
		vehicles  []*catalog.Vehicle
		optionals []*catalog.Optional
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return q.uow.WithinReadOnly(gctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			vehicles, err = tx.Vehicles().List(ctx)
			return err
		})
	})
	g.Go(func() error {
		return q.uow.WithinReadOnly(gctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			optionals, err = tx.Optionals().List(ctx)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, errs.Wrap(err, "failed to load catalog snapshot")
	}
	return catalog.NewSnapshot(vehicles, optionals, q.clock.Now()), nil
}

func (q *catalogQueriesImpl) Invalidate() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.snapshot = nil
	q.generation++
}

func (q *catalogQueriesImpl) PreviewPricing(ctx context.Context, a actor.Context, vehicleID uuid.UUID, optionalIDs []uuid.UUID) (*PricingView, error) {
	if err := actor.Authorize(a, actor.OpPricingPreview); err != nil {
		return nil, err
	}
	snap, err := q.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	vehicle, ok := snap.Vehicle(vehicleID)
	if !ok {
		return nil, catalog.ErrVehicleNotFound
	}

	pricing := q.calc.Compute(vehicle, snap, optionalIDs)
	return &PricingView{
		VehicleID: vehicle.ID(),
		Base:      pricing.Base,
		Total:     pricing.Total,
		Applied:   pricing.Applied,
		PricedAt:  snap.TakenAt(),
	}, nil
}

func (q *catalogQueriesImpl) GetVehicle(ctx context.Context, a actor.Context, id uuid.UUID) (*VehicleView, error) {
	if err := actor.Authorize(a, actor.OpCatalogRead); err != nil {
		return nil, err
	}
	v, err := q.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
	}
	return v, nil
}

func (q *catalogQueriesImpl) ListVehicles(ctx context.Context, a actor.Context) ([]*VehicleView, error) {
	if err := actor.Authorize(a, actor.OpCatalogRead); err != nil {
		return nil, err
	}
	return q.vehicles.List(ctx)
}

// Optionals are readable by every signed-in actor; clients need them to configure.
func (q *catalogQueriesImpl) GetOptional(ctx context.Context, a actor.Context, id uuid.UUID) (*OptionalView, error) {
	if err := actor.Authorize(a, actor.OpPricingPreview); err != nil {
		return nil, err
	}
	o, err := q.optionals.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, catalog.ErrOptionalNotFound)
	}
	return o, nil
}

func (q *catalogQueriesImpl) ListOptionals(ctx context.Context, a actor.Context) ([]*OptionalView, error) {
	if err := actor.Authorize(a, actor.OpPricingPreview); err != nil {
		return nil, err
	}
	return q.optionals.List(ctx)
}

func (q *catalogQueriesImpl) SearchShowroom(ctx context.Context, filters ShowroomFilters) ([]*VehicleView, error) {
	if filters.MinPrice != nil && filters.MaxPrice != nil &&
		filters.MinPrice.Decimal().GreaterThan(filters.MaxPrice.Decimal()) {
		return nil, ErrInvalidPriceRange
	}
	return q.vehicles.SearchShowroom(ctx, filters)
}

func (q *catalogQueriesImpl) ShowroomVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	v, err := q.vehicles.FindShowroomByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
	}
	return v, nil
}
