//go:build unit

package queries_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/money"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/pkg/errs"
	"autoflow/internal/usecase/queries"
	"autoflow/internal/usecase/shared"
	"autoflow/tests/common/builder"
	"autoflow/tests/common/memuow"
	queriesmock "autoflow/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	vehicles  *queriesmock.MockVehicleReadStore
	optionals *queriesmock.MockOptionalReadStore
	uow       *memuow.UnitOfWork
	clock     *clock.MockClock
	queries   queries.CatalogQueries
	vehicle   *catalog.Vehicle
	nav       *catalog.Optional
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.vehicles = queriesmock.NewMockVehicleReadStore(s.mockCtrl)
	s.optionals = queriesmock.NewMockOptionalReadStore(s.mockCtrl)
	s.uow = memuow.New()
	s.clock = clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	s.queries = queries.NewCatalogQueries(s.uow, s.vehicles, s.optionals, configuration.NewDefaultPriceCalculator(), s.clock, time.Minute)

	s.vehicle = builder.NewVehicleBuilder().MustBuild()
	s.nav = builder.NewOptionalBuilder().MustBuild()
	s.uow.Seed(s.vehicle, s.nav)
}

func (s *CatalogQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) TestSnapshot() {
	s.Run("served from cache within the ttl", func() {
		first, err := s.queries.Snapshot(s.ctx)
		s.Require().NoError(err)
		s.clock.Add(30 * time.Second)
		second, err := s.queries.Snapshot(s.ctx)
		s.Require().NoError(err)
		s.Same(first, second)
	})

	s.Run("reloaded after the ttl", func() {
		first, _ := s.queries.Snapshot(s.ctx)
		s.clock.Add(2 * time.Minute)
		second, err := s.queries.Snapshot(s.ctx)
		s.Require().NoError(err)
		s.NotSame(first, second)
		s.True(s.clock.Now().Equal(second.TakenAt()))
	})

	s.Run("reloaded after invalidation", func() {
		first, _ := s.queries.Snapshot(s.ctx)

		extra := builder.NewOptionalBuilder().WithCode("TOW").MustBuild()
		s.uow.Seed(extra)
		_, ok := first.Optional(extra.ID())
		s.False(ok)

		s.queries.Invalidate()
		second, err := s.queries.Snapshot(s.ctx)
		s.Require().NoError(err)
		_, ok = second.Optional(extra.ID())
		s.True(ok)
	})

	s.Run("concurrent readers share one load", func() {
		s.queries.Invalidate()
		var wg sync.WaitGroup
		snaps := make([]*catalog.Snapshot, 16)
		for i := range snaps {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				snaps[i], _ = s.queries.Snapshot(s.ctx)
			}(i)
		}
		wg.Wait()
		for _, snap := range snaps {
			s.Require().NotNil(snap)
			_, ok := snap.Vehicle(s.vehicle.ID())
			s.True(ok)
		}
	})
}

// gatedUoW holds every read until release is closed and fails reads whose
// context is already done.
type gatedUoW struct {
	*memuow.UnitOfWork
	release chan struct{}
	reads   atomic.Int32
}

func (g *gatedUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	g.reads.Add(1)
	<-g.release
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.UnitOfWork.WithinReadOnly(ctx, fn)
}

func (s *CatalogQueriesTestSuite) TestSnapshot_CallerCancellation() {
	gate := &gatedUoW{UnitOfWork: s.uow, release: make(chan struct{})}
	q := queries.NewCatalogQueries(gate, s.vehicles, s.optionals, configuration.NewDefaultPriceCalculator(), s.clock, time.Minute)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := q.Snapshot(ctx)
	s.ErrorIs(err, context.Canceled)

	close(gate.release)
	snap, err := q.Snapshot(s.ctx)
	s.Require().NoError(err, "a cancelled caller must not fail the shared load")
	_, ok := snap.Vehicle(s.vehicle.ID())
	s.True(ok)
	s.Equal(int32(2), gate.reads.Load(), "the catalog is loaded once")
}

func (s *CatalogQueriesTestSuite) TestPreviewPricing() {
	client := builder.ClientActor(uuid.New())

	view, err := s.queries.PreviewPricing(s.ctx, client, s.vehicle.ID(), []uuid.UUID{s.nav.ID(), uuid.New(), s.nav.ID()})
	s.Require().NoError(err)
	s.Equal("20000.00", view.Base.String())
	s.Equal("21500.00", view.Total.String())
	s.Equal([]uuid.UUID{s.nav.ID()}, view.Applied)

	_, err = s.queries.PreviewPricing(s.ctx, client, uuid.New(), nil)
	s.True(errs.Is(err, catalog.ErrVehicleNotFound), "got %v", err)
}

func (s *CatalogQueriesTestSuite) TestReads() {
	staff := builder.StaffActor()

	s.Run("vehicles are staff only", func() {
		_, err := s.queries.ListVehicles(s.ctx, builder.ClientActor(uuid.New()))
		s.True(errs.Is(err, errs.ErrForbidden), "got %v", err)
	})

	s.Run("missing vehicle", func() {
		id := uuid.New()
		s.vehicles.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr()).Times(1)

		_, err := s.queries.GetVehicle(s.ctx, staff, id)
		s.True(errs.Is(err, catalog.ErrVehicleNotFound), "got %v", err)
	})

	s.Run("clients read optionals", func() {
		views := []*queries.OptionalView{{ID: s.nav.ID(), Code: "NAV", Price: money.FromInt(1500)}}
		s.optionals.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		got, err := s.queries.ListOptionals(s.ctx, builder.ClientActor(uuid.New()))
		s.Require().NoError(err)
		s.Equal(views, got)
	})
}

func (s *CatalogQueriesTestSuite) TestShowroom() {
	s.Run("rejects an inverted price range without querying", func() {
		minPrice, maxPrice := money.FromInt(30000), money.FromInt(10000)
		_, err := s.queries.SearchShowroom(s.ctx, queries.ShowroomFilters{MinPrice: &minPrice, MaxPrice: &maxPrice})
		s.True(errs.Is(err, queries.ErrInvalidPriceRange), "got %v", err)
	})

	s.Run("equal bounds are allowed", func() {
		price := money.FromInt(20000)
		filters := queries.ShowroomFilters{MinPrice: &price, MaxPrice: &price}
		s.vehicles.EXPECT().SearchShowroom(gomock.Any(), filters).Return([]*queries.VehicleView{}, nil).Times(1)

		got, err := s.queries.SearchShowroom(s.ctx, filters)
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("hidden vehicles are not found", func() {
		id := uuid.New()
		s.vehicles.EXPECT().FindShowroomByID(gomock.Any(), id).Return(nil, notFoundErr()).Times(1)

		_, err := s.queries.ShowroomVehicle(s.ctx, id)
		s.True(errs.Is(err, catalog.ErrVehicleNotFound), "got %v", err)
	})
}
