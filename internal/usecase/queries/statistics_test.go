//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/invoice"
	"autoflow/internal/domain/money"
	"autoflow/internal/pkg/errs"
	"autoflow/internal/usecase/queries"
	"autoflow/tests/common/builder"
	queriesmock "autoflow/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockStatisticsReadStore(ctrl)
	q := queries.NewStatisticsQueries(store)
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("every status is listed in lifecycle order", func(t *testing.T) {
		store.EXPECT().Dashboard(gomock.Any(), now).Return(&queries.DashboardView{
			Proposals:         3,
			ProposalsByStatus: []queries.StatusCount{{Status: "COMPLETED", Count: 1}, {Status: "SUBMITTED", Count: 2}},
			InvoicedTotal:     money.FromInt(21500),
		}, nil).Times(1)

		view, err := q.Dashboard(context.Background(), builder.AdminActor(), now)
		require.NoError(t, err)
		assert.Equal(t, now, view.GeneratedAt)
		assert.Equal(t, []queries.StatusCount{
			{Status: "DRAFT"},
			{Status: "SUBMITTED", Count: 2},
			{Status: "ACCEPTED"},
			{Status: "REJECTED"},
			{Status: "EXPIRED"},
			{Status: "CANCELLED"},
			{Status: "COMPLETED", Count: 1},
		}, view.ProposalsByStatus)
	})

	t.Run("admin only", func(t *testing.T) {
		_, err := q.Dashboard(context.Background(), builder.StaffActor(), now)
		assert.True(t, errs.Is(err, actor.ErrOperationDenied), "got %v", err)
	})
}

func TestConfigurationQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockConfigurationReadStore(ctrl)
	q := queries.NewConfigurationQueries(store)
	client := builder.ClientActor(uuid.New())
	view := &queries.ConfigurationView{ID: uuid.New(), ClientID: client.ID(), TotalPrice: money.FromInt(21500)}

	t.Run("owner reads", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		got, err := q.Get(context.Background(), client, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("tombstoned or missing", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, notFoundErr()).Times(1)
		_, err := q.Get(context.Background(), client, view.ID)
		assert.True(t, errs.Is(err, configuration.ErrConfigurationNotFound), "got %v", err)
	})

	t.Run("client list is forced to the caller", func(t *testing.T) {
		other := uuid.New()
		store.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.ConfigurationFilters) ([]*queries.ConfigurationView, error) {
				require.NotNil(t, f.ClientID)
				assert.Equal(t, client.ID(), *f.ClientID)
				return []*queries.ConfigurationView{view}, nil
			}).Times(1)

		got, err := q.List(context.Background(), client, queries.ConfigurationFilters{ClientID: &other})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestInvoiceQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockInvoiceReadStore(ctrl)
	q := queries.NewInvoiceQueries(store)
	client := builder.ClientActor(uuid.New())
	view := &queries.InvoiceView{ID: uuid.New(), ClientID: client.ID(), Number: "AF-2025-001", Amount: money.FromInt(21500)}

	t.Run("other clients are refused", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		_, err := q.Get(context.Background(), builder.ClientActor(uuid.New()), view.ID)
		assert.True(t, errs.Is(err, actor.ErrNotOwner), "got %v", err)
	})

	t.Run("missing invoice", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, notFoundErr()).Times(1)
		_, err := q.Get(context.Background(), builder.StaffActor(), view.ID)
		assert.True(t, errs.Is(err, invoice.ErrInvoiceNotFound), "got %v", err)
	})

	t.Run("staff list all clients", func(t *testing.T) {
		store.EXPECT().List(gomock.Any(), queries.InvoiceFilters{}, gomock.Nil(), int32(11)).
			Return([]*queries.InvoiceView{view}, nil).Times(1)

		rows, next, err := q.List(context.Background(), builder.StaffActor(), queries.InvoiceFilters{}, nil, 10)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
	})
}
