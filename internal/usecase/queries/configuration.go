package queries

import (
	"context"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/pkg/ptr"
	"autoflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConfigurationReadStore interface {
	// FindByID skips tombstoned configurations.
	FindByID(ctx context.Context, id uuid.UUID) (*ConfigurationView, error)
	List(ctx context.Context, filters ConfigurationFilters) ([]*ConfigurationView, error)
}

type ConfigurationQueries interface {
	Get(ctx context.Context, a actor.Context, id uuid.UUID) (*ConfigurationView, error)
	List(ctx context.Context, a actor.Context, filters ConfigurationFilters) ([]*ConfigurationView, error)
}

type configurationQueriesImpl struct {
	store ConfigurationReadStore
}

func NewConfigurationQueries(store ConfigurationReadStore) ConfigurationQueries {
	return &configurationQueriesImpl{store: store}
}

func (q *configurationQueriesImpl) Get(ctx context.Context, a actor.Context, id uuid.UUID) (*ConfigurationView, error) {
	if err := actor.Authorize(a, actor.OpConfigurationRead); err != nil {
		return nil, err
	}
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, configuration.ErrConfigurationNotFound)
	}
	if err := actor.AuthorizeFor(a, actor.OpConfigurationRead, view.ClientID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *configurationQueriesImpl) List(ctx context.Context, a actor.Context, filters ConfigurationFilters) ([]*ConfigurationView, error) {
	if err := actor.Authorize(a, actor.OpConfigurationRead); err != nil {
		return nil, err
	}
	if a.IsClient() {
		filters.ClientID = ptr.Of(a.ID())
	}
	return q.store.List(ctx, filters)
}
