package queries

import (
	"context"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/proposal"
)

type StatisticsReadStore interface {
	// Dashboard aggregates counters; month and year bounds are derived from now.
	Dashboard(ctx context.Context, now time.Time) (*DashboardView, error)
}

type StatisticsQueries interface {
	Dashboard(ctx context.Context, a actor.Context, now time.Time) (*DashboardView, error)
}

type statisticsQueriesImpl struct {
	store StatisticsReadStore
}

func NewStatisticsQueries(store StatisticsReadStore) StatisticsQueries {
	return &statisticsQueriesImpl{store: store}
}

func (q *statisticsQueriesImpl) Dashboard(ctx context.Context, a actor.Context, now time.Time) (*DashboardView, error) {
	if err := actor.Authorize(a, actor.OpStatisticsRead); err != nil {
		return nil, err
	}
	view, err := q.store.Dashboard(ctx, now)
	if err != nil {
		return nil, err
	}
	view.ProposalsByStatus = fillStatuses(view.ProposalsByStatus)
	view.GeneratedAt = now
	return view, nil
}

// fillStatuses lists every status in lifecycle order, zero when absent.
func fillStatuses(counts []StatusCount) []StatusCount {
	byStatus := make(map[string]int, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	out := make([]StatusCount, 0, len(proposal.AllStatuses))
	for _, s := range proposal.AllStatuses {
		out = append(out, StatusCount{Status: s.String(), Count: byStatus[s.String()]})
	}
	return out
}
