package commands

import (
	"context"
	"log/slog"

	"autoflow/internal/domain/proposal"
	"autoflow/internal/usecase/shared"
)

// publish runs after commit. A failed delivery is logged and never retried:
// the state change already happened.
func publish(ctx context.Context, pub shared.EventPublisher, topic string, payloads ...any) {
	if pub == nil {
		return
	}
	for _, payload := range payloads {
		if err := pub.Publish(ctx, topic, payload); err != nil {
			slog.WarnContext(ctx, "failed to publish event", "topic", topic, "error", err.Error())
		}
	}
}

func proposalEvent(p *proposal.Proposal, rec proposal.TransitionRecord, effect proposal.VehicleEffect) shared.ProposalEvent {
	return shared.ProposalEvent{
		ProposalID:      p.ID(),
		ConfigurationID: p.ConfigurationID(),
		ClientID:        p.ClientID(),
		From:            rec.From.String(),
		To:              rec.To.String(),
		Kind:            rec.Kind.String(),
		ActorID:         rec.ActorID,
		ActorRole:       rec.ActorRole.String(),
		VehicleEffect:   effect.String(),
		OccurredAt:      rec.OccurredAt,
	}
}
