package commands

import (
	"context"
	"log/slog"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/proposal"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/usecase/shared"

	"github.com/google/uuid"
)

const constraintOneProposalPerConfiguration = "proposals_configuration_id_key"

type CreateProposalInput struct {
	ConfigurationID uuid.UUID
	ClientNotes     string
	Terms           proposal.Terms
}

type ProposalCommands interface {
	Create(ctx context.Context, a actor.Context, in CreateProposalInput) (uuid.UUID, error)
	Accept(ctx context.Context, a actor.Context, id uuid.UUID) error
	Reject(ctx context.Context, a actor.Context, id uuid.UUID, reason string) error
	Confirm(ctx context.Context, a actor.Context, id uuid.UUID) error
	Expire(ctx context.Context, a actor.Context, id uuid.UUID) error
	Override(ctx context.Context, a actor.Context, id uuid.UUID, to proposal.Status, reason string) error
	UpdateTerms(ctx context.Context, a actor.Context, id uuid.UUID, terms proposal.Terms) error
	// ExpireOverdue expires every open proposal whose expiry date is before today.
	ExpireOverdue(ctx context.Context, a actor.Context) ([]uuid.UUID, error)
}

type proposalUseCaseImpl struct {
	uow       shared.UnitOfWork
	policy    proposal.VehicleReleasePolicy
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewProposalUseCase(
	uow shared.UnitOfWork,
	policy proposal.VehicleReleasePolicy,
	publisher shared.EventPublisher,
	clk clock.Clock,
) ProposalCommands {
	return &proposalUseCaseImpl{
		uow:       uow,
		policy:    policy,
		publisher: publisher,
		clock:     clk,
	}
}

// Create locks the configuration, then the vehicle. The unique constraint on
// proposals.configuration_id backs the existence check.
func (uc *proposalUseCaseImpl) Create(ctx context.Context, a actor.Context, in CreateProposalInput) (uuid.UUID, error) {
	if err := actor.Authorize(a, actor.OpProposalCreate); err != nil {
		return uuid.Nil, err
	}

	var event shared.ProposalEvent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		cfg, err := tx.Configurations().GetForUpdate(ctx, in.ConfigurationID)
		if err != nil {
			return shared.TranslateRepoErr(err, configuration.ErrConfigurationNotFound)
		}

		p, rec, err := proposal.New(a, cfg, in.ClientNotes, in.Terms, now)
		if err != nil {
			return err
		}

		exists, err := tx.Proposals().ExistsForConfiguration(ctx, cfg.ID())
		if err != nil {
			return shared.TranslateRepoErr(err, nil)
		}
		if exists {
			return proposal.ErrProposalExists
		}

		vehicle, err := tx.Vehicles().GetForUpdate(ctx, cfg.VehicleID())
		if err != nil {
			return shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
		}
		if err := vehicle.MarkOptioned(now); err != nil {
			return err
		}
		if err := tx.Vehicles().Update(ctx, vehicle); err != nil {
			return shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
		}

		if err := tx.Proposals().Create(ctx, p); err != nil {
			return shared.TranslateDuplicate(err, constraintOneProposalPerConfiguration, proposal.ErrProposalExists)
		}
		if err := tx.Proposals().RecordTransition(ctx, rec); err != nil {
			return shared.TranslateRepoErr(err, nil)
		}
		event = proposalEvent(p, rec, proposal.EffectOf(rec, uc.policy))
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	publish(ctx, uc.publisher, shared.TopicProposalCreated, event)
	return event.ProposalID, nil
}

func (uc *proposalUseCaseImpl) Accept(ctx context.Context, a actor.Context, id uuid.UUID) error {
	return uc.transition(ctx, a, actor.OpProposalAccept, id, func(p *proposal.Proposal) (proposal.TransitionRecord, error) {
		return p.Accept(a, uc.clock.Now())
	})
}

func (uc *proposalUseCaseImpl) Reject(ctx context.Context, a actor.Context, id uuid.UUID, reason string) error {
	return uc.transition(ctx, a, actor.OpProposalReject, id, func(p *proposal.Proposal) (proposal.TransitionRecord, error) {
		return p.Reject(a, reason, uc.clock.Now())
	})
}

func (uc *proposalUseCaseImpl) Confirm(ctx context.Context, a actor.Context, id uuid.UUID) error {
	return uc.transition(ctx, a, actor.OpProposalConfirm, id, func(p *proposal.Proposal) (proposal.TransitionRecord, error) {
		return p.Confirm(a, uc.clock.Now())
	})
}

func (uc *proposalUseCaseImpl) Expire(ctx context.Context, a actor.Context, id uuid.UUID) error {
	return uc.transition(ctx, a, actor.OpProposalExpire, id, func(p *proposal.Proposal) (proposal.TransitionRecord, error) {
		return p.Expire(a, uc.clock.Now())
	})
}

func (uc *proposalUseCaseImpl) Override(ctx context.Context, a actor.Context, id uuid.UUID, to proposal.Status, reason string) error {
	return uc.transition(ctx, a, actor.OpProposalOverride, id, func(p *proposal.Proposal) (proposal.TransitionRecord, error) {
		return p.Override(a, to, reason, uc.clock.Now())
	})
}

func (uc *proposalUseCaseImpl) UpdateTerms(ctx context.Context, a actor.Context, id uuid.UUID, terms proposal.Terms) error {
	if err := actor.Authorize(a, actor.OpProposalEditTerms); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Proposals().GetForUpdate(ctx, id)
		if err != nil {
			return shared.TranslateRepoErr(err, proposal.ErrProposalNotFound)
		}
		if err := p.UpdateTerms(a, terms, uc.clock.Now()); err != nil {
			return err
		}
		return shared.TranslateRepoErr(tx.Proposals().Update(ctx, p), proposal.ErrProposalNotFound)
	})
}

func (uc *proposalUseCaseImpl) ExpireOverdue(ctx context.Context, a actor.Context) ([]uuid.UUID, error) {
	if err := actor.Authorize(a, actor.OpProposalExpire); err != nil {
		return nil, err
	}

	var events []any
	expired := make([]uuid.UUID, 0)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		overdue, err := tx.Proposals().ListOverdueForUpdate(ctx, now)
		if err != nil {
			return shared.TranslateRepoErr(err, nil)
		}
		for _, p := range overdue {
			rec, err := p.Expire(a, now)
			if err != nil {
				return err
			}
			event, err := uc.commit(ctx, tx, p, rec)
			if err != nil {
				return err
			}
			events = append(events, event)
			expired = append(expired, p.ID())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(expired) > 0 {
		slog.InfoContext(ctx, "expired overdue proposals", "count", len(expired))
	}
	publish(ctx, uc.publisher, shared.TopicProposalStatusChanged, events...)
	return expired, nil
}

// transition locks the proposal, applies move and its vehicle side effect,
// and publishes the status change after commit.
func (uc *proposalUseCaseImpl) transition(
	ctx context.Context,
	a actor.Context,
	op actor.Operation,
	id uuid.UUID,
	move func(p *proposal.Proposal) (proposal.TransitionRecord, error),
) error {
	if err := actor.Authorize(a, op); err != nil {
		return err
	}

	var event shared.ProposalEvent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Proposals().GetForUpdate(ctx, id)
		if err != nil {
			return shared.TranslateRepoErr(err, proposal.ErrProposalNotFound)
		}
		rec, err := move(p)
		if err != nil {
			return err
		}
		event, err = uc.commit(ctx, tx, p, rec)
		return err
	})
	if err != nil {
		return err
	}

	publish(ctx, uc.publisher, shared.TopicProposalStatusChanged, event)
	return nil
}

// commit persists a transition together with its vehicle side effect.
func (uc *proposalUseCaseImpl) commit(ctx context.Context, tx shared.Tx, p *proposal.Proposal, rec proposal.TransitionRecord) (shared.ProposalEvent, error) {
	effect := proposal.EffectOf(rec, uc.policy)
	if err := uc.applyVehicleEffect(ctx, tx, p, effect); err != nil {
		return shared.ProposalEvent{}, err
	}
	if err := tx.Proposals().Update(ctx, p); err != nil {
		return shared.ProposalEvent{}, shared.TranslateRepoErr(err, proposal.ErrProposalNotFound)
	}
	if err := tx.Proposals().RecordTransition(ctx, rec); err != nil {
		return shared.ProposalEvent{}, shared.TranslateRepoErr(err, nil)
	}
	return proposalEvent(p, rec, effect), nil
}

// applyVehicleEffect locks and re-reads the vehicle right before changing it.
func (uc *proposalUseCaseImpl) applyVehicleEffect(ctx context.Context, tx shared.Tx, p *proposal.Proposal, effect proposal.VehicleEffect) error {
	if effect != proposal.VehicleSold && effect != proposal.VehicleReleased {
		return nil
	}

	cfg, err := tx.Configurations().FindByID(ctx, p.ConfigurationID())
	if err != nil {
		return shared.TranslateRepoErr(err, configuration.ErrConfigurationNotFound)
	}
	vehicle, err := tx.Vehicles().GetForUpdate(ctx, cfg.VehicleID())
	if err != nil {
		return shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
	}

	now := uc.clock.Now()
	switch effect {
	case proposal.VehicleSold:
		vehicle.MarkSold(now)
	case proposal.VehicleReleased:
		if !vehicle.Release(now) {
			return nil
		}
	}
	return shared.TranslateRepoErr(tx.Vehicles().Update(ctx, vehicle), catalog.ErrVehicleNotFound)
}
