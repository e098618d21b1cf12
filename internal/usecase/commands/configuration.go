package commands

import (
	"context"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/pkg/errs"
	pkgpatch "autoflow/internal/pkg/patch"
	"autoflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrClientRequired = errs.NewKind(errs.ErrValidation, "client id is required")

type CreateConfigurationInput struct {
	// ClientID is ignored for client actors, who always configure for themselves.
	ClientID    *uuid.UUID
	VehicleID   uuid.UUID
	OptionalIDs []uuid.UUID
	Note        string
}

type ConfigurationCommands interface {
	Create(ctx context.Context, a actor.Context, in CreateConfigurationInput) (uuid.UUID, error)
	Update(ctx context.Context, a actor.Context, id uuid.UUID, patch configuration.Patch) error
	Delete(ctx context.Context, a actor.Context, id uuid.UUID) error
}

type configurationUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *configuration.Factory
	clock   clock.Clock
}

func NewConfigurationUseCase(uow shared.UnitOfWork, factory *configuration.Factory, clk clock.Clock) ConfigurationCommands {
	return &configurationUseCaseImpl{uow: uow, factory: factory, clock: clk}
}

func (uc *configurationUseCaseImpl) Create(ctx context.Context, a actor.Context, in CreateConfigurationInput) (uuid.UUID, error) {
	clientID, err := resolveClient(a, in.ClientID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := actor.AuthorizeFor(a, actor.OpConfigurationCreate, clientID); err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vehicle, err := tx.Vehicles().FindByID(ctx, in.VehicleID)
		if err != nil {
			return shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
		}
		optionals, err := resolveOptionals(ctx, tx, in.OptionalIDs)
		if err != nil {
			return err
		}

		cfg, err := uc.factory.Create(vehicle, optionals, clientID, in.OptionalIDs, in.Note)
		if err != nil {
			return err
		}
		if err := tx.Configurations().Create(ctx, cfg); err != nil {
			return shared.TranslateRepoErr(err, nil)
		}
		createdID = cfg.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

// Update re-reads the vehicle and optionals on every call, so the stored
// totals always reflect current catalog prices.
func (uc *configurationUseCaseImpl) Update(ctx context.Context, a actor.Context, id uuid.UUID, patch configuration.Patch) error {
	if err := actor.Authorize(a, actor.OpConfigurationUpdate); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := uc.lockMutable(ctx, tx, a, actor.OpConfigurationUpdate, id)
		if err != nil {
			return err
		}

		vehicle, err := tx.Vehicles().FindByID(ctx, pkgpatch.Coalesce(patch.VehicleID, cfg.VehicleID()))
		if err != nil {
			return shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
		}

		optionals, err := resolveOptionals(ctx, tx, pkgpatch.Coalesce(patch.OptionalIDs, cfg.OptionalIDs()))
		if err != nil {
			return err
		}

		if err := uc.factory.Apply(cfg, patch, vehicle, optionals); err != nil {
			return err
		}
		return shared.TranslateRepoErr(tx.Configurations().Update(ctx, cfg), configuration.ErrConfigurationNotFound)
	})
}

func (uc *configurationUseCaseImpl) Delete(ctx context.Context, a actor.Context, id uuid.UUID) error {
	if err := actor.Authorize(a, actor.OpConfigurationDelete); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := uc.lockMutable(ctx, tx, a, actor.OpConfigurationDelete, id)
		if err != nil {
			return err
		}
		if err := cfg.MarkDeleted(uc.clock.Now()); err != nil {
			return err
		}
		return shared.TranslateRepoErr(tx.Configurations().Update(ctx, cfg), configuration.ErrConfigurationNotFound)
	})
}

// lockMutable locks the configuration row and checks, under that lock, that
// it is owned by the actor, not tombstoned, and not referenced by a proposal.
func (uc *configurationUseCaseImpl) lockMutable(ctx context.Context, tx shared.Tx, a actor.Context, op actor.Operation, id uuid.UUID) (*configuration.Configuration, error) {
	cfg, err := tx.Configurations().GetForUpdate(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, configuration.ErrConfigurationNotFound)
	}
	if err := actor.AuthorizeFor(a, op, cfg.ClientID()); err != nil {
		return nil, err
	}
	referenced, err := tx.Proposals().ExistsForConfiguration(ctx, cfg.ID())
	if err != nil {
		return nil, shared.TranslateRepoErr(err, nil)
	}
	if err := cfg.EnsureMutable(referenced); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveClient(a actor.Context, requested *uuid.UUID) (uuid.UUID, error) {
	if a.IsClient() {
		return a.ID(), nil
	}
	if requested == nil || *requested == uuid.Nil {
		return uuid.Nil, ErrClientRequired
	}
	return *requested, nil
}

func resolveOptionals(ctx context.Context, tx shared.Tx, ids []uuid.UUID) (catalog.OptionalSet, error) {
	ids = configuration.NormalizeOptionalIDs(ids)
	if len(ids) == 0 {
		return catalog.NewOptionalSet(), nil
	}
	found, err := tx.Optionals().FindByIDs(ctx, ids)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, nil)
	}
	return catalog.NewOptionalSet(found...), nil
}
