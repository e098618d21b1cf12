package commands

import (
	"context"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/money"
	"autoflow/internal/infra"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type OptionalInput struct {
	Code        string
	Name        string
	Description string
	Price       money.Money
}

type CatalogCommands interface {
	CreateVehicle(ctx context.Context, a actor.Context, spec catalog.VehicleSpec) (uuid.UUID, error)
	UpdateVehicle(ctx context.Context, a actor.Context, id uuid.UUID, spec catalog.VehicleSpec) error
	ChangeVehicleStatus(ctx context.Context, a actor.Context, id uuid.UUID, status catalog.VehicleStatus) error
	DuplicateVehicle(ctx context.Context, a actor.Context, id uuid.UUID, plate, vin string) (uuid.UUID, error)
	CreateOptional(ctx context.Context, a actor.Context, in OptionalInput) (uuid.UUID, error)
	UpdateOptional(ctx context.Context, a actor.Context, id uuid.UUID, in OptionalInput) error
	DeleteOptional(ctx context.Context, a actor.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.CatalogCache
	clock clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, cache shared.CatalogCache, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *catalogUseCaseImpl) CreateVehicle(ctx context.Context, a actor.Context, spec catalog.VehicleSpec) (uuid.UUID, error) {
	if err := actor.Authorize(a, actor.OpCatalogManage); err != nil {
		return uuid.Nil, err
	}
	v, err := catalog.NewVehicle(spec, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.write(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateVehicleWrite(tx.Vehicles().Create(ctx, v))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return v.ID(), nil
}

func (uc *catalogUseCaseImpl) UpdateVehicle(ctx context.Context, a actor.Context, id uuid.UUID, spec catalog.VehicleSpec) error {
	if err := actor.Authorize(a, actor.OpCatalogManage); err != nil {
		return err
	}
	return uc.write(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().GetForUpdate(ctx, id)
		if err != nil {
			return shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
		}
		if err := v.Update(spec, uc.clock.Now()); err != nil {
			return err
		}
		return translateVehicleWrite(tx.Vehicles().Update(ctx, v))
	})
}

func (uc *catalogUseCaseImpl) ChangeVehicleStatus(ctx context.Context, a actor.Context, id uuid.UUID, status catalog.VehicleStatus) error {
	if err := actor.Authorize(a, actor.OpCatalogManage); err != nil {
		return err
	}
	return uc.write(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().GetForUpdate(ctx, id)
		if err != nil {
			return shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
		}
		if err := v.ChangeStatus(status, uc.clock.Now()); err != nil {
			return err
		}
		return translateVehicleWrite(tx.Vehicles().Update(ctx, v))
	})
}

func (uc *catalogUseCaseImpl) DuplicateVehicle(ctx context.Context, a actor.Context, id uuid.UUID, plate, vin string) (uuid.UUID, error) {
	if err := actor.Authorize(a, actor.OpCatalogManage); err != nil {
		return uuid.Nil, err
	}
	var copyID uuid.UUID
	err := uc.write(ctx, func(ctx context.Context, tx shared.Tx) error {
		src, err := tx.Vehicles().FindByID(ctx, id)
		if err != nil {
			return shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
		}
		dup, err := src.Duplicate(plate, vin, uc.clock.Now())
		if err != nil {
			return err
		}
		copyID = dup.ID()
		return translateVehicleWrite(tx.Vehicles().Create(ctx, dup))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return copyID, nil
}

func (uc *catalogUseCaseImpl) CreateOptional(ctx context.Context, a actor.Context, in OptionalInput) (uuid.UUID, error) {
	if err := actor.Authorize(a, actor.OpCatalogManage); err != nil {
		return uuid.Nil, err
	}
	o, err := catalog.NewOptional(in.Code, in.Name, in.Description, in.Price, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.write(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.TranslateDuplicate(tx.Optionals().Create(ctx, o), "optionals_code_key", catalog.ErrDuplicateOptionalCode)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return o.ID(), nil
}

func (uc *catalogUseCaseImpl) UpdateOptional(ctx context.Context, a actor.Context, id uuid.UUID, in OptionalInput) error {
	if err := actor.Authorize(a, actor.OpCatalogManage); err != nil {
		return err
	}
	return uc.write(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Optionals().FindByID(ctx, id)
		if err != nil {
			return shared.TranslateRepoErr(err, catalog.ErrOptionalNotFound)
		}
		if err := o.Update(in.Code, in.Name, in.Description, in.Price, uc.clock.Now()); err != nil {
			return err
		}
		return shared.TranslateDuplicate(tx.Optionals().Update(ctx, o), "optionals_code_key", catalog.ErrDuplicateOptionalCode)
	})
}

// DeleteOptional is a hard delete. Configurations keep the dangling ID and
// pricing ignores it from then on.
func (uc *catalogUseCaseImpl) DeleteOptional(ctx context.Context, a actor.Context, id uuid.UUID) error {
	if err := actor.Authorize(a, actor.OpCatalogManage); err != nil {
		return err
	}
	return uc.write(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.TranslateRepoErr(tx.Optionals().Delete(ctx, id), catalog.ErrOptionalNotFound)
	})
}

// write commits fn and then drops the cached catalog snapshot.
func (uc *catalogUseCaseImpl) write(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := uc.uow.Within(ctx, fn); err != nil {
		return err
	}
	if uc.cache != nil {
		uc.cache.Invalidate()
	}
	return nil
}

func translateVehicleWrite(err error) error {
	switch constraint := infra.ConstraintOf(err); constraint {
	case "vehicles_plate_key", "vehicles_vin_key":
		return shared.TranslateDuplicate(err, constraint, catalog.ErrDuplicatePlateOrVIN)
	}
	return shared.TranslateRepoErr(err, catalog.ErrVehicleNotFound)
}
