package configuration

import (
	"autoflow/internal/domain/catalog"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/pkg/errs"
	pkgpatch "autoflow/internal/pkg/patch"

	"github.com/google/uuid"
)

// Patch lists the fields of an update request. Nil fields are left unchanged.
type Patch struct {
	VehicleID   *uuid.UUID
	OptionalIDs *[]uuid.UUID
	Note        *string
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

func (f *Factory) Create(
	vehicle *catalog.Vehicle,
	optionals catalog.OptionalCatalog,
	clientID uuid.UUID,
	optionalIDs []uuid.UUID,
	note string,
) (*Configuration, error) {
	if vehicle.IsSold() {
		return nil, ErrVehicleSold
	}
	note, err := normalizeNote(note)
	if err != nil {
		return nil, err
	}

	pricing, err := f.price(vehicle, optionals, optionalIDs)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	c := &Configuration{
		id:        uuid.New(),
		clientID:  clientID,
		createdAt: now,
	}
	c.apply(vehicle.ID(), optionalIDs, pricing, note, now)
	return c, nil
}

// Apply recomputes the configuration from scratch against the given vehicle,
// which must be the patched vehicle when VehicleID is set.
func (f *Factory) Apply(c *Configuration, patch Patch, vehicle *catalog.Vehicle, optionals catalog.OptionalCatalog) error {
	if vehicle.ID() != c.vehicleID && vehicle.IsSold() {
		return ErrVehicleSold
	}

	optionalIDs := pkgpatch.Coalesce(patch.OptionalIDs, c.optionalIDs)
	note := c.note
	if patch.Note != nil {
		n, err := normalizeNote(*patch.Note)
		if err != nil {
			return err
		}
		note = n
	}

	pricing, err := f.price(vehicle, optionals, optionalIDs)
	if err != nil {
		return err
	}
	c.apply(vehicle.ID(), optionalIDs, pricing, note, f.Clock.Now())
	return nil
}

func (f *Factory) price(vehicle *catalog.Vehicle, optionals catalog.OptionalCatalog, optionalIDs []uuid.UUID) (Pricing, error) {
	pricing := f.PriceCalculator.Compute(vehicle, optionals, optionalIDs)
	if pricing.Total.CheckStorable() != nil {
		return Pricing{}, errs.Wrap(ErrTotalTooLarge, pricing.Total.String())
	}
	return pricing, nil
}
