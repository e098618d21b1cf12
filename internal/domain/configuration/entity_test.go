//go:build unit

package configuration_test

import (
	"strings"
	"testing"
	"time"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/money"
	"autoflow/internal/pkg/errs"
	"autoflow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Create(t *testing.T) {
	t.Run("prices vehicle and optionals", func(t *testing.T) {
		b := builder.NewConfigurationBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Equal(t, b.ClientID, c.ClientID())
		assert.Equal(t, b.Vehicle.ID(), c.VehicleID())
		assert.Equal(t, "20000.00", c.BasePrice().String())
		assert.Equal(t, "21500.00", c.TotalPrice().String())
		assert.Equal(t, b.Now, c.CreatedAt())
		assert.False(t, c.IsDeleted())
	})

	t.Run("sold vehicle is rejected", func(t *testing.T) {
		_, err := builder.NewConfigurationBuilder().
			WithVehicle(builder.NewVehicleBuilder().AsSold().MustBuild()).
			BuildDomain()
		assert.True(t, errs.Is(err, configuration.ErrVehicleSold))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("optioned vehicle can still be configured", func(t *testing.T) {
		_, err := builder.NewConfigurationBuilder().
			WithVehicle(builder.NewVehicleBuilder().WithStatus(catalog.StatusOptioned).MustBuild()).
			BuildDomain()
		assert.NoError(t, err)
	})

	t.Run("note too long", func(t *testing.T) {
		_, err := builder.NewConfigurationBuilder().
			With(func(b *builder.ConfigurationBuilder) { b.Note = strings.Repeat("x", configuration.MaxNoteLength+1) }).
			BuildDomain()
		assert.True(t, errs.Is(err, configuration.ErrNoteTooLong))
	})

	t.Run("total at the column limit is accepted", func(t *testing.T) {
		c, err := builder.NewConfigurationBuilder().
			WithVehicle(builder.NewVehicleBuilder().WithBasePrice("9999998499.99").MustBuild()).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, money.MaxAmount().String(), c.TotalPrice().String())
	})

	t.Run("total past the column limit is rejected", func(t *testing.T) {
		_, err := builder.NewConfigurationBuilder().
			WithVehicle(builder.NewVehicleBuilder().WithBasePrice("9999999999.99").MustBuild()).
			BuildDomain()
		assert.True(t, errs.Is(err, configuration.ErrTotalTooLarge), "got %v", err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestFactory_Apply(t *testing.T) {
	b := builder.NewConfigurationBuilder()
	factory := b.Factory()
	roof := builder.NewOptionalBuilder().WithCode("ROOF").WithPrice("800").MustBuild()
	optionals := catalog.NewOptionalSet(append(b.Optionals, roof)...)

	t.Run("optionals change recomputes total", func(t *testing.T) {
		c := b.MustBuild()
		ids := []uuid.UUID{roof.ID()}

		require.NoError(t, factory.Apply(c, configuration.Patch{OptionalIDs: &ids}, b.Vehicle, optionals))
		assert.Equal(t, "20800.00", c.TotalPrice().String())
		assert.Equal(t, ids, c.OptionalIDs())
		assert.Equal(t, b.Note, c.Note())
	})

	t.Run("over-limit total leaves the configuration unchanged", func(t *testing.T) {
		c := b.MustBuild()
		pricey := builder.NewOptionalBuilder().WithCode("GOLD").WithPrice("9999999999.99").MustBuild()
		ids := []uuid.UUID{pricey.ID()}

		err := factory.Apply(c, configuration.Patch{OptionalIDs: &ids}, b.Vehicle, catalog.NewOptionalSet(pricey))
		assert.True(t, errs.Is(err, configuration.ErrTotalTooLarge), "got %v", err)
		assert.Equal(t, "21500.00", c.TotalPrice().String())
	})

	t.Run("catalog drift is picked up on recompute", func(t *testing.T) {
		c := b.MustBuild()
		require.Equal(t, "21500.00", c.TotalPrice().String())

		drifted := catalog.ReconstructOptional(b.Optionals[0].ID(), "NAV", "Navigation", "", money.MustParse("900"), time.Now(), time.Now())
		note := "updated"

		require.NoError(t, factory.Apply(c, configuration.Patch{Note: &note}, b.Vehicle, catalog.NewOptionalSet(drifted)))
		assert.Equal(t, "20900.00", c.TotalPrice().String())
		assert.Equal(t, "updated", c.Note())
	})

	t.Run("switching to a sold vehicle is rejected", func(t *testing.T) {
		c := b.MustBuild()
		sold := builder.NewVehicleBuilder().AsSold().MustBuild()
		id := sold.ID()

		err := factory.Apply(c, configuration.Patch{VehicleID: &id}, sold, optionals)
		assert.True(t, errs.Is(err, configuration.ErrVehicleSold))
		assert.Equal(t, b.Vehicle.ID(), c.VehicleID())
	})
}

func TestConfiguration_Lifecycle(t *testing.T) {
	now := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	t.Run("referenced configuration is locked", func(t *testing.T) {
		c := builder.NewConfigurationBuilder().MustBuild()
		assert.NoError(t, c.EnsureMutable(false))

		err := c.EnsureMutable(true)
		assert.True(t, errs.Is(err, configuration.ErrConfigurationLocked))
		assert.Equal(t, errs.KindLocked, errs.KindOf(err))
	})

	t.Run("deleted configuration reports conflict", func(t *testing.T) {
		c := builder.NewConfigurationBuilder().MustBuild()
		require.NoError(t, c.MarkDeleted(now))
		require.NotNil(t, c.DeletedAt())

		assert.Equal(t, errs.KindConflict, errs.KindOf(c.MarkDeleted(now)))
		assert.Equal(t, errs.KindConflict, errs.KindOf(c.EnsureMutable(true)))
	})
}
