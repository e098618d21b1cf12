//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/pkg/errs"
	"autoflow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vehicleCase struct {
	name   string
	mutate func(*builder.VehicleBuilder)
	errIs  error
}

func TestVehicle(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewVehicleBuilder().
			With(func(b *builder.VehicleBuilder) { b.Plate = " ab123cd "; b.VIN = "zfa31200000123456" }).
			BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "AB123CD", actual.Plate())
		assert.Equal(t, "ZFA31200000123456", actual.VIN())
		assert.Equal(t, catalog.StatusAvailable, actual.Status())
		assert.True(t, actual.IsShowroomVisible())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []vehicleCase{
			{name: "missing brand", mutate: func(b *builder.VehicleBuilder) { b.Brand = " " }, errIs: catalog.ErrInvalidVehicle},
			{name: "year too old", mutate: func(b *builder.VehicleBuilder) { b.Year = 1899 }, errIs: catalog.ErrInvalidVehicle},
			{name: "next model year", mutate: func(b *builder.VehicleBuilder) { b.Year = 2026 }},
			{name: "year in the future", mutate: func(b *builder.VehicleBuilder) { b.Year = 2027 }, errIs: catalog.ErrInvalidVehicle},
			{name: "missing plate", mutate: func(b *builder.VehicleBuilder) { b.Plate = "" }, errIs: catalog.ErrInvalidVehicle},
			{name: "short VIN", mutate: func(b *builder.VehicleBuilder) { b.VIN = "ZFA312" }, errIs: catalog.ErrInvalidVehicle},
			{name: "negative mileage", mutate: func(b *builder.VehicleBuilder) { b.Mileage = -1 }, errIs: catalog.ErrInvalidVehicle},
			{name: "zero price", mutate: func(b *builder.VehicleBuilder) { b.BasePrice = "0" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewVehicleBuilder().With(tc.mutate).BuildDomain()
				if tc.errIs == nil {
					assert.NoError(t, err)
					return
				}
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.True(t, errs.Is(err, errs.ErrValidation))
			})
		}
	})
}

func TestVehicle_StatusChanges(t *testing.T) {
	now := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	t.Run("optioning requires an available vehicle", func(t *testing.T) {
		v := builder.NewVehicleBuilder().MustBuild()
		require.NoError(t, v.MarkOptioned(now))
		assert.Equal(t, catalog.StatusOptioned, v.Status())
		assert.False(t, v.IsShowroomVisible())

		err := v.MarkOptioned(now)
		assert.True(t, errs.Is(err, catalog.ErrVehicleUnavailable))
	})

	t.Run("hidden vehicle cannot be optioned", func(t *testing.T) {
		v := builder.NewVehicleBuilder().WithStatus(catalog.StatusHidden).MustBuild()
		assert.True(t, errs.Is(v.MarkOptioned(now), catalog.ErrVehicleUnavailable))
	})

	t.Run("release only affects optioned vehicles", func(t *testing.T) {
		v := builder.NewVehicleBuilder().MustBuild()
		require.NoError(t, v.MarkOptioned(now))
		assert.True(t, v.Release(now))
		assert.Equal(t, catalog.StatusAvailable, v.Status())

		v.MarkSold(now)
		assert.False(t, v.Release(now))
		assert.Equal(t, catalog.StatusSold, v.Status())
		assert.True(t, v.IsSold())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		v := builder.NewVehicleBuilder().MustBuild()
		err := v.ChangeStatus(catalog.VehicleStatus("LEASED"), now)
		assert.True(t, errs.Is(err, catalog.ErrInvalidVehicleStatus))
		assert.Equal(t, catalog.StatusAvailable, v.Status())
	})
}

func TestVehicle_Duplicate(t *testing.T) {
	now := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	src := builder.NewVehicleBuilder().AsSold().MustBuild()

	dup, err := src.Duplicate("ZZ999ZZ", "ZFA31200000999999", now)
	require.NoError(t, err)

	assert.NotEqual(t, src.ID(), dup.ID())
	assert.Equal(t, src.Brand(), dup.Brand())
	assert.True(t, src.BasePrice().Equal(dup.BasePrice()))
	assert.Equal(t, "ZZ999ZZ", dup.Plate())
	assert.Equal(t, catalog.StatusAvailable, dup.Status())

	_, err = src.Duplicate("", "ZFA31200000999999", now)
	assert.True(t, errs.Is(err, catalog.ErrInvalidVehicle))
}
