//go:build unit || e2e

package builder

import (
	"time"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/pkg/clock"

	"github.com/google/uuid"
)

type ConfigurationBuilder struct {
	ClientID    uuid.UUID
	Vehicle     *catalog.Vehicle
	Optionals   []*catalog.Optional
	OptionalIDs []uuid.UUID
	Note        string
	Now         time.Time
}

// NewConfigurationBuilder prices a Panda (20000) with a navigation system (1500).
func NewConfigurationBuilder() *ConfigurationBuilder {
	nav := NewOptionalBuilder().MustBuild()
	return &ConfigurationBuilder{
		ClientID:    uuid.New(),
		Vehicle:     NewVehicleBuilder().MustBuild(),
		Optionals:   []*catalog.Optional{nav},
		OptionalIDs: []uuid.UUID{nav.ID()},
		Note:        "Weekend test drive requested",
		Now:         time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ConfigurationBuilder) With(mutate func(*ConfigurationBuilder)) *ConfigurationBuilder {
	mutate(b)
	return b
}

func (b *ConfigurationBuilder) Factory() *configuration.Factory {
	return configuration.NewFactory(clock.NewMockClock(b.Now), configuration.NewDefaultPriceCalculator())
}

func (b *ConfigurationBuilder) BuildDomain() (*configuration.Configuration, error) {
	return b.Factory().Create(b.Vehicle, catalog.NewOptionalSet(b.Optionals...), b.ClientID, b.OptionalIDs, b.Note)
}

func (b *ConfigurationBuilder) MustBuild() *configuration.Configuration {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *ConfigurationBuilder) WithClientID(id uuid.UUID) *ConfigurationBuilder {
	b.ClientID = id
	return b
}

func (b *ConfigurationBuilder) WithVehicle(v *catalog.Vehicle) *ConfigurationBuilder {
	b.Vehicle = v
	return b
}

func (b *ConfigurationBuilder) WithOptionals(optionals ...*catalog.Optional) *ConfigurationBuilder {
	b.Optionals = optionals
	b.OptionalIDs = make([]uuid.UUID, 0, len(optionals))
	for _, o := range optionals {
		b.OptionalIDs = append(b.OptionalIDs, o.ID())
	}
	return b
}
