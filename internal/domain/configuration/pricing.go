package configuration

import (
	"sort"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/money"

	"github.com/google/uuid"
)

// Pricing is the result of pricing one vehicle with a selection of optionals.
type Pricing struct {
	Base    money.Money
	Total   money.Money
	Applied []uuid.UUID
}

type PriceCalculator interface {
	Compute(vehicle *catalog.Vehicle, optionals catalog.OptionalCatalog, selected []uuid.UUID) Pricing
}

// DefaultPriceCalculator adds the price of every selected optional still present
// in the catalog to the vehicle base price. Unknown IDs are skipped and
// duplicates are counted once.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (DefaultPriceCalculator) Compute(vehicle *catalog.Vehicle, optionals catalog.OptionalCatalog, selected []uuid.UUID) Pricing {
	base := vehicle.BasePrice()
	total := base
	applied := make([]uuid.UUID, 0, len(selected))

	for _, id := range NormalizeOptionalIDs(selected) {
		opt, ok := optionals.Optional(id)
		if !ok {
			continue
		}
		total = total.Add(opt.Price())
		applied = append(applied, id)
	}

	return Pricing{Base: base, Total: total, Applied: applied}
}

// NormalizeOptionalIDs deduplicates and sorts a selection.
func NormalizeOptionalIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
