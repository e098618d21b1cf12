package catalog

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// OptionalCatalog resolves optional accessories by ID.
type OptionalCatalog interface {
	Optional(id uuid.UUID) (*Optional, bool)
}

// OptionalSet is the simplest OptionalCatalog.
type OptionalSet map[uuid.UUID]*Optional

func NewOptionalSet(optionals ...*Optional) OptionalSet {
	set := make(OptionalSet, len(optionals))
	for _, o := range optionals {
		set[o.ID()] = o
	}
	return set
}

func (s OptionalSet) Optional(id uuid.UUID) (*Optional, bool) {
	o, ok := s[id]
	return o, ok
}

// Snapshot is a read-only view of the catalog taken at one point in time.
type Snapshot struct {
	vehicles  map[uuid.UUID]*Vehicle
	optionals OptionalSet
	takenAt   time.Time
}

func NewSnapshot(vehicles []*Vehicle, optionals []*Optional, takenAt time.Time) *Snapshot {
	vs := make(map[uuid.UUID]*Vehicle, len(vehicles))
	for _, v := range vehicles {
		vs[v.ID()] = v
	}
	return &Snapshot{
		vehicles:  vs,
		optionals: NewOptionalSet(optionals...),
		takenAt:   takenAt,
	}
}

func (s *Snapshot) Vehicle(id uuid.UUID) (*Vehicle, bool) {
	v, ok := s.vehicles[id]
	return v, ok
}

func (s *Snapshot) Optional(id uuid.UUID) (*Optional, bool) {
	return s.optionals.Optional(id)
}

func (s *Snapshot) TakenAt() time.Time {
	return s.takenAt
}

// Vehicles returns the vehicles ordered by brand, model and ID.
func (s *Snapshot) Vehicles() []*Vehicle {
	out := make([]*Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Brand() != out[j].Brand() {
			return out[i].Brand() < out[j].Brand()
		}
		if out[i].Model() != out[j].Model() {
			return out[i].Model() < out[j].Model()
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

// Optionals returns the accessories ordered by code.
func (s *Snapshot) Optionals() []*Optional {
	out := make([]*Optional, 0, len(s.optionals))
	for _, o := range s.optionals {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}
