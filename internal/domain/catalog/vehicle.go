package catalog

import (
	"strings"
	"time"

	"autoflow/internal/domain/money"
	"autoflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound      = errs.NewKind(errs.ErrNotFound, "vehicle not found")
	ErrInvalidVehicle       = errs.NewKind(errs.ErrValidation, "invalid vehicle data")
	ErrInvalidVehicleStatus = errs.NewKind(errs.ErrValidation, "invalid vehicle status")
	ErrVehicleUnavailable   = errs.NewKind(errs.ErrValidation, "vehicle is not available")
	ErrDuplicatePlateOrVIN  = errs.NewKind(errs.ErrConflict, "plate or VIN already registered")
)

const (
	minVehicleYear = 1900
	vinLength      = 17
)

// VehicleSpec holds the descriptive, caller-editable part of a vehicle.
type VehicleSpec struct {
	Brand     string
	Model     string
	Year      int
	Plate     string
	VIN       string
	BasePrice money.Money
	Mileage   int
	Fuel      string
	Gearbox   string
	Colour    string
	Listed    bool
}

type Vehicle struct {
	id        uuid.UUID
	spec      VehicleSpec
	status    VehicleStatus
	createdAt time.Time
	updatedAt time.Time
}

func NewVehicle(spec VehicleSpec, now time.Time) (*Vehicle, error) {
	spec, err := normalizeSpec(spec, now)
	if err != nil {
		return nil, err
	}
	return &Vehicle{
		id:        uuid.New(),
		spec:      spec,
		status:    StatusAvailable,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructVehicle(id uuid.UUID, spec VehicleSpec, status VehicleStatus, createdAt, updatedAt time.Time) *Vehicle {
	return &Vehicle{
		id:        id,
		spec:      spec,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func normalizeSpec(spec VehicleSpec, now time.Time) (VehicleSpec, error) {
	spec.Brand = strings.TrimSpace(spec.Brand)
	spec.Model = strings.TrimSpace(spec.Model)
	spec.Plate = strings.ToUpper(strings.TrimSpace(spec.Plate))
	spec.VIN = strings.ToUpper(strings.TrimSpace(spec.VIN))
	spec.Fuel = strings.TrimSpace(spec.Fuel)
	spec.Gearbox = strings.TrimSpace(spec.Gearbox)
	spec.Colour = strings.TrimSpace(spec.Colour)

	switch {
	case spec.Brand == "" || spec.Model == "":
		return spec, errs.Wrap(ErrInvalidVehicle, "brand and model are required")
	case spec.Year < minVehicleYear || spec.Year > now.Year()+1:
		return spec, errs.Wrap(ErrInvalidVehicle, "year out of range")
	case spec.Plate == "":
		return spec, errs.Wrap(ErrInvalidVehicle, "plate is required")
	case len(spec.VIN) != vinLength:
		return spec, errs.Wrap(ErrInvalidVehicle, "VIN must be 17 characters")
	case spec.Mileage < 0:
		return spec, errs.Wrap(ErrInvalidVehicle, "mileage cannot be negative")
	}
	return spec, nil
}

func (v *Vehicle) ID() uuid.UUID           { return v.id }
func (v *Vehicle) Spec() VehicleSpec       { return v.spec }
func (v *Vehicle) Brand() string           { return v.spec.Brand }
func (v *Vehicle) Model() string           { return v.spec.Model }
func (v *Vehicle) Plate() string           { return v.spec.Plate }
func (v *Vehicle) VIN() string             { return v.spec.VIN }
func (v *Vehicle) BasePrice() money.Money  { return v.spec.BasePrice }
func (v *Vehicle) Listed() bool            { return v.spec.Listed }
func (v *Vehicle) Status() VehicleStatus   { return v.status }
func (v *Vehicle) CreatedAt() time.Time    { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time    { return v.updatedAt }
func (v *Vehicle) IsSold() bool            { return v.status == StatusSold }
func (v *Vehicle) IsAvailable() bool       { return v.status == StatusAvailable }
func (v *Vehicle) IsShowroomVisible() bool { return v.spec.Listed && v.status == StatusAvailable }

func (v *Vehicle) Update(spec VehicleSpec, now time.Time) error {
	spec, err := normalizeSpec(spec, now)
	if err != nil {
		return err
	}
	v.spec = spec
	v.updatedAt = now
	return nil
}

// ChangeStatus is the inventory's unrestricted status edit.
func (v *Vehicle) ChangeStatus(status VehicleStatus, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidVehicleStatus
	}
	v.status = status
	v.updatedAt = now
	return nil
}

// MarkOptioned reserves the vehicle for a proposal.
func (v *Vehicle) MarkOptioned(now time.Time) error {
	if v.status != StatusAvailable {
		return errs.Wrap(ErrVehicleUnavailable, "status "+v.status.String())
	}
	v.status = StatusOptioned
	v.updatedAt = now
	return nil
}

func (v *Vehicle) MarkSold(now time.Time) {
	v.status = StatusSold
	v.updatedAt = now
}

// Release puts an optioned vehicle back on the market. Other statuses are left untouched.
func (v *Vehicle) Release(now time.Time) bool {
	if v.status != StatusOptioned {
		return false
	}
	v.status = StatusAvailable
	v.updatedAt = now
	return true
}

// Duplicate copies the vehicle under a new identity. Plate and VIN are unique
// per vehicle and must be supplied.
func (v *Vehicle) Duplicate(plate, vin string, now time.Time) (*Vehicle, error) {
	spec := v.spec
	spec.Plate = plate
	spec.VIN = vin
	return NewVehicle(spec, now)
}
