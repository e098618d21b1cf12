//go:build unit || e2e

package builder

import (
	"time"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/money"
	reqdto "autoflow/internal/handler/dto/request"
	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleBuilder struct {
	Brand     string
	Model     string
	Year      int
	Plate     string
	VIN       string
	BasePrice string
	Mileage   int
	Fuel      string
	Gearbox   string
	Colour    string
	Listed    bool
	Status    catalog.VehicleStatus
	Now       time.Time
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		Brand:     "Fiat",
		Model:     "Panda",
		Year:      2023,
		Plate:     "AB123CD",
		VIN:       "ZFA31200000123456",
		BasePrice: "20000",
		Mileage:   12000,
		Fuel:      "PETROL",
		Gearbox:   "MANUAL",
		Colour:    "White",
		Listed:    true,
		Status:    catalog.StatusAvailable,
		Now:       time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) BuildSpec() catalog.VehicleSpec {
	return catalog.VehicleSpec{
		Brand:     b.Brand,
		Model:     b.Model,
		Year:      b.Year,
		Plate:     b.Plate,
		VIN:       b.VIN,
		BasePrice: money.MustParse(b.BasePrice),
		Mileage:   b.Mileage,
		Fuel:      b.Fuel,
		Gearbox:   b.Gearbox,
		Colour:    b.Colour,
		Listed:    b.Listed,
	}
}

// BuildDomain validates the spec the way catalog administration does.
func (b *VehicleBuilder) BuildDomain() (*catalog.Vehicle, error) {
	v, err := catalog.NewVehicle(b.BuildSpec(), b.Now)
	if err != nil {
		return nil, err
	}
	if b.Status != catalog.StatusAvailable {
		if err := v.ChangeStatus(b.Status, b.Now); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (b *VehicleBuilder) MustBuild() *catalog.Vehicle {
	v, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return v
}

func (b *VehicleBuilder) BuildRequestDTO() reqdto.VehicleRequest {
	listed := b.Listed
	return reqdto.VehicleRequest{
		Brand:     b.Brand,
		Model:     b.Model,
		Year:      b.Year,
		Plate:     b.Plate,
		VIN:       b.VIN,
		BasePrice: b.BasePrice,
		Mileage:   b.Mileage,
		Fuel:      b.Fuel,
		Gearbox:   b.Gearbox,
		Colour:    b.Colour,
		Listed:    &listed,
	}
}

func (b *VehicleBuilder) BuildView() *queries.VehicleView {
	return &queries.VehicleView{
		ID:        uuid.New(),
		Brand:     b.Brand,
		Model:     b.Model,
		Year:      b.Year,
		Plate:     b.Plate,
		VIN:       b.VIN,
		BasePrice: money.MustParse(b.BasePrice),
		Mileage:   b.Mileage,
		Fuel:      b.Fuel,
		Gearbox:   b.Gearbox,
		Colour:    b.Colour,
		Status:    b.Status.String(),
		Listed:    b.Listed,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *VehicleBuilder) WithBasePrice(price string) *VehicleBuilder {
	b.BasePrice = price
	return b
}

func (b *VehicleBuilder) WithStatus(status catalog.VehicleStatus) *VehicleBuilder {
	b.Status = status
	return b
}

func (b *VehicleBuilder) WithPlate(plate string) *VehicleBuilder {
	b.Plate = plate
	return b
}

func (b *VehicleBuilder) WithVIN(vin string) *VehicleBuilder {
	b.VIN = vin
	return b
}

func (b *VehicleBuilder) WithBrandModel(brand, model string) *VehicleBuilder {
	b.Brand = brand
	b.Model = model
	return b
}

func (b *VehicleBuilder) Unlisted() *VehicleBuilder {
	b.Listed = false
	return b
}

func (b *VehicleBuilder) AsSold() *VehicleBuilder {
	b.Status = catalog.StatusSold
	return b
}

type OptionalBuilder struct {
	Code        string
	Name        string
	Description string
	Price       string
	Now         time.Time
}

func NewOptionalBuilder() *OptionalBuilder {
	return &OptionalBuilder{
		Code:        "NAV",
		Name:        "Navigation system",
		Description: "Built-in navigation with live traffic",
		Price:       "1500",
		Now:         time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OptionalBuilder) With(mutate func(*OptionalBuilder)) *OptionalBuilder {
	mutate(b)
	return b
}

func (b *OptionalBuilder) BuildDomain() (*catalog.Optional, error) {
	return catalog.NewOptional(b.Code, b.Name, b.Description, money.MustParse(b.Price), b.Now)
}

func (b *OptionalBuilder) MustBuild() *catalog.Optional {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return o
}

func (b *OptionalBuilder) BuildRequestDTO() reqdto.OptionalRequest {
	return reqdto.OptionalRequest{
		Code:        b.Code,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
	}
}

func (b *OptionalBuilder) WithCode(code string) *OptionalBuilder {
	b.Code = code
	return b
}

func (b *OptionalBuilder) WithPrice(price string) *OptionalBuilder {
	b.Price = price
	return b
}
