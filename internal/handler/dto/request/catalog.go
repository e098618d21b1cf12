package request

import (
	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/money"
	"autoflow/internal/usecase/commands"
	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleRequest struct {
	Brand     string `json:"brand" binding:"required,max=80"`
	Model     string `json:"model" binding:"required,max=80"`
	Year      int    `json:"year" binding:"required,gte=1900"`
	Plate     string `json:"plate" binding:"required,plate"`
	VIN       string `json:"vin" binding:"required,len=17,alphanum"`
	BasePrice string `json:"base_price" binding:"required,money"`
	Mileage   int    `json:"mileage" binding:"gte=0"`
	Fuel      string `json:"fuel" binding:"max=40"`
	Gearbox   string `json:"gearbox" binding:"max=40"`
	Colour    string `json:"colour" binding:"max=40"`
	Listed    *bool  `json:"listed,omitempty"`
}

func (r VehicleRequest) ToSpec() (catalog.VehicleSpec, error) {
	price, err := money.Parse(r.BasePrice)
	if err != nil {
		return catalog.VehicleSpec{}, err
	}
	listed := true
	if r.Listed != nil {
		listed = *r.Listed
	}
	return catalog.VehicleSpec{
		Brand:     r.Brand,
		Model:     r.Model,
		Year:      r.Year,
		Plate:     r.Plate,
		VIN:       r.VIN,
		BasePrice: price,
		Mileage:   r.Mileage,
		Fuel:      r.Fuel,
		Gearbox:   r.Gearbox,
		Colour:    r.Colour,
		Listed:    listed,
	}, nil
}

// VehicleStatusRequest is checked against the known statuses by the domain.
type VehicleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DuplicateVehicleRequest struct {
	Plate string `json:"plate" binding:"required,plate"`
	VIN   string `json:"vin" binding:"required,len=17,alphanum"`
}

type OptionalRequest struct {
	Code        string `json:"code" binding:"required,max=40"`
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"max=1000"`
	Price       string `json:"price" binding:"required,money"`
}

func (r OptionalRequest) ToInput() (commands.OptionalInput, error) {
	price, err := money.Parse(r.Price)
	if err != nil {
		return commands.OptionalInput{}, err
	}
	return commands.OptionalInput{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
	}, nil
}

type PricingPreviewRequest struct {
	VehicleID   uuid.UUID   `json:"vehicle_id" binding:"required"`
	OptionalIDs []uuid.UUID `json:"optional_ids"`
}

type ShowroomQuery struct {
	Brand    string  `form:"brand" binding:"max=80"`
	Model    string  `form:"model" binding:"max=80"`
	MinPrice *string `form:"min_price" binding:"omitempty,money"`
	MaxPrice *string `form:"max_price" binding:"omitempty,money"`
}

func (q ShowroomQuery) ToFilters() (queries.ShowroomFilters, error) {
	minPrice, err := parseMoneyPtr(q.MinPrice)
	if err != nil {
		return queries.ShowroomFilters{}, err
	}
	maxPrice, err := parseMoneyPtr(q.MaxPrice)
	if err != nil {
		return queries.ShowroomFilters{}, err
	}
	return queries.ShowroomFilters{
		Brand:    q.Brand,
		Model:    q.Model,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}, nil
}
