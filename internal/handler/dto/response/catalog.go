package response

import (
	"time"

	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleResponse struct {
	ID        uuid.UUID `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Plate     string    `json:"plate"`
	VIN       string    `json:"vin"`
	BasePrice string    `json:"base_price"`
	Mileage   int       `json:"mileage"`
	Fuel      string    `json:"fuel"`
	Gearbox   string    `json:"gearbox"`
	Colour    string    `json:"colour"`
	Status    string    `json:"status"`
	Listed    bool      `json:"listed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShowroomVehicleResponse hides registration details from the public
type ShowroomVehicleResponse struct {
	ID        uuid.UUID `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	BasePrice string    `json:"base_price"`
	Mileage   int       `json:"mileage"`
	Fuel      string    `json:"fuel"`
	Gearbox   string    `json:"gearbox"`
	Colour    string    `json:"colour"`
}

type OptionalResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PricingResponse struct {
	VehicleID uuid.UUID   `json:"vehicle_id"`
	Base      string      `json:"base_price"`
	Total     string      `json:"total_price"`
	Applied   []uuid.UUID `json:"applied_optional_ids"`
	PricedAt  time.Time   `json:"priced_at"`
}

func FromVehicleView(v *queries.VehicleView) (*VehicleResponse, error) {
	return from[VehicleResponse](v)
}

func FromVehicleViews(vs []*queries.VehicleView) ([]*VehicleResponse, error) {
	return fromList[VehicleResponse](vs)
}

func FromShowroomView(v *queries.VehicleView) (*ShowroomVehicleResponse, error) {
	return from[ShowroomVehicleResponse](v)
}

func FromShowroomViews(vs []*queries.VehicleView) ([]*ShowroomVehicleResponse, error) {
	return fromList[ShowroomVehicleResponse](vs)
}

func FromOptionalView(v *queries.OptionalView) (*OptionalResponse, error) {
	return from[OptionalResponse](v)
}

func FromOptionalViews(vs []*queries.OptionalView) ([]*OptionalResponse, error) {
	return fromList[OptionalResponse](vs)
}

func FromPricingView(v *queries.PricingView) (*PricingResponse, error) {
	return from[PricingResponse](v)
}
