package catalog

type VehicleStatus string

const (
	StatusAvailable VehicleStatus = "AVAILABLE"
	StatusOptioned  VehicleStatus = "OPTIONED"
	StatusSold      VehicleStatus = "SOLD"
	StatusHidden    VehicleStatus = "HIDDEN"
)

func (s VehicleStatus) String() string {
	return string(s)
}

func (s VehicleStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOptioned, StatusSold, StatusHidden:
		return true
	default:
		return false
	}
}

func NewVehicleStatus(s string) (VehicleStatus, error) {
	status := VehicleStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidVehicleStatus
	}
	return status, nil
}
