package request

import (
	"autoflow/internal/domain/configuration"
	"autoflow/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateConfigurationRequest struct {
	// ClientID is required when staff configure on behalf of a client.
	ClientID    *uuid.UUID  `json:"client_id,omitempty"`
	VehicleID   uuid.UUID   `json:"vehicle_id" binding:"required"`
	OptionalIDs []uuid.UUID `json:"optional_ids"`
	Note        string      `json:"note" binding:"max=1000"`
}

func (r CreateConfigurationRequest) ToInput() commands.CreateConfigurationInput {
	return commands.CreateConfigurationInput{
		ClientID:    r.ClientID,
		VehicleID:   r.VehicleID,
		OptionalIDs: r.OptionalIDs,
		Note:        r.Note,
	}
}

type UpdateConfigurationRequest struct {
	VehicleID   *uuid.UUID   `json:"vehicle_id,omitempty"`
	OptionalIDs *[]uuid.UUID `json:"optional_ids,omitempty"`
	Note        *string      `json:"note,omitempty" binding:"omitempty,max=1000"`
}

func (r UpdateConfigurationRequest) ToPatch() configuration.Patch {
	return configuration.Patch{
		VehicleID:   r.VehicleID,
		OptionalIDs: r.OptionalIDs,
		Note:        r.Note,
	}
}

type ConfigurationListQuery struct {
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
}

func (q ConfigurationListQuery) ClientFilter() *uuid.UUID {
	return parseUUIDPtr(q.ClientID)
}
