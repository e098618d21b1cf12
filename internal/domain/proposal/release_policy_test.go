//go:build unit

package proposal_test

import (
	"testing"

	"autoflow/internal/domain/proposal"

	"github.com/stretchr/testify/assert"
)

func TestEffectOf(t *testing.T) {
	tests := []struct {
		name    string
		rec     proposal.TransitionRecord
		keep    proposal.VehicleEffect
		release proposal.VehicleEffect
	}{
		{
			name:    "creation options the vehicle",
			rec:     proposal.TransitionRecord{Kind: proposal.KindCreate, To: proposal.StatusSubmitted},
			keep:    proposal.VehicleOptioned,
			release: proposal.VehicleOptioned,
		},
		{
			name:    "confirm sells the vehicle",
			rec:     proposal.TransitionRecord{Kind: proposal.KindConfirm, From: proposal.StatusAccepted, To: proposal.StatusCompleted},
			keep:    proposal.VehicleSold,
			release: proposal.VehicleSold,
		},
		{
			name:    "override to completed sells the vehicle",
			rec:     proposal.TransitionRecord{Kind: proposal.KindOverride, From: proposal.StatusSubmitted, To: proposal.StatusCompleted},
			keep:    proposal.VehicleSold,
			release: proposal.VehicleSold,
		},
		{
			name:    "acceptance leaves the vehicle alone",
			rec:     proposal.TransitionRecord{Kind: proposal.KindAccept, From: proposal.StatusSubmitted, To: proposal.StatusAccepted},
			keep:    proposal.VehicleUnchanged,
			release: proposal.VehicleUnchanged,
		},
		{
			name:    "rejection",
			rec:     proposal.TransitionRecord{Kind: proposal.KindReject, From: proposal.StatusAccepted, To: proposal.StatusRejected},
			keep:    proposal.VehicleUnchanged,
			release: proposal.VehicleReleased,
		},
		{
			name:    "expiry",
			rec:     proposal.TransitionRecord{Kind: proposal.KindExpire, From: proposal.StatusSubmitted, To: proposal.StatusExpired},
			keep:    proposal.VehicleUnchanged,
			release: proposal.VehicleReleased,
		},
		{
			name:    "override to cancelled",
			rec:     proposal.TransitionRecord{Kind: proposal.KindOverride, From: proposal.StatusAccepted, To: proposal.StatusCancelled},
			keep:    proposal.VehicleUnchanged,
			release: proposal.VehicleReleased,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keep, proposal.EffectOf(tt.rec, proposal.KeepVehicleOnClose{}))
			assert.Equal(t, tt.release, proposal.EffectOf(tt.rec, proposal.ReleaseVehicleOnClose{}))
		})
	}
}

func TestNewVehicleReleasePolicy_DefaultKeepsVehicle(t *testing.T) {
	assert.IsType(t, proposal.KeepVehicleOnClose{}, proposal.NewVehicleReleasePolicy(false))
	assert.IsType(t, proposal.ReleaseVehicleOnClose{}, proposal.NewVehicleReleasePolicy(true))
}
