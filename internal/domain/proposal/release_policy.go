package proposal

// VehicleEffect is the change a proposal event causes on its vehicle.
type VehicleEffect int

const (
	VehicleUnchanged VehicleEffect = iota
	VehicleOptioned
	VehicleSold
	VehicleReleased
)

func (e VehicleEffect) String() string {
	switch e {
	case VehicleOptioned:
		return "optioned"
	case VehicleSold:
		return "sold"
	case VehicleReleased:
		return "released"
	default:
		return "unchanged"
	}
}

// VehicleReleasePolicy decides what happens to an optioned vehicle when its
// proposal closes without a sale.
type VehicleReleasePolicy interface {
	ReleaseOnClose() bool
}

// KeepVehicleOnClose leaves the vehicle OPTIONED after REJECTED, EXPIRED or CANCELLED.
type KeepVehicleOnClose struct{}

func (KeepVehicleOnClose) ReleaseOnClose() bool { return false }

// ReleaseVehicleOnClose puts the vehicle back to AVAILABLE.
type ReleaseVehicleOnClose struct{}

func (ReleaseVehicleOnClose) ReleaseOnClose() bool { return true }

func NewVehicleReleasePolicy(release bool) VehicleReleasePolicy {
	if release {
		return ReleaseVehicleOnClose{}
	}
	return KeepVehicleOnClose{}
}

// EffectOf maps an audit record to its vehicle side effect.
func EffectOf(rec TransitionRecord, policy VehicleReleasePolicy) VehicleEffect {
	switch {
	case rec.Kind == KindCreate:
		return VehicleOptioned
	case rec.To == StatusCompleted:
		return VehicleSold
	case rec.To.IsTerminal() && policy != nil && policy.ReleaseOnClose():
		return VehicleReleased
	default:
		return VehicleUnchanged
	}
}
