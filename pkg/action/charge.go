package action

import (
	carserver "github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/carserver"
)

// SetChargingEnabled starts or stops charging.
func SetChargingEnabled(enabled bool) *carserver.VehicleAction {
	return &carserver.VehicleAction{
		ChargingStartStopAction: &carserver.ChargingStartStopAction{
			Start: enabled,
			Stop:  !enabled,
		},
	}
}

// SetChargingAmps sets the vehicle's maximum charge current, in amps.
func SetChargingAmps(amps int32) *carserver.VehicleAction {
	return &carserver.VehicleAction{
		SetChargingAmpsAction: &carserver.SetChargingAmpsAction{ChargingAmps: amps},
	}
}

// SetChargingLimit sets the vehicle's charge limit, as a percentage of full
// capacity.
func SetChargingLimit(percent int32) *carserver.VehicleAction {
	return &carserver.VehicleAction{
		ChargingSetLimitAction: &carserver.ChargingSetLimitAction{Percent: percent},
	}
}

// UnlockChargePort opens the charge port door.
func UnlockChargePort() *carserver.VehicleAction {
	return &carserver.VehicleAction{
		ChargePortDoorOpen: &carserver.ChargePortDoorOpen{},
	}
}

// PollInfotainment builds a field-masked vehicle data request for the given
// fields (e.g. carserver.VehicleDataField_CHARGE_STATE).
func PollInfotainment(fields ...carserver.VehicleDataField) *carserver.VehicleDataRequest {
	return &carserver.VehicleDataRequest{Fields: fields}
}
