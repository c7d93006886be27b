// Package carserver reproduces the subset of car_server.proto this client
// needs: the INFOTAINMENT domain's vehicle-action envelope (charging
// commands) and its response/status reporting.
//
// See the package doc comment on protocol/wire for why these types are
// hand-authored rather than protoc-generated.
package carserver

import (
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/wire"
)

type OperationStatus_E int32

const (
	OperationStatus_E_OPERATIONSTATUS_OK    OperationStatus_E = 0
	OperationStatus_E_OPERATIONSTATUS_WAIT  OperationStatus_E = 1
	OperationStatus_E_OPERATIONSTATUS_ERROR OperationStatus_E = 2
)

// ChargingSetLimitAction sets the charge limit, expressed as a percentage.
type ChargingSetLimitAction struct {
	Percent int32
}

func (a *ChargingSetLimitAction) Marshal() []byte {
	var buf []byte
	buf = wire.AppendUint32Field(buf, 1, uint32(a.Percent))
	return buf
}

// ChargingStartStopAction starts or stops charging.
type ChargingStartStopAction struct {
	Start bool
	Stop  bool
}

func (a *ChargingStartStopAction) Marshal() []byte {
	var buf []byte
	if a.Start {
		buf = wire.AppendPresenceField(buf, 1)
	}
	if a.Stop {
		buf = wire.AppendPresenceField(buf, 2)
	}
	return buf
}

// SetChargingAmpsAction sets the maximum charge current, in amps.
type SetChargingAmpsAction struct {
	ChargingAmps int32
}

func (a *SetChargingAmpsAction) Marshal() []byte {
	var buf []byte
	buf = wire.AppendUint32Field(buf, 1, uint32(a.ChargingAmps))
	return buf
}

// ChargePortDoorOpen requests the charge port door be opened (unlatched).
// It carries no fields; the action is entirely conveyed by which oneof arm
// of VehicleAction is present.
type ChargePortDoorOpen struct{}

// ChargePortDoorClose requests the charge port door be closed.
type ChargePortDoorClose struct{}

// VehicleAction is the oneof of concrete actions this client issues to the
// INFOTAINMENT domain. Only one field is populated per instance. GetVehicleData
// rides the same envelope as the charge commands, matching how car_server.proto
// folds state reads into VehicleAction rather than giving them a separate message.
type VehicleAction struct {
	ChargingSetLimitAction  *ChargingSetLimitAction
	ChargingStartStopAction *ChargingStartStopAction
	SetChargingAmpsAction   *SetChargingAmpsAction
	ChargePortDoorOpen      *ChargePortDoorOpen
	ChargePortDoorClose     *ChargePortDoorClose
	GetVehicleData          *VehicleDataRequest
}

const (
	fieldChargingSetLimitAction  = 20
	fieldChargingStartStopAction = 38
	fieldSetChargingAmpsAction   = 36
	fieldChargePortDoorOpen      = 15
	fieldChargePortDoorClose     = 83
	fieldGetVehicleData          = 23
)

func (v *VehicleAction) Marshal() []byte {
	var buf []byte
	switch {
	case v.ChargingSetLimitAction != nil:
		buf = wire.AppendBytesField(buf, fieldChargingSetLimitAction, v.ChargingSetLimitAction.Marshal())
	case v.ChargingStartStopAction != nil:
		buf = wire.AppendBytesField(buf, fieldChargingStartStopAction, v.ChargingStartStopAction.Marshal())
	case v.SetChargingAmpsAction != nil:
		buf = wire.AppendBytesField(buf, fieldSetChargingAmpsAction, v.SetChargingAmpsAction.Marshal())
	case v.ChargePortDoorOpen != nil:
		buf = wire.AppendPresenceField(buf, fieldChargePortDoorOpen)
	case v.ChargePortDoorClose != nil:
		buf = wire.AppendPresenceField(buf, fieldChargePortDoorClose)
	case v.GetVehicleData != nil:
		buf = wire.AppendBytesField(buf, fieldGetVehicleData, v.GetVehicleData.Marshal())
	}
	return buf
}

// Action wraps a VehicleAction, the only action category this client uses.
type Action struct {
	VehicleAction *VehicleAction
}

func (a *Action) Marshal() ([]byte, error) {
	var buf []byte
	if a.VehicleAction != nil {
		buf = wire.AppendBytesField(buf, 2, a.VehicleAction.Marshal())
	}
	return buf, nil
}

// Response carries the INFOTAINMENT domain's reply: either the
// acknowledgement of an Action or the VehicleData requested by a
// GetVehicleData action, depending on which request produced it.
type Response struct {
	ActionStatus *ActionStatus
	VehicleData  *VehicleData
}

const fieldResponseVehicleData = 8

// ActionStatus reports whether an Action succeeded.
type ActionStatus struct {
	Result       OperationStatus_E
	ResultReason string
}

func (r *Response) GetActionStatus() *ActionStatus {
	if r == nil {
		return nil
	}
	return r.ActionStatus
}

// GetVehicleData returns the decoded vehicle data, or nil if this response
// did not carry one.
func (r *Response) GetVehicleData() *VehicleData {
	if r == nil {
		return nil
	}
	return r.VehicleData
}

// Unmarshal decodes buf, a serialized Response, into r.
func (r *Response) Unmarshal(buf []byte) error {
	return wire.Each(buf, func(f wire.Field) error {
		switch f.Num {
		case 2:
			as := &ActionStatus{}
			_ = wire.Each(f.Bytes, func(inner wire.Field) error {
				switch inner.Num {
				case 1:
					as.Result = OperationStatus_E(inner.Varint)
				case 2:
					as.ResultReason = string(inner.Bytes)
				}
				return nil
			})
			r.ActionStatus = as
		case fieldResponseVehicleData:
			vd := &VehicleData{}
			_ = vd.Unmarshal(f.Bytes)
			r.VehicleData = vd
		}
		return nil
	})
}

// VehicleDataField enumerates the infotainment state fields this client can
// request via PollInfotainment's field mask.
type VehicleDataField int32

const (
	VehicleDataField_CHARGE_STATE  VehicleDataField = 0
	VehicleDataField_CLIMATE_STATE VehicleDataField = 1
	VehicleDataField_DRIVE_STATE   VehicleDataField = 2
	VehicleDataField_VEHICLE_STATE VehicleDataField = 3
)

// VehicleDataRequest asks for a subset of vehicle state, addressed by field
// mask, mirroring GetVehicleData's selective-retrieval behavior.
type VehicleDataRequest struct {
	Fields []VehicleDataField
}

func (m *VehicleDataRequest) Marshal() []byte {
	var buf []byte
	for _, f := range m.Fields {
		buf = wire.AppendVarint(wire.AppendTag(buf, 1, wire.WireVarint), uint64(f))
	}
	return buf
}

// VehicleData is the decoded response to a VehicleDataRequest. Only the
// fields this client consumes are modeled; everything else is dropped
// during decode.
type VehicleData struct {
	ChargeState *ChargeState
}

// ChargeState reports the subset of charge-related telemetry this client
// surfaces to callers after a poll_infotainment(CHARGE_STATE) request.
type ChargeState struct {
	BatteryLevel   int32
	ChargingState  string
	ChargeLimitSoc int32
	ChargeAmps     int32
}

func (d *VehicleData) Unmarshal(buf []byte) error {
	return wire.Each(buf, func(f wire.Field) error {
		if f.Num == 1 {
			cs := &ChargeState{}
			_ = wire.Each(f.Bytes, func(inner wire.Field) error {
				switch inner.Num {
				case 1:
					cs.BatteryLevel = int32(inner.Varint)
				case 2:
					cs.ChargingState = string(inner.Bytes)
				case 3:
					cs.ChargeLimitSoc = int32(inner.Varint)
				case 4:
					cs.ChargeAmps = int32(inner.Varint)
				}
				return nil
			})
			d.ChargeState = cs
		}
		return nil
	})
}
