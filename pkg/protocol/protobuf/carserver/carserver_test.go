package carserver

import (
	"bytes"
	"testing"
)

// TestChargingStartStopActionDistinctWire guards against a regression where
// ChargingStartStopAction.Marshal encoded Start/Stop as the presence of an
// empty embedded submessage via a helper that skips zero-length payloads,
// making Marshal(Start) and Marshal(Stop) indistinguishable (both empty).
func TestChargingStartStopActionDistinctWire(t *testing.T) {
	start := (&ChargingStartStopAction{Start: true}).Marshal()
	stop := (&ChargingStartStopAction{Stop: true}).Marshal()

	if len(start) == 0 {
		t.Fatalf("Marshal(Start) produced an empty message")
	}
	if len(stop) == 0 {
		t.Fatalf("Marshal(Stop) produced an empty message")
	}
	if bytes.Equal(start, stop) {
		t.Fatalf("Marshal(Start) and Marshal(Stop) are identical: %x", start)
	}
}

func TestVehicleActionChargePortDoorDistinctWire(t *testing.T) {
	open := (&VehicleAction{ChargePortDoorOpen: &ChargePortDoorOpen{}}).Marshal()
	closeDoor := (&VehicleAction{ChargePortDoorClose: &ChargePortDoorClose{}}).Marshal()

	if len(open) == 0 || len(closeDoor) == 0 {
		t.Fatalf("charge port door actions must not marshal to empty messages: open=%x close=%x", open, closeDoor)
	}
	if bytes.Equal(open, closeDoor) {
		t.Fatalf("open and close door actions must not share a wire encoding: %x", open)
	}
}

func TestResponseUnmarshalActionStatus(t *testing.T) {
	as := &ActionStatus{Result: OperationStatus_E_OPERATIONSTATUS_OK}
	var buf []byte
	// Build a Response{ActionStatus: as} by hand, mirroring how the vehicle
	// would encode field 2 (ActionStatus) -> field 1 (Result varint).
	var inner []byte
	inner = append(inner, 0x08, byte(as.Result)) // field 1, varint
	buf = append(buf, 0x12, byte(len(inner)))     // field 2, length-delimited
	buf = append(buf, inner...)

	var resp Response
	if err := resp.Unmarshal(buf); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got := resp.GetActionStatus()
	if got == nil {
		t.Fatalf("expected non-nil ActionStatus")
	}
	if got.Result != OperationStatus_E_OPERATIONSTATUS_OK {
		t.Errorf("Result = %v, want OK", got.Result)
	}
}
