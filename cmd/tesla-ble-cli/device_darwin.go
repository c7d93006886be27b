package main

import (
	"github.com/go-ble/ble"
	"github.com/go-ble/ble/darwin"
)

// newDevice opens the CoreBluetooth central. macOS doesn't support selecting
// an adapter by index, unlike the Linux HCI path in device_linux.go.
func newDevice() (ble.Device, error) {
	return darwin.NewDevice()
}
