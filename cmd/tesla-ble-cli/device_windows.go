package main

import (
	"errors"

	"github.com/go-ble/ble"
)

func newDevice() (ble.Device, error) {
	return nil, errors.New("tesla-ble-cli: BLE central not supported on Windows")
}
