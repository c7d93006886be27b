package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-ble/ble"
	"github.com/go-ble/ble/linux"
	"github.com/go-ble/ble/linux/hci/cmd"
)

const bleTimeout = 20 * time.Second

var scanParams = cmd.LESetScanParameters{
	LEScanType:           1,    // Active scanning
	LEScanInterval:       0x10, // 10ms
	LEScanWindow:         0x10, // 10ms
	OwnAddressType:       0,    // Static
	ScanningFilterPolicy: 2,    // Basic filtered
}

// newDevice opens the first HCI adapter found under /sys/class/bluetooth,
// grounded in the teacher's pkg/connector/ble Linux bring-up: active
// scanning, generous dial/listen timeouts so a sleeping vehicle's slow
// advertisement interval doesn't time out the scan.
func newDevice() (ble.Device, error) {
	hciName, err := firstAvailableHCI()
	if err != nil {
		return nil, fmt.Errorf("failed to find available Bluetooth adapter: %w", err)
	}
	opts := []ble.Option{
		ble.OptListenerTimeout(bleTimeout),
		ble.OptDialerTimeout(bleTimeout),
		ble.OptScanParams(scanParams),
		ble.OptDeviceID(hciIndex(hciName)),
	}
	return linux.NewDevice(opts...)
}

func firstAvailableHCI() (string, error) {
	devices, err := filepath.Glob("/sys/class/bluetooth/hci*")
	if err != nil {
		return "", fmt.Errorf("failed to list HCI devices: %w", err)
	}
	for _, device := range devices {
		if _, err := os.Stat(device); err == nil {
			return filepath.Base(device), nil
		}
	}
	return "", fmt.Errorf("no available HCI devices found")
}

func hciIndex(hci string) int {
	var index int
	if _, err := fmt.Sscanf(hci, "hci%d", &index); err != nil {
		return 0
	}
	return index
}
