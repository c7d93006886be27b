package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/teslamotors/ble-vehicle-core/pkg/engine"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/carserver"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/keys"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/vcsec"
)

// commandInfo describes one interactive-shell / single-shot verb, mirroring
// the teacher's tesla-control command table: a short help string for the
// listing, a runner that submits the command and prints whatever the
// vehicle returned, and a usage string for "help COMMAND".
type commandInfo struct {
	help  string
	usage string
	run   func(ctx context.Context, e *engine.Engine, args []string) error
}

func waitFor(ctx context.Context, e *engine.Engine, handle *engine.Handle, err error) (engine.Result, error) {
	if err != nil {
		return engine.Result{}, err
	}
	return handle.Wait(ctx)
}

func printResult(label string, res engine.Result) {
	switch {
	case res.VehicleStatus != nil:
		fmt.Printf("%s: lock=%v sleep=%v\n", label, res.VehicleStatus.VehicleLockState, res.VehicleStatus.GetVehicleSleepStatus())
	case res.VehicleData != nil && res.VehicleData.ChargeState != nil:
		cs := res.VehicleData.ChargeState
		fmt.Printf("%s: battery=%d%% charging_state=%s limit=%d%% amps=%d\n", label, cs.BatteryLevel, cs.ChargingState, cs.ChargeLimitSoc, cs.ChargeAmps)
	case res.ActionStatus != nil:
		fmt.Printf("%s: ok\n", label)
	default:
		fmt.Printf("%s: ok\n", label)
	}
}

var commands = map[string]commandInfo{
	"wake": {
		help:  "Wake the vehicle from sleep",
		usage: "wake",
		run: func(ctx context.Context, e *engine.Engine, args []string) error {
			res, err := waitFor(ctx, e, e.WakeVehicle())
			if err != nil {
				return err
			}
			printResult("wake", res)
			return res.Err
		},
	},
	"lock-status": {
		help:  "Poll the vehicle's lock and sleep status",
		usage: "lock-status",
		run: func(ctx context.Context, e *engine.Engine, args []string) error {
			res, err := waitFor(ctx, e, e.PollVCSECStatus())
			if err != nil {
				return err
			}
			printResult("lock-status", res)
			return res.Err
		},
	},
	"charge-state": {
		help:  "Poll the vehicle's charge state",
		usage: "charge-state",
		run: func(ctx context.Context, e *engine.Engine, args []string) error {
			res, err := waitFor(ctx, e, e.PollInfotainment(carserver.VehicleDataField_CHARGE_STATE))
			if err != nil {
				return err
			}
			printResult("charge-state", res)
			return res.Err
		},
	},
	"charge-start": {
		help:  "Start charging",
		usage: "charge-start",
		run: func(ctx context.Context, e *engine.Engine, args []string) error {
			res, err := waitFor(ctx, e, e.SetChargingEnabled(true))
			if err != nil {
				return err
			}
			printResult("charge-start", res)
			return res.Err
		},
	},
	"charge-stop": {
		help:  "Stop charging",
		usage: "charge-stop",
		run: func(ctx context.Context, e *engine.Engine, args []string) error {
			res, err := waitFor(ctx, e, e.SetChargingEnabled(false))
			if err != nil {
				return err
			}
			printResult("charge-stop", res)
			return res.Err
		},
	},
	"charge-limit": {
		help:  "Set the charge limit, as a percentage",
		usage: "charge-limit PERCENT",
		run: func(ctx context.Context, e *engine.Engine, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: charge-limit PERCENT")
			}
			percent, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid percent: %w", err)
			}
			res, err := waitFor(ctx, e, e.SetChargingLimit(int32(percent)))
			if err != nil {
				return err
			}
			printResult("charge-limit", res)
			return res.Err
		},
	},
	"charge-amps": {
		help:  "Set the maximum charge current, in amps",
		usage: "charge-amps AMPS",
		run: func(ctx context.Context, e *engine.Engine, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: charge-amps AMPS")
			}
			amps, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amps: %w", err)
			}
			res, err := waitFor(ctx, e, e.SetChargingAmps(int32(amps)))
			if err != nil {
				return err
			}
			printResult("charge-amps", res)
			return res.Err
		},
	},
	"charge-port-unlock": {
		help:  "Open the charge port door",
		usage: "charge-port-unlock",
		run: func(ctx context.Context, e *engine.Engine, args []string) error {
			res, err := waitFor(ctx, e, e.UnlockChargePort())
			if err != nil {
				return err
			}
			printResult("charge-port-unlock", res)
			return res.Err
		},
	},
	"add-key": {
		help:  "Enroll this controller's key on the vehicle (tap a paired key card first)",
		usage: "add-key ROLE FORM_FACTOR, e.g. add-key owner android",
		run: func(ctx context.Context, e *engine.Engine, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("usage: %s", "add-key ROLE FORM_FACTOR")
			}
			role, ok := parseRole(args[0])
			if !ok {
				return fmt.Errorf("unrecognized role %q (owner, driver, fleet-manager, vehicle-monitor)", args[0])
			}
			formFactor, ok := parseFormFactor(args[1])
			if !ok {
				return fmt.Errorf("unrecognized form factor %q (nfc-card, android, ios, cloud)", args[1])
			}
			confirmPairingPIN()
			res, err := waitFor(ctx, e, e.StartPairing(role, formFactor))
			if err != nil {
				return err
			}
			printResult("add-key", res)
			return res.Err
		},
	},
}

func parseRole(s string) (keys.Role, bool) {
	switch s {
	case "owner":
		return keys.Role_ROLE_OWNER, true
	case "driver":
		return keys.Role_ROLE_DRIVER, true
	case "fleet-manager":
		return keys.Role_ROLE_FM_DRIVER, true
	case "vehicle-monitor":
		return keys.Role_ROLE_VEHICLE_MONITOR, true
	}
	return keys.Role_ROLE_UNKNOWN, false
}

func parseFormFactor(s string) (vcsec.KeyFormFactor, bool) {
	switch s {
	case "nfc-card":
		return vcsec.KeyFormFactor_KEY_FORM_FACTOR_NFC_CARD, true
	case "android":
		return vcsec.KeyFormFactor_KEY_FORM_FACTOR_ANDROID_DEVICE, true
	case "ios":
		return vcsec.KeyFormFactor_KEY_FORM_FACTOR_IOS_DEVICE, true
	case "cloud":
		return vcsec.KeyFormFactor_KEY_FORM_FACTOR_CLOUD_KEY, true
	}
	return vcsec.KeyFormFactor_KEY_FORM_FACTOR_UNKNOWN, false
}
