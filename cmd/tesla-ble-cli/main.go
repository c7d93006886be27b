// Command tesla-ble-cli drives a single vehicle over a direct BLE
// connection: wake it, poll its lock and charge state, and issue charging
// commands, entirely offline (no Tesla account or internet connectivity
// required). It is this module's analog of the teacher's tesla-control,
// trimmed to the BLE-only transport and the charging/security command set
// pkg/engine exposes.
package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-ble/ble"
	"github.com/google/shlex"

	"github.com/teslamotors/ble-vehicle-core/internal/authentication"
	"github.com/teslamotors/ble-vehicle-core/internal/log"
	"github.com/teslamotors/ble-vehicle-core/pkg/engine"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol"
	"github.com/teslamotors/ble-vehicle-core/pkg/store"
	"github.com/teslamotors/ble-vehicle-core/pkg/store/keyringstore"
	"github.com/teslamotors/ble-vehicle-core/pkg/transport/blecentral"
)

func writeErr(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintf(os.Stderr, "\n")
}

const usage = `
 * VIN is always required.
 * A local private key (-key-file or -key-name) is required for every
   command except add-key's initial bootstrap, which only needs the
   corresponding public key to already be loaded on the vehicle.`

func Usage() {
	fmt.Printf("Usage: %s [OPTION...] VIN COMMAND [ARG...]\n", os.Args[0])
	fmt.Printf("\nRun %s help COMMAND for more information. Valid COMMANDs are listed below.", os.Args[0])
	fmt.Println("")
	fmt.Println(usage)
	fmt.Println("")
	fmt.Printf("Available OPTIONs:\n")
	flag.PrintDefaults()
	fmt.Println("")
	fmt.Printf("Available COMMANDs:\n")
	maxLength := 0
	var labels []string
	for name := range commands {
		labels = append(labels, name)
		if len(name) > maxLength {
			maxLength = len(name)
		}
	}
	sort.Strings(labels)
	for _, name := range labels {
		info := commands[name]
		fmt.Printf("  %s%s %s\n", name, strings.Repeat(" ", maxLength-len(name)), info.help)
	}
}

// confirmPairingPIN masks the operator's confirmation of the pairing PIN
// the vehicle displays on its center screen during add-key, the same way
// the teacher's keyring unlock prompt masks terminal input -- it isn't fed
// into the protocol (PRESENT_KEY carries no PIN field), it just keeps the
// PIN out of shell history and scrollback while the operator eyeballs it
// against the vehicle's screen.
func confirmPairingPIN() {
	fd := int(os.Stdin.Fd())
	if !termIsTerminal(fd) {
		return
	}
	fmt.Fprint(os.Stderr, "Confirm the PIN shown on the vehicle's screen, then press Enter: ")
	if _, err := termReadPassword(fd); err != nil {
		writeErr("(could not read confirmation: %s, continuing anyway)", err)
		return
	}
	fmt.Fprintln(os.Stderr)
}

func runCommand(ctx context.Context, e *engine.Engine, args []string, timeout time.Duration) int {
	info, ok := commands[args[0]]
	if !ok {
		writeErr("Unrecognized command: %s", args[0])
		return 1
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := info.run(cctx, e, args[1:]); err != nil {
		if protocol.MayHaveSucceeded(err) {
			writeErr("Couldn't verify success: %s", err)
		} else {
			writeErr("Failed to execute command: %s", err)
		}
		return 1
	}
	return 0
}

func runInteractiveShell(ctx context.Context, e *engine.Engine, timeout time.Duration) int {
	scanner := bufio.NewScanner(os.Stdin)
	for fmt.Printf("> "); scanner.Scan(); fmt.Printf("> ") {
		args, err := shlex.Split(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" {
			return 0
		}
		if err != nil {
			writeErr("Invalid command: %s", err)
			continue
		}
		if args[0] == "help" {
			Usage()
			continue
		}
		runCommand(ctx, e, args, timeout)
	}
	if err := scanner.Err(); err != nil {
		writeErr("Error reading command: %s", err)
		return 1
	}
	return 0
}

// loadKey resolves the local controller identity from either a PEM file or
// the system keyring, generating and persisting a fresh one if neither
// exists and -generate was passed.
func loadKey(keyFile, keyName string, generate bool) (authentication.ECDHPrivateKey, store.Store, error) {
	if keyFile != "" {
		skey, err := protocol.LoadPrivateKey(keyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("loading -key-file: %w", err)
		}
		return skey, store.NewMemoryStore(), nil
	}

	kr, err := keyringstore.Open(keyName)
	if err != nil {
		return nil, nil, fmt.Errorf("opening system keyring: %w", err)
	}
	raw, err := kr.Load(store.KeyPrivateKey)
	if err == nil {
		skey := protocol.UnmarshalECDHPrivateKey(raw)
		if skey == nil {
			return nil, nil, fmt.Errorf("corrupt private key in keyring %q", keyName)
		}
		return skey, kr, nil
	}
	if !errors.Is(err, store.ErrNotFound) || !generate {
		return nil, nil, fmt.Errorf("loading key from keyring: %w", err)
	}

	skey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generating private key: %w", err)
	}
	native := skey.(*authentication.NativeECDHKey)
	scalar := make([]byte, 32)
	native.D.FillBytes(scalar)
	if err := kr.Save(store.KeyPrivateKey, scalar); err != nil {
		return nil, nil, fmt.Errorf("saving generated key to keyring: %w", err)
	}
	return skey, kr, nil
}

func pumpEngine(ctx context.Context, e *engine.Engine, conn *blecentral.Connection) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Tick()
			if err := e.Drain(conn); err != nil {
				log.Warning("tesla-ble-cli: write: %s", err)
			}
		}
	}
}

func main() {
	status := 1
	defer func() { os.Exit(status) }()

	var (
		debug       bool
		keyFile     string
		keyName     string
		generate    bool
		connTimeout time.Duration
		cmdTimeout  time.Duration
	)
	flag.Usage = Usage
	flag.BoolVar(&debug, "debug", false, "Enable verbose debugging messages")
	flag.StringVar(&keyFile, "key-file", "", "Load the local private key from this PEM file instead of the system keyring")
	flag.StringVar(&keyName, "key-name", "default", "Name under which the local private key is stored in the system keyring")
	flag.BoolVar(&generate, "generate", false, "Generate and persist a new keyring key if -key-name doesn't exist yet")
	flag.DurationVar(&connTimeout, "connect-timeout", 20*time.Second, "Timeout for scanning and connecting to the vehicle")
	flag.DurationVar(&cmdTimeout, "command-timeout", 5*time.Second, "Timeout for each command sent to the vehicle")
	flag.Parse()
	if debug {
		log.SetLevel(log.LevelDebug)
	}

	args := flag.Args()
	if len(args) > 0 && args[0] == "help" {
		if len(args) == 1 {
			Usage()
			status = 0
			return
		}
		info, ok := commands[args[1]]
		if !ok {
			writeErr("Unrecognized command: %s", args[1])
			return
		}
		fmt.Println(info.usage)
		status = 0
		return
	}
	if len(args) < 1 {
		Usage()
		return
	}
	vin := args[0]
	rest := args[1:]

	skey, st, err := loadKey(keyFile, keyName, generate)
	if err != nil {
		writeErr("Error loading private key: %s", err)
		return
	}

	device, err := newDevice()
	if err != nil {
		writeErr("Error opening Bluetooth adapter: %s", err)
		return
	}
	ble.SetDefaultDevice(device)

	e := engine.New(vin, skey, st)
	e.EnableStatusPolling(nil)

	connCtx, cancelConn := context.WithTimeout(context.Background(), connTimeout)
	defer cancelConn()
	conn, err := blecentral.Dial(connCtx, device, protocol.AdvertisementName(vin), e.OnBytesReceived)
	if err != nil {
		writeErr("Error connecting to vehicle: %s", err)
		return
	}
	defer conn.Close()
	e.SetMTU(conn.MTU())
	e.OnConnected()

	pumpCtx, cancelPump := context.WithCancel(context.Background())
	defer cancelPump()
	go pumpEngine(pumpCtx, e, conn)

	if len(rest) > 0 {
		status = runCommand(context.Background(), e, rest, cmdTimeout)
	} else {
		status = runInteractiveShell(context.Background(), e, cmdTimeout)
	}
	e.OnDisconnected()
}
