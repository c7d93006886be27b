// Utility for generating, exporting, deleting, and vouching for a local controller identity key.
package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"
	"github.com/teslamotors/ble-vehicle-core/internal/authentication"
	"github.com/teslamotors/ble-vehicle-core/internal/log"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol"
	"github.com/teslamotors/ble-vehicle-core/pkg/sign"
	"github.com/teslamotors/ble-vehicle-core/pkg/store"
	"github.com/teslamotors/ble-vehicle-core/pkg/store/keyringstore"
)

func writeErr(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintf(os.Stderr, "\n")
}

const usageText = `
Creates, exports, or deletes a local controller private key in the system keyring.

The program writes the public key to stdout (except when deleting a key). When using the create
option, the program will not overwrite an existing key unless invoked with -f.

The voucher command signs an enrollment voucher JWT with the stored private key, which a
companion app can hand to a vehicle to bootstrap trust in this controller's public key without a
cloud fallback. Use -vin to scope the voucher to a single vehicle, or -fleet to mint a voucher
trusted by every vehicle that already trusts this key.`

func cliUsage() {
	usage(flag.CommandLine.Output())
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [OPTION...] create|delete|export|voucher\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(w, usageText)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "OPTIONS:")
	flag.PrintDefaults()
}

func printPublicKey(skey protocol.ECDHPrivateKey) bool {
	pkey := ecdsa.PublicKey{Curve: elliptic.P256()}
	pkey.X, pkey.Y = elliptic.Unmarshal(elliptic.P256(), skey.PublicBytes())
	if pkey.X == nil {
		return false
	}
	derPublicKey, err := x509.MarshalPKIXPublicKey(&pkey)
	if err != nil {
		return false
	}
	pem.Encode(os.Stdout, &pem.Block{Type: "PUBLIC KEY", Bytes: derPublicKey})
	return true
}

func printPrivateKey(skey protocol.ECDHPrivateKey) error {
	native, ok := skey.(*authentication.NativeECDHKey)
	if !ok {
		return fmt.Errorf("private key is not exportable")
	}
	derPrivateKey, err := x509.MarshalECPrivateKey(native.PrivateKey)
	if err != nil {
		return err
	}
	pem.Encode(os.Stdout, &pem.Block{Type: "EC PRIVATE KEY", Bytes: derPrivateKey})
	return nil
}

func loadFromStore(s store.Store) (protocol.ECDHPrivateKey, error) {
	raw, err := s.Load(store.KeyPrivateKey)
	if err != nil {
		return nil, err
	}
	skey := protocol.UnmarshalECDHPrivateKey(raw)
	if skey == nil {
		return nil, fmt.Errorf("invalid private key in keyring")
	}
	return skey, nil
}

func saveToStore(s store.Store, skey protocol.ECDHPrivateKey) error {
	native, ok := skey.(*authentication.NativeECDHKey)
	if !ok {
		return fmt.Errorf("key is not exportable")
	}
	scalar := make([]byte, 32)
	native.D.FillBytes(scalar)
	return s.Save(store.KeyPrivateKey, scalar)
}

// issueVoucher signs an enrollment voucher JWT with skey, scoped to vin unless fleet is set, in
// which case it is trusted by every vehicle that already trusts skey's public key.
func issueVoucher(skey protocol.ECDHPrivateKey, vin, app string, fleet bool) (string, error) {
	claims := jwt.MapClaims{}
	if fleet {
		return sign.MessageForFleet(skey, app, claims)
	}
	if vin == "" {
		return "", fmt.Errorf("-vin is required unless -fleet is set")
	}
	return sign.MessageForVehicle(skey, vin, app, claims)
}

func main() {
	var (
		overwrite bool
		keyName   string
		debug     bool
		vin       string
		app       string
		fleet     bool
		skey      protocol.ECDHPrivateKey
		err       error
	)
	status := 1
	defer func() {
		os.Exit(status)
	}()

	flag.Usage = cliUsage
	flag.BoolVar(&overwrite, "f", false, "Overwrite existing key if it exists")
	flag.StringVar(&keyName, "key-name", "default", "Name under which to store the key in the system keyring")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&vin, "vin", "", "Vehicle identification number to scope a voucher to (voucher command)")
	flag.StringVar(&app, "app", "tesla-keygen", "Application name to embed in a voucher's audience (voucher command)")
	flag.BoolVar(&fleet, "fleet", false, "Mint a voucher trusted by every vehicle that trusts this key, instead of a single VIN (voucher command)")
	flag.Parse()
	if debug {
		log.SetLevel(log.LevelDebug)
	}

	if flag.NArg() != 1 {
		usage(os.Stderr)
		return
	}

	kr, err := keyringstore.Open(keyName)
	if err != nil {
		writeErr("Failed to open system keyring: %s", err)
		return
	}

	switch flag.Arg(0) {
	case "delete":
		if err := kr.Remove(store.KeyPrivateKey); err != nil {
			writeErr("Failed to delete key: %s", err)
		} else {
			status = 0
		}
		return
	case "create":
		if !overwrite {
			if skey, err = loadFromStore(kr); err == nil {
				if ok := printPublicKey(skey); !ok {
					writeErr("Failed to parse key. The keyring may be corrupted. Run with -f to generate new key.")
					return
				}
				status = 0
				return
			}
		}
		skey, err = authentication.NewECDHPrivateKey(rand.Reader)
		if err != nil {
			writeErr("Failed to generate private key: %s", err)
			return
		}
	case "export":
		skey, err = loadFromStore(kr)
		if err == nil {
			err = printPrivateKey(skey)
		}
		if err != nil {
			writeErr("Failed to export private key: %s", err)
		}
		return
	case "voucher":
		skey, err = loadFromStore(kr)
		if err != nil {
			writeErr("Failed to load private key: %s", err)
			return
		}
		voucher, err := issueVoucher(skey, vin, app, fleet)
		if err != nil {
			writeErr("Failed to issue voucher: %s", err)
			return
		}
		fmt.Println(voucher)
		status = 0
		return
	default:
		writeErr("Unrecognized command-line argument.")
		writeErr("")
		usage(os.Stderr)
		return
	}

	if err = saveToStore(kr, skey); err != nil {
		writeErr("Failed to save key to keyring: %s", err)
		return
	}

	if ok := printPublicKey(skey); !ok {
		writeErr("Failed to extract public key. Run with -f to generate new key pair.")
		return
	}
	status = 0
}
