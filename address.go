package ordscript

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/KarpelesLab/cryptutil"
	"github.com/ModChain/base58"
	"github.com/ModChain/bech32m"
)

type network struct {
	pkh byte   // base58 version of p2pkh addresses
	sh  byte   // base58 version of p2sh addresses
	hrp string // segwit human readable part
}

var networks = map[string]*network{
	"bitcoin":  {pkh: 0x00, sh: 0x05, hrp: "bc"},
	"testnet":  {pkh: 0x6f, sh: 0xc4, hrp: "tb"},
	"litecoin": {pkh: 0x30, sh: 0x32, hrp: "ltc"},
}

func getNetwork(name string) (*network, error) {
	if name == "" {
		name = "bitcoin"
	}
	net, ok := networks[name]
	if !ok {
		return nil, fmt.Errorf("unsupported network %s", name)
	}
	return net, nil
}

// SupportedNetwork returns true if name can be used with [Out.Address] and [ParseAddress].
func SupportedNetwork(name string) bool {
	_, ok := networks[name]
	return ok
}

func encodeBase58addr(vers byte, buf []byte) string {
	buf = slices.Concat([]byte{vers}, buf)
	h := cryptutil.Hash(buf, sha256.New, sha256.New)
	buf = slices.Concat(buf, h[:4])
	return base58.Bitcoin.Encode(buf)
}

// Address returns the address of out on the network named by the first flag,
// or bitcoin when there is none.
func (out *Out) Address(flags ...string) (string, error) {
	flags = slices.Concat(flags, out.Flags)
	name := ""
	if len(flags) > 0 {
		name = flags[0]
	}
	net, err := getNetwork(name)
	if err != nil {
		return "", err
	}

	buf := out.Hash()
	if buf == nil {
		return "", fmt.Errorf("no address format for %s outputs", out.Name)
	}

	switch out.Name {
	case "p2pkh":
		return encodeBase58addr(net.pkh, buf), nil
	case "p2sh":
		return encodeBase58addr(net.sh, buf), nil
	case "p2wpkh", "p2wsh":
		return bech32m.SegwitAddrEncode(net.hrp, 0, buf)
	case "p2tr":
		return bech32m.SegwitAddrEncode(net.hrp, 1, buf)
	}

	return "", fmt.Errorf("no address format for %s outputs", out.Name)
}

// ParseAddress parses an address of the given network and returns the matching output script.
func ParseAddress(networkName, address string) (*Out, error) {
	if networkName == "" {
		networkName = "bitcoin"
	}
	net, err := getNetwork(networkName)
	if err != nil {
		return nil, err
	}

	// segwit
	if strings.HasPrefix(strings.ToLower(address), net.hrp+"1") {
		typ, buf, err := bech32m.SegwitAddrDecode(net.hrp, address)
		if err != nil {
			return nil, fmt.Errorf("failed to parse segwit address: %w", err)
		}
		switch {
		case typ == 0 && len(buf) == 20:
			return makeOut("p2wpkh", slices.Concat([]byte{OP_0}, PushBytes(buf)), networkName), nil
		case typ == 0 && len(buf) == 32:
			return makeOut("p2wsh", slices.Concat([]byte{OP_0}, PushBytes(buf)), networkName), nil
		case typ == 1 && len(buf) == 32:
			return makeOut("p2tr", slices.Concat([]byte{OP_1}, PushBytes(buf)), networkName), nil
		default:
			return nil, fmt.Errorf("unsupported segwit v%d program of %d bytes", typ, len(buf))
		}
	}

	buf, err := base58.Bitcoin.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base58 address: %w", err)
	}
	if len(buf) != 25 {
		return nil, errors.New("invalid base58 address length")
	}
	chk := buf[len(buf)-4:]
	buf = buf[:len(buf)-4]
	h := cryptutil.Hash(buf, sha256.New, sha256.New)
	if subtle.ConstantTimeCompare(h[:4], chk) != 1 {
		return nil, errors.New("bad checksum")
	}

	switch buf[0] {
	case net.pkh:
		script := slices.Concat([]byte{OP_DUP, OP_HASH160}, PushBytes(buf[1:]), []byte{OP_EQUALVERIFY, OP_CHECKSIG})
		return makeOut("p2pkh", script, networkName), nil
	case net.sh:
		script := slices.Concat([]byte{OP_HASH160}, PushBytes(buf[1:]), []byte{OP_EQUAL})
		return makeOut("p2sh", script, networkName), nil
	default:
		return nil, fmt.Errorf("unsupported %s base58 address version=%x", networkName, buf[0])
	}
}
