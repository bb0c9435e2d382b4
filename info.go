package ordscript

import (
	"bytes"
	"encoding/hex"
)

// Out represents a generated output script with its format name, hex-encoded script,
// and optional flags indicating the target network(s).
type Out struct {
	Name   string   `json:"name"`            // p2tr, etc
	Script string   `json:"script"`          // out script
	Flags  []string `json:"flags,omitempty"` // flags
	raw    []byte
}

// Bytes returns the raw output script bytes.
func (o *Out) Bytes() []byte {
	return o.raw
}

// String returns a human-readable representation of the Out in "name:script" format.
func (o *Out) String() string {
	return o.Name + ":" + o.Script
}

// Hash will extract the hash or witness program part of the Out, or return nil if there is none
func (o *Out) Hash() []byte {
	switch o.Name {
	case "p2wpkh", "p2wsh", "p2tr":
		res, _ := ParsePushBytes(o.raw[1:])
		return res
	case "p2pkh":
		res, _ := ParsePushBytes(o.raw[2:])
		return res
	case "p2sh":
		// 0xa9 <pushbytes> 0x87
		res, _ := ParsePushBytes(o.raw[1:])
		return res
	default:
		return nil
	}
}

func makeOut(name string, script []byte, flags ...string) *Out {
	return &Out{
		Name:   name,
		Script: hex.EncodeToString(script),
		Flags:  flags,
		raw:    script,
	}
}

// GuessOut will return a out matching the provided script, and attempt to
// guess the correct type.
func GuessOut(script []byte) *Out {
	if len(script) == 0 {
		return makeOut("empty", script, "invalid")
	}
	switch script[0] {
	case OP_0: // segwit v0
		switch {
		case len(script) == 22 && script[1] == 0x14:
			return makeOut("p2wpkh", script)
		case len(script) == 34 && script[1] == 0x20:
			return makeOut("p2wsh", script)
		}
	case OP_1: // segwit v1
		if len(script) == 34 && script[1] == 0x20 {
			return makeOut("p2tr", script)
		}
	case OP_RETURN:
		return makeOut("op_return", script)
	case OP_DUP:
		if len(script) == 25 && bytes.HasPrefix(script, []byte{OP_DUP, OP_HASH160, 0x14}) && bytes.HasSuffix(script, []byte{OP_EQUALVERIFY, OP_CHECKSIG}) {
			return makeOut("p2pkh", script)
		}
	case OP_HASH160:
		if len(script) == 23 && script[1] == 0x14 && script[22] == OP_EQUAL {
			return makeOut("p2sh", script)
		}
	}

	// unrecognized
	return makeOut("invalid", script)
}
