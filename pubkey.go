package ordscript

import (
	"fmt"

	"github.com/ModChain/secp256k1"
)

// ParsePublicKey parses a compressed (33 bytes) or uncompressed (65 bytes)
// secp256k1 public key. Any other length, an unknown prefix byte or a point
// not on the curve yields an error wrapping [ErrInvalidKeyEncoding].
func ParsePublicKey(buf []byte) (*secp256k1.PublicKey, error) {
	switch len(buf) {
	case secp256k1.PubKeyBytesLenCompressed, secp256k1.PubKeyBytesLenUncompressed:
	default:
		return nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidKeyEncoding, len(buf))
	}
	key, err := secp256k1.ParsePubKey(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKeyEncoding, err)
	}
	return key, nil
}

// xOnly returns the 32 bytes x coordinate of key, as used by BIP340/341.
func xOnly(key *secp256k1.PublicKey) []byte {
	return key.SerializeCompressed()[1:]
}

// PubKeyInsert is an [Insertable] resolving to a serialization of the [Script] public key.
type PubKeyInsert int

const (
	IPubKeyComp PubKeyInsert = iota
	IPubKey
	IPubKeyXOnly
)

func (pk PubKeyInsert) Bytes(s *Script) ([]byte, error) {
	switch pk {
	case IPubKeyComp:
		return s.pubkey.SerializeCompressed(), nil
	case IPubKey:
		return s.pubkey.SerializeUncompressed(), nil
	case IPubKeyXOnly:
		return xOnly(s.pubkey), nil
	default:
		return nil, fmt.Errorf("invalid value for PubKeyInsert: %d", pk)
	}
}

func (pk PubKeyInsert) String() string {
	switch pk {
	case IPubKeyComp:
		return "PubKey(compressed)"
	case IPubKey:
		return "PubKey(uncompressed)"
	case IPubKeyXOnly:
		return "PubKey(x-only)"
	default:
		return fmt.Sprintf("PubKeyInsert(%d)", pk)
	}
}
