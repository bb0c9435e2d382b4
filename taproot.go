package ordscript

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ModChain/secp256k1"
)

// BaseLeafVersion is the tapscript leaf version defined by BIP342.
const BaseLeafVersion = 0xc0

// TapLeafHash returns h_TapLeaf(leafVersion || compactSize(script) || script) for
// a tapscript leaf using [BaseLeafVersion].
func TapLeafHash(script []byte) []byte {
	return taggedHash(tagTapLeaf, []byte{BaseLeafVersion}, BtcVarInt(len(script)).Bytes(), script)
}

// TaprootOutputKey derives the taproot output key for the given internal key
// and script tree root:
//
//	Q = P + h_TapTweak(x(P) || root)·G
//
// where P is the internal key with an even y coordinate. An empty root
// commits to the internal key only, which is the key-path only construction.
func TaprootOutputKey(internal *secp256k1.PublicKey, root []byte) (*secp256k1.PublicKey, error) {
	// BIP341 operates on x-only keys, so lift x(P) back to the even-y point
	even, err := secp256k1.ParsePubKey(append([]byte{secp256k1.PubKeyFormatCompressedEven}, xOnly(internal)...))
	if err != nil {
		return nil, err
	}

	var tweak secp256k1.ModNScalar
	if overflow := tweak.SetByteSlice(taggedHash(tagTapTweak, xOnly(even), root)); overflow {
		return nil, errors.New("taproot tweak exceeds the curve order")
	}

	var p, tG, q secp256k1.JacobianPoint
	even.AsJacobian(&p)
	secp256k1.ScalarBaseMultNonConst(&tweak, &tG)
	secp256k1.AddNonConst(&p, &tG, &q)
	q.ToAffine()
	if q.X.IsZero() && q.Y.IsZero() {
		return nil, errors.New("taproot output key is the point at infinity")
	}

	return secp256k1.NewPublicKey(&q.X, &q.Y), nil
}

// ITapTweak is an [Insertable] resolving to the x-only taproot output key of
// the [Script] public key. Root, if not nil, provides the script tree root
// the output commits to.
type ITapTweak struct {
	Root Insertable
}

func (i ITapTweak) Bytes(s *Script) ([]byte, error) {
	var root []byte
	if i.Root != nil {
		var err error
		root, err = i.Root.Bytes(s)
		if err != nil {
			return nil, err
		}
	}
	key, err := TaprootOutputKey(s.pubkey, root)
	if err != nil {
		return nil, err
	}
	return xOnly(key), nil
}

func (i ITapTweak) String() string {
	if i.Root == nil {
		return "TapTweak(PubKey)"
	}
	return fmt.Sprintf("TapTweak(PubKey, %s)", i.Root)
}

// VerifyInscriptionCommitment checks that scriptPubkey is the P2TR output
// committing to reveal as its single tapscript leaf, with the key pushed at
// the start of reveal as internal key.
func VerifyInscriptionCommitment(scriptPubkey, reveal []byte) error {
	out := GuessOut(scriptPubkey)
	if out.Name != "p2tr" {
		return fmt.Errorf("expected a p2tr output, got %s", out.Name)
	}
	_, inscribeTo, err := ParseEnvelope(reveal)
	if err != nil {
		return err
	}
	internal, err := secp256k1.ParsePubKey(append([]byte{secp256k1.PubKeyFormatCompressedEven}, inscribeTo...))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidKeyEncoding, err)
	}
	key, err := TaprootOutputKey(internal, TapLeafHash(reveal))
	if err != nil {
		return err
	}
	if !bytes.Equal(xOnly(key), out.Hash()) {
		return errors.New("output key does not commit to the reveal script")
	}
	return nil
}
