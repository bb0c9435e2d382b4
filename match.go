package ordscript

import (
	"bytes"
	"errors"

	"github.com/ModChain/secp256k1"
)

// formats of the base intents, in matching order
var baseFormats = []struct {
	name   string
	intent OutputIntent
}{
	{"p2pkh", P2PKH{}},
	{"p2pukh", P2PKH{}},
	{"p2wpkh", P2WPKH{}},
	{"p2tr", P2TRKeyPath{}},
}

// MatchIntent returns the base intent paying to pubkey with the given output
// script. Both encodings of pubkey are tried for P2PKH. Inscription outputs
// cannot be matched without their reveal script, see
// [VerifyInscriptionCommitment].
func MatchIntent(script []byte, pubkey *secp256k1.PublicKey) (OutputIntent, error) {
	s := New(pubkey)
	for _, f := range baseFormats {
		res, err := s.Generate(f.name)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(res, script) {
			return f.intent, nil
		}
	}
	return nil, errors.New("output script does not pay to this key")
}
