package ordscript_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/ModChain/ordscript"
	"github.com/btcsuite/btcd/btcutil"
)

func TestGuessOut(t *testing.T) {
	testV := map[string]string{
		"": "empty",
		"76a91479091972186c449eb1ded22b78e40d009bdf008988ac":                   "p2pkh",
		"001479091972186c449eb1ded22b78e40d009bdf0089":                         "p2wpkh",
		"0020e63971d3beaf08a6a7c19d920023aea5206448ec68856a07a68f2498f20fcc7f": "p2wsh",
		"512053a1f6e454df1aa2776a2814a721372d6258050de330b3c6d10ee8f4e0dda343": "p2tr",
		"a914301550140d26c46ce4a50114a15c20f87602153787":                       "p2sh",
		"6a0568656c6c6f": "op_return",
		"010203":         "invalid",
		"76a91479091972186c449eb1ded22b78e40d009bdf008987": "invalid",
	}

	for script, name := range testV {
		out := ordscript.GuessOut(fromHex(script))
		if out.Name != name {
			t.Errorf("GuessOut(%s) = %s, want %s", script, out.Name, name)
		}
		if out.Script != script {
			t.Errorf("GuessOut(%s) script = %s", script, out.Script)
		}
	}
}

func TestOutHash(t *testing.T) {
	testV := map[string]string{
		"76a91479091972186c449eb1ded22b78e40d009bdf008988ac":                   "79091972186c449eb1ded22b78e40d009bdf0089",
		"001479091972186c449eb1ded22b78e40d009bdf0089":                         "79091972186c449eb1ded22b78e40d009bdf0089",
		"512053a1f6e454df1aa2776a2814a721372d6258050de330b3c6d10ee8f4e0dda343": "53a1f6e454df1aa2776a2814a721372d6258050de330b3c6d10ee8f4e0dda343",
		"a914301550140d26c46ce4a50114a15c20f87602153787":                       "301550140d26c46ce4a50114a15c20f876021537",
	}
	for script, hash := range testV {
		h := ordscript.GuessOut(fromHex(script)).Hash()
		if hex.EncodeToString(h) != hash {
			t.Errorf("hash of %s = %x, want %s", script, h, hash)
		}
	}

	if h := ordscript.GuessOut([]byte{0x01, 0x02, 0x03}).Hash(); h != nil {
		t.Error("expected nil hash for invalid script")
	}
}

func TestOutHashPubKey(t *testing.T) {
	s := ordscript.New(testKey())
	for name, key := range map[string][]byte{
		"p2pkh":  testKey().SerializeCompressed(),
		"p2pukh": testKey().SerializeUncompressed(),
	} {
		h := must(s.Out(name)).Hash()
		if want := btcutil.Hash160(key); !bytes.Equal(h, want) {
			t.Errorf("%s: hash %x, want %x", name, h, want)
		}
	}
}
