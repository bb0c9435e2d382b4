package ordscript_test

import (
	"encoding/hex"

	"github.com/ModChain/ordscript"
	"github.com/ModChain/secp256k1"
)

// NOTE: this private key is public, never use it to hold funds
const testPrivKey = "eb696a065ef48a2192da5b28b694f87544b30fae8327c4510137a922f32c6dcf"

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func testKey() *secp256k1.PublicKey {
	return secp256k1.PrivKeyFromBytes(must(hex.DecodeString(testPrivKey))).PubKey()
}

func fromHex(s string) []byte {
	return must(hex.DecodeString(s))
}

var builder = &ordscript.Builder{}
