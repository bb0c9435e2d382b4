package ordscript_test

import (
	"errors"
	"testing"

	"github.com/ModChain/ordscript"
)

func TestParsePublicKey(t *testing.T) {
	key := testKey()

	for _, buf := range [][]byte{key.SerializeCompressed(), key.SerializeUncompressed()} {
		parsed, err := ordscript.ParsePublicKey(buf)
		if err != nil {
			t.Errorf("failed to parse %x: %s", buf, err)
			continue
		}
		if string(parsed.SerializeCompressed()) != string(key.SerializeCompressed()) {
			t.Errorf("parsed key mismatch for %x", buf)
		}
	}

	bad := [][]byte{
		nil,
		{},
		key.SerializeCompressed()[1:],
		append(key.SerializeCompressed(), 0),
		make([]byte, 33),
		make([]byte, 65),
		append([]byte{0x05}, key.SerializeCompressed()[1:]...),
		append([]byte{0x02}, fromHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")...),
	}
	for _, buf := range bad {
		if _, err := ordscript.ParsePublicKey(buf); !errors.Is(err, ordscript.ErrInvalidKeyEncoding) {
			t.Errorf("%x: expected ErrInvalidKeyEncoding, got %v", buf, err)
		}
	}
}
