package main

import (
	"encoding/hex"
	"testing"
	"unsafe"

	"github.com/ModChain/ordscript"
	"github.com/stretchr/testify/require"
)

// NOTE: this key is public, never use it to hold funds
const testPubkey = "03ad1d8e89212f0b92c74d23bb710c00662ad1470198ac48c43f7d6f93a2a26873"

func span(buf []byte) (unsafe.Pointer, uint64) {
	if len(buf) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(&buf[0]), uint64(len(buf))
}

func TestBorrow(t *testing.T) {
	buf := []byte{1, 2, 3}
	ptr, n := span(buf)

	res, ok := borrow(ptr, n)
	require.True(t, ok)
	require.Equal(t, buf, res)

	_, ok = borrow(ptr, 1<<63)
	require.False(t, ok)
	_, ok = borrow(ptr, 1<<40)
	require.False(t, ok)
	_, ok = borrow(nil, 3)
	require.False(t, ok)
}

func TestBuild(t *testing.T) {
	pubkey, err := hex.DecodeString(testPubkey)
	require.NoError(t, err)
	ptr, n := span(pubkey)

	t.Run("base", func(t *testing.T) {
		require.Equal(t, ordscript.BuildP2PKHScript(100000, pubkey), buildP2PKH(100000, ptr, n))
		require.Equal(t, ordscript.BuildP2WPKHScript(100000, pubkey), buildP2WPKH(100000, ptr, n))
		require.Equal(t, ordscript.BuildP2TRKeyPathScript(100000, pubkey), buildP2TRKeyPath(100000, ptr, n))
		require.NotNil(t, buildP2PKH(100000, ptr, n))
	})

	t.Run("inscriptions", func(t *testing.T) {
		res := buildBRC20Transfer("ordi", 1000, 0, ptr, n)
		require.Equal(t, ordscript.BuildBRC20TransferInscription("ordi", 1000, 0, pubkey), res)

		payload := []byte("<svg/>")
		pptr, pn := span(payload)
		res = buildNFTInscription("image/svg+xml", pptr, pn, 546, ptr, n)
		require.Equal(t, ordscript.BuildNFTInscription("image/svg+xml", payload, 546, pubkey), res)

		// empty payload with a nil pointer is valid
		res = buildNFTInscription("text/plain", nil, 0, 546, ptr, n)
		require.NotNil(t, res)
	})

	t.Run("null results", func(t *testing.T) {
		require.Nil(t, buildP2PKH(1, nil, 33))
		require.Nil(t, buildP2WPKH(1, ptr, n-1))
		require.Nil(t, buildP2TRKeyPath(1, ptr, 1<<63))
		require.Nil(t, buildP2PKH(-1, ptr, n))
		require.Nil(t, buildBRC20Transfer("ordinals", 1, 1, ptr, n))
		require.Nil(t, buildNFTInscription("text/plain", nil, 4, 1, ptr, n))
		require.Nil(t, buildNFTInscription("text/plain", nil, 1<<63, 1, ptr, n))
		require.Nil(t, buildNFTInscription("", nil, 0, 1, ptr, n))
	})
}
