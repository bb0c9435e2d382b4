package main

import (
	"unsafe"

	"github.com/ModChain/ordscript"
	"github.com/ModChain/ordscript/internal/cspan"
	log "github.com/sirupsen/logrus"
)

// borrow views a foreign (pointer, length) span. n is the size_t value
// received from C.
func borrow(ptr unsafe.Pointer, n uint64) ([]byte, bool) {
	if n > cspan.MaxLen {
		log.WithField("size", n).Debug("rejected oversized span")
		return nil, false
	}
	buf, err := cspan.Borrow(ptr, int(n))
	if err != nil {
		log.WithError(err).Debug("rejected span")
		return nil, false
	}
	return buf, true
}

func buildP2PKH(satoshis int64, pubkey unsafe.Pointer, pubkeyLen uint64) []byte {
	key, ok := borrow(pubkey, pubkeyLen)
	if !ok {
		return nil
	}
	return ordscript.BuildP2PKHScript(satoshis, key)
}

func buildP2WPKH(satoshis int64, pubkey unsafe.Pointer, pubkeyLen uint64) []byte {
	key, ok := borrow(pubkey, pubkeyLen)
	if !ok {
		return nil
	}
	return ordscript.BuildP2WPKHScript(satoshis, key)
}

func buildP2TRKeyPath(satoshis int64, pubkey unsafe.Pointer, pubkeyLen uint64) []byte {
	key, ok := borrow(pubkey, pubkeyLen)
	if !ok {
		return nil
	}
	return ordscript.BuildP2TRKeyPathScript(satoshis, key)
}

func buildBRC20Transfer(ticker string, amount uint64, satoshis int64, pubkey unsafe.Pointer, pubkeyLen uint64) []byte {
	key, ok := borrow(pubkey, pubkeyLen)
	if !ok {
		return nil
	}
	return ordscript.BuildBRC20TransferInscription(ticker, amount, satoshis, key)
}

func buildNFTInscription(mime string, payload unsafe.Pointer, payloadLen uint64, satoshis int64, pubkey unsafe.Pointer, pubkeyLen uint64) []byte {
	if payloadLen > cspan.MaxLen {
		log.WithField("size", payloadLen).Debug("rejected oversized payload")
		return nil
	}
	// owned copy, C memory is not referenced past this point
	data, err := cspan.Copy(payload, int(payloadLen))
	if err != nil {
		log.WithError(err).Debug("rejected payload span")
		return nil
	}
	key, ok := borrow(pubkey, pubkeyLen)
	if !ok {
		return nil
	}
	return ordscript.BuildNFTInscription(mime, data, satoshis, key)
}
