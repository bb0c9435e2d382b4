// Command libordscript exposes the legacy output builders through a C ABI.
// Build it with:
//
//	go build -buildmode=c-shared -o libordscript.so ./cmd/libordscript
package main

/*
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	uint8_t *data;
	size_t size;
} ord_bytes;
*/
import "C"

import "unsafe"

func main() {}

// null is returned on any failure.
func null() C.ord_bytes {
	return C.ord_bytes{data: nil, size: 0}
}

// result copies buf into C memory, to be released with ord_bytes_free.
func result(buf []byte) C.ord_bytes {
	if buf == nil {
		return null()
	}
	return C.ord_bytes{
		data: (*C.uint8_t)(C.CBytes(buf)),
		size: C.size_t(len(buf)),
	}
}

func goString(s *C.char) (string, bool) {
	if s == nil {
		return "", false
	}
	return C.GoString(s), true
}

//export ord_build_p2pkh_script
func ord_build_p2pkh_script(satoshis C.int64_t, pubkey *C.uint8_t, pubkeyLen C.size_t) C.ord_bytes {
	return result(buildP2PKH(int64(satoshis), unsafe.Pointer(pubkey), uint64(pubkeyLen)))
}

//export ord_build_p2wpkh_script
func ord_build_p2wpkh_script(satoshis C.int64_t, pubkey *C.uint8_t, pubkeyLen C.size_t) C.ord_bytes {
	return result(buildP2WPKH(int64(satoshis), unsafe.Pointer(pubkey), uint64(pubkeyLen)))
}

//export ord_build_p2tr_key_path_script
func ord_build_p2tr_key_path_script(satoshis C.int64_t, pubkey *C.uint8_t, pubkeyLen C.size_t) C.ord_bytes {
	return result(buildP2TRKeyPath(int64(satoshis), unsafe.Pointer(pubkey), uint64(pubkeyLen)))
}

//export ord_build_brc20_transfer_inscription
func ord_build_brc20_transfer_inscription(ticker *C.char, amount C.uint64_t, satoshis C.int64_t, pubkey *C.uint8_t, pubkeyLen C.size_t) C.ord_bytes {
	tick, ok := goString(ticker)
	if !ok {
		return null()
	}
	return result(buildBRC20Transfer(tick, uint64(amount), int64(satoshis), unsafe.Pointer(pubkey), uint64(pubkeyLen)))
}

//export ord_build_nft_inscription
func ord_build_nft_inscription(mimeType *C.char, payload *C.uint8_t, payloadLen C.size_t, satoshis C.int64_t, pubkey *C.uint8_t, pubkeyLen C.size_t) C.ord_bytes {
	mime, ok := goString(mimeType)
	if !ok {
		return null()
	}
	return result(buildNFTInscription(mime, unsafe.Pointer(payload), uint64(payloadLen), int64(satoshis), unsafe.Pointer(pubkey), uint64(pubkeyLen)))
}

//export ord_bytes_free
func ord_bytes_free(b C.ord_bytes) {
	C.free(unsafe.Pointer(b.data))
}
