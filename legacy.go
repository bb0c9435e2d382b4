package ordscript

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// BuildP2PKHScript returns the serialized legacy record of a P2PKH output, or
// nil if the input is rejected.
//
// Deprecated: use [Builder.Build] and [Pack].
func BuildP2PKHScript(satoshis int64, pubkey []byte) []byte {
	return legacyOrNil(defaultBuilder, P2PKH{}, satoshis, pubkey)
}

// BuildP2WPKHScript returns the serialized legacy record of a P2WPKH output, or
// nil if the input is rejected.
//
// Deprecated: use [Builder.Build] and [Pack].
func BuildP2WPKHScript(satoshis int64, pubkey []byte) []byte {
	return legacyOrNil(defaultBuilder, P2WPKH{}, satoshis, pubkey)
}

// BuildP2TRKeyPathScript returns the serialized legacy record of a P2TR
// key-path output, or nil if the input is rejected.
//
// Deprecated: use [Builder.Build] and [Pack].
func BuildP2TRKeyPathScript(satoshis int64, pubkey []byte) []byte {
	return legacyOrNil(defaultBuilder, P2TRKeyPath{}, satoshis, pubkey)
}

// BuildBRC20TransferInscription returns the serialized legacy record of a BRC20
// transfer inscription of amount units of the 4 bytes ticker, or nil if the
// input is rejected. The record spending script holds the reveal script.
//
// Deprecated: use [Builder.Build] and [Pack].
func BuildBRC20TransferInscription(ticker string, amount uint64, satoshis int64, pubkey []byte) []byte {
	return legacyOrNil(defaultBuilder, BRC20Transfer{Ticker: ticker, Amount: amount}, satoshis, pubkey)
}

// BuildNFTInscription returns the serialized legacy record of an inscription
// of payload typed as mimeType, or nil if the input is rejected. The record
// spending script holds the reveal script.
//
// Deprecated: use [Builder.Build] and [Pack].
func BuildNFTInscription(mimeType string, payload []byte, satoshis int64, pubkey []byte) []byte {
	return legacyOrNil(defaultBuilder, NFTInscription{MimeType: mimeType, Payload: payload}, satoshis, pubkey)
}

func legacyOrNil(b *Builder, intent OutputIntent, satoshis int64, pubkey []byte) []byte {
	buf, err := b.Legacy(intent, satoshis, pubkey)
	if err != nil {
		if errors.Is(err, ErrSerializationFailure) {
			panic(err)
		}
		log.WithError(err).WithField("intent", intent.Name()).Debug("rejected legacy output request")
		return nil
	}
	return buf
}
