package ordscript

import "errors"

var (
	// ErrInvalidKeyEncoding is returned when a public key is not a valid
	// compressed or uncompressed secp256k1 encoding.
	ErrInvalidKeyEncoding = errors.New("invalid public key encoding")

	// ErrInvalidPayload is returned for a bad ticker, MIME type or text encoding.
	ErrInvalidPayload = errors.New("invalid inscription payload")

	// ErrPayloadTooLarge is returned when an inscription body exceeds the
	// configured size cap.
	ErrPayloadTooLarge = errors.New("inscription payload too large")

	// ErrValueOverflow is returned when an output value cannot be represented
	// in the signed 64 bits of the legacy record.
	ErrValueOverflow = errors.New("output value overflows int64")

	// ErrSerializationFailure signals that a well-formed record could not be
	// encoded. It is an internal invariant violation, not a bad input.
	ErrSerializationFailure = errors.New("output record serialization failed")
)
