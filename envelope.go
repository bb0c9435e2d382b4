package ordscript

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/ModChain/secp256k1"
)

// DefaultMaxInscriptionSize is the default cap on an inscription body. The
// standard transaction weight limit is 400000 and witness bytes weigh 1, some
// room is left for the rest of the reveal transaction.
const DefaultMaxInscriptionSize = 390000

const ordProtocolID = "ord"

var contentTypeTag = []byte{0x01}

// Envelope is the content of an ordinals inscription.
type Envelope struct {
	ContentType string
	Body        []byte
}

func checkContentType(ct string) error {
	switch {
	case ct == "":
		return fmt.Errorf("%w: empty content type", ErrInvalidPayload)
	case !utf8.ValidString(ct):
		return fmt.Errorf("%w: content type is not valid UTF-8", ErrInvalidPayload)
	case len(ct) > MaxScriptElementSize:
		return fmt.Errorf("%w: content type longer than %d bytes", ErrInvalidPayload, MaxScriptElementSize)
	case indexControl(ct) >= 0:
		return fmt.Errorf("%w: content type contains control characters", ErrInvalidPayload)
	}
	return nil
}

func indexControl(s string) int {
	for i, r := range s {
		if unicode.IsControl(r) {
			return i
		}
	}
	return -1
}

// EncodeEnvelope builds the tapscript revealing env, spendable by inscribeTo:
//
//	<x(inscribeTo)> OP_CHECKSIG
//	OP_FALSE OP_IF "ord" 0x01 <content type> OP_0 <body chunk>... OP_ENDIF
//
// The body is split in pushes of at most [MaxScriptElementSize] bytes. maxSize
// caps the body length, 0 meaning [DefaultMaxInscriptionSize].
func EncodeEnvelope(inscribeTo *secp256k1.PublicKey, env *Envelope, maxSize int) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxInscriptionSize
	}
	if err := checkContentType(env.ContentType); err != nil {
		return nil, err
	}
	if len(env.Body) > maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %d bytes limit", ErrPayloadTooLarge, len(env.Body), maxSize)
	}

	// spend condition
	script := PushBytes(xOnly(inscribeTo))
	script = append(script, OP_CHECKSIG)

	// envelope, never executed
	script = append(script, OP_FALSE, OP_IF)
	script = append(script, PushBytes([]byte(ordProtocolID))...)
	script = append(script, PushBytes(contentTypeTag)...)
	script = append(script, PushBytes([]byte(env.ContentType))...)
	script = append(script, OP_0)
	for chunk := range slices.Chunk(env.Body, MaxScriptElementSize) {
		script = append(script, PushBytes(chunk)...)
	}
	script = append(script, OP_ENDIF)

	return script, nil
}

// ParseEnvelope statically decodes a reveal script produced by [EncodeEnvelope],
// returning the inscription and the x-only key of its recipient.
func ParseEnvelope(script []byte) (*Envelope, []byte, error) {
	key, n := ParsePushBytes(script)
	if len(key) != 32 {
		return nil, nil, errors.New("reveal script does not start with an x-only key")
	}
	script = script[n:]

	if !bytes.HasPrefix(script, []byte{OP_CHECKSIG, OP_FALSE, OP_IF}) {
		return nil, nil, errors.New("reveal script has no envelope")
	}
	script = script[3:]

	marker, n := ParsePushBytes(script)
	if n == 0 || string(marker) != ordProtocolID {
		return nil, nil, errors.New("envelope is not an ordinals inscription")
	}
	script = script[n:]

	env := &Envelope{Body: []byte{}}

	// tag/value fields up to the body separator
	for {
		if len(script) == 0 {
			return nil, nil, errors.New("unterminated envelope header")
		}
		if script[0] == OP_0 {
			script = script[1:]
			break
		}
		tag, n := ParsePushBytes(script)
		if n == 0 {
			return nil, nil, errors.New("invalid envelope field tag")
		}
		script = script[n:]
		value, n := ParsePushBytes(script)
		if n == 0 {
			return nil, nil, errors.New("invalid envelope field value")
		}
		script = script[n:]
		if bytes.Equal(tag, contentTypeTag) {
			env.ContentType = string(value)
		}
	}

	for {
		if len(script) == 0 {
			return nil, nil, errors.New("unterminated envelope body")
		}
		if script[0] == OP_ENDIF {
			script = script[1:]
			break
		}
		chunk, n := ParsePushBytes(script)
		if n == 0 {
			return nil, nil, errors.New("invalid envelope body push")
		}
		env.Body = append(env.Body, chunk...)
		script = script[n:]
	}

	if len(script) != 0 {
		return nil, nil, errors.New("trailing data after envelope")
	}
	return env, slices.Clone(key), nil
}
