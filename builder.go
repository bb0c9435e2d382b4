package ordscript

import (
	"fmt"
	"slices"

	"github.com/ModChain/secp256k1"
)

// Builder turns output intents into scripts and legacy output records. The
// zero value is ready to use. A Builder is not modified by its methods and
// can be shared between goroutines.
type Builder struct {
	// MaxInscriptionSize caps inscription bodies, 0 meaning
	// [DefaultMaxInscriptionSize].
	MaxInscriptionSize int

	// Encoder serializes legacy records, nil meaning [ProtoEncoder].
	Encoder RecordEncoder
}

// defaultBuilder is used by the package level Build* functions.
var defaultBuilder = &Builder{}

// ScriptBuildResult holds the scripts of an output. TaprootRevealScript is only
// set for inscription intents.
type ScriptBuildResult struct {
	ScriptPubkey        []byte
	TaprootRevealScript []byte
}

// Out returns the classified output script.
func (r *ScriptBuildResult) Out() *Out {
	return GuessOut(r.ScriptPubkey)
}

// Utxo is an output value along with its scripts.
type Utxo struct {
	Value               uint64
	ScriptPubkey        []byte
	TaprootRevealScript []byte
}

// Build computes the scripts paying to pubkey according to intent. The key
// is used in its compressed form, see [Builder.BuildScript] for keys parsed
// from an uncompressed encoding.
func (b *Builder) Build(intent OutputIntent, pubkey *secp256k1.PublicKey) (*ScriptBuildResult, error) {
	return b.BuildScript(intent, New(pubkey))
}

// BuildScript computes the scripts paying to the key of s according to
// intent. A P2PKH output of an uncompressed key hashes the uncompressed
// encoding, and P2WPKH rejects such keys with [ErrInvalidKeyEncoding].
func (b *Builder) BuildScript(intent OutputIntent, s *Script) (*ScriptBuildResult, error) {
	switch in := intent.(type) {
	case P2PKH, P2WPKH, P2TRKeyPath:
		name, err := baseFormat(in, s)
		if err != nil {
			return nil, err
		}
		script, err := s.Generate(name)
		if err != nil {
			return nil, err
		}
		return &ScriptBuildResult{ScriptPubkey: slices.Clone(script)}, nil
	case BRC20Transfer:
		env, err := BRC20TransferEnvelope(in.Ticker, in.Amount)
		if err != nil {
			return nil, err
		}
		return b.inscribe(s, env)
	case NFTInscription:
		return b.inscribe(s, &Envelope{ContentType: in.MimeType, Body: in.Payload})
	default:
		return nil, fmt.Errorf("unsupported output intent %T", intent)
	}
}

// baseFormat returns the name of the [Formats] entry for a base intent.
func baseFormat(intent OutputIntent, s *Script) (string, error) {
	switch intent.(type) {
	case P2PKH:
		if s.uncompressed {
			return "p2pukh", nil
		}
	case P2WPKH:
		if s.uncompressed {
			// BIP143: witness v0 programs only commit to compressed keys
			return "", fmt.Errorf("%w: p2wpkh requires a compressed key", ErrInvalidKeyEncoding)
		}
	}
	return intent.Name(), nil
}

// inscribe builds the reveal script for env and the p2tr output committing to it.
func (b *Builder) inscribe(s *Script, env *Envelope) (*ScriptBuildResult, error) {
	reveal, err := EncodeEnvelope(s.pubkey, env, b.MaxInscriptionSize)
	if err != nil {
		return nil, err
	}
	script, err := tapLeafFormat(reveal).Bytes(s)
	if err != nil {
		return nil, err
	}
	return &ScriptBuildResult{ScriptPubkey: script, TaprootRevealScript: reveal}, nil
}

// UtxoFromIntent parses pubkey and resolves intent into an output of the given value.
func (b *Builder) UtxoFromIntent(intent OutputIntent, pubkey []byte, value uint64) (*Utxo, error) {
	s, err := ParseScript(pubkey)
	if err != nil {
		return nil, err
	}
	res, err := b.BuildScript(intent, s)
	if err != nil {
		return nil, err
	}
	return &Utxo{
		Value:               value,
		ScriptPubkey:        res.ScriptPubkey,
		TaprootRevealScript: res.TaprootRevealScript,
	}, nil
}

// Legacy resolves intent and returns the serialized [LegacyOutputRecord]. A
// negative satoshis value is rejected with [ErrValueOverflow]. Encoder
// failures are reported wrapping [ErrSerializationFailure].
func (b *Builder) Legacy(intent OutputIntent, satoshis int64, pubkey []byte) ([]byte, error) {
	if satoshis < 0 {
		return nil, fmt.Errorf("%w: negative value %d", ErrValueOverflow, satoshis)
	}
	utxo, err := b.UtxoFromIntent(intent, pubkey, uint64(satoshis))
	if err != nil {
		return nil, err
	}

	rec, err := Pack(&ScriptBuildResult{ScriptPubkey: utxo.ScriptPubkey, TaprootRevealScript: utxo.TaprootRevealScript}, utxo.Value)
	if err != nil {
		return nil, err
	}

	enc := b.Encoder
	if enc == nil {
		enc = ProtoEncoder{}
	}
	buf, err := enc.EncodeRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailure, err)
	}
	return buf, nil
}
