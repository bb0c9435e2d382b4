package ordscript

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// LegacyOutputRecord is the fixed shape output record consumed by legacy
// callers. SpendingScript holds the taproot reveal script, or is empty.
type LegacyOutputRecord struct {
	Value          int64
	Script         []byte
	SpendingScript []byte
}

// RecordEncoder serializes a [LegacyOutputRecord].
type RecordEncoder interface {
	EncodeRecord(*LegacyOutputRecord) ([]byte, error)
}

// Pack maps res into a [LegacyOutputRecord]. Values that do not fit a signed
// 64 bits integer fail with [ErrValueOverflow].
func Pack(res *ScriptBuildResult, value uint64) (*LegacyOutputRecord, error) {
	if value > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", ErrValueOverflow, value)
	}
	spending := []byte{}
	if res.TaprootRevealScript != nil {
		spending = slices.Clone(res.TaprootRevealScript)
	}
	return &LegacyOutputRecord{
		Value:          int64(value),
		Script:         slices.Clone(res.ScriptPubkey),
		SpendingScript: spending,
	}, nil
}

// field numbers of the TransactionOutput protobuf message
const (
	recordValueField          protowire.Number = 1
	recordScriptField         protowire.Number = 2
	recordSpendingScriptField protowire.Number = 5
)

// ProtoEncoder encodes records as the protobuf TransactionOutput message:
//
//	message TransactionOutput {
//	    int64 value = 1;
//	    bytes script = 2;
//	    bytes spendingScript = 5;
//	}
type ProtoEncoder struct{}

func (ProtoEncoder) EncodeRecord(rec *LegacyOutputRecord) ([]byte, error) {
	if rec == nil {
		return nil, errors.New("nil record")
	}

	// proto3: default values are not serialized
	var buf []byte
	if rec.Value != 0 {
		buf = protowire.AppendTag(buf, recordValueField, protowire.VarintType)
		buf = protowire.AppendVarint(buf, uint64(rec.Value))
	}
	if len(rec.Script) > 0 {
		buf = protowire.AppendTag(buf, recordScriptField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, rec.Script)
	}
	if len(rec.SpendingScript) > 0 {
		buf = protowire.AppendTag(buf, recordSpendingScriptField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, rec.SpendingScript)
	}
	if buf == nil {
		buf = []byte{}
	}
	return buf, nil
}

// DecodeRecord parses a record serialized by [ProtoEncoder]. Unknown fields are skipped.
func DecodeRecord(buf []byte) (*LegacyOutputRecord, error) {
	rec := &LegacyOutputRecord{Script: []byte{}, SpendingScript: []byte{}}

	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return nil, fmt.Errorf("invalid record tag: %w", protowire.ParseError(n))
		}
		buf = buf[n:]

		switch {
		case num == recordValueField && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(buf)
			rec.Value = int64(v)
		case num == recordScriptField && typ == protowire.BytesType:
			var v []byte
			v, n = protowire.ConsumeBytes(buf)
			rec.Script = append([]byte{}, v...)
		case num == recordSpendingScriptField && typ == protowire.BytesType:
			var v []byte
			v, n = protowire.ConsumeBytes(buf)
			rec.SpendingScript = append([]byte{}, v...)
		default:
			n = protowire.ConsumeFieldValue(num, typ, buf)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid record field %d: %w", num, protowire.ParseError(n))
		}
		buf = buf[n:]
	}
	return rec, nil
}
