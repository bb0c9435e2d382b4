package ordscript_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ModChain/ordscript"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestPack(t *testing.T) {
	res := &ordscript.ScriptBuildResult{ScriptPubkey: []byte{0x51, 0x20}}
	rec := must(ordscript.Pack(res, 1000))
	if rec.Value != 1000 || !bytes.Equal(rec.Script, res.ScriptPubkey) {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.SpendingScript == nil || len(rec.SpendingScript) != 0 {
		t.Errorf("expected empty spending script, got %v", rec.SpendingScript)
	}

	// the record owns its scripts
	res.ScriptPubkey[0] = 0
	if rec.Script[0] != 0x51 {
		t.Error("record shares memory with the build result")
	}

	if _, err := ordscript.Pack(res, math.MaxInt64+1); !errors.Is(err, ordscript.ErrValueOverflow) {
		t.Errorf("expected ErrValueOverflow, got %v", err)
	}
	if _, err := ordscript.Pack(res, math.MaxInt64); err != nil {
		t.Errorf("max value rejected: %s", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	recs := []*ordscript.LegacyOutputRecord{
		{Value: 0, Script: []byte{}, SpendingScript: []byte{}},
		{Value: 546, Script: fromHex("001479091972186c449eb1ded22b78e40d009bdf0089"), SpendingScript: []byte{}},
		{Value: math.MaxInt64, Script: []byte{0x51}, SpendingScript: bytes.Repeat([]byte{0xab}, 1000)},
	}
	for _, rec := range recs {
		buf := must(ordscript.ProtoEncoder{}.EncodeRecord(rec))
		dec := must(ordscript.DecodeRecord(buf))
		if dec.Value != rec.Value || !bytes.Equal(dec.Script, rec.Script) || !bytes.Equal(dec.SpendingScript, rec.SpendingScript) {
			t.Errorf("round trip mismatch: %+v != %+v", dec, rec)
		}
	}
}

func TestRecordEncoding(t *testing.T) {
	rec := &ordscript.LegacyOutputRecord{Value: 1, Script: []byte{0x51}, SpendingScript: []byte{0x6a}}
	buf := must(ordscript.ProtoEncoder{}.EncodeRecord(rec))
	if !bytes.Equal(buf, []byte{0x08, 0x01, 0x12, 0x01, 0x51, 0x2a, 0x01, 0x6a}) {
		t.Errorf("unexpected encoding %x", buf)
	}

	empty := must(ordscript.ProtoEncoder{}.EncodeRecord(&ordscript.LegacyOutputRecord{}))
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil encoding, got %v", empty)
	}

	if _, err := (ordscript.ProtoEncoder{}).EncodeRecord(nil); err == nil {
		t.Error("expected error for nil record")
	}
}

func TestDecodeRecordUnknownFields(t *testing.T) {
	var buf []byte
	buf = protowire.AppendTag(buf, 3, protowire.VarintType)
	buf = protowire.AppendVarint(buf, 7)
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendBytes(buf, []byte{0x51})
	buf = protowire.AppendTag(buf, 4, protowire.BytesType)
	buf = protowire.AppendBytes(buf, []byte("ignored"))

	rec := must(ordscript.DecodeRecord(buf))
	if !bytes.Equal(rec.Script, []byte{0x51}) {
		t.Errorf("unexpected script %x", rec.Script)
	}

	if _, err := ordscript.DecodeRecord([]byte{0x12, 0x05, 0x51}); err == nil {
		t.Error("expected error for truncated record")
	}
}
