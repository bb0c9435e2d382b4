package ordscript

import (
	"encoding/binary"
	"fmt"
)

// IPushBytes is an [Insertable] that wraps the output of another [Insertable]
// into a data push.
type IPushBytes struct {
	v Insertable
}

func (i IPushBytes) Bytes(s *Script) ([]byte, error) {
	v, err := i.v.Bytes(s)
	if err != nil {
		return nil, err
	}
	return PushBytes(v), nil
}

func (i IPushBytes) String() string {
	return fmt.Sprintf("PushBytes(%s)", i.v)
}

// PushBytes returns the script encoding pushing v on the stack, using the
// shortest push opcode able to carry len(v) bytes.
func PushBytes(v []byte) []byte {
	// see: https://en.bitcoin.it/wiki/Script
	switch {
	case len(v) <= 75:
		return append([]byte{byte(len(v))}, v...)
	case len(v) <= 0xff:
		return append([]byte{OP_PUSHDATA1, byte(len(v))}, v...)
	case len(v) <= 0xffff:
		op := binary.LittleEndian.AppendUint16([]byte{OP_PUSHDATA2}, uint16(len(v)))
		return append(op, v...)
	default:
		op := binary.LittleEndian.AppendUint32([]byte{OP_PUSHDATA4}, uint32(len(v)))
		return append(op, v...)
	}
}

// ParsePushBytes decodes the data push at the start of v. It returns the pushed
// data and the number of bytes consumed, or nil, 0 if v does not start with a
// complete push.
func ParsePushBytes(v []byte) ([]byte, int) {
	if len(v) == 0 {
		return nil, 0
	}

	var ln uint64
	var off int
	switch p := v[0]; {
	case p <= 75:
		ln, off = uint64(p), 1
	case p == OP_PUSHDATA1:
		if len(v) < 2 {
			return nil, 0
		}
		ln, off = uint64(v[1]), 2
	case p == OP_PUSHDATA2:
		if len(v) < 3 {
			return nil, 0
		}
		ln, off = uint64(binary.LittleEndian.Uint16(v[1:3])), 3
	case p == OP_PUSHDATA4:
		if len(v) < 5 {
			return nil, 0
		}
		ln, off = uint64(binary.LittleEndian.Uint32(v[1:5])), 5
	default:
		return nil, 0
	}

	if uint64(len(v)-off) < ln {
		// not enough data
		return nil, 0
	}
	end := off + int(ln)
	return v[off:end], end
}
