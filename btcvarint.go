package ordscript

import "encoding/binary"

// BtcVarInt is a bitcoin compact size integer, as used to prefix variable
// length data in transactions and in tapleaf commitments.
type BtcVarInt uint64

func (v BtcVarInt) Bytes() []byte {
	return v.AppendTo(make([]byte, 0, v.Len()))
}

// AppendTo appends the compact size encoding of v to buf.
func (v BtcVarInt) AppendTo(buf []byte) []byte {
	switch {
	case v <= 0xfc:
		return append(buf, byte(v))
	case v <= 0xffff:
		return binary.LittleEndian.AppendUint16(append(buf, 0xfd), uint16(v))
	case v <= 0xffffffff:
		return binary.LittleEndian.AppendUint32(append(buf, 0xfe), uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(append(buf, 0xff), uint64(v))
	}
}

func (v BtcVarInt) Len() int {
	switch {
	case v <= 0xfc:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}
