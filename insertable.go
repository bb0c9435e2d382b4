package ordscript

import "encoding/hex"

// Insertable is a piece of an output script, resolved against a [Script].
type Insertable interface {
	Bytes(*Script) ([]byte, error)
	String() string
}

// Bytes is an [Insertable] holding literal script bytes, typically opcodes.
type Bytes []byte

func (b Bytes) Bytes(*Script) ([]byte, error) {
	return []byte(b), nil
}

func (b Bytes) String() string {
	return hex.EncodeToString(b)
}

// Lookup is an [Insertable] resolving to another named format of the same [Script].
type Lookup string

func (l Lookup) Bytes(s *Script) ([]byte, error) {
	return s.Generate(string(l))
}

func (l Lookup) String() string {
	return string(l)
}
