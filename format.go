package ordscript

import (
	"slices"
	"strings"
)

// Format is an output script template, made of [Insertable] pieces concatenated in order.
type Format []Insertable

// Bytes resolves every piece of f against s and concatenates the results.
func (f Format) Bytes(s *Script) ([]byte, error) {
	pieces := make([][]byte, 0, len(f))
	for _, piece := range f {
		v, err := piece.Bytes(s)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, v)
	}
	return slices.Concat(pieces...), nil
}

func (f Format) String() string {
	names := make([]string, 0, len(f))
	for _, piece := range f {
		names = append(names, piece.String())
	}
	return strings.Join(names, " ")
}

var (
	Formats = map[string]Format{
		"p2pkh":  Format{Bytes{OP_DUP, OP_HASH160}, IPushBytes{IHash160(IPubKeyComp)}, Bytes{OP_EQUALVERIFY, OP_CHECKSIG}},
		"p2pukh": Format{Bytes{OP_DUP, OP_HASH160}, IPushBytes{IHash160(IPubKey)}, Bytes{OP_EQUALVERIFY, OP_CHECKSIG}},
		"p2wpkh": Format{Bytes{OP_0}, IPushBytes{IHash160(IPubKeyComp)}},
		"p2tr":   Format{Bytes{OP_1}, IPushBytes{ITapTweak{}}},
	}
)

// tapLeafFormat returns a p2tr format whose output key commits to leaf as the
// only script of the tree.
func tapLeafFormat(leaf []byte) Format {
	return Format{Bytes{OP_1}, IPushBytes{ITapTweak{Root: Bytes(TapLeafHash(leaf))}}}
}
