package ordscript

import (
	"fmt"

	"github.com/ModChain/secp256k1"
)

// Script generates output scripts for a single public key.
type Script struct {
	pubkey       *secp256k1.PublicKey
	uncompressed bool // key was supplied in its 65 bytes form
	cache        map[string][]byte
}

// New returns a new [Script] object for the given public key, which can be used to generate output scripts
func New(pubkey *secp256k1.PublicKey) *Script {
	v := &Script{
		pubkey: pubkey,
		cache:  make(map[string][]byte),
	}

	return v
}

// ParseScript parses a serialized public key with [ParsePublicKey] and returns
// a [Script] remembering whether the key was given uncompressed.
func ParseScript(buf []byte) (*Script, error) {
	pubkey, err := ParsePublicKey(buf)
	if err != nil {
		return nil, err
	}
	s := New(pubkey)
	s.uncompressed = len(buf) == secp256k1.PubKeyBytesLenUncompressed
	return s, nil
}

// Uncompressed returns true if the key of s was parsed from its uncompressed encoding.
func (s *Script) Uncompressed() bool {
	return s.uncompressed
}

// Generate will return the byte value for the specified script type for the current public key.
// The returned slice is shared with the cache and must not be modified.
func (s *Script) Generate(name string) ([]byte, error) {
	if r, ok := s.cache[name]; ok {
		return r, nil
	}

	var res []byte
	var err error

	// some special cases to access the public key
	switch name {
	case "pubkey", "pubkey:comp":
		res, err = IPubKeyComp.Bytes(s)
	case "pubkey:uncomp":
		res, err = IPubKey.Bytes(s)
	case "pubkey:xonly":
		res, err = IPubKeyXOnly.Bytes(s)
	default:
		f, ok := Formats[name]
		if !ok {
			return nil, fmt.Errorf("unsupported format %s", name)
		}
		res, err = f.Bytes(s)
	}
	if err != nil {
		return nil, err
	}
	s.cache[name] = res
	return res, nil
}

// Out returns a [Out] object matching the requested script
func (s *Script) Out(name string) (*Out, error) {
	buf, err := s.Generate(name)
	if err != nil {
		return nil, err
	}

	return makeOut(name, buf), nil
}
