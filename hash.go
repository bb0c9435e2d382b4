package ordscript

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/KarpelesLab/cryptutil"
	"golang.org/x/crypto/ripemd160"
)

// BIP340 tags used for taproot commitments.
const (
	tagTapLeaf  = "TapLeaf"
	tagTapTweak = "TapTweak"
)

// IHashInfo is an [Insertable] that hashes the output of another [Insertable] using one
// or more chained hash functions.
type IHashInfo struct {
	v    Insertable
	hash []func() hash.Hash
}

func (i IHashInfo) Bytes(s *Script) ([]byte, error) {
	v, err := i.v.Bytes(s)
	if err != nil {
		return nil, err
	}
	return cryptutil.Hash(v, i.hash...), nil
}

func (i IHashInfo) String() string {
	return fmt.Sprintf("Hash(%s, %d)", i.v, len(i.hash))
}

// IHash returns an [IHashInfo] that hashes the output of v using the given hash functions in sequence.
func IHash(v Insertable, hash ...func() hash.Hash) IHashInfo {
	return IHashInfo{v: v, hash: hash}
}

// IHash160 returns an [IHashInfo] that computes HASH160 (SHA-256 followed by RIPEMD-160) of the
// output of v.
func IHash160(v Insertable) IHashInfo {
	return IHash(v, sha256.New, ripemd160.New)
}

// taggedHash computes the BIP340 tagged hash SHA256(SHA256(tag) || SHA256(tag) || msg...).
func taggedHash(tag string, msg ...[]byte) []byte {
	tagHash := cryptutil.Hash([]byte(tag), sha256.New)

	h := sha256.New()
	h.Write(tagHash)
	h.Write(tagHash)
	for _, m := range msg {
		h.Write(m)
	}
	return h.Sum(nil)
}
