// Package cspan turns (pointer, length) pairs received from foreign code into
// Go byte slices, checking their bounds first.
package cspan

import (
	"errors"
	"fmt"
	"unsafe"
)

// MaxLen is the largest span accepted by [Borrow].
const MaxLen = 1 << 30

// ErrInvalidSpan is returned for a span that cannot describe valid memory.
var ErrInvalidSpan = errors.New("invalid byte span")

// Borrow returns a slice viewing n bytes at ptr. The slice aliases foreign
// memory: it is only valid for the duration of the call that received ptr and
// must not be retained.
func Borrow(ptr unsafe.Pointer, n int) ([]byte, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidSpan, n)
	case n > MaxLen:
		return nil, fmt.Errorf("%w: length %d exceeds %d", ErrInvalidSpan, n, MaxLen)
	case n == 0:
		return []byte{}, nil
	case ptr == nil:
		return nil, fmt.Errorf("%w: nil pointer with length %d", ErrInvalidSpan, n)
	}
	return unsafe.Slice((*byte)(ptr), n), nil
}

// Copy is like [Borrow] but returns a copy owned by the Go heap.
func Copy(ptr unsafe.Pointer, n int) ([]byte, error) {
	buf, err := Borrow(ptr, n)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, buf...), nil
}
