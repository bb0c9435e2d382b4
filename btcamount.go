package ordscript

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// BtcAmount is an amount of satoshis, marshalled as a decimal BTC value with 8 decimals.
type BtcAmount uint64

const satoshisPerBtc = 1_0000_0000

func (b BtcAmount) MarshalJSON() ([]byte, error) {
	return []byte(b.String()), nil
}

// String returns the amount in BTC, always with 8 decimals.
func (b BtcAmount) String() string {
	s := strconv.FormatUint(uint64(b), 10)
	ln := len(s)
	if ln <= 8 {
		// add zeroes
		s = strings.Repeat("0", 9-ln) + s
		ln = 9
	}
	return s[:ln-8] + "." + s[ln-8:]
}

// Satoshis returns the amount as the signed value of legacy output records.
func (b BtcAmount) Satoshis() (int64, error) {
	if uint64(b) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d", ErrValueOverflow, uint64(b))
	}
	return int64(b), nil
}

func (ba *BtcAmount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}

	return ba.UnmarshalText(b)
}

// UnmarshalText parses a BTC decimal value ("0.0001"), or a raw satoshis
// value when prefixed with 0x (hex) or suffixed with "sat".
func (ba *BtcAmount) UnmarshalText(b []byte) error {
	s := string(b)

	if strings.HasPrefix(s, "0x") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return err
		}
		*ba = BtcAmount(v)
		return nil
	}
	if sat, ok := strings.CutSuffix(s, "sat"); ok {
		v, err := strconv.ParseUint(strings.TrimSpace(sat), 10, 64)
		if err != nil {
			return err
		}
		*ba = BtcAmount(v)
		return nil
	}

	pos := strings.IndexByte(s, '.')
	decCount := 0
	if pos != -1 {
		// we will not allow more than 8 decimals
		decCount = len(s) - pos - 1
		if decCount > 8 {
			return errors.New("cannot parse amount with more than 8 decimals")
		}
		s = s[:pos] + s[pos+1:] // without the dot
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	mul := uint64(1)
	for ; decCount < 8; decCount++ {
		mul *= 10
	}
	hi, lo := bits.Mul64(v, mul)
	if hi != 0 {
		return fmt.Errorf("%w: %s BTC", ErrValueOverflow, b)
	}
	*ba = BtcAmount(lo)
	return nil
}
