package ordscript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// BRC20TickerLength is the length in bytes of a BRC20 ticker.
const BRC20TickerLength = 4

// BRC20ContentType is the content type of BRC20 inscriptions.
const BRC20ContentType = "text/plain;charset=utf-8"

// brc20Operation is the JSON body of a BRC20 inscription. Field order is part
// of the encoding.
type brc20Operation struct {
	Protocol  string `json:"p"`
	Operation string `json:"op"`
	Ticker    string `json:"tick"`
	Amount    string `json:"amt"`
}

func checkTicker(ticker string) error {
	if !utf8.ValidString(ticker) {
		return fmt.Errorf("%w: ticker is not valid UTF-8", ErrInvalidPayload)
	}
	if len(ticker) != BRC20TickerLength {
		return fmt.Errorf("%w: ticker must be %d bytes, got %d", ErrInvalidPayload, BRC20TickerLength, len(ticker))
	}
	return nil
}

// BRC20TransferEnvelope returns the inscription transferring amount units of ticker.
func BRC20TransferEnvelope(ticker string, amount uint64) (*Envelope, error) {
	if err := checkTicker(ticker); err != nil {
		return nil, err
	}

	op := &brc20Operation{
		Protocol:  "brc-20",
		Operation: "transfer",
		Ticker:    ticker,
		Amount:    strconv.FormatUint(amount, 10),
	}

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(op); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}

	return &Envelope{
		ContentType: BRC20ContentType,
		Body:        bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}),
	}, nil
}

// ParseBRC20Transfer decodes a BRC20 transfer inscription, returning its ticker and amount.
func ParseBRC20Transfer(env *Envelope) (string, uint64, error) {
	if !strings.HasPrefix(env.ContentType, "text/plain") && !strings.HasPrefix(env.ContentType, "application/json") {
		return "", 0, fmt.Errorf("unexpected content type %s for brc-20", env.ContentType)
	}

	var op brc20Operation
	if err := json.Unmarshal(env.Body, &op); err != nil {
		return "", 0, fmt.Errorf("failed to parse brc-20 payload: %w", err)
	}
	if op.Protocol != "brc-20" || op.Operation != "transfer" {
		return "", 0, errors.New("not a brc-20 transfer")
	}
	if err := checkTicker(op.Ticker); err != nil {
		return "", 0, err
	}
	amount, err := strconv.ParseUint(op.Amount, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid brc-20 amount %q: %w", op.Amount, err)
	}
	return op.Ticker, amount, nil
}
