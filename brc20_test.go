package ordscript_test

import (
	"errors"
	"testing"

	"github.com/ModChain/ordscript"
)

func TestBRC20TransferEnvelope(t *testing.T) {
	env := must(ordscript.BRC20TransferEnvelope("ordi", 1000))
	if env.ContentType != "text/plain;charset=utf-8" {
		t.Errorf("unexpected content type %s", env.ContentType)
	}
	if string(env.Body) != `{"p":"brc-20","op":"transfer","tick":"ordi","amt":"1000"}` {
		t.Errorf("unexpected body %s", env.Body)
	}

	env = must(ordscript.BRC20TransferEnvelope("<&>$", 18446744073709551615))
	if string(env.Body) != `{"p":"brc-20","op":"transfer","tick":"<&>$","amt":"18446744073709551615"}` {
		t.Errorf("unexpected body %s", env.Body)
	}
}

func TestBRC20Ticker(t *testing.T) {
	tests := []struct {
		ticker string
		ok     bool
	}{
		{"ordi", true},
		{"ORDI", true},
		{"sats", true},
		{"ord", false},
		{"ordin", false},
		{"", false},
		{"éé", true},  // 2 runes, 4 bytes
		{"ét", false}, // 3 bytes
		{"\xff\xffab", false},
	}

	for _, tc := range tests {
		_, err := ordscript.BRC20TransferEnvelope(tc.ticker, 1)
		if tc.ok && err != nil {
			t.Errorf("ticker %q rejected: %s", tc.ticker, err)
		}
		if !tc.ok && !errors.Is(err, ordscript.ErrInvalidPayload) {
			t.Errorf("ticker %q: expected ErrInvalidPayload, got %v", tc.ticker, err)
		}
	}
}

func TestParseBRC20Transfer(t *testing.T) {
	ticker, amount, err := ordscript.ParseBRC20Transfer(must(ordscript.BRC20TransferEnvelope("ordi", 1000)))
	if err != nil {
		t.Fatalf("failed to parse brc-20 transfer: %s", err)
	}
	if ticker != "ordi" || amount != 1000 {
		t.Errorf("unexpected transfer %s %d", ticker, amount)
	}

	bad := []*ordscript.Envelope{
		{ContentType: "image/png", Body: []byte(`{"p":"brc-20","op":"transfer","tick":"ordi","amt":"1"}`)},
		{ContentType: "text/plain", Body: []byte(`{"p":"brc-20","op":"mint","tick":"ordi","amt":"1"}`)},
		{ContentType: "text/plain", Body: []byte(`{"p":"brc-20","op":"transfer","tick":"ordi","amt":"1.5"}`)},
		{ContentType: "text/plain", Body: []byte(`{"p":"brc-20","op":"transfer","tick":"ord","amt":"1"}`)},
		{ContentType: "text/plain", Body: []byte(`not json`)},
	}
	for _, env := range bad {
		if _, _, err := ordscript.ParseBRC20Transfer(env); err == nil {
			t.Errorf("expected error for %s", env.Body)
		}
	}
}
