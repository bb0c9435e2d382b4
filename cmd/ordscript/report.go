package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ModChain/ordscript"
	"github.com/ModChain/secp256k1"
	log "github.com/sirupsen/logrus"
)

type report struct {
	Intent       string              `json:"intent,omitempty"`
	Value        ordscript.BtcAmount `json:"value"`
	Out          *ordscript.Out      `json:"out"`
	Address      string              `json:"address,omitempty"`
	RevealScript string              `json:"reveal_script,omitempty"`
	Inscription  *inscriptionReport  `json:"inscription,omitempty"`
	Record       string              `json:"record"`
}

type inscriptionReport struct {
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	Ticker      string `json:"ticker,omitempty"`
	Amount      uint64 `json:"amount,omitempty"`
	Verified    bool   `json:"verified"`
}

// buildReport builds the serialized record for intent and describes it.
func buildReport(b *ordscript.Builder, intent ordscript.OutputIntent, pubkey []byte, value ordscript.BtcAmount, network string) (*report, error) {
	sats, err := value.Satoshis()
	if err != nil {
		return nil, err
	}
	buf, err := b.Legacy(intent, sats, pubkey)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s output: %w", intent.Name(), err)
	}
	r, err := inspectRecord(buf, network, nil)
	if err != nil {
		return nil, err
	}
	r.Intent = intent.Name()
	return r, nil
}

// inspectRecord decodes a serialized record and its inscription, if any. If
// pubkey is not nil, base outputs paying to it are reported with their intent.
func inspectRecord(buf []byte, network string, pubkey *secp256k1.PublicKey) (*report, error) {
	rec, err := ordscript.DecodeRecord(buf)
	if err != nil {
		return nil, err
	}
	if rec.Value < 0 {
		return nil, fmt.Errorf("%w: negative value %d", ordscript.ErrValueOverflow, rec.Value)
	}

	out := ordscript.GuessOut(rec.Script)
	r := &report{
		Value:  ordscript.BtcAmount(rec.Value),
		Out:    out,
		Record: hex.EncodeToString(buf),
	}
	if addr, err := out.Address(network); err == nil {
		r.Address = addr
	} else {
		log.WithError(err).Debugf("no address for %s output", out.Name)
	}

	if len(rec.SpendingScript) == 0 {
		if pubkey != nil {
			if intent, err := ordscript.MatchIntent(rec.Script, pubkey); err == nil {
				r.Intent = intent.Name()
			}
		}
		return r, nil
	}
	r.RevealScript = hex.EncodeToString(rec.SpendingScript)

	env, _, err := ordscript.ParseEnvelope(rec.SpendingScript)
	if err != nil {
		return nil, fmt.Errorf("invalid reveal script: %w", err)
	}
	r.Inscription = &inscriptionReport{
		ContentType: env.ContentType,
		Size:        len(env.Body),
	}
	r.Intent = ordscript.NFTInscription{}.Name()
	if ticker, amount, err := ordscript.ParseBRC20Transfer(env); err == nil {
		r.Intent = ordscript.BRC20Transfer{}.Name()
		r.Inscription.Ticker = ticker
		r.Inscription.Amount = amount
	}
	if err := ordscript.VerifyInscriptionCommitment(rec.Script, rec.SpendingScript); err != nil {
		log.WithError(err).Warn("output does not commit to the reveal script")
	} else {
		r.Inscription.Verified = true
	}
	return r, nil
}
