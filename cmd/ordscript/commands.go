package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ModChain/ordscript"
	"github.com/ModChain/secp256k1"
	"github.com/urfave/cli/v2"
)

// flags
var (
	pubkeyFlag = &cli.StringFlag{
		Name:     "pubkey",
		Usage:    "hex encoded compressed or uncompressed recipient public key",
		Required: true,
	}
	satsFlag = &cli.Int64Flag{
		Name:  "sats",
		Usage: "output value in satoshis",
	}
	valueFlag = &cli.StringFlag{
		Name:  "value",
		Usage: "output value in BTC (eg. 0.0001), overrides --sats",
	}
	networkFlag = &cli.StringFlag{
		Name:  "network",
		Usage: "network used to render addresses (bitcoin, testnet, litecoin)",
	}
	tickerFlag = &cli.StringFlag{
		Name:     "ticker",
		Usage:    "4 bytes brc-20 ticker",
		Required: true,
	}
	amountFlag = &cli.Uint64Flag{
		Name:     "amount",
		Usage:    "brc-20 amount to transfer",
		Required: true,
	}
	mimeFlag = &cli.StringFlag{
		Name:     "mime",
		Usage:    "MIME type of the inscribed content",
		Required: true,
	}
	payloadFileFlag = &cli.StringFlag{
		Name:  "payload-file",
		Usage: "path of the file to inscribe",
	}
	payloadFlag = &cli.StringFlag{
		Name:  "payload",
		Usage: "hex encoded content to inscribe, ignored if --payload-file is set",
	}
	recordFlag = &cli.StringFlag{
		Name:     "record",
		Usage:    "hex encoded serialized output record",
		Required: true,
	}
	matchPubkeyFlag = &cli.StringFlag{
		Name:  "pubkey",
		Usage: "hex encoded public key the output is expected to pay to",
	}
	addressFlag = &cli.StringFlag{
		Name:     "address",
		Usage:    "address to decode",
		Required: true,
	}
)

var baseFlags = []cli.Flag{pubkeyFlag, satsFlag, valueFlag, networkFlag}

// commands
var (
	p2pkhCmd = &cli.Command{
		Name:   "p2pkh",
		Usage:  "Build a pay-to-pubkey-hash output",
		Action: p2pkhAction,
		Flags:  baseFlags,
	}
	p2wpkhCmd = &cli.Command{
		Name:   "p2wpkh",
		Usage:  "Build a pay-to-witness-pubkey-hash output",
		Action: p2wpkhAction,
		Flags:  baseFlags,
	}
	p2trCmd = &cli.Command{
		Name:   "p2tr",
		Usage:  "Build a pay-to-taproot key-path output",
		Action: p2trAction,
		Flags:  baseFlags,
	}
	brc20Cmd = &cli.Command{
		Name:   "brc20",
		Usage:  "Build a brc-20 transfer inscription",
		Action: brc20Action,
		Flags:  append([]cli.Flag{tickerFlag, amountFlag}, baseFlags...),
	}
	nftCmd = &cli.Command{
		Name:   "nft",
		Usage:  "Build an inscription of arbitrary content",
		Action: nftAction,
		Flags:  append([]cli.Flag{mimeFlag, payloadFileFlag, payloadFlag}, baseFlags...),
	}
	inspectCmd = &cli.Command{
		Name:   "inspect",
		Usage:  "Decode a serialized output record",
		Action: inspectAction,
		Flags:  []cli.Flag{recordFlag, matchPubkeyFlag, networkFlag},
	}
	addressCmd = &cli.Command{
		Name:   "address",
		Usage:  "Decode an address into its output script",
		Action: addressAction,
		Flags:  []cli.Flag{addressFlag, networkFlag},
	}
)

func p2pkhAction(ctx *cli.Context) error {
	return buildAction(ctx, ordscript.P2PKH{})
}

func p2wpkhAction(ctx *cli.Context) error {
	return buildAction(ctx, ordscript.P2WPKH{})
}

func p2trAction(ctx *cli.Context) error {
	return buildAction(ctx, ordscript.P2TRKeyPath{})
}

func brc20Action(ctx *cli.Context) error {
	return buildAction(ctx, ordscript.BRC20Transfer{
		Ticker: ctx.String(tickerFlag.Name),
		Amount: ctx.Uint64(amountFlag.Name),
	})
}

func nftAction(ctx *cli.Context) error {
	payload, err := getPayload(ctx)
	if err != nil {
		return err
	}
	return buildAction(ctx, ordscript.NFTInscription{
		MimeType: ctx.String(mimeFlag.Name),
		Payload:  payload,
	})
}

func inspectAction(ctx *cli.Context) error {
	buf, err := hex.DecodeString(strings.TrimSpace(ctx.String(recordFlag.Name)))
	if err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	var pubkey *secp256k1.PublicKey
	if ctx.IsSet(matchPubkeyFlag.Name) {
		raw, err := hex.DecodeString(ctx.String(matchPubkeyFlag.Name))
		if err != nil {
			return fmt.Errorf("invalid pubkey: %w", err)
		}
		if pubkey, err = ordscript.ParsePublicKey(raw); err != nil {
			return err
		}
	}
	r, err := inspectRecord(buf, getNetwork(ctx), pubkey)
	if err != nil {
		return err
	}
	return printJSON(ctx, r)
}

func addressAction(ctx *cli.Context) error {
	out, err := ordscript.ParseAddress(getNetwork(ctx), ctx.String(addressFlag.Name))
	if err != nil {
		return err
	}
	return printJSON(ctx, out)
}

func buildAction(ctx *cli.Context, intent ordscript.OutputIntent) error {
	pubkey, err := hex.DecodeString(ctx.String(pubkeyFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid pubkey: %w", err)
	}
	value, err := getValue(ctx)
	if err != nil {
		return err
	}
	r, err := buildReport(cfg.builder(), intent, pubkey, value, getNetwork(ctx))
	if err != nil {
		return err
	}
	return printJSON(ctx, r)
}

func getNetwork(ctx *cli.Context) string {
	if ctx.IsSet(networkFlag.Name) {
		return ctx.String(networkFlag.Name)
	}
	return cfg.Network
}

func getValue(ctx *cli.Context) (ordscript.BtcAmount, error) {
	var value ordscript.BtcAmount
	if ctx.IsSet(valueFlag.Name) {
		if err := value.UnmarshalText([]byte(ctx.String(valueFlag.Name))); err != nil {
			return 0, fmt.Errorf("invalid value: %w", err)
		}
		return value, nil
	}
	sats := ctx.Int64(satsFlag.Name)
	if sats < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ordscript.ErrValueOverflow, sats)
	}
	return ordscript.BtcAmount(sats), nil
}

func getPayload(ctx *cli.Context) ([]byte, error) {
	if path := ctx.String(payloadFileFlag.Name); path != "" {
		return os.ReadFile(path)
	}
	payload, err := hex.DecodeString(ctx.String(payloadFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}
	return payload, nil
}

func printJSON(ctx *cli.Context, v any) error {
	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
