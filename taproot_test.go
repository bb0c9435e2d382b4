package ordscript_test

import (
	"bytes"
	"testing"

	"github.com/ModChain/ordscript"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/txscript"
)

func TestTaprootOutputKeyNoScript(t *testing.T) {
	for _, priv := range []string{
		testPrivKey,
		"0000000000000000000000000000000000000000000000000000000000000001",
		"0000000000000000000000000000000000000000000000000000000000000003",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
	} {
		_, pub := btcec.PrivKeyFromBytes(fromHex(priv))

		ours := must(ordscript.TaprootOutputKey(must(ordscript.ParsePublicKey(pub.SerializeCompressed())), nil))
		want := schnorr.SerializePubKey(txscript.ComputeTaprootKeyNoScript(pub))
		if !bytes.Equal(ours.SerializeCompressed()[1:], want) {
			t.Errorf("key %s: output key %x, want %x", priv, ours.SerializeCompressed()[1:], want)
		}
	}
}

func TestTaprootOutputKeyOddInternal(t *testing.T) {
	// the internal key parity must not change the output key
	even := must(ordscript.ParsePublicKey(fromHex("02d6889cb081036e0faefa3a35157ad71086b123b2b144b649798b494c300a961d")))
	odd := must(ordscript.ParsePublicKey(fromHex("03d6889cb081036e0faefa3a35157ad71086b123b2b144b649798b494c300a961d")))

	a := must(ordscript.TaprootOutputKey(even, nil))
	b := must(ordscript.TaprootOutputKey(odd, nil))
	if !bytes.Equal(a.SerializeCompressed(), b.SerializeCompressed()) {
		t.Errorf("output keys differ: %x != %x", a.SerializeCompressed(), b.SerializeCompressed())
	}
}

func TestTapLeafHash(t *testing.T) {
	for _, ln := range []int{0, 1, 252, 253, 1000, 70000} {
		script := bytes.Repeat([]byte{0x51}, ln)
		leaf := txscript.NewBaseTapLeaf(script)
		want := leaf.TapHash()
		if got := ordscript.TapLeafHash(script); !bytes.Equal(got, want[:]) {
			t.Errorf("leaf of %d bytes: hash %x, want %x", ln, got, want[:])
		}
	}
}

func TestTaprootOutputKeyScriptTree(t *testing.T) {
	pubkey := testKey()
	env := &ordscript.Envelope{ContentType: "text/plain", Body: []byte("hello")}
	reveal := must(ordscript.EncodeEnvelope(pubkey, env, 0))

	root := ordscript.TapLeafHash(reveal)
	ours := must(ordscript.TaprootOutputKey(pubkey, root))

	btcKey := must(btcec.ParsePubKey(pubkey.SerializeCompressed()))
	want := schnorr.SerializePubKey(txscript.ComputeTaprootOutputKey(btcKey, root))
	if !bytes.Equal(ours.SerializeCompressed()[1:], want) {
		t.Errorf("output key %x, want %x", ours.SerializeCompressed()[1:], want)
	}
}

func TestVerifyInscriptionCommitment(t *testing.T) {
	res := must(builder.Build(ordscript.NFTInscription{MimeType: "text/plain", Payload: []byte("hello")}, testKey()))

	if err := ordscript.VerifyInscriptionCommitment(res.ScriptPubkey, res.TaprootRevealScript); err != nil {
		t.Errorf("commitment verification failed: %s", err)
	}

	keyPath := must(ordscript.New(testKey()).Generate("p2tr"))
	if err := ordscript.VerifyInscriptionCommitment(keyPath, res.TaprootRevealScript); err == nil {
		t.Error("expected key path output to be rejected")
	}

	other := must(builder.Build(ordscript.NFTInscription{MimeType: "text/plain", Payload: []byte("world")}, testKey()))
	if err := ordscript.VerifyInscriptionCommitment(res.ScriptPubkey, other.TaprootRevealScript); err == nil {
		t.Error("expected mismatched reveal script to be rejected")
	}

	p2wpkh := must(ordscript.New(testKey()).Generate("p2wpkh"))
	if err := ordscript.VerifyInscriptionCommitment(p2wpkh, res.TaprootRevealScript); err == nil {
		t.Error("expected p2wpkh output to be rejected")
	}
}
