package ordscript

// OutputIntent describes what an output pays to. The set of intents is closed:
// [P2PKH], [P2WPKH], [P2TRKeyPath], [BRC20Transfer] and [NFTInscription].
type OutputIntent interface {
	// Name returns the intent name, which for base intents is also the name
	// of the matching entry in [Formats].
	Name() string
	outputIntent()
}

// P2PKH pays to the hash of the recipient public key.
type P2PKH struct{}

// P2WPKH pays to the version 0 witness program of the recipient public key hash.
type P2WPKH struct{}

// P2TRKeyPath pays to the taproot output key of the recipient, without a script tree.
type P2TRKeyPath struct{}

// BRC20Transfer inscribes a BRC20 transfer of Amount units of Ticker to the recipient.
type BRC20Transfer struct {
	Ticker string
	Amount uint64
}

// NFTInscription inscribes Payload, typed as MimeType, to the recipient.
type NFTInscription struct {
	MimeType string
	Payload  []byte
}

func (P2PKH) Name() string          { return "p2pkh" }
func (P2WPKH) Name() string         { return "p2wpkh" }
func (P2TRKeyPath) Name() string    { return "p2tr" }
func (BRC20Transfer) Name() string  { return "brc20-transfer" }
func (NFTInscription) Name() string { return "nft-inscription" }

func (P2PKH) outputIntent()          {}
func (P2WPKH) outputIntent()         {}
func (P2TRKeyPath) outputIntent()    {}
func (BRC20Transfer) outputIntent()  {}
func (NFTInscription) outputIntent() {}
