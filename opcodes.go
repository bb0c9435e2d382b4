package ordscript

// Script opcodes used by the output formats and the inscription envelope.
const (
	OP_0           = 0x00
	OP_FALSE       = OP_0
	OP_PUSHDATA1   = 0x4c
	OP_PUSHDATA2   = 0x4d
	OP_PUSHDATA4   = 0x4e
	OP_1           = 0x51
	OP_IF          = 0x63
	OP_ENDIF       = 0x68
	OP_RETURN      = 0x6a
	OP_DUP         = 0x76
	OP_EQUAL       = 0x87
	OP_EQUALVERIFY = 0x88
	OP_HASH160     = 0xa9
	OP_CHECKSIG    = 0xac
)

// MaxScriptElementSize is the consensus limit for a single stack element push.
const MaxScriptElementSize = 520
