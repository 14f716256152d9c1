package script

const (
	opDup         = 0x76
	opHash160     = 0xA9
	opEqualVerify = 0x88
	opEqual       = 0x87
	opCheckSig    = 0xAC
	opCheckMulti  = 0xAE
	opNop         = 0x61
	opNop1        = 0xB0
	opReturn      = 0x6A
	opData20      = 0x14
	opData32      = 0x20
	opData33      = 0x21
	opData65      = 0x41
	opMaxPush     = 0x4B
)

// TypeOf classifies script bytes. Templates are checked in priority order and
// every check gates on the script length before reading bytes.
func TypeOf(script []byte) ScriptType {
	switch {
	case isPayToPubkeyHash(script):
		return PayToPubkeyHash
	case len(script) == 67 && script[0] == opData65 && script[66] == opCheckSig:
		return PayToPubkey
	case len(script) == 35 && script[0] == opData33 && script[34] == opCheckSig:
		return PayToCompressedPubkey
	case len(script) == 22 && script[0] == 0x00 && script[1] == opData20:
		return PayToWitnessPubkeyHash
	case len(script) == 34 && script[0] == 0x00 && script[1] == opData32:
		return PayToWitnessScriptHash
	case len(script) == 23 && script[0] == opHash160 && script[1] == opData20 && script[22] == opEqual:
		return PayToScriptHash
	case len(script) > 0 && script[0] == opReturn:
		// an OP_RETURN script is decided here even when it fails the push-only rule
		if isPushOnly(script[1:]) {
			return NullData
		}
		return Unknown
	case IsMultiSig(script):
		return MultiSig
	case isKnownNonstandard(script):
		return KnownNonstandard
	}
	return Unknown
}

func isPayToPubkeyHash(script []byte) bool {
	if len(script) < 25 || script[0] != opDup || script[1] != opHash160 || script[2] != opData20 {
		return false
	}
	switch len(script) {
	case 25:
		return script[23] == opEqualVerify && (script[24] == opCheckSig || script[24] == opNop1)
	case 26:
		return script[23] == opEqualVerify && script[24] == opCheckSig && script[25] == opNop
	}
	return false
}

// isPushOnly accepts a contiguous run of single-byte data pushes up to the end of data.
func isPushOnly(data []byte) bool {
	for pos := 0; pos < len(data); {
		n := data[pos]
		if n < 0x01 || n > opMaxPush {
			return false
		}
		pos += int(n) + 1
	}
	return true
}

func isKnownNonstandard(script []byte) bool {
	switch {
	case len(script) == 33 && script[0] == opData32:
		return true
	case len(script) == 37 && script[0] == 0x24:
		return true
	case len(script) == 24 && script[0] == opData20:
		return true
	case len(script) == 6 &&
		script[0] == 0x73 && script[1] == 0x63 && script[2] == 0x72 &&
		script[3] == 0x69 && script[4] == 0x70 && script[5] == 0x74:
		return true
	case len(script) >= 5 &&
		script[0] == opDup && script[1] == opHash160 && script[2] == 0x00 &&
		script[3] == opEqualVerify && script[4] == opCheckSig:
		// hash160 of zero
		return true
	}
	return false
}

// IsMultiSig reports whether the script ends in OP_CHECKMULTISIG. It is only
// meaningful after the more specific templates have been ruled out.
func IsMultiSig(script []byte) bool {
	return len(script) > 0 && script[len(script)-1] == opCheckMulti
}

// RequiredSignatures returns the raw value of the first byte of a multisig script.
// The opcode is not translated into a small integer.
func RequiredSignatures(script []byte) (int, bool) {
	if !IsMultiSig(script) {
		return 0, false
	}
	return int(script[0]), true
}

// multiSigKeys walks the key pushes of a multisig script starting at offset 1.
func multiSigKeys(script []byte) [][]byte {
	var keys [][]byte
	for pos := 1; pos < len(script)-2; {
		switch {
		case script[pos] == opData33 && pos+34 <= len(script):
			keys = append(keys, script[pos+1:pos+34])
			pos += 34
		case script[pos] == opData65 && pos+66 <= len(script):
			keys = append(keys, script[pos+1:pos+66])
			pos += 66
		default:
			return keys
		}
	}
	return keys
}
