// Package script recognizes output script templates and derives the addresses able to spend them.
package script

// ScriptType tags a recognized output script template.
type ScriptType uint8

const (
	Unknown ScriptType = iota
	PayToPubkeyHash
	PayToPubkey
	PayToScriptHash
	PayToWitnessPubkeyHash
	PayToWitnessScriptHash
	NullData
	MultiSig
	PayToCompressedPubkey
	KnownNonstandard
)

var typeNames = map[ScriptType]string{
	PayToPubkeyHash:        "pay-to-pubkeyhash",
	PayToPubkey:            "pay-to-pubkey",
	PayToScriptHash:        "pay-to-scripthash",
	PayToWitnessPubkeyHash: "pay-to-witness-pubkeyhash",
	PayToWitnessScriptHash: "pay-to-witness-scripthash",
	NullData:               "nulldata",
	MultiSig:               "multisig",
	PayToCompressedPubkey:  "pay-to-pubkey",
	KnownNonstandard:       "nonstandard",
}

// String returns the human name rendered in events and index rows.
func (t ScriptType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}
