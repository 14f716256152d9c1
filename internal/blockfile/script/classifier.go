package script

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"go.uber.org/zap"
)

// Classifier derives spendable addresses from output scripts using params of a network.
type Classifier struct {
	params *chaincfg.Params
	logger *zap.Logger
}

// NewClassifier initializes a classifier encoding addresses for the provided network.
func NewClassifier(network model.Network, logger *zap.Logger) (*Classifier, error) {
	params, err := model.ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &Classifier{params: params, logger: logger}, nil
}

// Classify returns the script type and the addresses able to spend the output.
// Unrecognized scripts yield Unknown with no addresses.
func (c *Classifier) Classify(script []byte) (ScriptType, []string) {
	scriptType := TypeOf(script)
	addresses, err := c.addresses(scriptType, script)
	if err != nil {
		c.logger.Warn("encode script address failed",
			zap.String("type", scriptType.String()),
			zap.String("script", hex.EncodeToString(script)),
			zap.Error(err))
		return scriptType, nil
	}
	return scriptType, addresses
}

// TypeName returns the human name of the script type.
func (c *Classifier) TypeName(script []byte) string {
	return TypeOf(script).String()
}

func (c *Classifier) addresses(scriptType ScriptType, script []byte) ([]string, error) {
	switch scriptType {
	case PayToPubkeyHash:
		return c.encode(btcutil.NewAddressPubKeyHash(script[3:23], c.params))
	case PayToPubkey:
		return c.encodePubKeys(script[1:66])
	case PayToCompressedPubkey:
		return c.encodePubKeys(script[1:34])
	case PayToWitnessPubkeyHash:
		return c.encode(btcutil.NewAddressWitnessPubKeyHash(script[2:22], c.params))
	case PayToWitnessScriptHash:
		return c.encode(btcutil.NewAddressWitnessScriptHash(script[2:34], c.params))
	case PayToScriptHash:
		return c.encode(btcutil.NewAddressScriptHashFromHash(script[2:22], c.params))
	case MultiSig:
		return c.encodePubKeys(multiSigKeys(script)...)
	case NullData, KnownNonstandard:
		return nil, nil
	default:
		c.logger.Warn("unrecognized script", zap.String("script", hex.EncodeToString(script)))
		return nil, nil
	}
}

func (c *Classifier) encode(addr btcutil.Address, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	return []string{addr.EncodeAddress()}, nil
}

// encodePubKeys renders raw public keys as pay-to-pubkeyhash addresses without
// validating that the key bytes lie on the curve.
func (c *Classifier) encodePubKeys(keys ...[]byte) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	result := make([]string, 0, len(keys))
	for i, key := range keys {
		addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(key), c.params)
		if err != nil {
			return nil, fmt.Errorf("pubkey %d: %w", i, err)
		}
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}
