// Package validation decides whether this signer may sign a candidate sweep
// transaction.
package validation

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

// Sweep transactions spend the signer utxo first and pay the new signer utxo
// and a data output before any withdrawal.
const (
	signerInputIndex      = 0
	signerOutputIndex     = 0
	dataOutputIndex       = 1
	firstWithdrawalOutput = 2
)

// BitcoinTxContext is one candidate sweep transaction and the chain view it is
// validated against. It is not modified during validation.
type BitcoinTxContext struct {
	ChainTip       chainhash.Hash
	ChainTipHeight uint64
	Tx             *wire.MsgTx
	// RequestIDs pairs with outputs 2 and up, in order.
	RequestIDs []model.QualifiedRequestID
	// Origin is the proposing signer, kept for diagnostics only.
	Origin model.PublicKey
}

// TxID returns the candidate transaction id, or the zero hash when no
// transaction is set.
func (c BitcoinTxContext) TxID() chainhash.Hash {
	if c.Tx == nil {
		return chainhash.Hash{}
	}
	return c.Tx.TxHash()
}

func (c BitcoinTxContext) chainTipRef() model.BlockRef {
	return model.BlockRef{Hash: c.ChainTip, Height: c.ChainTipHeight}
}

func (c BitcoinTxContext) withdrawalOutputCount() int {
	if len(c.Tx.TxOut) < firstWithdrawalOutput {
		return 0
	}
	return len(c.Tx.TxOut) - firstWithdrawalOutput
}

func (c BitcoinTxContext) reject(err SweepError) error {
	return &ValidationError{Err: err, Context: c}
}
