package validation

import (
	"bytes"
	"context"
	"fmt"
)

// validateSignerInput checks that the first input spends the signer utxo
// through the key path of its aggregate key and returns its amount.
func (v *Validator) validateSignerInput(ctx context.Context, txCtx BitcoinTxContext) (uint64, error) {
	if len(txCtx.Tx.TxIn) == 0 {
		return 0, txCtx.reject(SignerInputError{Kind: MissingSignerInput})
	}
	spent := txCtx.Tx.TxIn[signerInputIndex].PreviousOutPoint

	utxo, err := v.storage.SignerUTXO(ctx, txCtx.chainTipRef())
	if err != nil {
		return 0, fmt.Errorf("get signer utxo: %w", err)
	}
	if utxo == nil {
		return 0, txCtx.reject(SignerInputError{Kind: NoSignerUTXO, Outpoint: spent})
	}
	if spent != utxo.Outpoint {
		return 0, txCtx.reject(SignerInputError{Kind: OutpointMismatch, Outpoint: spent, Expected: utxo.Outpoint})
	}

	// an aggregate key that does not parse cannot have locked the output
	want, err := utxo.AggregateKey.SignersScriptPubKey()
	if err != nil || !bytes.Equal(want, utxo.ScriptPubKey) {
		return 0, txCtx.reject(SignerInputError{Kind: ScriptMismatch, Outpoint: spent})
	}

	return utxo.Amount, nil
}
