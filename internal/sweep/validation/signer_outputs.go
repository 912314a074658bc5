package validation

import (
	"bytes"
	"context"
	"fmt"

	"github.com/btcsuite/btcd/mempool"
	"github.com/btcsuite/btcd/txscript"
)

// validateSignerOutputs checks the new signer utxo and the data output that
// follows it.
func (v *Validator) validateSignerOutputs(ctx context.Context, txCtx BitcoinTxContext) error {
	outputs := txCtx.Tx.TxOut
	if len(outputs) < firstWithdrawalOutput {
		return txCtx.reject(SignerOutputError{Kind: MissingOutputs})
	}

	key, err := v.storage.LatestAggregateKey(ctx)
	if err != nil {
		return fmt.Errorf("get latest aggregate key: %w", err)
	}
	if key == nil {
		return txCtx.reject(SignerOutputError{Kind: NoAggregateKey, OutputIndex: signerOutputIndex})
	}
	script, err := key.SignersScriptPubKey()
	if err != nil {
		return fmt.Errorf("build signers script: %w", err)
	}

	signerOut := outputs[signerOutputIndex]
	if !bytes.Equal(signerOut.PkScript, script) {
		return txCtx.reject(SignerOutputError{Kind: ScriptMismatch, OutputIndex: signerOutputIndex})
	}
	if mempool.IsDust(signerOut, mempool.DefaultMinRelayTxFee) {
		return txCtx.reject(SignerOutputError{Kind: DustOutput, OutputIndex: signerOutputIndex})
	}

	data := outputs[dataOutputIndex]
	if data.Value != 0 || txscript.GetScriptClass(data.PkScript) != txscript.NullDataTy {
		return txCtx.reject(SignerOutputError{Kind: MissingDataOutput, OutputIndex: dataOutputIndex})
	}

	return nil
}
