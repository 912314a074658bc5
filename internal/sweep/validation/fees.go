package validation

import (
	"fmt"

	"github.com/ryanwaits/sbtc/pkg/safe"
)

// AssessedFee splits fee evenly across requests, rounding up so that the
// shares always cover the whole fee. ok is false when there are no requests.
func AssessedFee(fee uint64, requests int) (share uint64, ok bool) {
	if requests <= 0 {
		return 0, false
	}
	n := uint64(requests)
	share = fee / n
	if fee%n != 0 {
		share++
	}
	return share, true
}

// validateFees rejects the sweep if any request's share of the implied fee
// exceeds the max fee it was submitted with. Deposits are checked in input
// order, then withdrawals in output order.
func validateFees(txCtx BitcoinTxContext, signerAmount uint64, deposits []DepositRequestReport, withdrawals []WithdrawalRequestReport) error {
	inputs := make([]uint64, 0, len(deposits)+1)
	inputs = append(inputs, signerAmount)
	for _, deposit := range deposits {
		inputs = append(inputs, deposit.Amount)
	}
	inputTotal, err := safe.Sum(inputs...)
	if err != nil {
		return fmt.Errorf("sum input amounts: %w", err)
	}

	outputs := make([]uint64, 0, len(txCtx.Tx.TxOut))
	for i, out := range txCtx.Tx.TxOut {
		value, err := safe.Uint64(out.Value)
		if err != nil {
			return fmt.Errorf("output %d value: %w", i, err)
		}
		outputs = append(outputs, value)
	}
	outputTotal, err := safe.Sum(outputs...)
	if err != nil {
		return fmt.Errorf("sum output amounts: %w", err)
	}

	if outputTotal > inputTotal {
		return txCtx.reject(FeeError{Kind: OutputsExceedInputs, InputTotal: inputTotal, OutputTotal: outputTotal})
	}

	share, ok := AssessedFee(inputTotal-outputTotal, len(deposits)+len(withdrawals))
	if !ok {
		return nil
	}
	for _, deposit := range deposits {
		if share > deposit.MaxFee {
			return txCtx.reject(DepositInputError{Kind: AssessedFeeTooHigh, Outpoint: deposit.Outpoint})
		}
	}
	for _, withdrawal := range withdrawals {
		if share > withdrawal.MaxFee {
			return txCtx.reject(WithdrawalOutputError{Kind: AssessedFeeTooHigh, RequestID: withdrawal.ID, OutputIndex: withdrawal.OutputIndex})
		}
	}

	return nil
}
