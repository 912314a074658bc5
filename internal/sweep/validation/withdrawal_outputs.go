package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

// validateWithdrawalOutputs pairs every output after the data output with the
// request id at the same position and checks it against storage.
func (v *Validator) validateWithdrawalOutputs(ctx context.Context, txCtx BitcoinTxContext) ([]WithdrawalRequestReport, error) {
	reports := make([]WithdrawalRequestReport, 0, len(txCtx.RequestIDs))

	for i, id := range txCtx.RequestIDs {
		index := firstWithdrawalOutput + i
		report, err := v.withdrawalReport(ctx, txCtx.chainTipRef(), id, index)
		if err != nil {
			return nil, err
		}
		if report == nil {
			return nil, txCtx.reject(WithdrawalOutputError{Kind: Unknown, RequestID: id, OutputIndex: index})
		}
		if err := report.Validate(txCtx.Tx.TxOut[index]); err != nil {
			var withdrawalErr WithdrawalOutputError
			if errors.As(err, &withdrawalErr) {
				return nil, txCtx.reject(withdrawalErr)
			}
			return nil, err
		}
		reports = append(reports, *report)
	}

	return reports, nil
}

// withdrawalReport returns nil when the withdrawal request is unknown.
func (v *Validator) withdrawalReport(ctx context.Context, chainTip model.BlockRef, id model.QualifiedRequestID, index int) (*WithdrawalRequestReport, error) {
	request, err := v.storage.WithdrawalRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get withdrawal request %s: %w", id, err)
	}
	if request == nil {
		return nil, nil
	}

	fulfilledBy, err := v.storage.WithdrawalFulfillment(ctx, chainTip, id)
	if err != nil {
		return nil, fmt.Errorf("get withdrawal fulfillment %s: %w", id, err)
	}
	decision, err := v.storage.WithdrawalSignerDecision(ctx, id, v.signer)
	if err != nil {
		return nil, fmt.Errorf("get withdrawal signer decision %s: %w", id, err)
	}

	report := &WithdrawalRequestReport{
		ID:          id,
		OutputIndex: index,
		Status:      WithdrawalPending{},
		Amount:      request.Amount,
		MaxFee:      request.MaxFee,
		Recipient:   request.Recipient,
	}
	if fulfilledBy != nil {
		report.Status = WithdrawalFulfilled{TxID: *fulfilledBy}
	}
	if decision != nil {
		report.IsAccepted = model.FlagOf(decision.IsAccepted)
	}
	return report, nil
}
