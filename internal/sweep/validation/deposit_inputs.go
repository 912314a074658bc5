package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

// validateDepositInputs treats every input after the signer input as a
// deposit and rejects the transaction if any of them is not eligible.
func (v *Validator) validateDepositInputs(ctx context.Context, txCtx BitcoinTxContext) ([]DepositRequestReport, error) {
	inputs := txCtx.Tx.TxIn[signerInputIndex+1:]
	reports := make([]DepositRequestReport, 0, len(inputs))

	for _, in := range inputs {
		outpoint := in.PreviousOutPoint
		report, err := v.depositReport(ctx, txCtx.chainTipRef(), outpoint)
		if err != nil {
			return nil, err
		}
		if report == nil {
			return nil, txCtx.reject(DepositInputError{Kind: Unknown, Outpoint: outpoint})
		}
		if err := report.Validate(txCtx.ChainTipHeight); err != nil {
			var depositErr DepositInputError
			if errors.As(err, &depositErr) {
				return nil, txCtx.reject(depositErr)
			}
			return nil, err
		}
		reports = append(reports, *report)
	}

	return reports, nil
}

// depositReport collects what storage knows about a deposit. It returns nil
// when the deposit request itself is unknown.
func (v *Validator) depositReport(ctx context.Context, chainTip model.BlockRef, outpoint wire.OutPoint) (*DepositRequestReport, error) {
	request, err := v.storage.DepositRequest(ctx, outpoint)
	if err != nil {
		return nil, fmt.Errorf("get deposit request %s: %w", outpoint, err)
	}
	if request == nil {
		return nil, nil
	}

	status, err := v.depositStatus(ctx, chainTip, outpoint)
	if err != nil {
		return nil, err
	}

	decision, err := v.storage.DepositSignerDecision(ctx, outpoint, v.signer)
	if err != nil {
		return nil, fmt.Errorf("get deposit signer decision %s: %w", outpoint, err)
	}

	report := &DepositRequestReport{
		Outpoint: outpoint,
		Status:   status,
		Amount:   request.Amount,
		MaxFee:   request.MaxFee,
		LockTime: request.LockTime,
	}
	if decision != nil {
		report.CanSign = model.FlagOf(decision.CanSign)
		if decision.CanSign {
			report.IsAccepted = model.FlagOf(decision.IsAccepted)
		}
	}
	return report, nil
}

// depositStatus reports a spend by a canonical sweep ahead of the deposit's
// own confirmation.
func (v *Validator) depositStatus(ctx context.Context, chainTip model.BlockRef, outpoint wire.OutPoint) (DepositStatus, error) {
	spender, err := v.storage.OutpointSpender(ctx, chainTip, outpoint)
	if err != nil {
		return nil, fmt.Errorf("get spender of deposit %s: %w", outpoint, err)
	}
	if spender != nil {
		return DepositSpent{TxID: *spender}, nil
	}

	block, err := v.storage.TxConfirmation(ctx, chainTip, outpoint.Hash)
	if err != nil {
		return nil, fmt.Errorf("get confirmation of deposit %s: %w", outpoint, err)
	}
	if block == nil {
		return DepositUnconfirmed{}, nil
	}
	return DepositConfirmed{BlockHeight: block.Height, BlockHash: block.Hash}, nil
}
