package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ryanwaits/sbtc/internal/sweep/model"
	"go.uber.org/zap"
)

const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
	resultError    = "error"
)

// Validator checks candidate sweep transactions on behalf of one signer. It
// holds no per-call state and is safe for concurrent use.
type Validator struct {
	storage Storage
	signer  model.PublicKey
	metrics Metrics
	logger  *zap.Logger
}

// NewValidator builds a Validator for the signer identified by signer.
func NewValidator(storage Storage, signer model.PublicKey, metrics Metrics, logger *zap.Logger) (*Validator, error) {
	if storage == nil {
		return nil, errors.New("validator storage is required")
	}
	if metrics == nil {
		return nil, errors.New("validator metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		storage: storage,
		signer:  signer,
		metrics: metrics,
		logger:  logger.Named("sweepValidator").With(zap.Stringer("signer", signer)),
	}, nil
}

// Validate runs the signer input, deposit input, signer output, withdrawal
// output and fee checks in that order and stops at the first failure.
// Policy rejections are returned as *ValidationError; any other error means
// the transaction could not be evaluated.
func (v *Validator) Validate(ctx context.Context, txCtx BitcoinTxContext) error {
	started := time.Now()
	err := v.validate(ctx, txCtx)

	var rejection *ValidationError
	switch {
	case err == nil:
		v.metrics.ObserveValidation(resultAccepted, "", started)
		v.logger.Debug("sweep transaction accepted", zap.Stringer("txid", txCtx.TxID()))
	case errors.As(err, &rejection):
		v.metrics.ObserveValidation(resultRejected, rejection.Err.Reason(), started)
		v.logger.Warn("sweep transaction rejected", rejection.LogFields()...)
	default:
		v.metrics.ObserveValidation(resultError, "", started)
		v.logger.Error("sweep transaction validation failed", zap.Stringer("txid", txCtx.TxID()), zap.Error(err))
	}
	return err
}

func (v *Validator) validate(ctx context.Context, txCtx BitcoinTxContext) error {
	if txCtx.Tx == nil {
		return ErrMissingTransaction
	}
	if got, want := len(txCtx.RequestIDs), txCtx.withdrawalOutputCount(); got != want {
		return fmt.Errorf("%w: %d request ids for %d withdrawal outputs", ErrRequestCountMismatch, got, want)
	}

	signerAmount, err := v.validateSignerInput(ctx, txCtx)
	if err != nil {
		return err
	}
	deposits, err := v.validateDepositInputs(ctx, txCtx)
	if err != nil {
		return err
	}
	if err := v.validateSignerOutputs(ctx, txCtx); err != nil {
		return err
	}
	withdrawals, err := v.validateWithdrawalOutputs(ctx, txCtx)
	if err != nil {
		return err
	}
	return validateFees(txCtx, signerAmount, deposits, withdrawals)
}
