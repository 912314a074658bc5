// Package service validates batches of candidate sweep transactions against a
// single chain tip.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ryanwaits/sbtc/internal/clock"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
	"github.com/ryanwaits/sbtc/internal/sweep/validation"
	"github.com/ryanwaits/sbtc/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultWorkerCount = 4

// Result is the outcome of validating one candidate.
type Result struct {
	Index    int
	TxID     chainhash.Hash
	ChainTip model.BlockRef
	// Err is nil when the candidate may be signed. It is a
	// *validation.ValidationError for policy rejections, or a structural
	// error when the candidate is malformed.
	Err error
}

// Accepted reports whether the signer may sign the candidate.
func (r Result) Accepted() bool {
	return r.Err == nil
}

// Reason returns the rejection reason, "malformed" for structural errors,
// or "" when accepted.
func (r Result) Reason() string {
	var rejection *validation.ValidationError
	switch {
	case r.Err == nil:
		return ""
	case errors.As(r.Err, &rejection):
		return rejection.Err.Reason()
	default:
		return "malformed"
	}
}

type SweepService struct {
	validator   Validator
	tips        ChainTipSource
	metrics     Metrics
	clock       Clock
	workerCount int
	logger      *zap.Logger
}

func NewSweepService(
	validator Validator,
	tips ChainTipSource,
	metrics Metrics,
	workerCount int,
	logger *zap.Logger,
) (*SweepService, error) {
	if validator == nil {
		return nil, errors.New("sweep service validator is required")
	}
	if tips == nil {
		return nil, errors.New("sweep service chain tip source is required")
	}
	if metrics == nil {
		return nil, errors.New("sweep service metrics is required")
	}
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SweepService{
		validator:   validator,
		tips:        tips,
		metrics:     metrics,
		clock:       clock.Real{},
		workerCount: workerCount,
		logger:      logger.Named("sweepService"),
	}, nil
}

// ValidateCandidates validates every candidate against the current chain tip.
// Rejections are reported per candidate. Storage or node failures abort the
// whole batch.
func (s *SweepService) ValidateCandidates(ctx context.Context, candidates []Candidate) ([]Result, error) {
	tip, err := s.tips.ChainTip(ctx)
	if err != nil {
		s.logger.Error("fetch chain tip failed", zap.Error(err))
		return nil, err
	}
	return s.validateAt(ctx, tip, candidates)
}

// Watch re-validates candidates each time the chain tip moves, polling every
// interval, and hands each batch of results to report. It returns when ctx is
// done or when validation or report fails.
func (s *SweepService) Watch(
	ctx context.Context,
	candidates []Candidate,
	interval time.Duration,
	report func([]Result) error,
) error {
	var last model.BlockRef
	for {
		tip, err := s.tips.ChainTip(ctx)
		if err != nil {
			return err
		}

		if tip != last {
			results, err := s.validateAt(ctx, tip, candidates)
			if err != nil {
				return err
			}
			if err := report(results); err != nil {
				return err
			}
			last = tip
		} else {
			s.logger.Debug("chain tip unchanged", zap.Stringer("chain_tip", tip.Hash), zap.Duration("sleep", interval))
		}

		if err := s.clock.Sleep(ctx, interval); err != nil {
			return err
		}
	}
}

func (s *SweepService) validateAt(ctx context.Context, tip model.BlockRef, candidates []Candidate) (_ []Result, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBatch(err, len(candidates), started)
	}()

	logger := s.logger.With(zap.Stringer("chain_tip", tip.Hash), zap.Uint64("chain_tip_height", tip.Height))
	logger.Info("validating candidates", zap.Int("candidate_count", len(candidates)))

	results, err := workerpool.Map(ctx, s.workerCount, candidates, func(ctx context.Context, i int, c Candidate) (Result, error) {
		txCtx := c.TxContext(tip)
		res := Result{Index: i, TxID: txCtx.TxID(), ChainTip: tip}

		err := s.validator.Validate(ctx, txCtx)
		var rejection *validation.ValidationError
		switch {
		case err == nil:
		case errors.As(err, &rejection),
			errors.Is(err, validation.ErrRequestCountMismatch),
			errors.Is(err, validation.ErrMissingTransaction):
			res.Err = err
		default:
			return res, err
		}
		return res, nil
	})
	if err != nil {
		logger.Error("validate candidates failed", zap.Error(err))
		return nil, err
	}

	accepted := 0
	for _, r := range results {
		if r.Accepted() {
			accepted++
		}
	}
	logger.Info("candidates validated",
		zap.Int("accepted", accepted),
		zap.Int("rejected", len(results)-accepted),
	)
	return results, nil
}
