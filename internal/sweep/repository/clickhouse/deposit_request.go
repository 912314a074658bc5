package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

const depositRequestQuery = `
SELECT amount, max_fee, lock_time
FROM deposit_requests
WHERE txid = CAST(? AS FixedString(64)) AND output_index = ?
LIMIT 1`

// DepositRequest returns the deposit recorded for outpoint, or nil.
func (r *Repository) DepositRequest(ctx context.Context, outpoint wire.OutPoint) (_ *model.DepositRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("deposit_request", err, start)
	}()

	var request *model.DepositRequest
	err = r.query(ctx, depositRequestQuery, func(rows Rows) error {
		var (
			req      = model.DepositRequest{Outpoint: outpoint}
			sequence uint32
		)
		if err := rows.Scan(&req.Amount, &req.MaxFee, &sequence); err != nil {
			return err
		}
		lockTime, err := model.LockTimeFromSequence(sequence)
		switch {
		case errors.Is(err, model.ErrLockTimeDisabled):
			// rejected as unsupported by validation, not a storage failure
			lockTime = model.LockTimeDisabled()
		case err != nil:
			return err
		}
		req.LockTime = lockTime
		request = &req
		return nil
	}, outpoint.Hash.String(), outpoint.Index)
	if err != nil {
		return nil, fmt.Errorf("query deposit request %s: %w", outpoint, err)
	}

	return request, nil
}
