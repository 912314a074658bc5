package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

const withdrawalFulfillmentQuery = `
SELECT sweep_txid, block_hash, block_height
FROM withdrawal_fulfillments
WHERE request_id = ?
  AND stacks_block_hash = CAST(? AS FixedString(64))
  AND block_height <= ?`

// WithdrawalFulfillment returns the canonical sweep that paid the withdrawal, or nil.
func (r *Repository) WithdrawalFulfillment(ctx context.Context, chainTip model.BlockRef, id model.QualifiedRequestID) (_ *chainhash.Hash, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("withdrawal_fulfillment", err, start)
	}()

	var candidates []confirmedRow
	err = r.query(ctx, withdrawalFulfillmentQuery, func(rows Rows) error {
		row, err := scanConfirmedRow(rows)
		if err != nil {
			return err
		}
		candidates = append(candidates, row)
		return nil
	}, id.RequestID, id.BlockHash.String(), chainTip.Height)
	if err != nil {
		return nil, fmt.Errorf("query fulfillments of %s: %w", id, err)
	}

	i, err := r.firstCanonical(ctx, chainTip, candidates)
	if err != nil || i < 0 {
		return nil, err
	}
	return &candidates[i].txid, nil
}
