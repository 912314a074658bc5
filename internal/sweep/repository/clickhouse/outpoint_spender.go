package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

const outpointSpenderQuery = `
SELECT txid, block_hash, block_height
FROM bitcoin_tx_inputs
WHERE prev_txid = CAST(? AS FixedString(64))
  AND prev_output_index = ?
  AND block_height <= ?`

// OutpointSpender returns the canonical transaction that spent outpoint, or nil.
func (r *Repository) OutpointSpender(ctx context.Context, chainTip model.BlockRef, outpoint wire.OutPoint) (_ *chainhash.Hash, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("outpoint_spender", err, start)
	}()

	var candidates []confirmedRow
	err = r.query(ctx, outpointSpenderQuery, func(rows Rows) error {
		row, err := scanConfirmedRow(rows)
		if err != nil {
			return err
		}
		candidates = append(candidates, row)
		return nil
	}, outpoint.Hash.String(), outpoint.Index, chainTip.Height)
	if err != nil {
		return nil, fmt.Errorf("query spenders of %s: %w", outpoint, err)
	}

	i, err := r.firstCanonical(ctx, chainTip, candidates)
	if err != nil || i < 0 {
		return nil, err
	}
	return &candidates[i].txid, nil
}
