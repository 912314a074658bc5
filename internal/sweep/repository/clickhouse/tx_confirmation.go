package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

const txConfirmationQuery = `
SELECT txid, block_hash, block_height
FROM bitcoin_transactions
WHERE txid = CAST(? AS FixedString(64)) AND block_height <= ?`

// TxConfirmation returns the canonical block that confirmed txid, or nil.
func (r *Repository) TxConfirmation(ctx context.Context, chainTip model.BlockRef, txid chainhash.Hash) (_ *model.BlockRef, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("tx_confirmation", err, start)
	}()

	var candidates []confirmedRow
	err = r.query(ctx, txConfirmationQuery, func(rows Rows) error {
		row, err := scanConfirmedRow(rows)
		if err != nil {
			return err
		}
		candidates = append(candidates, row)
		return nil
	}, txid.String(), chainTip.Height)
	if err != nil {
		return nil, fmt.Errorf("query confirmations of %s: %w", txid, err)
	}

	i, err := r.firstCanonical(ctx, chainTip, candidates)
	if err != nil || i < 0 {
		return nil, err
	}
	return &candidates[i].block, nil
}
