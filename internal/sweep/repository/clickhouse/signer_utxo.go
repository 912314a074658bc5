package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

// signerUTXOLookback bounds how many recent signer utxos are checked against
// the canonical chain.
var signerUTXOLookback uint64 = 16

const signerUTXOQuery = `
SELECT txid, block_hash, block_height, output_index, amount, aggregate_key, script_pub_key
FROM signer_utxos
WHERE block_height <= ?
ORDER BY block_height DESC
LIMIT ?`

// SignerUTXO returns the most recent signer utxo confirmed on the canonical chain, or nil.
func (r *Repository) SignerUTXO(ctx context.Context, chainTip model.BlockRef) (_ *model.SignerUTXO, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("signer_utxo", err, start)
	}()

	var (
		candidates []confirmedRow
		utxos      []model.SignerUTXO
	)
	err = r.query(ctx, signerUTXOQuery, func(rows Rows) error {
		var (
			txid, blockHash, aggregateKey, script string
			row                                   confirmedRow
			utxo                                  model.SignerUTXO
		)
		if err := rows.Scan(&txid, &blockHash, &row.block.Height, &utxo.Outpoint.Index, &utxo.Amount, &aggregateKey, &script); err != nil {
			return err
		}
		if err := decodeHashes(&row, txid, blockHash); err != nil {
			return err
		}
		key, err := model.ParsePublicKeyHex(aggregateKey)
		if err != nil {
			return err
		}
		if utxo.ScriptPubKey, err = hex.DecodeString(script); err != nil {
			return fmt.Errorf("decode script pub key: %w", err)
		}
		utxo.Outpoint.Hash = row.txid
		utxo.AggregateKey = key
		candidates = append(candidates, row)
		utxos = append(utxos, utxo)
		return nil
	}, chainTip.Height, signerUTXOLookback)
	if err != nil {
		return nil, fmt.Errorf("query signer utxos: %w", err)
	}

	i, err := r.firstCanonical(ctx, chainTip, candidates)
	if err != nil || i < 0 {
		return nil, err
	}
	return &utxos[i], nil
}
