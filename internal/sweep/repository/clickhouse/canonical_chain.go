package clickhouse

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

const canonicalBlocksQuery = `
SELECT block_hash, parent_hash, block_height
FROM bitcoin_blocks
WHERE block_height >= ? AND block_height <= ?`

// confirmedRow is a record together with the block that confirmed it.
type confirmedRow struct {
	txid  chainhash.Hash
	block model.BlockRef
}

func scanConfirmedRow(rows Rows) (confirmedRow, error) {
	var (
		txid, blockHash string
		row             confirmedRow
	)
	if err := rows.Scan(&txid, &blockHash, &row.block.Height); err != nil {
		return row, err
	}
	return row, decodeHashes(&row, txid, blockHash)
}

func decodeHashes(row *confirmedRow, txid, blockHash string) error {
	if err := chainhash.Decode(&row.txid, txid); err != nil {
		return fmt.Errorf("decode txid %q: %w", txid, err)
	}
	if err := chainhash.Decode(&row.block.Hash, blockHash); err != nil {
		return fmt.Errorf("decode block hash %q: %w", blockHash, err)
	}
	return nil
}

// firstCanonical returns the index of the first row confirmed by a block on
// the chain that ends at chainTip, or -1 if there is none.
func (r *Repository) firstCanonical(ctx context.Context, chainTip model.BlockRef, candidates []confirmedRow) (int, error) {
	if len(candidates) == 0 {
		return -1, nil
	}

	from := candidates[0].block.Height
	for _, c := range candidates[1:] {
		from = min(from, c.block.Height)
	}

	canonical, err := r.canonicalBlocks(ctx, chainTip, from)
	if err != nil {
		return -1, err
	}
	for i, c := range candidates {
		if height, ok := canonical[c.block.Hash]; ok && height == c.block.Height {
			return i, nil
		}
	}
	return -1, nil
}

// canonicalBlocks walks parent hashes from chainTip down to fromHeight and
// returns the height of every block on that path.
func (r *Repository) canonicalBlocks(ctx context.Context, chainTip model.BlockRef, fromHeight uint64) (map[chainhash.Hash]uint64, error) {
	type link struct {
		parent chainhash.Hash
		height uint64
	}
	links := make(map[chainhash.Hash]link)

	err := r.query(ctx, canonicalBlocksQuery, func(rows Rows) error {
		var (
			hash, parent string
			hashValue    chainhash.Hash
			l            link
		)
		if err := rows.Scan(&hash, &parent, &l.height); err != nil {
			return err
		}
		if err := chainhash.Decode(&hashValue, hash); err != nil {
			return fmt.Errorf("decode block hash %q: %w", hash, err)
		}
		if err := chainhash.Decode(&l.parent, parent); err != nil {
			return fmt.Errorf("decode parent hash %q: %w", parent, err)
		}
		links[hashValue] = l
		return nil
	}, fromHeight, chainTip.Height)
	if err != nil {
		return nil, fmt.Errorf("query canonical blocks: %w", err)
	}

	canonical := make(map[chainhash.Hash]uint64)
	for hash, steps := chainTip.Hash, 0; steps < len(links); steps++ {
		l, ok := links[hash]
		if !ok {
			break
		}
		canonical[hash] = l.height
		if l.height <= fromHeight {
			break
		}
		hash = l.parent
	}
	return canonical, nil
}
