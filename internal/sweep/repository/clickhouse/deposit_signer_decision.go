package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

const depositSignerDecisionQuery = `
SELECT can_sign, is_accepted
FROM deposit_signers
WHERE txid = CAST(? AS FixedString(64))
  AND output_index = ?
  AND signer_pub_key = CAST(? AS FixedString(66))
ORDER BY created_at DESC
LIMIT 1`

// DepositSignerDecision returns signer's decision on the deposit at outpoint, or nil.
func (r *Repository) DepositSignerDecision(ctx context.Context, outpoint wire.OutPoint, signer model.PublicKey) (_ *model.DepositSigner, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("deposit_signer_decision", err, start)
	}()

	var decision *model.DepositSigner
	err = r.query(ctx, depositSignerDecisionQuery, func(rows Rows) error {
		d := model.DepositSigner{Outpoint: outpoint, SignerPublicKey: signer}
		if err := rows.Scan(&d.CanSign, &d.IsAccepted); err != nil {
			return err
		}
		decision = &d
		return nil
	}, outpoint.Hash.String(), outpoint.Index, signer.String())
	if err != nil {
		return nil, fmt.Errorf("query deposit signer decision %s: %w", outpoint, err)
	}

	return decision, nil
}
