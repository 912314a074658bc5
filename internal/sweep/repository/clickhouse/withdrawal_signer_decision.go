package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

const withdrawalSignerDecisionQuery = `
SELECT is_accepted
FROM withdrawal_signers
WHERE request_id = ?
  AND block_hash = CAST(? AS FixedString(64))
  AND signer_pub_key = CAST(? AS FixedString(66))
ORDER BY created_at DESC
LIMIT 1`

// WithdrawalSignerDecision returns signer's decision on the withdrawal, or nil.
func (r *Repository) WithdrawalSignerDecision(ctx context.Context, id model.QualifiedRequestID, signer model.PublicKey) (_ *model.WithdrawalSigner, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("withdrawal_signer_decision", err, start)
	}()

	var decision *model.WithdrawalSigner
	err = r.query(ctx, withdrawalSignerDecisionQuery, func(rows Rows) error {
		d := model.WithdrawalSigner{ID: id, SignerPublicKey: signer}
		if err := rows.Scan(&d.IsAccepted); err != nil {
			return err
		}
		decision = &d
		return nil
	}, id.RequestID, id.BlockHash.String(), signer.String())
	if err != nil {
		return nil, fmt.Errorf("query withdrawal signer decision %s: %w", id, err)
	}

	return decision, nil
}
