package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

const withdrawalRequestQuery = `
SELECT amount, max_fee, recipient
FROM withdrawal_requests
WHERE request_id = ?
  AND txid = CAST(? AS FixedString(64))
  AND block_hash = CAST(? AS FixedString(64))
LIMIT 1`

// WithdrawalRequest returns the withdrawal request with the given id, or nil.
func (r *Repository) WithdrawalRequest(ctx context.Context, id model.QualifiedRequestID) (_ *model.WithdrawalRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("withdrawal_request", err, start)
	}()

	var request *model.WithdrawalRequest
	err = r.query(ctx, withdrawalRequestQuery, func(rows Rows) error {
		var (
			req       = model.WithdrawalRequest{ID: id}
			recipient string
		)
		if err := rows.Scan(&req.Amount, &req.MaxFee, &recipient); err != nil {
			return err
		}
		script, err := hex.DecodeString(recipient)
		if err != nil {
			return fmt.Errorf("decode recipient script: %w", err)
		}
		req.Recipient = script
		request = &req
		return nil
	}, id.RequestID, id.TxID.String(), id.BlockHash.String())
	if err != nil {
		return nil, fmt.Errorf("query withdrawal request %s: %w", id, err)
	}

	return request, nil
}
