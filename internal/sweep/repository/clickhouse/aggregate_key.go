package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

const latestAggregateKeyQuery = `
SELECT aggregate_key
FROM dkg_shares
ORDER BY created_at DESC
LIMIT 1`

// LatestAggregateKey returns the aggregate key of the newest signing set, or nil.
func (r *Repository) LatestAggregateKey(ctx context.Context) (_ *model.PublicKey, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_aggregate_key", err, start)
	}()

	var key *model.PublicKey
	err = r.query(ctx, latestAggregateKeyQuery, func(rows Rows) error {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return err
		}
		parsed, err := model.ParsePublicKeyHex(raw)
		if err != nil {
			return err
		}
		key = &parsed
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query latest aggregate key: %w", err)
	}

	return key, nil
}
