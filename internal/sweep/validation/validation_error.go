package validation

import (
	"fmt"

	"go.uber.org/zap"
)

// ValidationError is a policy rejection of a sweep transaction together with
// the context that produced it.
type ValidationError struct {
	Err     SweepError
	Context BitcoinTxContext
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sweep transaction %s rejected: %v", e.Context.TxID(), e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields renders the rejection for a structured log line.
func (e *ValidationError) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("reason", e.Err.Reason()),
		zap.Error(e.Err),
		zap.Stringer("txid", e.Context.TxID()),
		zap.Stringer("chain_tip", e.Context.ChainTip),
		zap.Uint64("chain_tip_height", e.Context.ChainTipHeight),
		zap.Stringer("origin", e.Context.Origin),
		zap.Int("request_ids", len(e.Context.RequestIDs)),
	}
}
