package validation

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

// WithdrawalStatus tells whether a withdrawal was already paid out.
type WithdrawalStatus interface {
	withdrawalStatus()
}

// WithdrawalPending means no canonical sweep has paid the withdrawal yet.
type WithdrawalPending struct{}

// WithdrawalFulfilled means a canonical sweep already paid the withdrawal.
type WithdrawalFulfilled struct {
	TxID chainhash.Hash
}

func (WithdrawalPending) withdrawalStatus()   {}
func (WithdrawalFulfilled) withdrawalStatus() {}

// WithdrawalRequestReport is what this signer knows about one withdrawal output.
type WithdrawalRequestReport struct {
	ID          model.QualifiedRequestID
	OutputIndex int
	Status      WithdrawalStatus
	IsAccepted  model.Flag
	Amount      uint64
	MaxFee      uint64
	Recipient   []byte
}

// Validate checks that out pays the request and that this signer accepted it.
func (r WithdrawalRequestReport) Validate(out *wire.TxOut) error {
	if status, ok := r.Status.(WithdrawalFulfilled); ok {
		return WithdrawalOutputError{Kind: RequestFulfilled, RequestID: r.ID, OutputIndex: r.OutputIndex, TxID: status.TxID}
	}

	switch r.IsAccepted {
	case model.FlagYes:
	case model.FlagNo:
		return r.reject(RejectedRequest)
	default:
		return r.reject(NoVote)
	}

	if out.Value < 0 || uint64(out.Value) != r.Amount {
		return r.reject(AmountMismatch)
	}
	if !bytes.Equal(out.PkScript, r.Recipient) {
		return r.reject(RecipientMismatch)
	}

	return nil
}

func (r WithdrawalRequestReport) reject(kind ErrorKind) error {
	return WithdrawalOutputError{Kind: kind, RequestID: r.ID, OutputIndex: r.OutputIndex}
}
