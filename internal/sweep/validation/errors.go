package validation

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

var (
	// ErrRequestCountMismatch is returned when the withdrawal request ids do not
	// line up with the withdrawal outputs of the transaction.
	ErrRequestCountMismatch = errors.New("withdrawal request ids do not match withdrawal outputs")
	// ErrMissingTransaction is returned when the context carries no transaction.
	ErrMissingTransaction = errors.New("sweep transaction is missing")
)

// ErrorKind classifies why part of a sweep transaction was rejected.
type ErrorKind uint8

const (
	AssessedFeeTooHigh ErrorKind = iota + 1
	CannotSignUtxo
	TxNotOnBestChain
	DepositUtxoSpent
	LockTimeExpiry
	NoVote
	RejectedRequest
	Unknown
	UnsupportedLockTime
	RequestFulfilled
	AmountMismatch
	RecipientMismatch
	MissingSignerInput
	NoSignerUTXO
	OutpointMismatch
	MissingOutputs
	NoAggregateKey
	ScriptMismatch
	DustOutput
	MissingDataOutput
	OutputsExceedInputs
)

var errorKindNames = map[ErrorKind]string{
	AssessedFeeTooHigh:  "assessed_fee_too_high",
	CannotSignUtxo:      "cannot_sign_utxo",
	TxNotOnBestChain:    "tx_not_on_best_chain",
	DepositUtxoSpent:    "deposit_utxo_spent",
	LockTimeExpiry:      "lock_time_expiry",
	NoVote:              "no_vote",
	RejectedRequest:     "rejected_request",
	Unknown:             "unknown",
	UnsupportedLockTime: "unsupported_lock_time",
	RequestFulfilled:    "request_fulfilled",
	AmountMismatch:      "amount_mismatch",
	RecipientMismatch:   "recipient_mismatch",
	MissingSignerInput:  "missing_signer_input",
	NoSignerUTXO:        "no_signer_utxo",
	OutpointMismatch:    "outpoint_mismatch",
	MissingOutputs:      "missing_outputs",
	NoAggregateKey:      "no_aggregate_key",
	ScriptMismatch:      "script_mismatch",
	DustOutput:          "dust_output",
	MissingDataOutput:   "missing_data_output",
	OutputsExceedInputs: "outputs_exceed_inputs",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// SweepError is a rejection of one part of a sweep transaction.
type SweepError interface {
	error
	// Reason is a stable label naming the failing part and kind.
	Reason() string
}

var (
	_ SweepError = DepositInputError{}
	_ SweepError = WithdrawalOutputError{}
	_ SweepError = SignerInputError{}
	_ SweepError = SignerOutputError{}
	_ SweepError = FeeError{}
)

// DepositInputError rejects a deposit input. TxID is set for DepositUtxoSpent.
type DepositInputError struct {
	Kind     ErrorKind
	Outpoint wire.OutPoint
	TxID     chainhash.Hash
}

func (e DepositInputError) Error() string {
	switch e.Kind {
	case AssessedFeeTooHigh:
		return fmt.Sprintf("assessed fee for deposit %s would exceed its max fee", e.Outpoint)
	case CannotSignUtxo:
		return fmt.Sprintf("signer is not part of the signing set that locked deposit %s", e.Outpoint)
	case TxNotOnBestChain:
		return fmt.Sprintf("deposit %s is not confirmed on the canonical bitcoin chain", e.Outpoint)
	case DepositUtxoSpent:
		return fmt.Sprintf("deposit %s already spent by confirmed sweep transaction %s", e.Outpoint, e.TxID)
	case LockTimeExpiry:
		return fmt.Sprintf("lock-time of deposit %s expires too soon", e.Outpoint)
	case NoVote:
		return fmt.Sprintf("no vote was cast for deposit %s", e.Outpoint)
	case RejectedRequest:
		return fmt.Sprintf("deposit %s was rejected by this signer", e.Outpoint)
	case Unknown:
		return fmt.Sprintf("no record of deposit %s", e.Outpoint)
	case UnsupportedLockTime:
		return fmt.Sprintf("deposit %s has a lock-time that is not counted in blocks, which is unsupported", e.Outpoint)
	default:
		return fmt.Sprintf("deposit %s rejected: %s", e.Outpoint, e.Kind)
	}
}

func (e DepositInputError) Reason() string {
	return "deposit_" + e.Kind.String()
}

// WithdrawalOutputError rejects a withdrawal output. TxID is set for RequestFulfilled.
type WithdrawalOutputError struct {
	Kind        ErrorKind
	RequestID   model.QualifiedRequestID
	OutputIndex int
	TxID        chainhash.Hash
}

func (e WithdrawalOutputError) Error() string {
	switch e.Kind {
	case AssessedFeeTooHigh:
		return fmt.Sprintf("assessed fee for withdrawal %s would exceed its max fee", e.RequestID)
	case NoVote:
		return fmt.Sprintf("no vote was cast for withdrawal %s", e.RequestID)
	case RejectedRequest:
		return fmt.Sprintf("withdrawal %s was rejected by this signer", e.RequestID)
	case Unknown:
		return fmt.Sprintf("no record of withdrawal %s", e.RequestID)
	case RequestFulfilled:
		return fmt.Sprintf("withdrawal %s already fulfilled by sweep transaction %s", e.RequestID, e.TxID)
	case AmountMismatch:
		return fmt.Sprintf("output %d does not pay the amount of withdrawal %s", e.OutputIndex, e.RequestID)
	case RecipientMismatch:
		return fmt.Sprintf("output %d does not pay the recipient of withdrawal %s", e.OutputIndex, e.RequestID)
	default:
		return fmt.Sprintf("withdrawal %s rejected: %s", e.RequestID, e.Kind)
	}
}

func (e WithdrawalOutputError) Reason() string {
	return "withdrawal_" + e.Kind.String()
}

// SignerInputError rejects the first input of a sweep.
type SignerInputError struct {
	Kind     ErrorKind
	Outpoint wire.OutPoint
	Expected wire.OutPoint
}

func (e SignerInputError) Error() string {
	switch e.Kind {
	case MissingSignerInput:
		return "sweep transaction has no inputs"
	case NoSignerUTXO:
		return "no signer utxo is known on the canonical bitcoin chain"
	case OutpointMismatch:
		return fmt.Sprintf("first input spends %s, expected signer utxo %s", e.Outpoint, e.Expected)
	case ScriptMismatch:
		return fmt.Sprintf("signer utxo %s is not locked to the key path of its aggregate key", e.Outpoint)
	default:
		return fmt.Sprintf("signer input rejected: %s", e.Kind)
	}
}

func (e SignerInputError) Reason() string {
	return "signer_input_" + e.Kind.String()
}

// SignerOutputError rejects the custody or data output of a sweep.
type SignerOutputError struct {
	Kind        ErrorKind
	OutputIndex int
}

func (e SignerOutputError) Error() string {
	switch e.Kind {
	case MissingOutputs:
		return "sweep transaction must have a signer output and a data output"
	case NoAggregateKey:
		return "no aggregate key is known for the current signing set"
	case ScriptMismatch:
		return fmt.Sprintf("output %d is not locked to the current aggregate key", e.OutputIndex)
	case DustOutput:
		return fmt.Sprintf("output %d is dust", e.OutputIndex)
	case MissingDataOutput:
		return fmt.Sprintf("output %d is not a zero value data output", e.OutputIndex)
	default:
		return fmt.Sprintf("signer output %d rejected: %s", e.OutputIndex, e.Kind)
	}
}

func (e SignerOutputError) Reason() string {
	return "signer_output_" + e.Kind.String()
}

// FeeError rejects the implied fee of a sweep as a whole.
type FeeError struct {
	Kind        ErrorKind
	InputTotal  uint64
	OutputTotal uint64
}

func (e FeeError) Error() string {
	if e.Kind == OutputsExceedInputs {
		return fmt.Sprintf("outputs total %s exceeds inputs total %s",
			btcutil.Amount(e.OutputTotal), btcutil.Amount(e.InputTotal))
	}
	return fmt.Sprintf("fee rejected: %s", e.Kind)
}

func (e FeeError) Reason() string {
	return "fee_" + e.Kind.String()
}
