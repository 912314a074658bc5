package validation

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
	"github.com/ryanwaits/sbtc/pkg/safe"
)

// DepositLockTimeBlockBuffer is the number of blocks that must remain before a
// depositor can reclaim a deposit for it to be swept.
const DepositLockTimeBlockBuffer uint16 = 3

// DepositStatus is the confirmation state of a deposit on the canonical chain.
type DepositStatus interface {
	depositStatus()
}

// DepositConfirmed means the deposit transaction is in a canonical block.
type DepositConfirmed struct {
	BlockHeight uint64
	BlockHash   chainhash.Hash
}

// DepositSpent means a confirmed sweep already spent the deposit.
type DepositSpent struct {
	TxID chainhash.Hash
}

// DepositUnconfirmed means the deposit is not on the canonical chain.
type DepositUnconfirmed struct{}

func (DepositConfirmed) depositStatus()   {}
func (DepositSpent) depositStatus()       {}
func (DepositUnconfirmed) depositStatus() {}

// DepositRequestReport is what this signer knows about one deposit input.
// IsAccepted is only consulted when CanSign is FlagYes.
type DepositRequestReport struct {
	Outpoint   wire.OutPoint
	Status     DepositStatus
	CanSign    model.Flag
	IsAccepted model.Flag
	Amount     uint64
	MaxFee     uint64
	LockTime   model.LockTime
}

// Validate decides whether the deposit may be swept at the given chain tip
// height. The first failing check wins.
func (r DepositRequestReport) Validate(chainTipHeight uint64) error {
	var confirmedHeight uint64
	switch status := r.Status.(type) {
	case DepositConfirmed:
		confirmedHeight = status.BlockHeight
	case DepositSpent:
		return DepositInputError{Kind: DepositUtxoSpent, Outpoint: r.Outpoint, TxID: status.TxID}
	default:
		return r.reject(TxNotOnBestChain)
	}

	switch r.CanSign {
	case model.FlagYes:
	case model.FlagNo:
		return r.reject(CannotSignUtxo)
	default:
		return r.reject(NoVote)
	}

	if r.IsAccepted != model.FlagYes {
		return r.reject(RejectedRequest)
	}

	age := safe.SaturatingSub(chainTipHeight, confirmedHeight)
	blocks, ok := r.LockTime.Blocks()
	if !ok {
		return r.reject(UnsupportedLockTime)
	}
	maxAge := safe.SaturatingSub(blocks, DepositLockTimeBlockBuffer)
	if age >= uint64(maxAge) {
		return r.reject(LockTimeExpiry)
	}

	return nil
}

func (r DepositRequestReport) reject(kind ErrorKind) error {
	return DepositInputError{Kind: kind, Outpoint: r.Outpoint}
}
