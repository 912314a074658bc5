package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// BlockRef identifies a bitcoin block by hash and height.
type BlockRef struct {
	Hash   chainhash.Hash
	Height uint64
}

// QualifiedRequestID uniquely identifies a withdrawal request on the sidechain.
type QualifiedRequestID struct {
	RequestID uint64
	TxID      StacksHash
	BlockHash StacksHash
}

func (id QualifiedRequestID) String() string {
	return fmt.Sprintf("%d:%s:%s", id.RequestID, id.TxID, id.BlockHash)
}

// DepositRequest is a deposit output recorded by the signer.
type DepositRequest struct {
	Outpoint wire.OutPoint
	Amount   uint64
	MaxFee   uint64
	LockTime LockTime
}

// DepositSigner is one signer's decision on a deposit request.
type DepositSigner struct {
	Outpoint        wire.OutPoint
	SignerPublicKey PublicKey
	CanSign         bool
	IsAccepted      bool
}

// WithdrawalRequest is a sidechain request to pay out custody funds.
type WithdrawalRequest struct {
	ID        QualifiedRequestID
	Amount    uint64
	MaxFee    uint64
	Recipient []byte
}

// WithdrawalSigner is one signer's decision on a withdrawal request.
type WithdrawalSigner struct {
	ID              QualifiedRequestID
	SignerPublicKey PublicKey
	IsAccepted      bool
}

// SignerUTXO is the custody output controlled by the signing set.
// ScriptPubKey is the locking script of the output as it was confirmed.
type SignerUTXO struct {
	Outpoint     wire.OutPoint
	Amount       uint64
	AggregateKey PublicKey
	ScriptPubKey []byte
}
