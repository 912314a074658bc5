package validation

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Storage is the read-only view of chain and request state. A nil
	// result with a nil error means the record was not found.
	Storage interface {
		DepositRequest(ctx context.Context, outpoint wire.OutPoint) (*model.DepositRequest, error)
		DepositSignerDecision(ctx context.Context, outpoint wire.OutPoint, signer model.PublicKey) (*model.DepositSigner, error)
		TxConfirmation(ctx context.Context, chainTip model.BlockRef, txid chainhash.Hash) (*model.BlockRef, error)
		OutpointSpender(ctx context.Context, chainTip model.BlockRef, outpoint wire.OutPoint) (*chainhash.Hash, error)
		SignerUTXO(ctx context.Context, chainTip model.BlockRef) (*model.SignerUTXO, error)
		LatestAggregateKey(ctx context.Context) (*model.PublicKey, error)
		WithdrawalRequest(ctx context.Context, id model.QualifiedRequestID) (*model.WithdrawalRequest, error)
		WithdrawalSignerDecision(ctx context.Context, id model.QualifiedRequestID, signer model.PublicKey) (*model.WithdrawalSigner, error)
		WithdrawalFulfillment(ctx context.Context, chainTip model.BlockRef, id model.QualifiedRequestID) (*chainhash.Hash, error)
	}
	Metrics interface {
		ObserveValidation(result, reason string, started time.Time)
	}
)
