package service

import (
	"context"
	"time"

	"github.com/ryanwaits/sbtc/internal/sweep/model"
	"github.com/ryanwaits/sbtc/internal/sweep/validation"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Validator interface {
		Validate(ctx context.Context, txCtx validation.BitcoinTxContext) error
	}
	ChainTipSource interface {
		ChainTip(ctx context.Context) (model.BlockRef, error)
	}
	Metrics interface {
		ObserveBatch(err error, candidates int, started time.Time)
	}
	Clock interface {
		Sleep(ctx context.Context, d time.Duration) error
	}
)
