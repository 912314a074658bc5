package bitcoin

import (
	"context"
	"errors"
	"fmt"

	"github.com/ryanwaits/sbtc/internal/sweep/model"
	"github.com/ryanwaits/sbtc/pkg/safe"
)

// ChainTipSource resolves the node's best block.
type ChainTipSource struct {
	client RPCClient
}

func NewChainTipSource(client RPCClient) (*ChainTipSource, error) {
	if client == nil {
		return nil, errors.New("rpc client is required")
	}
	return &ChainTipSource{client: client}, nil
}

// ChainTip returns the hash and height of the node's best block.
func (s *ChainTipSource) ChainTip(ctx context.Context) (model.BlockRef, error) {
	if err := ctx.Err(); err != nil {
		return model.BlockRef{}, err
	}

	hash, err := s.client.GetBestBlockHash()
	if err != nil {
		return model.BlockRef{}, fmt.Errorf("get best block hash: %w", err)
	}

	header, err := s.client.GetBlockHeaderVerbose(hash)
	if err != nil {
		return model.BlockRef{}, fmt.Errorf("get block header %s: %w", hash, err)
	}
	if header.Hash != hash.String() {
		return model.BlockRef{}, fmt.Errorf("node returned header %s for block %s", header.Hash, hash)
	}

	height, err := safe.Uint64(header.Height)
	if err != nil {
		return model.BlockRef{}, fmt.Errorf("block %s height: %w", hash, err)
	}

	return model.BlockRef{Hash: *hash, Height: height}, nil
}

// EnsureNetwork checks that the node's genesis block belongs to network.
func (s *ChainTipSource) EnsureNetwork(ctx context.Context, network model.Network) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params, err := network.ChainParams()
	if err != nil {
		return err
	}

	genesis, err := s.client.GetBlockHash(0)
	if err != nil {
		return fmt.Errorf("get genesis block hash: %w", err)
	}
	if !genesis.IsEqual(params.GenesisHash) {
		return fmt.Errorf("node genesis %s does not match %s genesis %s", genesis, network, params.GenesisHash)
	}
	return nil
}
