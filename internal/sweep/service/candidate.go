package service

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
	"github.com/ryanwaits/sbtc/internal/sweep/validation"
)

// Candidate is a proposed sweep transaction awaiting this signer's decision.
type Candidate struct {
	Tx         *wire.MsgTx
	RequestIDs []model.QualifiedRequestID
	Origin     model.PublicKey
}

// TxContext binds the candidate to a chain tip for validation.
func (c Candidate) TxContext(chainTip model.BlockRef) validation.BitcoinTxContext {
	return validation.BitcoinTxContext{
		ChainTip:       chainTip.Hash,
		ChainTipHeight: chainTip.Height,
		Tx:             c.Tx,
		RequestIDs:     c.RequestIDs,
		Origin:         c.Origin,
	}
}

type candidateJSON struct {
	Tx         string          `json:"tx"`
	RequestIDs []requestIDJSON `json:"request_ids"`
	Origin     string          `json:"origin"`
}

type requestIDJSON struct {
	RequestID uint64 `json:"request_id"`
	TxID      string `json:"txid"`
	BlockHash string `json:"block_hash"`
}

// DecodeCandidates reads a JSON array of candidates. Transactions are hex
// encoded in wire format.
func DecodeCandidates(r io.Reader) ([]Candidate, error) {
	var raw []candidateJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}

	candidates := make([]Candidate, 0, len(raw))
	for i, c := range raw {
		candidate, err := c.candidate()
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (c candidateJSON) candidate() (Candidate, error) {
	var candidate Candidate

	txBytes, err := hex.DecodeString(c.Tx)
	if err != nil {
		return candidate, fmt.Errorf("decode tx hex: %w", err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(txBytes)); err != nil {
		return candidate, fmt.Errorf("deserialize tx: %w", err)
	}
	candidate.Tx = tx

	if candidate.Origin, err = model.ParsePublicKeyHex(c.Origin); err != nil {
		return candidate, fmt.Errorf("origin: %w", err)
	}

	candidate.RequestIDs = make([]model.QualifiedRequestID, 0, len(c.RequestIDs))
	for _, id := range c.RequestIDs {
		qualified := model.QualifiedRequestID{RequestID: id.RequestID}
		if qualified.TxID, err = model.ParseStacksHash(id.TxID); err != nil {
			return candidate, fmt.Errorf("request %d txid: %w", id.RequestID, err)
		}
		if qualified.BlockHash, err = model.ParseStacksHash(id.BlockHash); err != nil {
			return candidate, fmt.Errorf("request %d block hash: %w", id.RequestID, err)
		}
		candidate.RequestIDs = append(candidate.RequestIDs, qualified)
	}
	return candidate, nil
}
