package model

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
)

// PublicKey is a compressed secp256k1 public key.
type PublicKey [btcec.PubKeyBytesLenCompressed]byte

// ParsePublicKey validates a serialized secp256k1 key and returns its compressed form.
func ParsePublicKey(b []byte) (PublicKey, error) {
	pub, err := btcec.ParsePubKey(b)
	if err != nil {
		return PublicKey{}, fmt.Errorf("parse public key: %w", err)
	}
	return PublicKeyFromBtcec(pub), nil
}

// ParsePublicKeyHex parses a hex encoded secp256k1 key.
func ParsePublicKeyHex(s string) (PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("decode public key hex: %w", err)
	}
	return ParsePublicKey(b)
}

// PublicKeyFromBtcec converts a btcec key.
func PublicKeyFromBtcec(pub *btcec.PublicKey) PublicKey {
	var k PublicKey
	copy(k[:], pub.SerializeCompressed())
	return k
}

// Btcec returns the key as a btcec public key.
func (k PublicKey) Btcec() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(k[:])
}

// SignersScriptPubKey returns the P2TR key-path script that locks funds to this key.
func (k PublicKey) SignersScriptPubKey() ([]byte, error) {
	pub, err := k.Btcec()
	if err != nil {
		return nil, fmt.Errorf("parse public key %s: %w", k, err)
	}
	return txscript.PayToTaprootScript(txscript.ComputeTaprootKeyNoScript(pub))
}

func (k PublicKey) String() string {
	return hex.EncodeToString(k[:])
}

// StacksHash is a 32 byte sidechain transaction id or block hash.
type StacksHash [32]byte

// ParseStacksHash parses a hex encoded sidechain hash.
func ParseStacksHash(s string) (StacksHash, error) {
	var h StacksHash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("decode stacks hash: %w", err)
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("stacks hash must be %d bytes, got %d", len(h), len(b))
	}
	copy(h[:], b)
	return h, nil
}

func (h StacksHash) String() string {
	return hex.EncodeToString(h[:])
}
