// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// Wallet represents a local keypair and derived address.
type Wallet struct {
	PrivateKey ed25519.PrivateKey
	Address    Address
}

// NewWallet generates a new ed25519 keypair.
func NewWallet() (*Wallet, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	addr, err := AddressFromPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		PrivateKey: priv,
		Address:    addr,
	}, nil
}

// GenerateKey returns a fresh keypair plus its address.
func GenerateKey() (ed25519.PrivateKey, Address, error) {
	w, err := NewWallet()
	if err != nil {
		return nil, Address{}, err
	}
	return w.PrivateKey, w.Address, nil
}

// PrivateKeyToHex exports the private key seed as hex string (without 0x prefix).
func PrivateKeyToHex(priv ed25519.PrivateKey) (string, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return "", errors.New("invalid private key length")
	}
	return hex.EncodeToString(priv.Seed()), nil
}

// PrivateKeyFromHex parses a hex-encoded 32-byte seed.
func PrivateKeyFromHex(hexKey string) (ed25519.PrivateKey, error) {
	if hexKey == "" {
		return nil, errors.New("empty key string")
	}
	seed, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, err
	}
	if len(seed) != ed25519.SeedSize {
		return nil, errors.New("invalid seed length")
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// SignSubmission signs the submission sign-hash with the given private key.
// It fills sub.Signature and sub.Authority.
func SignSubmission(sub *Submission, priv ed25519.PrivateKey) error {
	if sub == nil {
		return errors.New("nil submission")
	}
	if len(priv) != ed25519.PrivateKeySize {
		return errors.New("invalid private key")
	}

	addr, err := AddressFromPublicKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return err
	}
	sub.Authority = addr

	h := sub.HashForSign()
	sub.Signature = ed25519.Sign(priv, h[:])
	return nil
}

// VerifySubmission checks the envelope signature against the claimed
// authority and returns the verified signer address. This is the
// authentication contract of the whole system: the returned address is
// the only value ever written into a record's authority field.
func VerifySubmission(sub *Submission) (Address, error) {
	if sub == nil {
		return Address{}, errors.New("nil submission")
	}
	if len(sub.Signature) != ed25519.SignatureSize {
		return Address{}, fmt.Errorf("signature length %d: %w", len(sub.Signature), ErrUnauthorized)
	}
	if sub.Authority.IsZero() {
		return Address{}, fmt.Errorf("zero authority: %w", ErrUnauthorized)
	}

	h := sub.HashForSign()
	if !ed25519.Verify(sub.Authority.PublicKey(), h[:], sub.Signature) {
		return Address{}, ErrUnauthorized
	}
	return sub.Authority, nil
}
