// SPDX-License-Identifier: MIT
// Dev: KryperAI

package types

import (
	"crypto/sha256"
	"fmt"

	"filippo.io/edwards25519"
)

// DerivationTag is the fixed namespace seed prefix. The derivation input
// order tag || authority || subject is a wire contract: it is how callers
// locate a record without any directory or index.
const DerivationTag = "attestation"

// addressMarker domain-separates derived addresses from every other
// sha256 use in the system.
const addressMarker = "DerivedStorageAddress"

// Deriver computes deterministic storage addresses within one immutable
// namespace identity, fixed at startup.
type Deriver struct {
	namespace Hash
}

// NewDeriver binds a deriver to its namespace identity.
func NewDeriver(namespace Hash) *Deriver {
	return &Deriver{namespace: namespace}
}

// Namespace returns the namespace identity the deriver was built with.
func (d *Deriver) Namespace() Hash {
	return d.namespace
}

// Derive searches bump bytes 255 down to 0 and returns the first
// candidate address that is off the ed25519 curve, plus the bump that
// produced it. Off-curve candidates cannot equal any signing public key,
// so a derived address can never be claimed by a keyholder.
//
// The same (authority, subject) tuple always yields the same address.
// An exhausted search is a fatal allocation error, never retried.
func (d *Deriver) Derive(authority Address, subject Hash) (Address, byte, error) {
	for bump := 255; bump >= 0; bump-- {
		cand := d.candidate(authority, subject, byte(bump))
		if !onCurve(cand[:]) {
			return cand, byte(bump), nil
		}
	}
	return Address{}, 0, fmt.Errorf("bump search exhausted for authority %s: %w", authority.String(), ErrInvalidDerivation)
}

// AddressWithBump recomputes the address for a stored bump. The result
// must still be off-curve; an on-curve candidate means the bump is not a
// valid proof for this tuple.
func (d *Deriver) AddressWithBump(authority Address, subject Hash, bump byte) (Address, error) {
	cand := d.candidate(authority, subject, bump)
	if onCurve(cand[:]) {
		return Address{}, fmt.Errorf("bump %d yields on-curve address: %w", bump, ErrInvalidDerivation)
	}
	return cand, nil
}

// Verify checks that a stored bump reconstructs the claimed address.
func (d *Deriver) Verify(authority Address, subject Hash, bump byte, want Address) error {
	got, err := d.AddressWithBump(authority, subject, bump)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("derived %s, want %s: %w", got.String(), want.String(), ErrInvalidDerivation)
	}
	return nil
}

// candidate hashes tag || authority || subject || bump || namespace || marker.
func (d *Deriver) candidate(authority Address, subject Hash, bump byte) Address {
	h := sha256.New()
	h.Write([]byte(DerivationTag))
	h.Write(authority[:])
	h.Write(subject[:])
	h.Write([]byte{bump})
	h.Write(d.namespace[:])
	h.Write([]byte(addressMarker))

	var addr Address
	copy(addr[:], h.Sum(nil))
	return addr
}

// onCurve reports whether 32 bytes decode to a valid ed25519 point.
func onCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
