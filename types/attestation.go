// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import "fmt"

// MaxConfidenceBps is the upper bound of the confidence domain:
// 10000 basis points = 1.0.
const MaxConfidenceBps uint16 = 10000

// Attestation is the sole persisted entity: one immutable record per
// (authority, subject) pair, stored at a derived address.
type Attestation struct {
	// SignalHash is the content hash of the scored signal payload,
	// caller-supplied and opaque to the store.
	SignalHash Hash `json:"signalHash"`
	// MarketIDHash is the hash of the market identifier (fixed-length so
	// the record layout stays stable).
	MarketIDHash Hash `json:"marketIdHash"`
	// Classification of the signal, one byte on the wire.
	Classification Classification `json:"classification"`
	// ConfidenceBps is the scorer confidence in basis points (0.75 -> 7500).
	ConfidenceBps uint16 `json:"confidenceBps"`
	// Timestamp is the caller-supplied scoring time in Unix seconds.
	Timestamp int64 `json:"timestamp"`
	// Authority is the verified submitter, never taken from caller params.
	Authority Address `json:"authority"`
	// Bump is the derivation proof byte; persisting it lets a verifier
	// reconstruct the record address without re-running the search.
	Bump byte `json:"bump"`
}

// ValidateBasic checks the domain constraints that must hold before the
// record is ever written.
func (a *Attestation) ValidateBasic() error {
	if a == nil {
		return fmt.Errorf("nil attestation: %w", ErrMalformedInput)
	}
	if !a.Classification.Valid() {
		return fmt.Errorf("classification byte %d out of range: %w", byte(a.Classification), ErrMalformedInput)
	}
	if a.ConfidenceBps > MaxConfidenceBps {
		return fmt.Errorf("confidence %d above %d bps: %w", a.ConfidenceBps, MaxConfidenceBps, ErrMalformedInput)
	}
	return nil
}

func (a *Attestation) String() string {
	return fmt.Sprintf("Attestation{signal=%s class=%s conf=%dbps authority=%s}",
		a.SignalHash.String(), a.Classification.String(), a.ConfidenceBps, a.Authority.String())
}
