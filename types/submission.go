// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

/*
   SIGNED SUBMISSION ENVELOPE (FINAL)
   - Anti replay (namespace identity included in sign-hash)
   - Authority is proven by the signature, never trusted from params
   - Fixed-width little-endian field encoding -> no ambiguity
*/

// RecordSignalParams is the caller-supplied argument tuple of the
// record_signal operation. MarketIDHash is copied into the record;
// MovementIDHash is the address-derivation subject. The two are kept
// distinct on purpose (multiple movements can attest the same market).
type RecordSignalParams struct {
	SignalHash     Hash   `json:"signalHash"`
	MarketIDHash   Hash   `json:"marketIdHash"`
	MovementIDHash Hash   `json:"movementIdHash"`
	Classification byte   `json:"classification"`
	ConfidenceBps  uint16 `json:"confidenceBps"`
	Timestamp      int64  `json:"timestamp"`
}

// ValidateBasic checks the field domain constraints before anything is
// derived or written.
func (p *RecordSignalParams) ValidateBasic() error {
	if p == nil {
		return fmt.Errorf("nil params: %w", ErrMalformedInput)
	}
	if !Classification(p.Classification).Valid() {
		return fmt.Errorf("classification byte %d out of range: %w", p.Classification, ErrMalformedInput)
	}
	if p.ConfidenceBps > MaxConfidenceBps {
		return fmt.Errorf("confidence %d above %d bps: %w", p.ConfidenceBps, MaxConfidenceBps, ErrMalformedInput)
	}
	if p.MovementIDHash.IsZero() {
		return fmt.Errorf("zero movement id hash: %w", ErrMalformedInput)
	}
	return nil
}

// Submission wraps params with the authority identity and its signature.
type Submission struct {
	Namespace Hash               `json:"namespace"` // required to prevent cross-instance replay
	Params    RecordSignalParams `json:"params"`
	Authority Address            `json:"authority"`
	Signature []byte             `json:"signature"`
}

/* ------------------------------------------------------- *
   SIGN-HASH (What the authority signs)
   * MUST include the namespace identity = anti replay
* ------------------------------------------------------- */
func (s *Submission) HashForSign() Hash {
	h := sha256.New()
	var buf [8]byte

	// 1) Namespace identity first — critical
	h.Write(s.Namespace[:])

	// 2) Params in wire order, little-endian like the record layout
	h.Write(s.Params.SignalHash[:])
	h.Write(s.Params.MarketIDHash[:])
	h.Write(s.Params.MovementIDHash[:])
	h.Write([]byte{s.Params.Classification})

	binary.LittleEndian.PutUint16(buf[:2], s.Params.ConfidenceBps)
	h.Write(buf[:2])

	binary.LittleEndian.PutUint64(buf[:], uint64(s.Params.Timestamp))
	h.Write(buf[:])

	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

/* ------------------------------------------------------- *
   Basic validation
* ------------------------------------------------------- */
func (s *Submission) ValidateBasic() error {
	if s == nil {
		return fmt.Errorf("nil submission: %w", ErrMalformedInput)
	}
	if s.Namespace.IsZero() {
		return fmt.Errorf("missing namespace: %w", ErrMalformedInput)
	}
	if err := s.Params.ValidateBasic(); err != nil {
		return err
	}
	if len(s.Signature) != ed25519.SignatureSize {
		return fmt.Errorf("signature length %d, want %d: %w", len(s.Signature), ed25519.SignatureSize, ErrMalformedInput)
	}
	return nil
}

func (s *Submission) String() string {
	return "Submission{" + hex.EncodeToString(s.Params.SignalHash[:8]) + "... by " + s.Authority.String() + "}"
}
