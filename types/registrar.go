// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"context"
	"errors"
	"fmt"
)

// RecordStore is the storage backend contract. PutIfAbsent must be
// atomic per address: of two concurrent writers targeting the same
// address, exactly one succeeds and the other observes ErrAlreadyExists
// with no partial write. All concurrency safety of the registrar is
// delegated to this primitive.
type RecordStore interface {
	// PutIfAbsent allocates len(record) bytes at addr and writes them,
	// failing with ErrAlreadyExists when the address is occupied.
	PutIfAbsent(ctx context.Context, addr Address, record []byte) error

	// Get returns the record bytes stored at addr, or ErrNotFound. The
	// public surface exposes no read instruction; Get serves internal
	// verification and tests.
	Get(ctx context.Context, addr Address) ([]byte, error)
}

// ErrNotFound is returned by RecordStore.Get for unoccupied addresses.
var ErrNotFound = errors.New("no record at address")

// Registrar applies record_signal submissions against a store under a
// fixed namespace identity. It has no state machine beyond the binary
// condition "address occupied / unoccupied": the only transition is
// unoccupied -> occupied-with-record, and it is terminal.
type Registrar struct {
	deriver *Deriver
	store   RecordStore
}

// NewRegistrar constructs a registrar bound to a deriver and a store.
func NewRegistrar(deriver *Deriver, store RecordStore) *Registrar {
	return &Registrar{
		deriver: deriver,
		store:   store,
	}
}

// Deriver exposes the bound address deriver.
func (r *Registrar) Deriver() *Deriver {
	return r.deriver
}

// RecordSignal executes the single write instruction: validate params,
// derive the address for (authority, movement), and persist the fixed
// 116-byte record at it. First write wins; a second call for the same
// (authority, movement) fails with ErrAlreadyExists before any field is
// touched. authority must be a verified signer — callers obtain it from
// VerifySubmission, never from params.
func (r *Registrar) RecordSignal(ctx context.Context, params RecordSignalParams, authority Address) (Address, error) {
	if authority.IsZero() {
		return Address{}, fmt.Errorf("zero authority: %w", ErrUnauthorized)
	}
	if err := params.ValidateBasic(); err != nil {
		return Address{}, err
	}

	addr, bump, err := r.deriver.Derive(authority, params.MovementIDHash)
	if err != nil {
		return Address{}, err
	}

	record := &Attestation{
		SignalHash:     params.SignalHash,
		MarketIDHash:   params.MarketIDHash,
		Classification: Classification(params.Classification),
		ConfidenceBps:  params.ConfidenceBps,
		Timestamp:      params.Timestamp,
		Authority:      authority,
		Bump:           bump,
	}

	enc, err := EncodeAttestation(record)
	if err != nil {
		return Address{}, err
	}

	// The store's insert-if-absent is the uniqueness enforcement: either
	// the whole record lands or nothing does.
	if err := r.store.PutIfAbsent(ctx, addr, enc); err != nil {
		return Address{}, err
	}

	return addr, nil
}
