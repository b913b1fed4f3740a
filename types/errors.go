// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import "errors"

// Failure taxonomy for the record_signal path. Every failure aborts the
// whole call with no partial write; callers match with errors.Is.
var (
	// ErrAlreadyExists - the derived address already holds a record.
	ErrAlreadyExists = errors.New("attestation already exists at derived address")

	// ErrUnauthorized - the submission signature does not authenticate the
	// claimed authority.
	ErrUnauthorized = errors.New("unauthorized: invalid submission signature")

	// ErrInvalidDerivation - no valid bump found in the search space, or a
	// stored bump does not reconstruct the claimed address.
	ErrInvalidDerivation = errors.New("invalid address derivation")

	// ErrMalformedInput - a field fails its domain constraints.
	ErrMalformedInput = errors.New("malformed input")
)
