// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
)

/*
   ATTESTATION WIRE LAYOUT (FINAL)
   - Fixed 116 bytes, storage is pre-allocated to exactly this size
   - 8-byte record tag = type/version marker; bump the tag on any change
   - Field order and little-endian integers are part of the wire contract
*/

// AttestationSize = 8 tag + 32 signal + 32 market + 1 class + 2 conf + 8 ts + 32 authority + 1 bump
const AttestationSize = 8 + 32 + 32 + 1 + 2 + 8 + 32 + 1 // 116

const recordTagPreimage = "signal-attestation:record:v1"

// recordTag is the 8-byte leading marker of every persisted record.
var recordTag = computeRecordTag()

func computeRecordTag() [8]byte {
	sum := sha256.Sum256([]byte(recordTagPreimage))
	var tag [8]byte
	copy(tag[:], sum[:8])
	return tag
}

// RecordTag exposes a copy of the leading marker (tests, external verifiers).
func RecordTag() [8]byte {
	return recordTag
}

// EncodeAttestation serializes a record into its fixed 116-byte layout.
func EncodeAttestation(a *Attestation) ([]byte, error) {
	if a == nil {
		return nil, errors.New("nil attestation")
	}
	if err := a.ValidateBasic(); err != nil {
		return nil, err
	}

	buf := make([]byte, AttestationSize)
	off := 0

	copy(buf[off:], recordTag[:])
	off += 8
	copy(buf[off:], a.SignalHash[:])
	off += 32
	copy(buf[off:], a.MarketIDHash[:])
	off += 32
	buf[off] = byte(a.Classification)
	off++
	binary.LittleEndian.PutUint16(buf[off:], a.ConfidenceBps)
	off += 2
	binary.LittleEndian.PutUint64(buf[off:], uint64(a.Timestamp))
	off += 8
	copy(buf[off:], a.Authority[:])
	off += 32
	buf[off] = a.Bump

	return buf, nil
}

// DecodeAttestation deserializes a fixed-layout record. A wrong size,
// unknown tag, or out-of-domain field means the bytes are not a valid
// record.
func DecodeAttestation(data []byte) (*Attestation, error) {
	if len(data) != AttestationSize {
		return nil, fmt.Errorf("record size %d, want %d: %w", len(data), AttestationSize, ErrMalformedInput)
	}
	if !bytes.Equal(data[:8], recordTag[:]) {
		return nil, fmt.Errorf("unknown record tag: %w", ErrMalformedInput)
	}

	var a Attestation
	off := 8

	copy(a.SignalHash[:], data[off:])
	off += 32
	copy(a.MarketIDHash[:], data[off:])
	off += 32
	a.Classification = Classification(data[off])
	off++
	a.ConfidenceBps = binary.LittleEndian.Uint16(data[off:])
	off += 2
	a.Timestamp = int64(binary.LittleEndian.Uint64(data[off:]))
	off += 8
	copy(a.Authority[:], data[off:])
	off += 32
	a.Bump = data[off]

	if err := a.ValidateBasic(); err != nil {
		return nil, err
	}
	return &a, nil
}
