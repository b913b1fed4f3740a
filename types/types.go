// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"encoding/hex"
	"errors"
	"strings"
)

// =========================
// Hash type (32 bytes)
// =========================

type Hash [32]byte

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

func ZeroHash() Hash {
	return Hash{}
}

// ParseHash converts a hex string (with or without 0x prefix) into a Hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s) != len(h)*2 {
		return h, errors.New("invalid hash length")
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	copy(h[:], data)
	return h, nil
}

// MarshalText renders the hash as 0x hex for the JSON wire.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(data []byte) error {
	parsed, err := ParseHash(string(data))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Address.IsZero checks if address is zero address
func (a Address) IsZero() bool {
	return a == Address{}
}
