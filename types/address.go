// SPDX-License-Identifier: MIT
// Dev: KryperAI

package types

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"strings"
)

const AddressLength = 32

// Address is a fixed 32-byte identifier. Authority addresses are raw
// ed25519 public keys; derived storage addresses share the same space
// but are guaranteed off-curve, so the two can never collide.
type Address [AddressLength]byte

// String returns 0x prefixed hex form.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ParseAddress converts hex string -> Address format.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s) != AddressLength*2 {
		return Address{}, errors.New("invalid address length")
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, err
	}
	var addr Address
	copy(addr[:], data)
	return addr, nil
}

// HexToAddress is an alias for ParseAddress.
func HexToAddress(s string) (Address, error) {
	return ParseAddress(s)
}

// AddressFromPublicKey converts an ed25519 public key to an Address.
func AddressFromPublicKey(pub ed25519.PublicKey) (Address, error) {
	if len(pub) != ed25519.PublicKeySize {
		return Address{}, errors.New("invalid public key length")
	}
	var addr Address
	copy(addr[:], pub)
	return addr, nil
}

// PublicKey returns the address bytes as an ed25519 public key.
func (a Address) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(a[:])
}

// MarshalText renders the address as 0x hex for the JSON wire.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(data []byte) error {
	parsed, err := ParseAddress(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
