// SPDX-License-Identifier: MIT
// Dev KryperAI

package store

import (
	"errors"
	"sync"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"signal-attestation/types"
)

// JournalEntry links one accepted record into the acceptance chain.
type JournalEntry struct {
	Seq      uint64        `json:"seq"`
	Address  types.Address `json:"address"`
	PrevHash types.Hash    `json:"prevHash"`
	Hash     types.Hash    `json:"hash"` // keccak256(prev || address || record)
}

// Journal is an append-only keccak hash-chain over accepted records.
// It is an internal integrity aid for operators, not a query surface:
// entries carry no record fields beyond the address.
type Journal struct {
	mu      sync.RWMutex
	entries []JournalEntry
	head    types.Hash
}

// NewJournal creates an empty journal with a zero genesis head.
func NewJournal() *Journal {
	return &Journal{}
}

// Append chains a newly accepted record and returns its sequence number.
func (j *Journal) Append(addr types.Address, record []byte) uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	prev := j.head

	var h types.Hash
	sum := ethcrypto.Keccak256(prev[:], addr[:], record)
	copy(h[:], sum)

	seq := uint64(len(j.entries)) + 1
	j.entries = append(j.entries, JournalEntry{
		Seq:      seq,
		Address:  addr,
		PrevHash: prev,
		Hash:     h,
	})
	j.head = h

	return seq
}

// Head returns the current chain head.
func (j *Journal) Head() types.Hash {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.head
}

// Len returns the number of chained entries.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Verify walks the chain and checks every prev-hash link.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	prev := types.ZeroHash()
	for _, e := range j.entries {
		if e.PrevHash != prev {
			return errors.New("journal chain broken")
		}
		prev = e.Hash
	}
	if prev != j.head {
		return errors.New("journal head mismatch")
	}
	return nil
}
