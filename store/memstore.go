// SPDX-License-Identifier: MIT
// Dev KryperAI

package store

import (
	"context"
	"sync"

	"signal-attestation/types"
)

// MemStore is an in-memory RecordStore. The mutex makes PutIfAbsent
// atomic per address: the check and the write happen under one lock.
// Suited to tests and single-process demos; production nodes use the
// sqlite store.
type MemStore struct {
	mu      sync.RWMutex
	records map[types.Address][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		records: make(map[types.Address][]byte),
	}
}

// PutIfAbsent writes the record unless the address is occupied.
func (s *MemStore) PutIfAbsent(_ context.Context, addr types.Address, record []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[addr]; ok {
		return types.ErrAlreadyExists
	}

	cp := make([]byte, len(record))
	copy(cp, record)
	s.records[addr] = cp
	return nil
}

// Get returns a copy of the record at addr.
func (s *MemStore) Get(_ context.Context, addr types.Address) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[addr]
	if !ok {
		return nil, types.ErrNotFound
	}
	cp := make([]byte, len(rec))
	copy(cp, rec)
	return cp, nil
}

// Count returns the number of stored records.
func (s *MemStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
