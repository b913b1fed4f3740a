// SPDX-License-Identifier: MIT
// Dev KryperAI

package node

import (
	"context"
	"log"
	"sync"

	"signal-attestation/store"
	"signal-attestation/types"
)

// Node wires the registrar, its store, and the acceptance journal into
// one service. The record path itself is run-to-completion with no
// internal concurrency; cross-submission races are settled entirely by
// the store's atomic insert-if-absent.
type Node struct {
	mu        sync.RWMutex
	Registrar *types.Registrar
	Store     types.RecordStore
	Journal   *store.Journal

	Running bool
}

func NewNode(reg *types.Registrar, st types.RecordStore, journal *store.Journal) *Node {
	return &Node{
		Registrar: reg,
		Store:     st,
		Journal:   journal,
	}
}

func (n *Node) Start() {
	n.mu.Lock()
	n.Running = true
	n.mu.Unlock()
	log.Println("NODE: STARTED")
}

func (n *Node) Stop() {
	n.mu.Lock()
	n.Running = false
	n.mu.Unlock()
	log.Println("NODE: STOPPED")
}

// Namespace returns the namespace identity the node serves.
func (n *Node) Namespace() types.Hash {
	return n.Registrar.Deriver().Namespace()
}

// HandleSubmission verifies the envelope, executes record_signal with
// the verified signer as authority, and chains the accepted record into
// the journal. Any failure leaves both store and journal untouched.
func (n *Node) HandleSubmission(ctx context.Context, sub *types.Submission) (types.Address, error) {
	if err := sub.ValidateBasic(); err != nil {
		return types.Address{}, err
	}
	if sub.Namespace != n.Namespace() {
		return types.Address{}, types.ErrUnauthorized
	}

	authority, err := types.VerifySubmission(sub)
	if err != nil {
		return types.Address{}, err
	}

	addr, err := n.Registrar.RecordSignal(ctx, sub.Params, authority)
	if err != nil {
		return types.Address{}, err
	}

	if n.Journal != nil {
		rec, err := n.Store.Get(ctx, addr)
		if err == nil {
			n.Journal.Append(addr, rec)
		}
	}

	return addr, nil
}
