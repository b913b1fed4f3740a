// SPDX-License-Identifier: MIT
// Dev KryperAI

package main

import (
	"fmt"
	"log"

	"signal-attestation/config"
	"signal-attestation/node"
	"signal-attestation/rpc"
	"signal-attestation/store"
	"signal-attestation/types"
)

func main() {
	fmt.Println("Launching Signal Attestation Node...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("CONFIG FAILED:", err)
	}
	cfg.Print()

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatal("STORE FAILED:", err)
	}
	defer st.Close()

	deriver := types.NewDeriver(cfg.NamespaceID)
	registrar := types.NewRegistrar(deriver, st)
	journal := store.NewJournal()

	n := node.NewNode(registrar, st, journal)
	n.Start()
	defer n.Stop()

	server := rpc.NewServer(n)
	addr := ":" + cfg.RPCPort
	log.Println("RPC listening on", addr)
	if err := server.Start(addr); err != nil {
		log.Fatal("RPC FAILED:", err)
	}
}
