// SPDX-License-Identifier: MIT
// Dev: KryperAI

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"signal-attestation/config"
	"signal-attestation/types"
)

// Default RPC endpoint
const defaultRPC = "http://localhost:8000"

func main() {
	rpcURL := flag.String("rpc", defaultRPC, "RPC base URL (http://host:port)")
	privHex := flag.String("priv", "", "authority private key seed (hex)")
	keygen := flag.Bool("keygen", false, "generate a fresh authority keypair and exit")
	namespace := flag.String("namespace", config.DefaultNamespaceID, "namespace identity (hex)")

	signalHex := flag.String("signal", "", "signal payload hash (hex, 32 bytes)")
	marketHex := flag.String("market", "", "market id hash (hex, 32 bytes)")
	movementHex := flag.String("movement", "", "movement id hash (hex, 32 bytes)")
	class := flag.Uint("class", 0, "classification code (0-5)")
	confidence := flag.Uint("confidence-bps", 0, "confidence in basis points (0-10000)")
	timestamp := flag.Int64("timestamp", time.Now().Unix(), "scoring time (unix seconds)")
	flag.Parse()

	if *keygen {
		priv, addr, err := types.GenerateKey()
		if err != nil {
			log.Fatal("keygen failed:", err)
		}
		seed, _ := types.PrivateKeyToHex(priv)
		fmt.Println("=== AUTHORITY KEYPAIR ===")
		fmt.Println("Address:     ", addr.String())
		fmt.Println("Private seed:", seed)
		return
	}

	if *privHex == "" {
		log.Fatal("missing -priv private key")
	}

	priv, err := types.PrivateKeyFromHex(strings.TrimPrefix(strings.TrimSpace(*privHex), "0x"))
	if err != nil {
		log.Fatalf("invalid private key: %v", err)
	}

	ns, err := types.ParseHash(*namespace)
	if err != nil {
		log.Fatalf("invalid namespace: %v", err)
	}

	sub := &types.Submission{
		Namespace: ns,
		Params: types.RecordSignalParams{
			SignalHash:     mustHash("signal", *signalHex),
			MarketIDHash:   mustHash("market", *marketHex),
			MovementIDHash: mustHash("movement", *movementHex),
			Classification: byte(*class),
			ConfidenceBps:  uint16(*confidence),
			Timestamp:      *timestamp,
		},
	}

	if err := types.SignSubmission(sub, priv); err != nil {
		log.Fatal("sign error:", err)
	}
	if err := sub.ValidateBasic(); err != nil {
		log.Fatal("invalid submission:", err)
	}

	if err := submit(*rpcURL, sub); err != nil {
		log.Fatal("submit error:", err)
	}
}

func submit(rpcURL string, sub *types.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	url := strings.TrimRight(rpcURL, "/") + "/attestation/record"
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("attestation/record error: %s", string(body))
	}

	fmt.Println(string(body))
	return nil
}

func mustHash(name, hexStr string) types.Hash {
	if hexStr == "" {
		log.Fatalf("missing -%s hash", name)
	}
	h, err := types.ParseHash(hexStr)
	if err != nil {
		log.Fatalf("invalid -%s hash: %v", name, err)
	}
	return h
}
