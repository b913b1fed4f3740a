// SPDX-License-Identifier: MIT
// Dev: KryperAI

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"signal-attestation/types"
)

// DefaultNamespaceID is sha256("signal-attestation:namespace:v1"). The
// namespace identity is immutable process-wide configuration: it is read
// once at startup and injected into the deriver, never mutated after.
const DefaultNamespaceID = "1f305490dfeab5791758816ae536de4b4fefc0deeb1ddee7a3402b748ca56927"

type Config struct {
	NamespaceID types.Hash
	RPCPort     string
	StorePath   string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		RPCPort:   getEnv("RPC_PORT", "8000"),
		StorePath: getEnv("STORE_PATH", "./attestations.db"),
	}

	nsStr := getEnv("NAMESPACE_ID", DefaultNamespaceID)
	ns, err := types.ParseHash(cleanEnvValue(nsStr))
	if err != nil {
		return nil, fmt.Errorf("invalid NAMESPACE_ID: %w", err)
	}
	if ns.IsZero() {
		return nil, fmt.Errorf("NAMESPACE_ID must be non-zero")
	}
	cfg.NamespaceID = ns

	return cfg, nil
}

func (c *Config) Print() {
	fmt.Println("=== Configuration ===")
	fmt.Printf("  Namespace ID: %s\n", c.NamespaceID.String())
	fmt.Printf("  RPC Port:     %s\n", c.RPCPort)
	fmt.Printf("  Store Path:   %s\n", c.StorePath)
	fmt.Println("=====================")
}

func getEnv(key, defaultVal string) string {
	if val := cleanEnvValue(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func cleanEnvValue(val string) string {
	val = strings.TrimSpace(val)
	if idx := strings.Index(val, "#"); idx != -1 {
		val = strings.TrimSpace(val[:idx])
	}
	return val
}
