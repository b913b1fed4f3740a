// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSubmission(t *testing.T) *Submission {
	t.Helper()
	ns, err := ParseHash("1f305490dfeab5791758816ae536de4b4fefc0deeb1ddee7a3402b748ca56927")
	require.NoError(t, err)

	var signal, market, movement Hash
	signal[0] = 0x01
	market[0] = 0x02
	movement[0] = 0x03

	return &Submission{
		Namespace: ns,
		Params: RecordSignalParams{
			SignalHash:     signal,
			MarketIDHash:   market,
			MovementIDHash: movement,
			Classification: byte(ClassificationVelocity),
			ConfidenceBps:  8200,
			Timestamp:      1700000000,
		},
	}
}

func TestSignAndVerifySubmission(t *testing.T) {
	priv, addr, err := GenerateKey()
	require.NoError(t, err)

	sub := testSubmission(t)
	require.NoError(t, SignSubmission(sub, priv))
	require.Equal(t, addr, sub.Authority)
	require.NoError(t, sub.ValidateBasic())

	got, err := VerifySubmission(sub)
	require.NoError(t, err)
	require.Equal(t, addr, got)
}

func TestVerifySubmission_TamperedSignature(t *testing.T) {
	priv, _, err := GenerateKey()
	require.NoError(t, err)

	sub := testSubmission(t)
	require.NoError(t, SignSubmission(sub, priv))

	sub.Signature[0] ^= 0xFF
	_, err = VerifySubmission(sub)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifySubmission_TamperedParams(t *testing.T) {
	priv, _, err := GenerateKey()
	require.NoError(t, err)

	sub := testSubmission(t)
	require.NoError(t, SignSubmission(sub, priv))

	sub.Params.ConfidenceBps = 9999
	_, err = VerifySubmission(sub)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifySubmission_SpoofedAuthority(t *testing.T) {
	priv, _, err := GenerateKey()
	require.NoError(t, err)
	_, other, err := GenerateKey()
	require.NoError(t, err)

	sub := testSubmission(t)
	require.NoError(t, SignSubmission(sub, priv))

	// A caller cannot point the envelope at somebody else's identity.
	sub.Authority = other
	_, err = VerifySubmission(sub)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifySubmission_NamespaceBindsSignature(t *testing.T) {
	priv, _, err := GenerateKey()
	require.NoError(t, err)

	sub := testSubmission(t)
	require.NoError(t, SignSubmission(sub, priv))

	// Replaying the same signed params under a different namespace fails.
	sub.Namespace[31] ^= 0x01
	_, err = VerifySubmission(sub)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestPrivateKeyHexRoundTrip(t *testing.T) {
	priv, addr, err := GenerateKey()
	require.NoError(t, err)

	seed, err := PrivateKeyToHex(priv)
	require.NoError(t, err)

	restored, err := PrivateKeyFromHex(seed)
	require.NoError(t, err)
	require.Equal(t, priv, restored)

	restoredAddr, err := AddressFromPublicKey(restored.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	require.Equal(t, addr, restoredAddr)
}
