// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func fixedAttestation() *Attestation {
	var signal, market Hash
	var authority Address
	for i := range signal {
		signal[i] = 0x53
		market[i] = 0x48
		authority[i] = 0xAA
	}
	return &Attestation{
		SignalHash:     signal,
		MarketIDHash:   market,
		Classification: ClassificationVelocity,
		ConfidenceBps:  8200,
		Timestamp:      1700000000,
		Authority:      authority,
		Bump:           254,
	}
}

func TestEncodeAttestation_FixedSize(t *testing.T) {
	enc, err := EncodeAttestation(fixedAttestation())
	require.NoError(t, err)
	require.Len(t, enc, AttestationSize)
	require.Equal(t, 116, AttestationSize)
}

func TestEncodeAttestation_GoldenLayout(t *testing.T) {
	enc, err := EncodeAttestation(fixedAttestation())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "attestation_record", enc)
}

func TestAttestationRoundTrip(t *testing.T) {
	orig := fixedAttestation()
	enc, err := EncodeAttestation(orig)
	require.NoError(t, err)

	dec, err := DecodeAttestation(enc)
	require.NoError(t, err)
	require.Equal(t, orig, dec)
}

func TestDecodeAttestation_RejectsBadSize(t *testing.T) {
	enc, err := EncodeAttestation(fixedAttestation())
	require.NoError(t, err)

	_, err = DecodeAttestation(enc[:AttestationSize-1])
	require.ErrorIs(t, err, ErrMalformedInput)

	_, err = DecodeAttestation(append(enc, 0x00))
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecodeAttestation_RejectsUnknownTag(t *testing.T) {
	enc, err := EncodeAttestation(fixedAttestation())
	require.NoError(t, err)

	enc[0] ^= 0xFF
	_, err = DecodeAttestation(enc)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecodeAttestation_RejectsBadClassification(t *testing.T) {
	enc, err := EncodeAttestation(fixedAttestation())
	require.NoError(t, err)

	// classification byte sits right after the tag and the two hashes
	enc[8+32+32] = 6
	_, err = DecodeAttestation(enc)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestEncodeAttestation_RejectsOutOfDomainFields(t *testing.T) {
	a := fixedAttestation()
	a.Classification = Classification(9)
	_, err := EncodeAttestation(a)
	require.ErrorIs(t, err, ErrMalformedInput)

	a = fixedAttestation()
	a.ConfidenceBps = 10001
	_, err = EncodeAttestation(a)
	require.ErrorIs(t, err, ErrMalformedInput)

	a = fixedAttestation()
	a.ConfidenceBps = 10000
	_, err = EncodeAttestation(a)
	require.NoError(t, err)
}
