// SPDX-License-Identifier: MIT
// Dev KryperAI

package rpc

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"signal-attestation/node"
	"signal-attestation/store"
	"signal-attestation/types"
)

func newTestServer(t *testing.T) (*httptest.Server, types.Hash) {
	t.Helper()
	ns, err := types.ParseHash("1f305490dfeab5791758816ae536de4b4fefc0deeb1ddee7a3402b748ca56927")
	require.NoError(t, err)

	st := store.NewMemStore()
	reg := types.NewRegistrar(types.NewDeriver(ns), st)
	n := node.NewNode(reg, st, store.NewJournal())

	srv := httptest.NewServer(NewServer(n).Handler())
	t.Cleanup(srv.Close)
	return srv, ns
}

func signedSubmission(t *testing.T, ns types.Hash, priv ed25519.PrivateKey) *types.Submission {
	t.Helper()
	var signal, market, movement types.Hash
	signal[0] = 0x01
	market[0] = 0x02
	movement[0] = 0x03

	sub := &types.Submission{
		Namespace: ns,
		Params: types.RecordSignalParams{
			SignalHash:     signal,
			MarketIDHash:   market,
			MovementIDHash: movement,
			Classification: byte(types.ClassificationVelocity),
			ConfidenceBps:  8200,
			Timestamp:      1700000000,
		},
	}
	require.NoError(t, types.SignSubmission(sub, priv))
	return sub
}

func postRecord(t *testing.T, url string, sub *types.Submission) *http.Response {
	t.Helper()
	data, err := json.Marshal(sub)
	require.NoError(t, err)

	resp, err := http.Post(url+"/attestation/record", "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
}

func TestRecord_Success(t *testing.T) {
	srv, ns := newTestServer(t)
	priv, addr, err := types.GenerateKey()
	require.NoError(t, err)

	resp := postRecord(t, srv.URL, signedSubmission(t, ns, priv))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "recorded", body["status"])
	require.Equal(t, addr.String(), body["authority"])
	require.NotEmpty(t, body["address"])
}

func TestRecord_DuplicateConflicts(t *testing.T) {
	srv, ns := newTestServer(t)
	priv, _, err := types.GenerateKey()
	require.NoError(t, err)

	resp := postRecord(t, srv.URL, signedSubmission(t, ns, priv))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postRecord(t, srv.URL, signedSubmission(t, ns, priv))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRecord_TamperedSignature(t *testing.T) {
	srv, ns := newTestServer(t)
	priv, _, err := types.GenerateKey()
	require.NoError(t, err)

	sub := signedSubmission(t, ns, priv)
	sub.Signature[0] ^= 0xFF

	resp := postRecord(t, srv.URL, sub)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRecord_MalformedParams(t *testing.T) {
	srv, ns := newTestServer(t)
	priv, _, err := types.GenerateKey()
	require.NoError(t, err)

	sub := signedSubmission(t, ns, priv)
	sub.Params.Classification = 6
	require.NoError(t, types.SignSubmission(sub, priv))

	resp := postRecord(t, srv.URL, sub)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecord_WrongNamespace(t *testing.T) {
	srv, ns := newTestServer(t)
	priv, _, err := types.GenerateKey()
	require.NoError(t, err)

	other := ns
	other[31] ^= 0x01
	sub := signedSubmission(t, other, priv)

	resp := postRecord(t, srv.URL, sub)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRecord_RejectsGet(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/attestation/record")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
