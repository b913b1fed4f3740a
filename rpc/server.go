// SPDX-License-Identifier: MIT
// Dev: KryperAI

package rpc

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"signal-attestation/node"
	"signal-attestation/types"
)

type Server struct {
	node *node.Node
	mux  *http.ServeMux
}

func NewServer(n *node.Node) *Server {
	s := &Server{
		node: n,
		mux:  http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// Handler exposes the mux (tests).
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/attestation/record", s.handleRecord)
}

// -------------------- basic handlers --------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"namespace": s.node.Namespace().String(),
		"chained":   s.node.Journal.Len(),
	})
}

// -------------------- record_signal ingress --------------------

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpError(w, http.StatusBadRequest, "cannot read body")
		return
	}
	defer r.Body.Close()

	var sub types.Submission
	if err := json.Unmarshal(body, &sub); err != nil {
		httpError(w, http.StatusBadRequest, "invalid submission json")
		return
	}

	addr, err := s.node.HandleSubmission(r.Context(), &sub)
	if err != nil {
		httpError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "recorded",
		"address":   addr.String(),
		"authority": sub.Authority.String(),
	})
}

// statusFor maps the failure taxonomy onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrInvalidDerivation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// -------------------- helpers --------------------

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{
		"error": msg,
	})
}
