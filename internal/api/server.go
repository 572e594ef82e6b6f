// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

// Package api exposes the proof checker over HTTP, together with
// metrics and health probes.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitchproof/fitchproof/internal/check"
	"github.com/fitchproof/fitchproof/internal/document"
	"github.com/fitchproof/fitchproof/internal/parse"
)

// maxBodyBytes bounds check request bodies.
const maxBodyBytes = 1 << 20

// LineIssue is one parse or check failure in a response.
type LineIssue struct {
	Line    uint16 `json:"line"`
	Stage   string `json:"stage"` // "parse" or "check"
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CheckResponse is the verdict for one submitted proof.
type CheckResponse struct {
	Valid      bool        `json:"valid"`
	Incomplete bool        `json:"incomplete"`
	Errors     []LineIssue `json:"errors,omitempty"`
}

// Server serves the check API plus metrics and health probes.
type Server struct {
	addr        string
	defaultSets []string
	listener    net.Listener
	httpServer  *http.Server
	registry    *prometheus.Registry
	running     atomic.Bool

	requestsTotal *prometheus.CounterVec
}

// NewServer creates a check API server. defaultSets names the rulesets
// applied when a document does not pick its own.
func NewServer(addr string, defaultSets []string) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitchproof_api_requests_total",
			Help: "Total number of API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)
	registry.MustRegister(requestsTotal)

	return &Server{
		addr:          addr,
		defaultSets:   defaultSets,
		registry:      registry,
		requestsTotal: requestsTotal,
	}
}

// Start begins serving. It returns once the listener is bound.
func (s *Server) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("api server already running")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/check", s.handleCheck)
	mux.HandleFunc("/healthz/liveness", s.handleLiveness)
	mux.HandleFunc("/healthz/readiness", s.handleReadiness)

	// The checker records its own metrics on the default registry;
	// gather both so they share the endpoint.
	mux.Handle("/metrics", promhttp.HandlerFor(
		prometheus.Gatherers{s.registry, prometheus.DefaultGatherer},
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	))

	s.httpServer = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if serveErr := s.httpServer.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("api server error", "error", serveErr)
		}
	}()

	slog.Info("api server started", "addr", listener.Addr().String())
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown api server: %w", err)
		}
	}

	s.running.Store(false)
	slog.Info("api server stopped")
	return nil
}

// Addr returns the bound address, or empty before Start has bound a
// listener. After Stop it still returns the last bound address.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	requestID := ulid.Make().String()
	start := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, http.StatusBadRequest, requestID, "reading request body", err)
		return
	}

	doc, err := document.LoadJSON(body)
	if err != nil {
		s.fail(w, http.StatusBadRequest, requestID, "decoding document", err)
		return
	}

	sets, err := s.rulesets(doc)
	if err != nil {
		s.fail(w, http.StatusBadRequest, requestID, "resolving rulesets", err)
		return
	}

	resp := Check(doc, sets)

	slog.Info("proof checked",
		"request_id", requestID,
		"lines", len(doc.Lines),
		"valid", resp.Valid,
		"errors", len(resp.Errors),
		"duration", time.Since(start),
	)
	s.requestsTotal.WithLabelValues("check", "ok").Inc()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// rulesets resolves the document's ruleset names, falling back to the
// server defaults.
func (s *Server) rulesets(doc *document.Document) ([]check.Ruleset, error) {
	if len(doc.Rulesets) == 0 {
		doc = &document.Document{Rulesets: s.defaultSets, Lines: doc.Lines}
	}
	return doc.ResolveRulesets()
}

// Check runs the parse-then-check pipeline over a document and folds
// the outcome into a response.
func Check(doc *document.Document, sets []check.Ruleset) CheckResponse {
	proof, err := parse.ParseProof(doc.Rows())
	if err != nil {
		var perrs parse.ParseErrors
		resp := CheckResponse{}
		if errors.As(err, &perrs) {
			for _, le := range perrs {
				resp.Errors = append(resp.Errors, LineIssue{
					Line:    le.Line,
					Stage:   "parse",
					Code:    le.Err.Code.String(),
					Message: le.Err.Error(),
				})
			}
		}
		return resp
	}

	checker := check.NewChecker()
	for _, rs := range sets {
		checker.AddRuleset(rs)
	}

	resp := CheckResponse{Incomplete: proof.ContainsPlaceholders()}
	if err := checker.CheckProof(proof); err != nil {
		var cerrs check.CheckErrors
		if errors.As(err, &cerrs) {
			for _, v := range cerrs {
				resp.Errors = append(resp.Errors, LineIssue{
					Line:    v.Line,
					Stage:   "check",
					Code:    v.Err.String(),
					Message: v.Err.Error(),
				})
			}
		}
		return resp
	}

	resp.Valid = true
	return resp
}

func (s *Server) fail(w http.ResponseWriter, status int, requestID, what string, err error) {
	slog.Warn("check request rejected", "request_id", requestID, "reason", what, "error", err)
	s.requestsTotal.WithLabelValues("check", "error").Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"request_id": requestID,
		"error":      fmt.Sprintf("%s: %v", what, err),
	})
}

// handleLiveness returns 200 if the process is running.
func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// handleReadiness returns 200 once the listener is bound.
func (s *Server) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if s.running.Load() {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
		return
	}

	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte("not ready\n"))
}
