// Package server exposes the calculation engine as a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/krfincalc/krfincalc/internal/config"
	"github.com/krfincalc/krfincalc/internal/engine"
	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/krfincalc/krfincalc/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	engine        *engine.Engine
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, calcEngine *engine.Engine, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, engine: calcEngine, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Single-calculation endpoint (JSON request body)
	mux.HandleFunc("/api/calc", h.handleCalc)

	// Scenario endpoint (YAML upload of many requests)
	mux.HandleFunc("/api/scenario", h.handleScenario)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type calcResponse struct {
	Results  []output.Result `json:"results"`
	Duration string          `json:"duration"`
}

type scenarioUpload struct {
	Requests []config.Request `yaml:"requests"`
}

func (h *handler) handleCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	var request config.Request
	if err := json.Unmarshal(body, &request); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	result, err := h.engine.Run(request)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, calcResponse{
		Results:  []output.Result{result},
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	var upload scenarioUpload
	if err := yaml.Unmarshal(body, &upload); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading scenario data, %v", err))
		return
	}
	if len(upload.Requests) == 0 {
		h.respondError(w, http.StatusBadRequest, "scenario contains no requests")
		return
	}

	results := h.engine.RunAll(upload.Requests)

	h.writeJSON(w, http.StatusOK, calcResponse{
		Results:  results,
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request body: %v", err))
		return nil, false
	}
	return body, true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.logger.Warn(message,
		zap.String("op", "server.respondError"),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, map[string]string{"error": message})
}
