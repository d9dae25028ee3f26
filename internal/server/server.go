// Package server exposes the estimation engine over a small JSON API for UI
// screens and worksheet tooling.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/flipcalc/rehab-intelligence/internal/config"
	"github.com/flipcalc/rehab-intelligence/internal/estimate"
	"github.com/flipcalc/rehab-intelligence/internal/store"
	"github.com/flipcalc/rehab-intelligence/pkg/location"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
	store          *store.Store
}

// NewHandler constructs the HTTP handler that serves the estimate API. The
// store may be nil, in which case the persistence endpoints respond 404.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string, st *store.Store) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRequestSize <= 0 {
		maxRequestSize = defaultMaxRequestSize
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion, store: st}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/estimate", h.handleEstimate)
	mux.HandleFunc("/api/locations", h.handleLocations)
	mux.HandleFunc("/api/estimates", h.handleEstimates)
	mux.HandleFunc("/api/estimates/", h.handleEstimateByID)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type estimateResponse struct {
	Estimate  *estimate.RehabEstimate `json:"estimate"`
	LineItems []estimate.LineItem     `json:"line_items"`
	Warnings  []string                `json:"config_warnings,omitempty"`
	Duration  string                  `json:"duration"`
	StoredID  uint                    `json:"stored_id,omitempty"`
}

// handleEstimate accepts a JSON payload mirroring the YAML config file
// (property, estimate, store sections) and responds with the computed
// estimate and its line items.
func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), "server.handleEstimate")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleEstimate")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	// Round-trip through YAML so the API payload and the config file share one
	// decode path, defaults included.
	configBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode request: %v", err), "server.handleEstimate")
		return
	}

	cfg, err := config.LoadConfigurationFromReader(strings.NewReader(string(configBytes)))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleEstimate")
		return
	}

	warnings := cfg.ValidateConfiguration()
	input := cfg.PropertyInput()
	opts := cfg.EstimateOptions()

	estimator := estimate.New(h.logger, input)
	result := estimator.Calculate(opts)
	items := estimator.LineItems(opts)

	response := estimateResponse{
		Estimate:  result,
		LineItems: items,
		Warnings:  warnings,
		Duration:  time.Since(start).String(),
	}

	if h.store != nil {
		record, err := h.store.Save(input, result)
		if err != nil {
			h.logger.Warn("failed to persist estimate",
				zap.String("op", "server.handleEstimate"),
				zap.Error(err),
			)
		} else {
			response.StoredID = record.ID
		}
	}

	h.logger.Info("estimate computed",
		zap.String("op", "server.handleEstimate"),
		zap.String("zip", input.ZipCode),
		zap.String("assetClass", string(result.AssetClass)),
		zap.Float64("totalRehab", result.TotalRehab),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, response)
}

// handleLocations returns the full location factor table for admin and
// diagnostic tooling.
func (h *handler) handleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if zip := strings.TrimSpace(r.URL.Query().Get("zip")); zip != "" {
		h.writeJSON(w, http.StatusOK, location.Resolve(zip))
		return
	}
	h.writeJSON(w, http.StatusOK, location.All())
}

func (h *handler) handleEstimates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if h.store == nil {
		http.NotFound(w, r)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	records, err := h.store.List(limit)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleEstimates")
		return
	}
	h.writeJSON(w, http.StatusOK, records)
}

func (h *handler) handleEstimateByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if h.store == nil {
		http.NotFound(w, r)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/estimates/")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid estimate id %q", idStr), "server.handleEstimateByID")
		return
	}

	record, result, err := h.store.Get(uint(id))
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error(), "server.handleEstimateByID")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"record":   record,
		"estimate": result,
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

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("estimate request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
