// Package api is the thin ingestion surface in front of the pipeline. It
// plays the "external collaborator" role: it accepts raw webhook payloads
// and hands back canonical events and display messages; delivery, retries
// and source authentication live elsewhere.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyaneshwarpardhi/paynotify/internal/config"
	"github.com/gyaneshwarpardhi/paynotify/internal/engine"
	"github.com/gyaneshwarpardhi/paynotify/internal/metrics"
)

const (
	maxBatchSize = 100
	maxBodyBytes = 1 << 20 // 1 MiB per webhook payload
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	eng    *engine.Engine
	loader *config.Loader
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes.
func New(eng *engine.Engine, loader *config.Loader) http.Handler {
	h := &Handler{eng: eng, loader: loader, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/webhooks", h.ingestWebhook)
	h.mux.HandleFunc("POST /v1/webhooks/batch", h.ingestBatch)
	h.mux.HandleFunc("GET /v1/config", h.showConfig)
	h.mux.HandleFunc("POST /v1/config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/webhooks — synchronous single-payload ingestion.
func (h *Handler) ingestWebhook(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	if len(raw) == 0 {
		writeError(w, http.StatusBadRequest, "empty body")
		return
	}

	res, err := h.eng.ProcessSync(r.Context(), raw)
	if err != nil {
		writeError(w, http.StatusTooManyRequests, err.Error())
		return
	}
	if res.Error != "" {
		// Malformed payload: rejected, nothing forwarded.
		writeJSON(w, http.StatusBadRequest, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/webhooks/batch — async batch ingestion (up to 100 payloads).
func (h *Handler) ingestBatch(w http.ResponseWriter, r *http.Request) {
	var payloads []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if len(payloads) == 0 {
		writeError(w, http.StatusBadRequest, "batch must contain at least one payload")
		return
	}
	if len(payloads) > maxBatchSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds max %d", len(payloads), maxBatchSize))
		return
	}

	jobID := uuid.New().String()
	queued := 0
	for _, raw := range payloads {
		if h.eng.ProcessAsync(raw) {
			queued++
		}
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"job_id":   jobID,
		"total":    len(payloads),
		"queued":   queued,
		"rejected": len(payloads) - queued,
	})
}

// GET /v1/config — show the loaded pipeline config.
func (h *Handler) showConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	writeJSON(w, http.StatusOK, map[string]any{
		"version": cfg.Version,
		"notify":  cfg.Notify,
	})
}

// POST /v1/config/reload — hot-reload the config from disk. Reload validates
// before swapping, so a rejected config leaves both loader and engine on the
// previous one.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.eng.SwapConfig(cfg)
	writeJSON(w, http.StatusOK, map[string]any{
		"reloaded":     true,
		"notify_rules": len(cfg.Notify.Rules),
	})
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz — 503 if event queue >80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	util := h.eng.QueueUtilization()
	metrics.QueueUtilization.Set(util)
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":            "ready",
		"queue_utilization": util,
	})
}
