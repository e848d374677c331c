// Package metrics serves the read-only dashboard aggregates.
package metrics

import (
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/store/metrics"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds the metrics feature's dependencies.
type Handler struct {
	Store *metricstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a metrics Handler.
func NewHandler(store *metricstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// HandleOverview handles GET /metrics/overview.
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "metrics overview")
	defer cancel()

	ov, err := h.Store.Overview(ctx)
	if err != nil {
		h.Log.Error("metrics overview", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to compute overview")
		return
	}
	httpjson.Write(w, http.StatusOK, ov)
}

// HandleRegions handles GET /metrics/regions.
func (h *Handler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "metrics regions")
	defer cancel()

	regions, err := h.Store.Regions(ctx)
	if err != nil {
		h.Log.Error("metrics regions", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to compute regions")
		return
	}
	httpjson.Write(w, http.StatusOK, regions)
}

// HandleSkills handles GET /metrics/skills.
func (h *Handler) HandleSkills(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "metrics skills")
	defer cancel()

	skills, err := h.Store.TopSkills(ctx)
	if err != nil {
		h.Log.Error("metrics skills", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to compute skills")
		return
	}
	httpjson.Write(w, http.StatusOK, skills)
}

// HandleTimeline handles GET /metrics/timeline.
func (h *Handler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "metrics timeline")
	defer cancel()

	points, err := h.Store.Timeline(ctx)
	if err != nil {
		h.Log.Error("metrics timeline", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to compute timeline")
		return
	}
	httpjson.Write(w, http.StatusOK, points)
}
