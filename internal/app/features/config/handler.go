// Package config serves the runtime configuration key/value surface.
// Admin-only: values here include mail credentials.
package config

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/store/config"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds the config feature's dependencies.
type Handler struct {
	Config *configstore.Store
	Log    *zap.Logger
}

// NewHandler constructs a config Handler.
func NewHandler(cfg *configstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Config: cfg, Log: logger}
}

// HandleGet handles GET /config, returning all entries as one object.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "config get")
	defer cancel()

	all, err := h.Config.All(ctx)
	if err != nil {
		h.Log.Error("config get", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load configuration")
		return
	}
	httpjson.Write(w, http.StatusOK, all)
}

// HandleSet handles POST /config. The body is a flat object; every pair is
// upserted and non-string values are stored as their string form.
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "config set")
	defer cancel()

	var body map[string]any
	if err := httpjson.Decode(r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	for key, value := range body {
		if err := h.Config.Set(ctx, key, fmt.Sprint(value)); err != nil {
			h.Log.Error("config set", zap.String("key", key), zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "failed to save configuration")
			return
		}
	}

	all, err := h.Config.All(ctx)
	if err != nil {
		h.Log.Error("config set: reload", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load configuration")
		return
	}
	httpjson.Write(w, http.StatusOK, all)
}
