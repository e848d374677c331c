// Package logs serves the system log endpoints used by bots and the
// frontend to record and inspect events.
package logs

import (
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/store/logs"
	"github.com/dalemusser/volunteerhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/paging"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler holds the log feature's dependencies.
type Handler struct {
	Logs *logstore.Store
	Log  *zap.Logger
}

// NewHandler constructs a logs Handler.
func NewHandler(logs *logstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Logs: logs, Log: logger}
}

type createRequest struct {
	Source  string         `json:"source"`
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// HandleCreate handles POST /logs. Source and level must be known values;
// the message is sanitized because log views render it.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "log create")
	defer cancel()

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fields := map[string]string{}
	if !models.ValidLogSource(req.Source) {
		fields["source"] = "must be one of BOT, FRONTEND, SYSTEM, COMMUNICATION"
	}
	if !models.ValidLogLevel(req.Level) {
		fields["level"] = "must be one of INFO, WARNING, ERROR, CRITICAL"
	}
	if req.Message == "" {
		fields["message"] = "required"
	}
	if len(fields) > 0 {
		httpjson.FieldErrors(w, fields)
		return
	}

	entry, err := h.Logs.Create(ctx, req.Source, req.Level, htmlsanitize.Sanitize(req.Message), req.Details)
	if err != nil {
		h.Log.Error("log create", zap.Error(err))
		httpjson.Error(w, http.StatusBadRequest, "failed to create log")
		return
	}
	httpjson.Write(w, http.StatusCreated, entry)
}

// HandleList handles GET /logs with optional source and limit query params.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "log list")
	defer cancel()

	entries, err := h.Logs.List(ctx, r.URL.Query().Get("source"), paging.ParseLimit(r))
	if err != nil {
		h.Log.Error("log list", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list logs")
		return
	}
	httpjson.Write(w, http.StatusOK, entries)
}
