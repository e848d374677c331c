// Package tasks serves task creation and status lookup for the frontend.
// Bots claim and complete tasks through the bots feature.
package tasks

import (
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/store/tasks"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds the task feature's dependencies.
type Handler struct {
	Tasks *taskstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a tasks Handler.
func NewHandler(tasks *taskstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Tasks: tasks, Log: logger}
}

type createRequest struct {
	Payload map[string]any `json:"payload"`
}

// HandleCreate handles POST /tasks. New tasks always start pending.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "task create")
	defer cancel()

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	task, err := h.Tasks.Enqueue(ctx, req.Payload)
	if err != nil {
		h.Log.Error("task create", zap.Error(err))
		httpjson.Error(w, http.StatusBadRequest, "failed to create task")
		return
	}
	httpjson.Write(w, http.StatusCreated, task)
}

// HandleGet handles GET /tasks/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "task get")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.Tasks.Get(ctx, id)
	if err != nil {
		if err == taskstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		h.Log.Error("task get", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load task")
		return
	}
	httpjson.Write(w, http.StatusOK, task)
}
