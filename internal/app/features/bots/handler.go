// Package bots serves the polling surface for automation bots. Bots hold a
// shared API key rather than user tokens; the guard lives in routes.go.
package bots

import (
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/store/tasks"
	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds the bot feature's dependencies.
type Handler struct {
	Tasks *taskstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a bots Handler.
func NewHandler(tasks *taskstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Tasks: tasks, Log: logger}
}

// HandlePendingTasks handles GET /bots/pending-tasks. The oldest pending
// task is claimed for the caller in one step; an empty queue is a 200 with
// a message, not an error, so pollers don't treat it as a failure.
func (h *Handler) HandlePendingTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "bots claim task")
	defer cancel()

	task, err := h.Tasks.ClaimNext(ctx, auth.BotID(r))
	if err != nil {
		if err == taskstore.ErrNoPending {
			httpjson.Write(w, http.StatusOK, map[string]string{"message": "No pending tasks"})
			return
		}
		h.Log.Error("bots: claim task", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to claim task")
		return
	}
	httpjson.Write(w, http.StatusOK, task)
}

type completeRequest struct {
	Status       *string `json:"status"`
	Result       *string `json:"result"`
	ErrorMessage *string `json:"error_message"`
}

// HandleComplete handles POST /bots/task/{id}/complete. At least one field
// must be supplied; a status, when present, must be a known value.
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "bots complete task")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Task not found")
		return
	}

	var req completeRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Status == nil && req.Result == nil && req.ErrorMessage == nil {
		httpjson.Error(w, http.StatusBadRequest, "No data to update")
		return
	}
	if req.Status != nil && !models.ValidTaskStatus(*req.Status) {
		httpjson.Error(w, http.StatusBadRequest, "invalid status")
		return
	}

	task, err := h.Tasks.Complete(ctx, id, taskstore.Completion{
		Status:       req.Status,
		Result:       req.Result,
		ErrorMessage: req.ErrorMessage,
	})
	if err != nil {
		if err == taskstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		h.Log.Error("bots: complete task", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update task")
		return
	}
	httpjson.Write(w, http.StatusOK, task)
}
