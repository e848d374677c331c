// Package notifications serves the in-app notification list.
package notifications

import (
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/store/notifications"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds the notification feature's dependencies.
type Handler struct {
	Store *notificationstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a notifications Handler.
func NewHandler(store *notificationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// HandleList handles GET /notifications, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "notification list")
	defer cancel()

	ns, err := h.Store.List(ctx, 0)
	if err != nil {
		h.Log.Error("notification list", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	httpjson.Write(w, http.StatusOK, ns)
}

// HandleMarkRead handles PATCH /notifications/{id}/read.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "notification mark read")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Notification not found")
		return
	}

	if err := h.Store.MarkRead(ctx, id); err != nil {
		if err == notificationstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Notification not found")
			return
		}
		h.Log.Error("notification mark read", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update notification")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// HandleMarkAllRead handles POST /notifications/mark-all-read.
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "notification mark all read")
	defer cancel()

	if _, err := h.Store.MarkAllRead(ctx); err != nil {
		h.Log.Error("notification mark all read", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update notifications")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "All marked as read"})
}
