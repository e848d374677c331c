// Package segmentation serves segment creation and lookup. A segment is an
// immutable snapshot: the filter document plus the match count at creation
// time.
package segmentation

import (
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/store/queries/volunteerfilter"
	"github.com/dalemusser/volunteerhub/internal/app/store/segments"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds the segmentation feature's dependencies.
type Handler struct {
	Segments *segmentstore.Store
	Engine   *volunteerfilter.Engine
	Log      *zap.Logger
}

// NewHandler constructs a segmentation Handler.
func NewHandler(segments *segmentstore.Store, engine *volunteerfilter.Engine, logger *zap.Logger) *Handler {
	return &Handler{Segments: segments, Engine: engine, Log: logger}
}

type createRequest struct {
	Filters models.SegmentFilters `json:"filters"`
}

// HandleCreate handles POST /segmentation. The filters are evaluated once
// and the match count stored with them; unknown filter keys are dropped by
// decoding.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "segment create")
	defer cancel()

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	matched, err := h.Engine.Run(ctx, req.Filters)
	if err != nil {
		h.Log.Error("segment create: evaluate filters", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to evaluate filters")
		return
	}

	seg, err := h.Segments.Create(ctx, req.Filters, len(matched))
	if err != nil {
		h.Log.Error("segment create: save", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to save segment")
		return
	}
	httpjson.Write(w, http.StatusCreated, seg)
}

// HandleList handles GET /segmentation, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "segment list")
	defer cancel()

	segs, err := h.Segments.List(ctx)
	if err != nil {
		h.Log.Error("segment list", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list segments")
		return
	}
	httpjson.Write(w, http.StatusOK, segs)
}

// HandleGet handles GET /segmentation/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "segment get")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Segment not found")
		return
	}

	seg, err := h.Segments.Get(ctx, id)
	if err != nil {
		if err == segmentstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Segment not found")
			return
		}
		h.Log.Error("segment get", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load segment")
		return
	}
	httpjson.Write(w, http.StatusOK, seg)
}
