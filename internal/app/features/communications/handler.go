// Package communications serves the bulk-messaging surface: previews, CSV
// export, and the capped bulk send. Every operation re-resolves the
// segment's filters live, so the recipient list reflects the volunteers as
// they are now, not as they were when the segment was saved.
package communications

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/volunteerhub/internal/app/store/logs"
	"github.com/dalemusser/volunteerhub/internal/app/store/queries/volunteerfilter"
	"github.com/dalemusser/volunteerhub/internal/app/store/segments"
	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/mailer"
	"github.com/dalemusser/volunteerhub/internal/app/system/msgtemplate"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Limits on each operation's recipient set.
const (
	PreviewLimit = 5
	CSVLimit     = 10000
	SendLimit    = 50
)

// Handler holds the communications feature's dependencies.
type Handler struct {
	Segments *segmentstore.Store
	Engine   *volunteerfilter.Engine
	Logs     *logstore.Store
	Mail     mailer.Transport
	Log      *zap.Logger
}

// NewHandler constructs a communications Handler.
func NewHandler(segments *segmentstore.Store, engine *volunteerfilter.Engine, logs *logstore.Store, mail mailer.Transport, logger *zap.Logger) *Handler {
	return &Handler{Segments: segments, Engine: engine, Logs: logs, Mail: mail, Log: logger}
}

// resolveSegment loads a segment and re-runs its filters, capped at limit.
func (h *Handler) resolveSegment(r *http.Request, segmentID string, limit int) (models.Segment, []models.Volunteer, error) {
	id, err := primitive.ObjectIDFromHex(segmentID)
	if err != nil {
		return models.Segment{}, nil, segmentstore.ErrNotFound
	}
	seg, err := h.Segments.Get(r.Context(), id)
	if err != nil {
		return models.Segment{}, nil, err
	}
	vols, err := h.Engine.Run(r.Context(), seg.Filters)
	if err != nil {
		return models.Segment{}, nil, err
	}
	if len(vols) > limit {
		vols = vols[:limit]
	}
	return seg, vols, nil
}

type simulateRequest struct {
	SegmentID string `json:"segment_id"`
	Template  string `json:"template"`
}

type preview struct {
	Volunteer string `json:"volunteer"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// HandleSimulate handles POST /communications/simular: expand the template
// against the first few matches without sending anything.
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "communications simulate")
	defer cancel()
	r = r.WithContext(ctx)

	var req simulateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	_, vols, err := h.resolveSegment(r, req.SegmentID, PreviewLimit)
	if err != nil {
		h.writeResolveError(w, err, "simulate")
		return
	}

	previews := make([]preview, 0, len(vols))
	for _, v := range vols {
		previews = append(previews, preview{
			Volunteer: v.FullName,
			Email:     v.Email,
			Message:   msgtemplate.Expand(req.Template, msgtemplate.FieldsFromVolunteer(v)),
		})
	}
	httpjson.Write(w, http.StatusOK, previews)
}

// HandleGenerateCSV handles GET /communications/{segmentID}/generar-csv with
// the template in a query param.
func (h *Handler) HandleGenerateCSV(w http.ResponseWriter, r *http.Request) {
	h.generateCSV(w, r, chi.URLParam(r, "segmentID"), r.URL.Query().Get("template"))
}

type generateCSVRequest struct {
	SegmentID string `json:"segment_id"`
	Template  string `json:"template"`
}

// HandleGenerateCSVPost handles POST /communications/generar-csv with a JSON
// body, for clients that prefer not to put templates in the query string.
func (h *Handler) HandleGenerateCSVPost(w http.ResponseWriter, r *http.Request) {
	var req generateCSVRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.generateCSV(w, r, req.SegmentID, req.Template)
}

func (h *Handler) generateCSV(w http.ResponseWriter, r *http.Request, segmentID, template string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "communications csv")
	defer cancel()
	r = r.WithContext(ctx)

	seg, vols, err := h.resolveSegment(r, segmentID, CSVLimit)
	if err != nil {
		h.writeResolveError(w, err, "csv")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=segment_%s.csv", seg.ID.Hex()))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Name", "Email", "Region", "Message"})
	for _, v := range vols {
		msg := msgtemplate.Expand(template, msgtemplate.FieldsFromVolunteer(v))
		if err := cw.Write([]string{v.FullName, v.Email, v.Region, msg}); err != nil {
			h.Log.Error("communications csv: write row", zap.Error(err))
			return
		}
	}
	cw.Flush()
}

type sendRequest struct {
	SegmentID string `json:"segment_id"`
	Template  string `json:"template"`
	Subject   string `json:"subject"`
}

type sendFailure struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// HandleSend handles POST /communications/enviar: expand and deliver the
// template to the segment's matches, capped at SendLimit. Recipients without
// an email address are skipped silently; per-recipient failures are
// collected rather than aborting the batch. The batch is recorded in the
// audit log either way.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "communications send")
	defer cancel()
	r = r.WithContext(ctx)

	var req sendRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		httpjson.Error(w, http.StatusBadRequest, "subject is required")
		return
	}

	seg, vols, err := h.resolveSegment(r, req.SegmentID, SendLimit)
	if err != nil {
		h.writeResolveError(w, err, "send")
		return
	}

	batchID := uuid.NewString()
	sent := 0
	failures := []sendFailure{}
	for _, v := range vols {
		if v.Email == "" {
			continue
		}
		body := msgtemplate.Expand(req.Template, msgtemplate.FieldsFromVolunteer(v))
		if err := h.Mail.Send(ctx, mailer.Email{To: v.Email, Subject: req.Subject, Body: body}); err != nil {
			h.Log.Warn("communications send: recipient failed",
				zap.String("batch_id", batchID),
				zap.String("to", v.Email),
				zap.Error(err))
			failures = append(failures, sendFailure{Email: v.Email, Error: err.Error()})
			continue
		}
		sent++
	}

	sender := ""
	if claims, ok := auth.Claims(r); ok {
		sender = claims.Subject
	}
	level := models.LogLevelInfo
	if len(failures) > 0 {
		level = models.LogLevelWarning
	}
	if _, err := h.Logs.Create(ctx, models.LogSourceCommunication, level,
		fmt.Sprintf("bulk send to segment %s: %d sent, %d failed", seg.ID.Hex(), sent, len(failures)),
		map[string]any{
			"batch_id":   batchID,
			"segment_id": seg.ID.Hex(),
			"subject":    req.Subject,
			"sent":       sent,
			"failed":     len(failures),
			"sender":     sender,
		}); err != nil {
		h.Log.Error("communications send: audit log", zap.Error(err))
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"batch_id":   batchID,
		"sent_count": sent,
		"errors":     failures,
	})
}

func (h *Handler) writeResolveError(w http.ResponseWriter, err error, op string) {
	if err == segmentstore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "Segment not found")
		return
	}
	h.Log.Error("communications "+op+": resolve segment", zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, "failed to resolve segment")
}
