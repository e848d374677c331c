// Package volunteers serves the volunteer CRUD endpoints.
package volunteers

import (
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/store/volunteers"
	"github.com/dalemusser/volunteerhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/inputval"
	"github.com/dalemusser/volunteerhub/internal/app/system/paging"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds the volunteer feature's dependencies.
type Handler struct {
	Store *volunteerstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a volunteers Handler.
func NewHandler(store *volunteerstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

type createRequest struct {
	FullName      string   `json:"full_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Region        string   `json:"region"`
	City          string   `json:"city"`
	Availability  string   `json:"availability"`
	VolunteerType string   `json:"volunteer_type"`
	Status        string   `json:"status"`
	Notes         string   `json:"notes"`
	Skills        []string `json:"skills"`
	Campaigns     []string `json:"campaigns"`
}

func (req createRequest) validate() map[string]string {
	fields := map[string]string{}
	if req.FullName == "" {
		fields["full_name"] = "required"
	}
	if req.Email == "" {
		fields["email"] = "required"
	} else if !inputval.IsValidEmail(req.Email) {
		fields["email"] = "must be a valid email address"
	}
	return fields
}

// HandleCreate handles POST /voluntarios.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "volunteer create")
	defer cancel()

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		httpjson.FieldErrors(w, fields)
		return
	}

	v, err := h.Store.Create(ctx, models.Volunteer{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Region:        req.Region,
		City:          req.City,
		Availability:  req.Availability,
		VolunteerType: req.VolunteerType,
		Status:        req.Status,
		Notes:         htmlsanitize.Sanitize(req.Notes),
	}, req.Skills, req.Campaigns)
	if err != nil {
		h.Log.Error("volunteer create", zap.Error(err))
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	httpjson.Write(w, http.StatusCreated, v)
}

// HandleList handles GET /voluntarios with skip/limit/search/skills query
// params. The skills param may repeat and matches volunteers holding any of
// the named skills.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "volunteer list")
	defer cancel()

	opt := volunteerstore.ListOptions{
		Skip:   paging.ParseSkip(r),
		Limit:  paging.ParseLimit(r),
		Search: r.URL.Query().Get("search"),
		Skills: r.URL.Query()["skills"],
	}

	vols, err := h.Store.List(ctx, opt)
	if err != nil {
		h.Log.Error("volunteer list", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list volunteers")
		return
	}
	if vols == nil {
		vols = []models.Volunteer{}
	}
	httpjson.Write(w, http.StatusOK, vols)
}

// HandleGet handles GET /voluntarios/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "volunteer get")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Volunteer not found")
		return
	}

	v, err := h.Store.Get(ctx, id)
	if err != nil {
		if err == volunteerstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Volunteer not found")
			return
		}
		h.Log.Error("volunteer get", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load volunteer")
		return
	}
	httpjson.Write(w, http.StatusOK, v)
}

type updateRequest struct {
	FullName      *string  `json:"full_name"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	Region        *string  `json:"region"`
	City          *string  `json:"city"`
	Availability  *string  `json:"availability"`
	VolunteerType *string  `json:"volunteer_type"`
	// Some clients send volunteerType; it wins only when the snake_case key
	// is absent.
	VolunteerTypeAlt *string  `json:"volunteerType"`
	Status           *string  `json:"status"`
	Notes            *string  `json:"notes"`
	Skills           []string `json:"skills"`
	Campaigns        []string `json:"campaigns"`
}

// HandleUpdate handles PUT /voluntarios/{id}. Scalar fields are patched;
// supplying skills or campaigns replaces the full relation set.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "volunteer update")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Volunteer not found")
		return
	}

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.VolunteerType == nil && req.VolunteerTypeAlt != nil {
		req.VolunteerType = req.VolunteerTypeAlt
	}
	if req.Email != nil && *req.Email != "" && !inputval.IsValidEmail(*req.Email) {
		httpjson.FieldErrors(w, map[string]string{"email": "must be a valid email address"})
		return
	}
	if req.Notes != nil {
		clean := htmlsanitize.Sanitize(*req.Notes)
		req.Notes = &clean
	}

	upd := volunteerstore.Update{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Region:        req.Region,
		City:          req.City,
		Availability:  req.Availability,
		VolunteerType: req.VolunteerType,
		Status:        req.Status,
		Notes:         req.Notes,
	}
	if req.Skills != nil {
		upd.Skills = req.Skills
		upd.SkillsSet = true
	}
	if req.Campaigns != nil {
		upd.Campaigns = req.Campaigns
		upd.CampaignsSet = true
	}

	v, err := h.Store.ApplyUpdate(ctx, id, upd)
	if err != nil {
		if err == volunteerstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Volunteer not found")
			return
		}
		h.Log.Error("volunteer update", zap.Error(err))
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, v)
}

// HandleDelete handles DELETE /voluntarios/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "volunteer delete")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Volunteer not found")
		return
	}

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("volunteer delete", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete volunteer")
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "Volunteer not found")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Volunteer deleted"})
}
