package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/muraalee/almalead/internal/config"
	"github.com/muraalee/almalead/internal/entity"
	"github.com/muraalee/almalead/internal/infra/http/middleware"
	"github.com/muraalee/almalead/internal/usecase"
)

const defaultListLimit = 100

type LeadHandler struct {
	Service       *usecase.LeadService
	MaxUploadSize int64
}

func NewLeadHandler(service *usecase.LeadService, maxUploadSize int64) *LeadHandler {
	return &LeadHandler{
		Service:       service,
		MaxUploadSize: maxUploadSize,
	}
}

type LeadListResponse struct {
	Total int            `json:"total"`
	Leads []*entity.Lead `json:"leads"`
}

type LeadStateUpdateRequest struct {
	State string `json:"state"`
}

// HandleCreate accepts the public multipart submission. File checks run
// before any side effect: a disallowed extension is a 400 and an oversized
// file a 413, in both cases without touching storage or the database.
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Slack on top of the file cap covers the text fields and multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadSize+1<<20)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File too large. Maximum size: %d bytes", h.MaxUploadSize))
			return
		}
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, []usecase.ValidationError{
			{Field: "resume", Message: "is required"},
		})
		return
	}
	defer file.Close()

	if !allowedExtension(header.Filename) {
		respondError(w, http.StatusBadRequest,
			"File type not allowed. Allowed types: "+strings.Join(config.AllowedExtensions, ", "))
		return
	}

	if header.Size > h.MaxUploadSize {
		respondError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large. Maximum size: %d bytes", h.MaxUploadSize))
		return
	}

	input := usecase.CreateLeadInput{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
	}

	lead, err := h.Service.CreateLead(r.Context(), input, file, header.Filename)
	if err != nil {
		var verrs usecase.ValidationErrors
		if errors.As(err, &verrs) {
			respondError(w, http.StatusUnprocessableEntity, verrs)
			return
		}
		logrus.WithError(err).Error("lead creation failed")
		respondError(w, http.StatusInternalServerError, "failed to create lead")
		return
	}

	middleware.RecordLeadSubmitted()
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", defaultListLimit)

	var state *entity.LeadState
	if raw := r.URL.Query().Get("state"); raw != "" {
		parsed, ok := entity.ParseLeadState(raw)
		if !ok {
			respondError(w, http.StatusUnprocessableEntity, []usecase.ValidationError{
				{Field: "state", Message: "must be PENDING or REACHED_OUT"},
			})
			return
		}
		state = &parsed
	}

	leads, total, err := h.Service.ListLeads(r.Context(), skip, limit, state)
	if err != nil {
		logrus.WithError(err).Error("lead listing failed")
		respondError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}

	respondJSON(w, http.StatusOK, LeadListResponse{Total: total, Leads: leads})
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Service.GetLead(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Lead not found")
			return
		}
		logrus.WithError(err).Error("lead lookup failed")
		respondError(w, http.StatusInternalServerError, "failed to fetch lead")
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleUpdateState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req LeadStateUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	state, ok := entity.ParseLeadState(req.State)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, []usecase.ValidationError{
			{Field: "state", Message: "must be PENDING or REACHED_OUT"},
		})
		return
	}

	lead, err := h.Service.UpdateLeadState(r.Context(), id, state)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Lead not found")
			return
		}
		logrus.WithError(err).Error("lead state update failed")
		respondError(w, http.StatusInternalServerError, "failed to update lead")
		return
	}

	middleware.RecordLeadStateUpdate(string(state))
	respondJSON(w, http.StatusOK, lead)
}

func allowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range config.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
