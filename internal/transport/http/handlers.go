package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"go.uber.org/zap"

	"cybershield-academy/internal/app"
	"cybershield-academy/internal/domain"
)

// Handler serves the progress and diploma REST surface.
type Handler struct {
	diplomas   *app.DiplomaService
	adminToken string
	log        *zap.Logger
}

func NewHandler(diplomas *app.DiplomaService, adminToken string, log *zap.Logger) *Handler {
	return &Handler{diplomas: diplomas, adminToken: adminToken, log: log}
}

type diplomaResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	CertID    string    `json:"certId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDiplomaResponse(d domain.Diploma) diplomaResponse {
	return diplomaResponse{
		ID:        d.ID.String(),
		UserID:    d.UserID,
		FullName:  d.FullName,
		CertID:    d.CertID,
		CreatedAt: d.CreatedAt,
	}
}

type issueRequest struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
}

// GetProgress handles GET /api/progress?userId=...
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSONError(w, http.StatusBadRequest, "missing userId")
		return
	}
	progress, err := h.diplomas.Progress(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// GetDiploma handles GET /api/diploma?userId=...
func (h *Handler) GetDiploma(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSONError(w, http.StatusBadRequest, "missing userId")
		return
	}
	diploma, err := h.diplomas.Get(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDiplomaResponse(diploma))
}

// IssueDiploma handles POST /api/diploma.
func (h *Handler) IssueDiploma(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeJSONError(w, http.StatusBadRequest, "missing userId")
		return
	}
	diploma, err := h.diplomas.Issue(r.Context(), req.UserID, req.FullName)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDiplomaResponse(diploma))
}

// DownloadDiploma handles GET /api/diploma/download?userId=...&locale=...
// It re-renders the certificate from the persisted row on every call.
func (h *Handler) DownloadDiploma(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSONError(w, http.StatusBadRequest, "missing userId")
		return
	}
	loc := domain.ParseLocale(r.URL.Query().Get("locale"))

	diploma, err := h.diplomas.Get(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	data, fileName, err := h.diplomas.Render(diploma, loc)
	if err != nil {
		h.writeError(w, err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": fileName})
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", disposition)
	_, _ = w.Write(data)
}

// RenameDiploma handles POST /api/admin/diploma/name, guarded by the admin
// token header. It edits the holder name on an already issued diploma.
func (h *Handler) RenameDiploma(w http.ResponseWriter, r *http.Request) {
	if h.adminToken == "" || r.Header.Get("X-Admin-Token") != h.adminToken {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeJSONError(w, http.StatusBadRequest, "missing userId")
		return
	}
	if err := h.diplomas.Rename(r.Context(), req.UserID, req.FullName); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case domain.IsConflict(err):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDiplomaNotFound), errors.Is(err, domain.ErrModuleNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case domain.IsTransient(err):
		h.log.Warn("storage unavailable", zap.Error(err))
		writeJSONError(w, http.StatusServiceUnavailable, "storage unavailable")
	case domain.IsRender(err):
		h.log.Error("certificate render failed", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "certificate rendering failed")
	default:
		h.log.Error("unhandled error", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
