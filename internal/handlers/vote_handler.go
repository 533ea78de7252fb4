package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/domain"
	"github.com/jungshell/fccg-core/internal/domain/service"
)

// VoteHandler is the thin HTTP surface over the vote core: one write
// endpoint and two read projections. Everything else the club app serves
// lives outside this core.
type VoteHandler struct {
	services *service.Instance
	logger   *zap.Logger
}

func New(services *service.Instance, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{
		services: services,
		logger:   logger,
	}
}

type submitVoteRequest struct {
	UserID int64    `json:"user_id"`
	Days   []string `json:"days"`
}

func (h *VoteHandler) HandleSubmitVote(w http.ResponseWriter, r *http.Request) {
	var req submitVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 {
		h.respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	vote, err := h.services.Vote.SubmitVote(r.Context(), req.UserID, req.Days)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, vote)
}

func (h *VoteHandler) HandleCurrentSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.services.Vote.GetCurrentSession()
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if session == nil {
		h.respondError(w, http.StatusNotFound, "no active vote session")
		return
	}

	h.respondJSON(w, http.StatusOK, session)
}

func (h *VoteHandler) HandleSessionResults(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	results, err := h.services.Vote.GetSessionResults(id)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if results == nil {
		h.respondError(w, http.StatusNotFound, "session not found")
		return
	}

	h.respondJSON(w, http.StatusOK, results)
}

func (h *VoteHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoActiveSession):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDuplicateEntry):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		h.respondError(w, http.StatusServiceUnavailable, "store temporarily unavailable")
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *VoteHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *VoteHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
