// Package handler exposes a small local HTTP API beside the Discord
// gateway, mainly for development and operations.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/influenxers/coachbot/internal/bot"
	"github.com/influenxers/coachbot/internal/session"
	"github.com/influenxers/coachbot/pkg/utils"
)

type coachHandler struct {
	svc      *bot.Service
	sessions *session.Store
}

func newCoachHandler(svc *bot.Service, sessions *session.Store) *coachHandler {
	return &coachHandler{svc: svc, sessions: sessions}
}

type eventRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

// handleEvent runs one message through the full coach pipeline and
// returns the reply as JSON, without involving Discord.
func (h *coachHandler) handleEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.UserID == "" || req.Text == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId and text are required")
		return
	}

	reply := h.svc.HandleMessage(r.Context(), req.UserID, req.Username, req.Text)
	utils.RespondJSON(w, http.StatusOK, reply)
}

func (h *coachHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	prof, ok := h.sessions.Snapshot(userID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "unknown user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, prof)
}
