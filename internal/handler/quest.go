package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandleClaimQuest collects a completed quest's reward
func (h *GameHandler) HandleClaimQuest(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.game.ClaimQuest(r.Context(), chi.URLParam(r, "id")))
}
