package handler

import "net/http"

// HandleTriggerEvent starts a random event
func (h *GameHandler) HandleTriggerEvent(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.game.TriggerEvent(r.Context()))
}

// HandleTickEvent clears the active event if it has run out
func (h *GameHandler) HandleTickEvent(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.game.TickEvent(r.Context()))
}
