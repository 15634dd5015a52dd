package handler

import (
	"net/http"

	"github.com/osse101/GrowRoom_Go/internal/logger"
)

// HandleSave writes the game to the store now
func (h *GameHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	res, err := h.game.ManualSave(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgSaveFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
		return
	}
	respondResult(w, res)
}

// HandleReset deletes the save and starts a new game
func (h *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	res, err := h.game.Reset(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgResetFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgResetFailed)
		return
	}
	respondResult(w, res)
}
