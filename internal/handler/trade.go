package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandleGenerateOffers rolls a new offer batch
func (h *GameHandler) HandleGenerateOffers(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.game.GenerateOffers(r.Context()))
}

// HandleAcceptOffer sells buds to an offer
func (h *GameHandler) HandleAcceptOffer(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.game.AcceptOffer(r.Context(), chi.URLParam(r, "id")))
}

// HandleHaggleOffer tries to raise an offer's price
func (h *GameHandler) HandleHaggleOffer(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.game.HaggleOffer(r.Context(), chi.URLParam(r, "id")))
}
