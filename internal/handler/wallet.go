package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/session"
)

// AmountRequest is the body of the wallet endpoints
type AmountRequest struct {
	Amount int `json:"amount" validate:"gt=0"`
}

// SettingsRequest is the body of PUT /settings. Omitted fields keep their
// current value.
type SettingsRequest struct {
	RandomEventsEnabled *bool `json:"random_events_enabled"`
	AutosaveEnabled     *bool `json:"autosave_enabled"`
	SoundEnabled        *bool `json:"sound_enabled"`
}

// HandleWallet credits or debits nugs or buds:
// POST /wallet/{currency}/{action}
func (h *GameHandler) HandleWallet(w http.ResponseWriter, r *http.Request) {
	currency := chi.URLParam(r, "currency")
	action := chi.URLParam(r, "action")

	var op func(ctx context.Context, amount int) session.Result
	switch {
	case currency == domain.CurrencyNugs && action == WalletActionAdd:
		op = h.game.AddNugs
	case currency == domain.CurrencyNugs && action == WalletActionSpend:
		op = h.game.SpendNugs
	case currency == domain.CurrencyBuds && action == WalletActionAdd:
		op = h.game.AddBuds
	case currency == domain.CurrencyBuds && action == WalletActionSpend:
		op = h.game.SpendBuds
	case currency != domain.CurrencyNugs && currency != domain.CurrencyBuds:
		respondError(w, http.StatusNotFound, ErrMsgUnknownCurrency)
		return
	default:
		respondError(w, http.StatusNotFound, ErrMsgUnknownWalletAction)
		return
	}

	var req AmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Wallet "+action); err != nil {
		return
	}
	respondResult(w, op(r.Context(), req.Amount))
}

// HandleUpgrade bumps an upgrade level
func (h *GameHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.game.UpgradeLevel(r.Context(), chi.URLParam(r, "id")))
}

// HandleAddSlot appends an empty growth slot
func (h *GameHandler) HandleAddSlot(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.game.AddSlot(r.Context()))
}

// HandleUpdateSettings merges the given flags into the player settings
func (h *GameHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update settings"); err != nil {
		return
	}

	settings := h.game.State().Settings
	if req.RandomEventsEnabled != nil {
		settings.RandomEventsEnabled = *req.RandomEventsEnabled
	}
	if req.AutosaveEnabled != nil {
		settings.AutosaveEnabled = *req.AutosaveEnabled
	}
	if req.SoundEnabled != nil {
		settings.SoundEnabled = *req.SoundEnabled
	}
	respondResult(w, h.game.UpdateSettings(r.Context(), settings))
}
