package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// PlantRequest is the body of POST /plants
type PlantRequest struct {
	Slot     *int   `json:"slot" validate:"required,gte=0"`
	StrainID string `json:"strain_id" validate:"required,max=64"`
	SoilType string `json:"soil_type" validate:"required,soil"`
}

// UpdatePlantRequest is the body of PUT /plants/{slot}
type UpdatePlantRequest struct {
	Elapsed    float64 `json:"elapsed" validate:"gte=0"`
	PhaseIndex int     `json:"phase_index" validate:"gte=0"`
}

// UnknownStrainDetail is attached to an unknown-strain decline
type UnknownStrainDetail struct {
	DidYouMean []string `json:"did_you_mean,omitempty"`
}

// HandlePlantSeed plants a strain in an empty slot
func (h *GameHandler) HandlePlantSeed(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant seed"); err != nil {
		return
	}

	soil := domain.SoilType(strings.ToLower(req.SoilType))
	res := h.game.PlantSeed(r.Context(), *req.Slot, req.StrainID, soil)
	if res.Reason == domain.ErrMsgUnknownStrain {
		res.Detail = UnknownStrainDetail{DidYouMean: h.catalog.Suggest(req.StrainID)}
	}
	respondResult(w, res)
}

// HandleRemovePlant clears a slot without a harvest
func (h *GameHandler) HandleRemovePlant(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	respondResult(w, h.game.RemovePlant(r.Context(), slot))
}

// HandleUpdatePlant overwrites a plant's phase and timer
func (h *GameHandler) HandleUpdatePlant(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	var req UpdatePlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update plant"); err != nil {
		return
	}
	respondResult(w, h.game.UpdatePlant(r.Context(), slot, req.Elapsed, req.PhaseIndex))
}

// HandleWater waters the plant in a slot
func (h *GameHandler) HandleWater(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	respondResult(w, h.game.Water(r.Context(), slot))
}

// HandleFertilize fertilizes the plant in a slot
func (h *GameHandler) HandleFertilize(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	respondResult(w, h.game.Fertilize(r.Context(), slot))
}

// HandleHarvest harvests a ready plant
func (h *GameHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	respondResult(w, h.game.Harvest(r.Context(), slot))
}

// CareEligibility reports both care actions for one slot
type CareEligibility struct {
	Water     domain.ActionEligibility `json:"water"`
	Fertilize domain.ActionEligibility `json:"fertilize"`
}

// HandleEligibility reports whether the plant can be watered or fertilized
func (h *GameHandler) HandleEligibility(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotParam(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, CareEligibility{
		Water:     h.game.CanWater(slot),
		Fertilize: h.game.CanFertilize(slot),
	})
}
