package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/economy"
)

var titleCaser = cases.Title(language.English)

// StatusView is a human-readable summary of the game, for terminals and bots
type StatusView struct {
	Nugs        string      `json:"nugs"`
	Buds        string      `json:"buds"`
	Stage       int         `json:"market_stage"`
	Harvests    string      `json:"harvests"`
	Slots       []SlotView  `json:"slots"`
	Event       *EventView  `json:"event,omitempty"`
	Offers      []OfferView `json:"offers"`
	NextRefresh string      `json:"next_refresh"`
	Quests      []QuestView `json:"quests"`
	LastSaved   string      `json:"last_saved"`
}

// SlotView describes one growth slot
type SlotView struct {
	Slot     int    `json:"slot"`
	Empty    bool   `json:"empty"`
	Strain   string `json:"strain,omitempty"`
	Soil     string `json:"soil,omitempty"`
	Phase    string `json:"phase,omitempty"`
	Progress string `json:"progress,omitempty"`
	TimeLeft string `json:"time_left,omitempty"`
	Quality  string `json:"quality,omitempty"`
	Ready    bool   `json:"ready"`
}

// EventView describes the active random event
type EventView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Ends        string `json:"ends"`
}

// OfferView describes one trade offer
type OfferView struct {
	ID       string `json:"id"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}

// QuestView describes one quest
type QuestView struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Progress    string `json:"progress"`
	Claimable   bool   `json:"claimable"`
	Claimed     bool   `json:"claimed"`
}

// HandleGetState returns the raw game state
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.State())
}

// HandleGetStatus returns the human-readable summary
func (h *GameHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.buildStatus(h.game.State(), h.game.Now()))
}

func (h *GameHandler) buildStatus(state domain.GameState, now time.Time) StatusView {
	view := StatusView{
		Nugs:      humanize.Comma(int64(state.Nugs)),
		Buds:      humanize.Comma(int64(state.Buds)),
		Stage:     economy.Stage(state.Stats.HarvestCount),
		Harvests:  humanize.Comma(int64(state.Stats.HarvestCount)),
		Slots:     make([]SlotView, len(state.Slots)),
		Offers:    make([]OfferView, 0, len(state.Trade.Offers)),
		Quests:    make([]QuestView, 0, len(state.Quests)),
		LastSaved: "never",
	}

	for i, p := range state.Slots {
		view.Slots[i] = h.slotView(i, p, state.ActiveEvent, now)
	}

	if ev := state.ActiveEvent; ev != nil {
		view.Event = &EventView{
			Name:        ev.Name,
			Description: ev.Description,
			Ends:        humanize.RelTime(ev.EndsAt, now, "ago", "from now"),
		}
	}

	for _, o := range state.Trade.Offers {
		view.Offers = append(view.Offers, OfferView{
			ID:       o.ID,
			Quantity: humanize.Comma(int64(o.Quantity)),
			Price:    strconv.FormatFloat(o.PricePerBud, 'f', 1, 64),
			Total:    humanize.Comma(int64(o.Total())),
		})
	}

	view.NextRefresh = "now"
	if !economy.CanRefresh(state.Trade, now) {
		view.NextRefresh = humanize.RelTime(state.Trade.NextRefreshAt, now, "ago", "from now")
	}

	for _, q := range state.Quests {
		view.Quests = append(view.Quests, QuestView{
			ID:          q.ID,
			Type:        titleCaser.String(string(q.Type)),
			Description: q.Description,
			Progress:    fmt.Sprintf("%s / %s", humanize.Comma(int64(q.Progress)), humanize.Comma(int64(q.Goal))),
			Claimable:   q.Claimable(),
			Claimed:     q.Claimed,
		})
	}

	if !state.LastSavedAt.IsZero() {
		view.LastSaved = humanize.RelTime(state.LastSavedAt, now, "ago", "from now")
	}
	return view
}

func (h *GameHandler) slotView(slot int, p *domain.Plant, event *domain.GameEvent, now time.Time) SlotView {
	if p == nil {
		return SlotView{Slot: slot, Empty: true}
	}

	view := SlotView{
		Slot:    slot,
		Strain:  p.StrainID,
		Soil:    titleCaser.String(string(p.Modifiers.SoilType)),
		Quality: "x" + strconv.FormatFloat(p.Modifiers.QualityMultiplier, 'f', 2, 64),
		Ready:   h.growth.IsReady(p, event),
	}
	if strain, ok := h.catalog.Strain(p.StrainID); ok {
		view.Strain = strain.Name
	}
	if phase, ok := h.catalog.Phase(p.PhaseIndex); ok {
		view.Phase = phase.Name
	}
	if progress, err := h.growth.Progress(p, event); err == nil {
		view.Progress = fmt.Sprintf("%.0f%%", progress*100)
	}
	if remaining, err := h.growth.RemainingSeconds(p, event); err == nil && remaining > 0 {
		end := now.Add(time.Duration(remaining * float64(time.Second)))
		view.TimeLeft = humanize.RelTime(end, now, "ago", "left")
	}
	return view
}
