package handler

import (
	"context"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/catalog"
	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/growth"
	"github.com/osse101/GrowRoom_Go/internal/session"
)

// Game is the driver surface the HTTP API forwards to. *session.Session
// implements it.
type Game interface {
	State() domain.GameState
	Ready() bool
	Now() time.Time

	PlantSeed(ctx context.Context, slot int, strainID string, soil domain.SoilType) session.Result
	RemovePlant(ctx context.Context, slot int) session.Result
	UpdatePlant(ctx context.Context, slot int, elapsed float64, phaseIndex int) session.Result
	Water(ctx context.Context, slot int) session.Result
	Fertilize(ctx context.Context, slot int) session.Result
	CanWater(slot int) domain.ActionEligibility
	CanFertilize(slot int) domain.ActionEligibility
	Harvest(ctx context.Context, slot int) session.Result

	GenerateOffers(ctx context.Context) session.Result
	AcceptOffer(ctx context.Context, offerID string) session.Result
	HaggleOffer(ctx context.Context, offerID string) session.Result

	ClaimQuest(ctx context.Context, questID string) session.Result

	TriggerEvent(ctx context.Context) session.Result
	TickEvent(ctx context.Context) session.Result

	AddNugs(ctx context.Context, amount int) session.Result
	SpendNugs(ctx context.Context, amount int) session.Result
	AddBuds(ctx context.Context, amount int) session.Result
	SpendBuds(ctx context.Context, amount int) session.Result
	UpgradeLevel(ctx context.Context, upgradeID string) session.Result
	AddSlot(ctx context.Context) session.Result
	UpdateSettings(ctx context.Context, settings domain.Settings) session.Result

	ManualSave(ctx context.Context) (session.Result, error)
	Reset(ctx context.Context) (session.Result, error)
}

// GameHandler serves the local driver API for one session
type GameHandler struct {
	game    Game
	catalog *catalog.Catalog
	growth  *growth.Engine
}

// NewGameHandler creates a handler. The catalog feeds strain suggestions and
// the status view.
func NewGameHandler(game Game, c *catalog.Catalog) *GameHandler {
	return &GameHandler{
		game:    game,
		catalog: c,
		growth:  growth.NewEngine(c),
	}
}
