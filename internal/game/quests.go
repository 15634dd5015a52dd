package game

import (
	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/quest"
)

// ClaimQuest collects a completed quest's reward
func (e *Engine) ClaimQuest(state domain.GameState, questID string) (domain.GameState, quest.ClaimResult, Outcome) {
	quests, result, err := quest.Claim(state.Quests, questID)
	if err != nil {
		return state, result, declined(err)
	}

	next := state.Clone()
	next.Quests = quests
	next.Nugs += result.Reward.Nugs
	next.Buds += result.Reward.Buds
	next.Stats.QuestsClaimed++
	return next, result, accepted()
}
