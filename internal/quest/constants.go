package quest

import "github.com/osse101/GrowRoom_Go/internal/domain"

// Default quest IDs
const (
	QuestHarvest1  = "harvest_1"
	QuestHarvest10 = "harvest_10"
	QuestSell100   = "sell_100"
	QuestSell1000  = "sell_1000"
	QuestWater25   = "water_25"
)

// DefaultQuests returns the quest catalog a new game starts with
func DefaultQuests() []domain.Quest {
	return []domain.Quest{
		{
			ID:          QuestHarvest1,
			Description: "Harvest your first plant",
			Type:        domain.QuestTypeHarvest,
			Goal:        1,
			Reward:      domain.QuestReward{Nugs: 50},
		},
		{
			ID:          QuestHarvest10,
			Description: "Harvest 10 plants",
			Type:        domain.QuestTypeHarvest,
			Goal:        10,
			Reward:      domain.QuestReward{Nugs: 300, Buds: 20},
		},
		{
			ID:          QuestSell100,
			Description: "Sell 100 buds",
			Type:        domain.QuestTypeSell,
			Goal:        100,
			Reward:      domain.QuestReward{Nugs: 150},
		},
		{
			ID:          QuestSell1000,
			Description: "Sell 1,000 buds",
			Type:        domain.QuestTypeSell,
			Goal:        1000,
			Reward:      domain.QuestReward{Nugs: 1000},
		},
		{
			ID:          QuestWater25,
			Description: "Water plants 25 times",
			Type:        domain.QuestTypeWater,
			Goal:        25,
			Reward:      domain.QuestReward{Nugs: 100},
		},
	}
}
