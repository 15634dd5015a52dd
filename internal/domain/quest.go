package domain

// QuestType is the player action a quest counts
type QuestType string

// Quest type constants
const (
	QuestTypeHarvest QuestType = "harvest" // +1 per harvest
	QuestTypeSell    QuestType = "sell"    // +buds sold per accepted offer
	QuestTypeWater   QuestType = "water"   // +1 per watering
)

// QuestReward is credited once on claim. Zero means no reward of that kind.
type QuestReward struct {
	Nugs int `json:"nugs,omitempty"`
	Buds int `json:"buds,omitempty"`
}

// Quest is a cumulative action counter with a one-time reward
type Quest struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Type        QuestType   `json:"type"`
	Goal        int         `json:"goal"`
	Progress    int         `json:"progress"`
	Reward      QuestReward `json:"reward"`
	Claimed     bool        `json:"claimed"`
}

// Complete reports whether the goal has been reached
func (q Quest) Complete() bool {
	return q.Progress >= q.Goal
}

// Claimable reports whether the reward can be collected now
func (q Quest) Claimable() bool {
	return q.Complete() && !q.Claimed
}
