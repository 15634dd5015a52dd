package quest

import (
	"fmt"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// RecordAction advances every unclaimed quest of the given type by amount,
// clamped to the goal. The input slice is not modified.
func RecordAction(quests []domain.Quest, questType domain.QuestType, amount int) []domain.Quest {
	out := make([]domain.Quest, len(quests))
	copy(out, quests)
	if amount <= 0 {
		return out
	}

	for i := range out {
		q := &out[i]
		if q.Type != questType || q.Claimed {
			continue
		}
		q.Progress = min(q.Goal, q.Progress+amount)
	}
	return out
}

// ClaimResult is what a successful claim credited
type ClaimResult struct {
	QuestID string             `json:"quest_id"`
	Reward  domain.QuestReward `json:"reward"`
}

// Claim marks a completed quest claimed and returns the reward to credit.
// On failure the quests are returned unchanged.
func Claim(quests []domain.Quest, questID string) ([]domain.Quest, ClaimResult, error) {
	idx := find(quests, questID)
	if idx < 0 {
		return quests, ClaimResult{}, fmt.Errorf("%w: '%s'", domain.ErrQuestNotFound, questID)
	}

	q := quests[idx]
	if q.Claimed {
		return quests, ClaimResult{}, fmt.Errorf("%w: '%s'", domain.ErrQuestAlreadyClaimed, questID)
	}
	if !q.Complete() {
		return quests, ClaimResult{}, fmt.Errorf("%w: '%s' at %d/%d", domain.ErrQuestIncomplete, questID, q.Progress, q.Goal)
	}

	out := make([]domain.Quest, len(quests))
	copy(out, quests)
	out[idx].Claimed = true
	return out, ClaimResult{QuestID: questID, Reward: q.Reward}, nil
}

// Merge reconciles saved quests with the current catalog. Saved quests keep
// their progress and claimed flag (progress clamped to goal); catalog quests
// missing from the save are appended fresh.
func Merge(defaults, saved []domain.Quest) []domain.Quest {
	out := make([]domain.Quest, 0, len(defaults)+len(saved))
	seen := make(map[string]bool, len(saved))

	for _, q := range saved {
		if q.ID == "" || seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		if q.Progress < 0 {
			q.Progress = 0
		}
		if q.Goal > 0 && q.Progress > q.Goal {
			q.Progress = q.Goal
		}
		out = append(out, q)
	}

	for _, q := range defaults {
		if !seen[q.ID] {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the quest with the given id
func Find(quests []domain.Quest, questID string) (domain.Quest, bool) {
	idx := find(quests, questID)
	if idx < 0 {
		return domain.Quest{}, false
	}
	return quests[idx], true
}

func find(quests []domain.Quest, questID string) int {
	for i, q := range quests {
		if q.ID == questID {
			return i
		}
	}
	return -1
}
