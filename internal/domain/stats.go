package domain

// Stats are cumulative lifetime counters
type Stats struct {
	HarvestCount       int `json:"harvest_count"`
	BestHarvest        int `json:"best_harvest"`
	TotalBudsHarvested int `json:"total_buds_harvested"`
	PlantsPlanted      int `json:"plants_planted"`
	LifetimeEarnings   int `json:"lifetime_earnings"`
	TotalBudsSold      int `json:"total_buds_sold"`
	TradesCompleted    int `json:"trades_completed"`
	HaggleWins         int `json:"haggle_wins"`
	HaggleLosses       int `json:"haggle_losses"`
	QuestsClaimed      int `json:"quests_claimed"`
	EventsTriggered    int `json:"events_triggered"`
}

// RecordHarvest folds one harvest into the counters
func (s *Stats) RecordHarvest(buds int) {
	s.HarvestCount++
	s.TotalBudsHarvested += buds
	if buds > s.BestHarvest {
		s.BestHarvest = buds
	}
}

// RecordSale folds one accepted offer into the counters
func (s *Stats) RecordSale(buds, nugs int) {
	s.TradesCompleted++
	s.TotalBudsSold += buds
	s.LifetimeEarnings += nugs
}
