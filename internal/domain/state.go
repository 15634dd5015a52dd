package domain

import "time"

// Settings are player-facing toggles
type Settings struct {
	RandomEventsEnabled bool `json:"random_events_enabled"`
	AutosaveEnabled     bool `json:"autosave_enabled"`
	SoundEnabled        bool `json:"sound_enabled"`
}

// GameState is the single persisted root of the simulation.
// Engine functions never mutate a GameState they were given; they Clone it
// and return the copy.
type GameState struct {
	Version     int            `json:"version"`
	Nugs        int            `json:"nugs"`
	Buds        int            `json:"buds"`
	Slots       []*Plant       `json:"slots"` // nil entry = empty slot
	Upgrades    map[string]int `json:"upgrades"`
	Trade       TradeState     `json:"trade"`
	ActiveEvent *GameEvent     `json:"active_event,omitempty"`
	Quests      []Quest        `json:"quests"`
	Stats       Stats          `json:"stats"`
	Settings    Settings       `json:"settings"`
	CreatedAt   time.Time      `json:"created_at"`
	LastTickAt  time.Time      `json:"last_tick_at"`
	LastSavedAt time.Time      `json:"last_saved_at"`
}

// Clone returns a deep copy that shares no memory with s
func (s GameState) Clone() GameState {
	c := s

	if s.Slots != nil {
		c.Slots = make([]*Plant, len(s.Slots))
		for i, p := range s.Slots {
			c.Slots[i] = p.Clone()
		}
	}

	if s.Upgrades != nil {
		c.Upgrades = make(map[string]int, len(s.Upgrades))
		for k, v := range s.Upgrades {
			c.Upgrades[k] = v
		}
	}

	c.Trade = s.Trade.clone()
	c.ActiveEvent = s.ActiveEvent.Clone()

	if s.Quests != nil {
		c.Quests = make([]Quest, len(s.Quests))
		copy(c.Quests, s.Quests)
	}

	return c
}

// PlantAt returns the plant in slot i. ok is false when i is out of range;
// an empty slot returns (nil, true).
func (s GameState) PlantAt(i int) (*Plant, bool) {
	if i < 0 || i >= len(s.Slots) {
		return nil, false
	}
	return s.Slots[i], true
}

// FreeSlot returns the first empty slot index, or -1
func (s GameState) FreeSlot() int {
	for i, p := range s.Slots {
		if p == nil {
			return i
		}
	}
	return -1
}
