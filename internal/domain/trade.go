package domain

import (
	"math"
	"time"
)

// TradeOffer is a buyer asking for buds at a fixed price
type TradeOffer struct {
	ID          string  `json:"id"`
	Quantity    int     `json:"quantity"`
	PricePerBud float64 `json:"price_per_bud"` // one decimal place
}

// Total returns the nugs paid when the offer is accepted: floor(quantity * price).
// Prices carry one decimal, so the product is computed in tenths to stay exact.
func (o TradeOffer) Total() int {
	tenths := int(math.Round(o.PricePerBud * 10))
	return o.Quantity * tenths / 10
}

// TradeState is the active offer batch and its refresh gate
type TradeState struct {
	Offers        []TradeOffer `json:"offers"`
	NextRefreshAt time.Time    `json:"next_refresh_at"`
}

// FindOffer returns the index of the offer with the given id, or -1
func (t TradeState) FindOffer(id string) int {
	for i, o := range t.Offers {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (t TradeState) clone() TradeState {
	c := t
	if t.Offers != nil {
		c.Offers = make([]TradeOffer, len(t.Offers))
		copy(c.Offers, t.Offers)
	}
	return c
}
