// Random events — once per day, one of hot-category, theft, or special
// buyer may fire. Inventory-dependent events degrade to a log message when
// there is nothing to act on.
package engine

import (
	"math"

	"github.com/justinfry108-ai/flipyard/internal/catalog"
	"github.com/justinfry108-ai/flipyard/internal/entropy"
)

const (
	eventChance = 0.45

	hotBoostMin   = 0.12
	hotBoostMax   = 0.25
	hotTrendCeil  = 1.70
	hotTrendFloor = 0.80

	buyerOfferMin = 0.9
	buyerOfferMax = 1.25
)

// rollDailyEvent makes the single daily event roll and applies the outcome.
func (g *Game) rollDailyEvent() {
	if g.src.Float() >= eventChance {
		return
	}
	switch entropy.IntBetween(g.src, 0, 2) {
	case 0:
		g.eventHotCategory()
	case 1:
		g.eventTheft()
	case 2:
		g.eventSpecialBuyer()
	}
}

// eventHotCategory spikes one category's market multiplier.
func (g *Game) eventHotCategory() {
	cat := entropy.Pick(g.src, catalog.Categories)
	boost := entropy.Between(g.src, hotBoostMin, hotBoostMax)
	g.MarketTrends[cat] = entropy.Clamp(g.trend(cat)+boost, hotTrendFloor, hotTrendCeil)
	g.logf("%s items are suddenly hot! Prices jump %.0f%%.", cat, boost*100)
}

// eventTheft removes a random held item with no compensation.
func (g *Game) eventTheft() {
	if len(g.Inventory) == 0 {
		g.logf("Someone rattled the yard gate overnight, but there was nothing to steal.")
		return
	}
	item := entropy.Pick(g.src, g.Inventory)
	g.removeItem(item.ID)
	g.logf("STOLEN: your %s vanished overnight. The $%s you paid is gone with it.",
		item.Name, money(item.BuyPrice))
	g.record(Transaction{Kind: "theft", Item: item.Name, Category: item.Category})
}

// eventSpecialBuyer sells a random held item immediately at an offer around
// its current value. The offer can undercut as well as overshoot.
func (g *Game) eventSpecialBuyer() {
	if len(g.Inventory) == 0 {
		g.logf("A buyer came around asking what you had for sale. You had nothing.")
		return
	}
	item := entropy.Pick(g.src, g.Inventory)
	offer := int(math.Round(float64(item.CurrentValue) * entropy.Between(g.src, buyerOfferMin, buyerOfferMax)))
	g.logf("A buyer showed up at the yard and made an offer on your %s.", item.Name)
	g.sellItem(item, offer)
}
