// Deal generation — sample the catalog, price against the current market,
// and add noise so the player's information is deliberately imperfect.
package engine

import (
	"math"

	"github.com/justinfry108-ai/flipyard/internal/catalog"
	"github.com/justinfry108-ai/flipyard/internal/entropy"
)

const (
	dealsPerDayMin = 3
	dealsPerDayMax = 4

	// Asking-price regimes: underpriced / fair / overpriced.
	goodDealChance = 0.4
	fairDealChance = 0.4 // cumulative 0.8

	estNoise = 0.18
)

// generateDeal produces a single listing priced against today's market.
func (g *Game) generateDeal() *Deal {
	arch := entropy.Pick(g.src, catalog.Archetypes)
	condIdx := entropy.IntBetween(g.src, 0, len(catalog.Conditions)-1)
	cond := catalog.Conditions[condIdx]

	trueValue := float64(arch.BaseValue) * cond.Multiplier * g.trend(arch.Category)

	// 40% underpriced, 40% fair, 20% overpriced.
	var askingMult float64
	switch roll := g.src.Float(); {
	case roll < goodDealChance:
		askingMult = entropy.Between(g.src, 0.70, 0.95)
	case roll < goodDealChance+fairDealChance:
		askingMult = entropy.Between(g.src, 0.95, 1.10)
	default:
		askingMult = entropy.Between(g.src, 1.10, 1.35)
	}

	// The estimate the player sees is independently noisy: it can flatter an
	// overpriced deal or bury a bargain.
	noise := entropy.Between(g.src, -estNoise, estNoise)

	deal := &Deal{
		ID:              g.nextDealID,
		Name:            arch.Name,
		Category:        arch.Category,
		Condition:       condIdx,
		BaseValue:       arch.BaseValue,
		AskingPrice:     int(math.Round(trueValue * askingMult)),
		EstMarketValue:  int(math.Round(trueValue * (1 + noise))),
		TrueMarketValue: int(math.Round(trueValue)),
	}
	g.nextDealID++
	return deal
}

// generateDailyDeals replaces the current offer set with a fresh batch.
// Unsold deals from the previous day are discarded wholesale.
func (g *Game) generateDailyDeals() {
	n := entropy.IntBetween(g.src, dealsPerDayMin, dealsPerDayMax)
	deals := make([]*Deal, 0, n)
	for i := 0; i < n; i++ {
		deals = append(deals, g.generateDeal())
	}
	g.CurrentDeals = deals
}

// findDeal returns the offered deal with the given id, or nil.
func (g *Game) findDeal(dealID int) *Deal {
	for _, d := range g.CurrentDeals {
		if d.ID == dealID {
			return d
		}
	}
	return nil
}

// removeDeal drops a deal from the current offer set.
func (g *Game) removeDeal(dealID int) {
	kept := g.CurrentDeals[:0]
	for _, d := range g.CurrentDeals {
		if d.ID != dealID {
			kept = append(kept, d)
		}
	}
	g.CurrentDeals = kept
}
