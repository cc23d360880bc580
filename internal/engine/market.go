// Market trends — one multiplier per category, drifting as a bounded random
// walk. No mean reversion: a run of extreme draws can sit at a clamp bound.
package engine

import (
	"github.com/justinfry108-ai/flipyard/internal/catalog"
	"github.com/justinfry108-ai/flipyard/internal/entropy"
)

const (
	trendInitMin = 0.85
	trendInitMax = 1.15
	trendStep    = 0.05
	trendFloor   = 0.70
	trendCeil    = 1.50
)

// initMarketTrends draws a fresh multiplier for every category.
func (g *Game) initMarketTrends() {
	for _, cat := range catalog.Categories {
		g.MarketTrends[cat] = entropy.Between(g.src, trendInitMin, trendInitMax)
	}
}

// advanceMarket applies one day of drift to every category.
func (g *Game) advanceMarket() {
	for _, cat := range catalog.Categories {
		delta := entropy.Between(g.src, -trendStep, trendStep)
		g.MarketTrends[cat] = entropy.Clamp(g.MarketTrends[cat]+delta, trendFloor, trendCeil)
	}
}

// trend returns the multiplier for a category, defaulting to neutral for a
// category somehow missing from the map.
func (g *Game) trend(cat catalog.Category) float64 {
	if m, ok := g.MarketTrends[cat]; ok {
		return m
	}
	return 1
}
