package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinfry108-ai/flipyard/internal/catalog"
)

func TestGenerateDeal_Fields(t *testing.T) {
	g := newTestGame(10)

	for i := 0; i < 1000; i++ {
		d := g.generateDeal()
		assert.GreaterOrEqual(t, d.AskingPrice, 1)
		assert.GreaterOrEqual(t, d.TrueMarketValue, 1)
		assert.GreaterOrEqual(t, d.Condition, 0)
		assert.Less(t, d.Condition, len(catalog.Conditions))
		assert.Positive(t, d.BaseValue)
		assert.Contains(t, catalog.Categories, d.Category)
	}
}

func TestGenerateDeal_IDsAreMonotonic(t *testing.T) {
	g := newTestGame(11)

	last := 0
	for i := 0; i < 50; i++ {
		d := g.generateDeal()
		assert.Greater(t, d.ID, last)
		last = d.ID
	}
}

func TestGenerateDeal_RegimeDistribution(t *testing.T) {
	g := newTestGame(12)

	const n = 20000
	var good, fair, over int
	for i := 0; i < n; i++ {
		d := g.generateDeal()
		ratio := float64(d.AskingPrice) / float64(d.TrueMarketValue)
		switch {
		case ratio < 0.95:
			good++
		case ratio < 1.10:
			fair++
		default:
			over++
		}
	}

	assert.InDelta(t, 0.4, float64(good)/n, 0.05)
	assert.InDelta(t, 0.4, float64(fair)/n, 0.05)
	assert.InDelta(t, 0.2, float64(over)/n, 0.05)
}

func TestGenerateDailyDeals_ReplacesOfferSet(t *testing.T) {
	g := newTestGame(13)
	stale := testDeal(9999, 100, 100)
	g.CurrentDeals = []*Deal{stale}

	for i := 0; i < 100; i++ {
		g.generateDailyDeals()
		require.GreaterOrEqual(t, len(g.CurrentDeals), dealsPerDayMin)
		require.LessOrEqual(t, len(g.CurrentDeals), dealsPerDayMax)
		for _, d := range g.CurrentDeals {
			assert.NotEqual(t, stale.ID, d.ID)
		}
	}
}
