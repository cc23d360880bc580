package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinfry108-ai/flipyard/internal/catalog"
)

func TestRollDailyEvent_NoEventAboveThreshold(t *testing.T) {
	g := newTestGame(40)
	g.Inventory = []*Item{testItem(1, 400, 100, 300, 2)}
	logLen := len(g.Log)
	cash := g.Cash

	g.src = &scriptSource{vals: []float64{0.99}}
	g.rollDailyEvent()

	assert.Len(t, g.Log, logLen)
	assert.Equal(t, cash, g.Cash)
	assert.Len(t, g.Inventory, 1)
}

func TestEventHotCategory_BoostsAndClamps(t *testing.T) {
	g := newTestGame(41)
	g.MarketTrends[catalog.CategoryMower] = 1.60

	// Pick draw 0 → first category (Mower); boost draw near 1 → ~0.25.
	g.src = &scriptSource{vals: []float64{0.0, 0.999999}}
	g.eventHotCategory()

	assert.Equal(t, hotTrendCeil, g.MarketTrends[catalog.CategoryMower])
	assert.Contains(t, g.Log[0].Message, "hot")
}

func TestEventTheft_RemovesWithoutCompensation(t *testing.T) {
	g := newTestGame(42)
	g.Cash = 500
	g.ItemsSold = 0
	g.TotalProfit = 0
	g.Inventory = []*Item{testItem(1, 400, 350, 300, 2)}

	g.src = &scriptSource{vals: []float64{0.0}}
	g.eventTheft()

	assert.Empty(t, g.Inventory)
	assert.Equal(t, 500, g.Cash)
	assert.Equal(t, 0, g.ItemsSold)
	assert.Equal(t, 0, g.TotalProfit)
	assert.Contains(t, g.Log[0].Message, "STOLEN")
}

func TestEventTheft_EmptyInventoryLogsNoop(t *testing.T) {
	g := newTestGame(43)
	g.Inventory = nil
	logLen := len(g.Log)

	assert.NotPanics(t, func() { g.eventTheft() })
	require.Len(t, g.Log, logLen+1)
	assert.Contains(t, g.Log[0].Message, "nothing to steal")
}

func TestEventSpecialBuyer_SellsAtOffer(t *testing.T) {
	g := newTestGame(44)
	g.Cash = 0
	g.Inventory = []*Item{testItem(1, 400, 500, 600, 2)}

	// Pick draw 0 → the only item; offer draw 0 → 0.9 multiplier.
	g.src = &scriptSource{vals: []float64{0.0, 0.0}}
	g.eventSpecialBuyer()

	assert.Empty(t, g.Inventory)
	assert.Equal(t, 540, g.Cash) // round(600 * 0.9)
	assert.Equal(t, 40, g.TotalProfit)
	assert.Equal(t, 1, g.ItemsSold)
}

func TestEventSpecialBuyer_EmptyInventoryLogsNoop(t *testing.T) {
	g := newTestGame(45)
	g.Inventory = nil
	cash := g.Cash
	logLen := len(g.Log)

	assert.NotPanics(t, func() { g.eventSpecialBuyer() })
	assert.Equal(t, cash, g.Cash)
	require.Len(t, g.Log, logLen+1)
	assert.Contains(t, g.Log[0].Message, "You had nothing")
}

func TestRollDailyEvent_DispatchesHotCategory(t *testing.T) {
	g := newTestGame(46)
	before := g.MarketTrends[catalog.CategoryMower]

	// Event roll 0.0 < 0.45; choice draw 0 → hot category; pick Mower; min boost.
	g.src = &scriptSource{vals: []float64{0.0, 0.0, 0.0, 0.0}}
	g.rollDailyEvent()

	after := g.MarketTrends[catalog.CategoryMower]
	assert.Greater(t, after, before)
	assert.InDelta(t, before+hotBoostMin, after, 1e-9)
}

func TestRollDailyEvent_NeverPanicsOnEmptyInventory(t *testing.T) {
	for choice := 0.0; choice < 1.0; choice += 0.34 {
		g := newTestGame(47)
		g.Inventory = nil
		g.src = &scriptSource{vals: []float64{0.0, choice}}
		assert.NotPanics(t, func() { g.rollDailyEvent() })
	}
}
