package engine

import (
	"github.com/justinfry108-ai/flipyard/internal/catalog"
	"github.com/justinfry108-ai/flipyard/internal/entropy"
)

// scriptSource replays a fixed sequence of floats, then falls back to 0.5.
// Lets tests force specific draws (event branches, regime rolls).
type scriptSource struct {
	vals []float64
	i    int
}

func (s *scriptSource) Float() float64 {
	if s.i >= len(s.vals) {
		return 0.5
	}
	v := s.vals[s.i]
	s.i++
	return v
}

func newTestGame(seed int64) *Game {
	return NewGame(entropy.NewSeeded(seed), nil)
}

// testItem builds an owned item directly, bypassing the deal flow.
func testItem(id int, baseValue, buyPrice, currentValue, condIdx int) *Item {
	return &Item{
		ID:           id,
		Name:         "Stihl Chainsaw",
		Category:     catalog.CategoryPowerTool,
		Condition:    condIdx,
		BaseValue:    baseValue,
		BuyPrice:     buyPrice,
		CurrentValue: currentValue,
	}
}

// testDeal builds an offered deal directly.
func testDeal(id int, askingPrice, trueValue int) *Deal {
	return &Deal{
		ID:              id,
		Name:            "Honda EU Generator",
		Category:        catalog.CategoryGenerator,
		Condition:       2,
		BaseValue:       1200,
		AskingPrice:     askingPrice,
		EstMarketValue:  trueValue,
		TrueMarketValue: trueValue,
	}
}
