package autopilot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide_AlwaysEndsWithNextDay(t *testing.T) {
	actions := Decide(&Snapshot{Status: Status{Cash: 1000}})
	require.NotEmpty(t, actions)
	assert.Equal(t, "next-day", actions[len(actions)-1].Type)
}

func TestDecide_SellsWinnersAndStaleStock(t *testing.T) {
	snap := &Snapshot{
		Status: Status{Cash: 1000},
		Inventory: []Item{
			{ID: 1, BuyPrice: 500, CurrentValue: 600, DaysHeld: 2},  // +20% margin → sell
			{ID: 2, BuyPrice: 500, CurrentValue: 510, DaysHeld: 2},  // thin margin → hold
			{ID: 3, BuyPrice: 500, CurrentValue: 300, DaysHeld: 15}, // stale → sell
		},
	}

	actions := Decide(snap)

	var sold []int
	for _, a := range actions {
		if a.Type == "sell" {
			sold = append(sold, a.ID)
		}
	}
	assert.ElementsMatch(t, []int{1, 3}, sold)
}

func TestDecide_BuysOnlyCushionedBargains(t *testing.T) {
	snap := &Snapshot{
		Status: Status{Cash: 1000},
		Deals: []Deal{
			{ID: 1, AskingPrice: 400, EstMargin: 120}, // 30% cushion → buy
			{ID: 2, AskingPrice: 400, EstMargin: 20},  // too thin → pass
		},
	}

	actions := Decide(snap)

	var bought []int
	for _, a := range actions {
		if a.Type == "buy" {
			bought = append(bought, a.ID)
		}
	}
	assert.Equal(t, []int{1}, bought)
}

func TestDecide_KeepsCashReserve(t *testing.T) {
	snap := &Snapshot{
		Status: Status{Cash: 500},
		Deals: []Deal{
			{ID: 1, AskingPrice: 300, EstMargin: 100}, // affordable with reserve
			{ID: 2, AskingPrice: 300, EstMargin: 100}, // would break the reserve
		},
	}

	actions := Decide(snap)

	var bought []int
	for _, a := range actions {
		if a.Type == "buy" {
			bought = append(bought, a.ID)
		}
	}
	assert.Equal(t, []int{1}, bought)
}
