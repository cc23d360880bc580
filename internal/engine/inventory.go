// Inventory and transactions — buying, daily revaluation, repairs, sales.
// Failure conditions here are expected player-facing outcomes: they log and
// return without mutating state, they never error.
package engine

import (
	"math"

	"github.com/justinfry108-ai/flipyard/internal/catalog"
	"github.com/justinfry108-ai/flipyard/internal/entropy"
)

const (
	agePenaltyPerDay = 0.005
	agePenaltyCap    = 0.20
	revalueNoise     = 0.05
	valueFloor       = 20

	repairCostFraction = 0.20
)

// Buy converts an offered deal into an inventory item. A stale deal id is a
// silent no-op; insufficient cash logs and leaves state untouched.
func (g *Game) Buy(dealID int) {
	deal := g.findDeal(dealID)
	if deal == nil {
		return
	}
	if g.Cash < deal.AskingPrice {
		g.logf("You don't have enough cash for that deal.")
		return
	}

	g.Cash -= deal.AskingPrice
	item := &Item{
		ID:           g.nextItemID,
		Name:         deal.Name,
		Category:     deal.Category,
		Condition:    deal.Condition,
		BaseValue:    deal.BaseValue,
		BuyPrice:     deal.AskingPrice,
		CurrentValue: deal.TrueMarketValue,
		DaysHeld:     0,
	}
	g.nextItemID++
	g.Inventory = append(g.Inventory, item)
	g.removeDeal(dealID)

	g.logf("Bought %s (%s) for $%s.", item.Name, item.ConditionLabel(), money(item.BuyPrice))
	g.record(Transaction{Kind: "buy", Item: item.Name, Category: item.Category, Amount: -item.BuyPrice})
}

// Pass declines a deal without purchase. Stale ids are silent no-ops.
func (g *Game) Pass(dealID int) {
	deal := g.findDeal(dealID)
	if deal == nil {
		return
	}
	g.removeDeal(dealID)
	g.logf("You passed on %s.", deal.Name)
}

// Sell closes a position at the item's current value. Stale ids are silent
// no-ops.
func (g *Game) Sell(itemID int) {
	item := g.findItem(itemID)
	if item == nil {
		return
	}
	g.sellItem(item, item.CurrentValue)
}

// Repair advances an item one condition tier for a fraction of its base
// value, then revalues it immediately from the new tier.
func (g *Game) Repair(itemID int) {
	item := g.findItem(itemID)
	if item == nil {
		return
	}
	if item.Condition >= catalog.BestCondition() {
		g.logf("%s is already in %s condition. Nothing left to fix.", item.Name, item.ConditionLabel())
		return
	}
	cost := int(math.Round(float64(item.BaseValue) * repairCostFraction))
	if g.Cash < cost {
		g.logf("You can't afford the $%s repair on %s.", money(cost), item.Name)
		return
	}

	g.Cash -= cost
	item.Condition++
	item.Repairs++
	// Fresh repair wipes any stale aging from the displayed value.
	value := float64(item.BaseValue) * catalog.Conditions[item.Condition].Multiplier * g.trend(item.Category)
	item.CurrentValue = flooredValue(value)

	g.logf("Repaired %s up to %s condition for $%s.", item.Name, item.ConditionLabel(), money(cost))
	g.record(Transaction{Kind: "repair", Item: item.Name, Category: item.Category, Amount: -cost})
}

// revalueInventory ages every held item one day and recomputes its value
// against the current market. Runs before any sale or event logic that reads
// CurrentValue.
func (g *Game) revalueInventory() {
	for _, item := range g.Inventory {
		item.DaysHeld++

		agePenalty := 1 - math.Min(float64(item.DaysHeld)*agePenaltyPerDay, agePenaltyCap)
		noise := entropy.Between(g.src, -revalueNoise, revalueNoise)

		value := float64(item.BaseValue) *
			catalog.Conditions[item.Condition].Multiplier *
			g.trend(item.Category) *
			agePenalty *
			(1 + noise)

		item.CurrentValue = flooredValue(value)
	}
}

// sellItem is the single sale primitive: player sales use CurrentValue,
// special buyers pass an override price.
func (g *Game) sellItem(item *Item, price int) {
	profit := price - item.BuyPrice
	g.Cash += price
	g.TotalProfit += profit
	g.ItemsSold++
	g.removeItem(item.ID)

	g.logf("SOLD %s for $%s (bought $%s, profit $%s).",
		item.Name, money(price), money(item.BuyPrice), money(profit))
	g.record(Transaction{Kind: "sell", Item: item.Name, Category: item.Category, Amount: price, Profit: profit})
}

func (g *Game) findItem(itemID int) *Item {
	for _, it := range g.Inventory {
		if it.ID == itemID {
			return it
		}
	}
	return nil
}

func (g *Game) removeItem(itemID int) {
	kept := g.Inventory[:0]
	for _, it := range g.Inventory {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	g.Inventory = kept
}

func flooredValue(v float64) int {
	return int(math.Max(valueFloor, math.Round(v)))
}
