// Day clock — advances the simulation one day at a time, running each
// subsystem in a fixed order. There is no timer and no terminal state: every
// transition comes from an explicit call, and cash may go negative forever.
package engine

import "log/slog"

const (
	dailyExpenseBase    = 25
	dailyExpensePerItem = 5
)

// AdvanceDay runs one full day tick: expense, market drift, inventory
// revaluation, the event roll, then a fresh deal batch.
func (g *Game) AdvanceDay() {
	g.Day++

	g.applyDailyExpenses()
	g.advanceMarket()
	g.revalueInventory()
	g.rollDailyEvent()
	g.generateDailyDeals()

	g.logf("A new day begins. Fresh deals have appeared.")

	slog.Info("day advanced",
		"run_id", g.RunID,
		"day", g.Day,
		"cash", g.Cash,
		"inventory", len(g.Inventory),
		"deals", len(g.CurrentDeals),
		"total_profit", g.TotalProfit,
		"items_sold", g.ItemsSold,
	)
}

// applyDailyExpenses deducts the yard's running costs. Going negative is
// advisory only, not game over.
func (g *Game) applyDailyExpenses() {
	expense := dailyExpenseBase + dailyExpensePerItem*len(g.Inventory)
	g.Cash -= expense
	g.logf("Daily expenses: $%s.", money(expense))
	if g.Cash < 0 {
		g.logf("You're in the red. Creditors are getting nervous.")
	}
	g.record(Transaction{Kind: "expense", Amount: -expense})
}
