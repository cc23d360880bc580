package autopilot

// Action is one player action to forward to the API.
type Action struct {
	Type string `json:"type"`
	ID   int    `json:"id,omitempty"`
}

// Strategy thresholds. Deliberately conservative: the estimate the game
// shows is noisy, so the bot demands a margin cushion before committing.
const (
	minBuyMarginFrac  = 0.20 // estimated margin must clear 20% of asking
	minSellMarginFrac = 0.15 // sell once value clears buy price by 15%
	maxHoldDays       = 12   // dump stale stock regardless of margin
	cashReserve       = 150  // never spend the last of the bankroll
)

// Decide produces the day's actions from a snapshot: sell winners and stale
// stock, buy cushioned bargains, then advance the day.
func Decide(snap *Snapshot) []Action {
	var actions []Action

	for _, it := range snap.Inventory {
		margin := it.CurrentValue - it.BuyPrice
		if margin >= int(float64(it.BuyPrice)*minSellMarginFrac) || it.DaysHeld >= maxHoldDays {
			actions = append(actions, Action{Type: "sell", ID: it.ID})
		}
	}

	cash := snap.Status.Cash
	for _, d := range snap.Deals {
		if d.EstMargin < int(float64(d.AskingPrice)*minBuyMarginFrac) {
			continue
		}
		if cash-d.AskingPrice < cashReserve {
			continue
		}
		actions = append(actions, Action{Type: "buy", ID: d.ID})
		cash -= d.AskingPrice
	}

	actions = append(actions, Action{Type: "next-day"})
	return actions
}
