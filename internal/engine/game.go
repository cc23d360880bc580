// Package engine implements the day-tick flipping simulation: market trend
// drift, deal generation, inventory valuation, random events, and the day
// clock that runs them in order.
package engine

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/justinfry108-ai/flipyard/internal/catalog"
	"github.com/justinfry108-ai/flipyard/internal/entropy"
)

const (
	startingCash = 1000
	logCap       = 100
)

// Deal is a one-day purchase offer. TrueMarketValue is the model's internal
// fair value; the player only ever sees AskingPrice and EstMarketValue.
type Deal struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Category        catalog.Category `json:"category"`
	Condition       int              `json:"condition"` // index into catalog.Conditions
	BaseValue       int              `json:"base_value"`
	AskingPrice     int              `json:"asking_price"`
	EstMarketValue  int              `json:"est_market_value"`
	TrueMarketValue int              `json:"-"`
}

// Item is an owned good. Condition may advance via repair; CurrentValue is
// recomputed daily and after repairs.
type Item struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Category     catalog.Category `json:"category"`
	Condition    int              `json:"condition"` // index into catalog.Conditions
	BaseValue    int              `json:"base_value"`
	BuyPrice     int              `json:"buy_price"`
	CurrentValue int              `json:"current_value"`
	DaysHeld     int              `json:"days_held"`
	Repairs      int              `json:"repairs"`
}

// ConditionLabel returns the display label for an item's current tier.
func (it *Item) ConditionLabel() string {
	return catalog.Conditions[it.Condition].Label
}

// LogEntry is one line of the player-facing game log.
type LogEntry struct {
	Day     int    `json:"day"`
	Message string `json:"message"`
}

// Transaction is the economic record handed to a Recorder.
type Transaction struct {
	Day      int
	Kind     string // "buy", "sell", "repair", "theft", "expense"
	Item     string
	Category catalog.Category
	Amount   int // cash moved (positive = credit to the player)
	Profit   int // realized profit for sales, zero otherwise
}

// Recorder receives every transaction for audit purposes. Implementations
// must not mutate game state; a nil Recorder disables recording.
type Recorder interface {
	Record(runID string, tx Transaction)
}

// Game is the aggregate root: the whole mutable state of one run plus the
// random source driving it. All operations are synchronous and leave the
// state fully consistent before returning.
type Game struct {
	RunID        uuid.UUID                    `json:"run_id"`
	Day          int                          `json:"day"`
	Cash         int                          `json:"cash"`
	Inventory    []*Item                      `json:"inventory"`
	CurrentDeals []*Deal                      `json:"current_deals"`
	MarketTrends map[catalog.Category]float64 `json:"market_trends"`
	TotalProfit  int                          `json:"total_profit"`
	ItemsSold    int                          `json:"items_sold"`
	Log          []LogEntry                   `json:"log"`

	nextItemID int
	nextDealID int

	src entropy.Source
	rec Recorder
}

// NewGame creates a game and runs the cold-start reset: fresh market trends,
// the first day's deals, and the opening log entry.
func NewGame(src entropy.Source, rec Recorder) *Game {
	g := &Game{src: src, rec: rec}
	g.Reset()
	return g
}

// Reset returns the game to its starting state. Cold start and the player's
// explicit restart share this path.
func (g *Game) Reset() {
	g.RunID = uuid.New()
	g.Day = 1
	g.Cash = startingCash
	g.Inventory = nil
	g.CurrentDeals = nil
	g.MarketTrends = make(map[catalog.Category]float64, len(catalog.Categories))
	g.TotalProfit = 0
	g.ItemsSold = 0
	g.Log = nil
	g.nextItemID = 1
	g.nextDealID = 1

	g.initMarketTrends()
	g.generateDailyDeals()
	g.logf("New game started. You begin with $%s to flip your way up.", money(startingCash))
}

// logf prepends an entry to the game log, stamped with the current day.
// Oldest entries fall off past the cap.
func (g *Game) logf(format string, args ...any) {
	g.Log = append([]LogEntry{{Day: g.Day, Message: fmt.Sprintf(format, args...)}}, g.Log...)
	if len(g.Log) > logCap {
		g.Log = g.Log[:logCap]
	}
}

func (g *Game) record(tx Transaction) {
	if g.rec == nil {
		return
	}
	tx.Day = g.Day
	g.rec.Record(g.RunID.String(), tx)
}

func money(v int) string {
	return humanize.Comma(int64(v))
}
