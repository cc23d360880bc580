// Package autopilot implements an autonomous player. It observes game state
// via the read API, decides on actions with a greedy margin strategy, and
// acts through the action endpoint.
package autopilot

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Snapshot holds everything collected during one observation cycle.
type Snapshot struct {
	Status    Status
	Deals     []Deal
	Inventory []Item
}

// Status mirrors GET /api/v1/status.
type Status struct {
	Day         int `json:"day"`
	Cash        int `json:"cash"`
	TotalProfit int `json:"total_profit"`
	ItemsSold   int `json:"items_sold"`
}

// Deal mirrors GET /api/v1/deals entries.
type Deal struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	AskingPrice    int    `json:"asking_price"`
	EstMarketValue int    `json:"est_market_value"`
	EstMargin      int    `json:"est_margin"`
}

// Item mirrors GET /api/v1/inventory entries.
type Item struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Condition    string `json:"condition"`
	BuyPrice     int    `json:"buy_price"`
	CurrentValue int    `json:"current_value"`
	DaysHeld     int    `json:"days_held"`
}

// Observer fetches game state from the read endpoints.
type Observer struct {
	client *resty.Client
}

// NewObserver creates an Observer targeting the given API base URL.
func NewObserver(baseURL string) *Observer {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second)
	return &Observer{client: client}
}

// Observe collects a full snapshot of the current game state.
func (o *Observer) Observe() (*Snapshot, error) {
	var snap Snapshot

	if err := o.get("/api/v1/status", &snap.Status); err != nil {
		return nil, err
	}
	if err := o.get("/api/v1/deals", &snap.Deals); err != nil {
		return nil, err
	}
	if err := o.get("/api/v1/inventory", &snap.Inventory); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (o *Observer) get(path string, out any) error {
	resp, err := o.client.R().SetResult(out).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode())
	}
	return nil
}
