package autopilot

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ActionResult is the response from POST /api/v1/action.
type ActionResult struct {
	Success bool `json:"success"`
	Day     int  `json:"day"`
	Cash    int  `json:"cash"`
}

// Actor forwards actions to the game's action endpoint.
type Actor struct {
	client *resty.Client
}

// NewActor creates an Actor targeting the given API base URL. adminKey may
// be empty when the server runs without auth.
func NewActor(baseURL, adminKey string) *Actor {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	if adminKey != "" {
		client.SetAuthToken(adminKey)
	}
	return &Actor{client: client}
}

// Act sends one action to POST /api/v1/action.
func (a *Actor) Act(action Action) (*ActionResult, error) {
	var result ActionResult
	resp, err := a.client.R().
		SetBody(action).
		SetResult(&result).
		Post("/api/v1/action")
	if err != nil {
		return nil, fmt.Errorf("POST action: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("action %q failed (%d): %s", action.Type, resp.StatusCode(), resp.String())
	}
	return &result, nil
}
