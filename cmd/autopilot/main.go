// Command autopilot plays the game autonomously. It observes state via the
// read API, picks actions with a greedy margin strategy, and forwards them
// to the action endpoint.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lmittmann/tint"

	"github.com/justinfry108-ai/flipyard/internal/autopilot"
	"github.com/justinfry108-ai/flipyard/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	interval := time.Duration(cfg.AutopilotPeriod) * time.Second
	slog.Info("autopilot starting", "api_url", cfg.APIBaseURL, "interval", interval)

	observer := autopilot.NewObserver(cfg.APIBaseURL)
	actor := autopilot.NewActor(cfg.APIBaseURL, cfg.AdminKey)

	// Wait for the game API before the first cycle.
	waitForAPI(cfg.APIBaseURL)

	runCycle(observer, actor)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			runCycle(observer, actor)
		case sig := <-sigCh:
			slog.Info("received signal, stopping", "signal", sig)
			return
		}
	}
}

// runCycle executes one observe → decide → act pass.
func runCycle(observer *autopilot.Observer, actor *autopilot.Actor) {
	snap, err := observer.Observe()
	if err != nil {
		slog.Error("observation failed", "error", err)
		return
	}

	actions := autopilot.Decide(snap)
	slog.Info("cycle decided",
		"day", snap.Status.Day,
		"cash", snap.Status.Cash,
		"inventory", len(snap.Inventory),
		"deals", len(snap.Deals),
		"actions", len(actions),
	)

	for _, action := range actions {
		result, err := actor.Act(action)
		if err != nil {
			slog.Error("action failed", "error", err, "type", action.Type, "id", action.ID)
			continue
		}
		slog.Info("action applied", "type", action.Type, "id", action.ID, "day", result.Day, "cash", result.Cash)
	}
}

// waitForAPI polls the status endpoint until the game answers.
func waitForAPI(baseURL string) {
	client := resty.New().SetBaseURL(baseURL).SetTimeout(5 * time.Second)
	for {
		resp, err := client.R().Get("/api/v1/status")
		if err == nil && resp.IsSuccess() {
			return
		}
		slog.Info("waiting for game API...")
		time.Sleep(2 * time.Second)
	}
}
