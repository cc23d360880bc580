// Command flipyard runs the used-goods flipping simulation and serves it
// over HTTP for a front end (or the autopilot) to play.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/justinfry108-ai/flipyard/internal/api"
	"github.com/justinfry108-ai/flipyard/internal/config"
	"github.com/justinfry108-ai/flipyard/internal/engine"
	"github.com/justinfry108-ai/flipyard/internal/entropy"
	"github.com/justinfry108-ai/flipyard/internal/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// ── Random source ────────────────────────────────────────────────
	var src entropy.Source = entropy.Crypto{}
	if cfg.Seed != 0 {
		src = entropy.NewSeeded(cfg.Seed)
		slog.Info("deterministic run", "seed", cfg.Seed)
	}

	// ── Ledger (optional) ────────────────────────────────────────────
	var rec engine.Recorder
	var db *ledger.DB
	if cfg.LedgerPath != "" {
		db, err = ledger.Open(cfg.LedgerPath)
		if err != nil {
			slog.Error("failed to open ledger", "error", err, "path", cfg.LedgerPath)
			os.Exit(1)
		}
		defer db.Close()
		rec = db
		slog.Info("ledger opened", "path", cfg.LedgerPath)
	}

	// ── Game ─────────────────────────────────────────────────────────
	game := engine.NewGame(src, rec)
	slog.Info("game ready",
		"run_id", game.RunID,
		"day", game.Day,
		"cash", game.Cash,
		"deals", len(game.CurrentDeals),
	)

	// ── HTTP API ─────────────────────────────────────────────────────
	if cfg.AdminKey == "" {
		slog.Warn("FLIPYARD_ADMIN_KEY not set — action endpoint is unauthenticated")
	}

	server := &api.Server{
		Game:     game,
		Ledger:   db,
		Port:     cfg.Port,
		AdminKey: cfg.AdminKey,
	}
	server.Start()

	// The game has no background tick: every state transition comes from an
	// HTTP action. Just wait for shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig, "day", game.Day, "cash", game.Cash)
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
