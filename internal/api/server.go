// Package api exposes the game over HTTP for whatever front end wants to
// render it. GET endpoints are public (read-only observation). The action
// endpoint requires a bearer token when an admin key is configured.
//
// The engine itself is single-threaded; the server serializes every request
// with a mutex so each action runs to completion before state is read.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/justinfry108-ai/flipyard/internal/catalog"
	"github.com/justinfry108-ai/flipyard/internal/engine"
	"github.com/justinfry108-ai/flipyard/internal/ledger"
)

// Server serves game state over HTTP and forwards player actions.
type Server struct {
	Game     *engine.Game
	Ledger   *ledger.DB // optional
	Port     int
	AdminKey string // Bearer token for the action endpoint. Empty = no auth.

	mu sync.Mutex
}

// Handler builds the route table. Split out from Start so tests can mount it
// on httptest.
func (s *Server) Handler() http.Handler {
	// Resets discard a whole run; keep them rare even for authed callers.
	resetLimiter := NewRateLimiter(10, time.Hour)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/deals", s.handleDeals)
	mux.HandleFunc("/api/v1/inventory", s.handleInventory)
	mux.HandleFunc("/api/v1/market", s.handleMarket)
	mux.HandleFunc("/api/v1/log", s.handleLog)
	mux.HandleFunc("/api/v1/stats", s.handleStats)
	mux.HandleFunc("/api/v1/ledger", s.handleLedger)

	mux.HandleFunc("/api/v1/action", s.adminOnly(s.handleAction(resetLimiter)))

	return corsMiddleware(mux)
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	handler := s.Handler()
	go func() {
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins. Set
// CORS_ORIGINS to a comma-separated list; localhost dev servers are always
// allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly requires a bearer token on POST requests when an admin key is
// configured.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && s.AdminKey != "" && !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	avgProfit := 0
	if s.Game.ItemsSold > 0 {
		avgProfit = s.Game.TotalProfit / s.Game.ItemsSold
	}

	writeJSON(w, map[string]any{
		"name":         "Flipyard",
		"run_id":       s.Game.RunID,
		"day":          s.Game.Day,
		"cash":         s.Game.Cash,
		"inventory":    len(s.Game.Inventory),
		"deals":        len(s.Game.CurrentDeals),
		"total_profit": s.Game.TotalProfit,
		"items_sold":   s.Game.ItemsSold,
		"avg_profit":   avgProfit,
	})
}

func (s *Server) handleDeals(w http.ResponseWriter, r *http.Request) {
	type dealSummary struct {
		ID             int    `json:"id"`
		Name           string `json:"name"`
		Category       string `json:"category"`
		Condition      string `json:"condition"`
		AskingPrice    int    `json:"asking_price"`
		EstMarketValue int    `json:"est_market_value"`
		EstMargin      int    `json:"est_margin"`
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]dealSummary, 0, len(s.Game.CurrentDeals))
	for _, d := range s.Game.CurrentDeals {
		result = append(result, dealSummary{
			ID:             d.ID,
			Name:           d.Name,
			Category:       string(d.Category),
			Condition:      catalog.Conditions[d.Condition].Label,
			AskingPrice:    d.AskingPrice,
			EstMarketValue: d.EstMarketValue,
			EstMargin:      d.EstMarketValue - d.AskingPrice,
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	type itemSummary struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Category     string `json:"category"`
		Condition    string `json:"condition"`
		BuyPrice     int    `json:"buy_price"`
		CurrentValue int    `json:"current_value"`
		DaysHeld     int    `json:"days_held"`
		Repairs      int    `json:"repairs"`
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]itemSummary, 0, len(s.Game.Inventory))
	for _, it := range s.Game.Inventory {
		result = append(result, itemSummary{
			ID:           it.ID,
			Name:         it.Name,
			Category:     string(it.Category),
			Condition:    it.ConditionLabel(),
			BuyPrice:     it.BuyPrice,
			CurrentValue: it.CurrentValue,
			DaysHeld:     it.DaysHeld,
			Repairs:      it.Repairs,
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	type trendEntry struct {
		Category   string  `json:"category"`
		Multiplier float64 `json:"multiplier"`
		VsBaseline string  `json:"vs_baseline"`
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]trendEntry, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		mult := s.Game.MarketTrends[cat]
		result = append(result, trendEntry{
			Category:   string(cat),
			Multiplier: mult,
			VsBaseline: fmt.Sprintf("%+.1f%%", (mult-1)*100),
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.Game.Log
	if len(entries) > limit {
		entries = entries[:limit]
	}
	writeJSON(w, entries)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, map[string]any{
		"total_profit": s.Game.TotalProfit,
		"items_sold":   s.Game.ItemsSold,
		"cash":         s.Game.Cash,
		"day":          s.Game.Day,
	})
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	if s.Ledger == nil {
		http.Error(w, "ledger disabled", http.StatusNotFound)
		return
	}

	s.mu.Lock()
	runID := s.Game.RunID.String()
	s.mu.Unlock()

	summary, err := s.Ledger.RunSummary(runID)
	if err != nil {
		slog.Error("ledger summary failed", "error", err)
		http.Error(w, "ledger unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, summary)
}

// handleAction forwards a player action into the engine. The engine reports
// failures through the game log, so the HTTP response only distinguishes
// malformed requests from accepted ones.
func (s *Server) handleAction(resetLimiter *RateLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Type string `json:"type"`
			ID   int    `json:"id,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		switch req.Type {
		case "buy":
			s.Game.Buy(req.ID)
		case "pass":
			s.Game.Pass(req.ID)
		case "sell":
			s.Game.Sell(req.ID)
		case "repair":
			s.Game.Repair(req.ID)
		case "next-day":
			s.Game.AdvanceDay()
		case "reset":
			if !resetLimiter.Allow(clientIP(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(resetLimiter.RetryAfter(clientIP(r))))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			s.Game.Reset()
		default:
			http.Error(w, fmt.Sprintf("unknown action type %q", req.Type), http.StatusBadRequest)
			return
		}

		writeJSON(w, map[string]any{
			"success": true,
			"day":     s.Game.Day,
			"cash":    s.Game.Cash,
		})
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
