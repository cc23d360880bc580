// Package ledger provides a write-only SQLite audit trail of every
// transaction in a run. It is never read back to restore game state; the
// engine stays the single source of truth.
package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/justinfry108-ai/flipyard/internal/engine"
)

// DB wraps a SQLite connection for transaction recording.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite ledger at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		kind TEXT NOT NULL,
		item TEXT NOT NULL,
		category TEXT NOT NULL,
		amount INTEGER NOT NULL,
		profit INTEGER NOT NULL,
		recorded_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_transactions_run ON transactions(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Record implements engine.Recorder. A failed insert is logged and dropped;
// the game never stalls on its audit trail.
func (db *DB) Record(runID string, tx engine.Transaction) {
	_, err := db.conn.Exec(
		`INSERT INTO transactions (run_id, day, kind, item, category, amount, profit, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, tx.Day, tx.Kind, tx.Item, string(tx.Category), tx.Amount, tx.Profit,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		slog.Error("ledger insert failed", "error", err, "kind", tx.Kind)
	}
}

// Summary aggregates a run's recorded activity.
type Summary struct {
	Transactions int `db:"transactions" json:"transactions"`
	Bought       int `db:"bought" json:"bought"`
	Sold         int `db:"sold" json:"sold"`
	NetCashFlow  int `db:"net_cash_flow" json:"net_cash_flow"`
	TotalProfit  int `db:"total_profit" json:"total_profit"`
}

// RunSummary reports aggregate activity for one run id.
func (db *DB) RunSummary(runID string) (Summary, error) {
	var s Summary
	err := db.conn.Get(&s, `
		SELECT
			COUNT(*) AS transactions,
			COALESCE(SUM(CASE WHEN kind = 'buy' THEN 1 ELSE 0 END), 0) AS bought,
			COALESCE(SUM(CASE WHEN kind = 'sell' THEN 1 ELSE 0 END), 0) AS sold,
			COALESCE(SUM(amount), 0) AS net_cash_flow,
			COALESCE(SUM(profit), 0) AS total_profit
		FROM transactions WHERE run_id = ?`, runID)
	if err != nil {
		return Summary{}, fmt.Errorf("run summary: %w", err)
	}
	return s, nil
}
