package ledger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinfry108-ai/flipyard/internal/catalog"
	"github.com/justinfry108-ai/flipyard/internal/engine"
)

func openTestLedger(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndSummary(t *testing.T) {
	db := openTestLedger(t)
	const runID = "run-1"

	db.Record(runID, engine.Transaction{
		Day: 1, Kind: "buy", Item: "Stihl Chainsaw",
		Category: catalog.CategoryPowerTool, Amount: -500,
	})
	db.Record(runID, engine.Transaction{
		Day: 3, Kind: "sell", Item: "Stihl Chainsaw",
		Category: catalog.CategoryPowerTool, Amount: 650, Profit: 150,
	})
	db.Record(runID, engine.Transaction{
		Day: 2, Kind: "expense", Amount: -25,
	})

	summary, err := db.RunSummary(runID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Transactions)
	assert.Equal(t, 1, summary.Bought)
	assert.Equal(t, 1, summary.Sold)
	assert.Equal(t, 125, summary.NetCashFlow)
	assert.Equal(t, 150, summary.TotalProfit)
}

func TestRunSummary_IsolatesRuns(t *testing.T) {
	db := openTestLedger(t)

	db.Record("run-a", engine.Transaction{Day: 1, Kind: "buy", Item: "x", Category: catalog.CategoryMower, Amount: -100})
	db.Record("run-b", engine.Transaction{Day: 1, Kind: "buy", Item: "y", Category: catalog.CategoryMower, Amount: -999})

	summary, err := db.RunSummary("run-a")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Transactions)
	assert.Equal(t, -100, summary.NetCashFlow)
}

func TestRunSummary_EmptyRun(t *testing.T) {
	db := openTestLedger(t)

	summary, err := db.RunSummary("ghost")
	require.NoError(t, err)
	assert.Zero(t, summary.Transactions)
	assert.Zero(t, summary.NetCashFlow)
}

func TestLedgerActsAsGameRecorder(t *testing.T) {
	db := openTestLedger(t)

	var _ engine.Recorder = db
}
