package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const journal = `{"timestamp":"2024-05-01T12:00:00Z","event":"Fileheader","part":1,"language":"English/UK","Odyssey":true,"gameversion":"4.0.0.1904","build":"r302145/r0 "}
{"timestamp":"2024-05-01T12:01:00Z","event":"MarketBuy","MarketID":128016640,"Type":"gold","Type_Localised":"Gold","Count":5,"BuyPrice":100,"TotalCost":500}
{"timestamp":"2024-05-01T12:02:00Z","event":"MarketSell","MarketID":128016640,"Type":"gold","Type_Localised":"Gold","Count":5,"SellPrice":90,"TotalSale":450,"AvgPricePaid":100}
{"timestamp":"2024-05-01T12:03:00Z","event":"FabricatedNeverSeen"}
`

func journalDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Journal.2024-05-01T120000.01.log"), []byte(journal), 0o600))
	return dir
}

func storageEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SNAPSHOT_STORAGE_TYPE", "fs")
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("JOURNAL_LOG_LEVEL", "error")
}

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, Run([]string{"journalreplay"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage")
	assert.Equal(t, 2, Run([]string{"journalreplay", "bogus"}, &stdout, &stderr))
	assert.Equal(t, 0, Run([]string{"journalreplay", "help"}, &stdout, &stderr))
}

func TestReplayRequiresDir(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, Run([]string{"journalreplay", "replay"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "--dir is required")
}

func TestReplayEmptyDirFails(t *testing.T) {
	storageEnv(t)
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, Run([]string{"journalreplay", "replay", "-dir", t.TempDir()}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "no journal files")
}

func TestReplayThenLatest(t *testing.T) {
	storageEnv(t)
	dir := journalDir(t)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"journalreplay", "replay", "-dir", dir, "-json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var summary replaySummary
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &summary))
	assert.Equal(t, 4, summary.Records)
	assert.Equal(t, 1, summary.Residuals)
	assert.Equal(t, int64(-50), summary.Balance)
	assert.True(t, summary.Persisted)
	assert.True(t, strings.HasPrefix(summary.Hash, "sha256:"))

	stdout.Reset()
	code = Run([]string{"journalreplay", "latest"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var rec struct {
		ID   string          `json:"id"`
		Hash string          `json:"hash"`
		Body json.RawMessage `json:"body"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rec))
	assert.Equal(t, summary.Hash, rec.Hash)
	assert.Equal(t, summary.SnapshotID, rec.ID)
	assert.Empty(t, rec.Body)
}

func TestLatestWithNothingStored(t *testing.T) {
	storageEnv(t)
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, Run([]string{"journalreplay", "latest"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "No snapshot stored")
}

func TestReplayBudgetFault(t *testing.T) {
	storageEnv(t)
	t.Setenv("JOURNAL_MAX_EVENTS", "1")
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, Run([]string{"journalreplay", "replay", "-dir", journalDir(t)}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Replay failed")
}
