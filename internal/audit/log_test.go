package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apigraveyard/apigraveyard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndLoadHistoryNewestFirst(t *testing.T) {
	log := NewAt(filepath.Join(t.TempDir(), "audit.jsonl"))

	require.NoError(t, log.Append(Record{Event: EventScan, Path: "/a", RunID: "run_1"}))
	require.NoError(t, log.Append(Record{Event: EventTest, Path: "/a", RunID: "run_2"}))

	records, err := log.LoadHistory()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "run_2", records[0].RunID)
	assert.Equal(t, "run_1", records[1].RunID)
	assert.False(t, records[0].Timestamp.IsZero())
}

func TestLoadHistorySkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	log := NewAt(path)
	require.NoError(t, log.Append(Record{Event: EventScan, Path: "/a", RunID: "run_1"}))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	f.WriteString("{broken\n")
	f.WriteString("\n")
	f.Close()
	require.NoError(t, log.Append(Record{Event: EventTest, Path: "/a", RunID: "run_2"}))

	records, err := log.LoadHistory()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "run_2", records[0].RunID)
	assert.Equal(t, "run_1", records[1].RunID)
}

func TestScanRecordNeverHoldsRawKeys(t *testing.T) {
	raw := "sk-" + strings.Repeat("a", 48)
	keys := []types.KeyMatch{{Service: types.ServiceOpenAI, RawValue: raw}}

	rec := ScanRecord("/proj", 7, keys, 2*time.Second)
	assert.Equal(t, EventScan, rec.Event)
	assert.Equal(t, 7, rec.FilesScanned)
	assert.Equal(t, 1, rec.KeysFound)
	assert.Equal(t, 1, rec.ServiceCounts[string(types.ServiceOpenAI)])
	require.Len(t, rec.Fingerprints, 1)
	assert.NotContains(t, rec.Fingerprints[0], raw)
	assert.Len(t, rec.Fingerprints[0], 16)
}

func TestTestRecordCountsStatuses(t *testing.T) {
	results := []types.KeyResult{
		{
			KeyMatch:         types.KeyMatch{Service: types.ServiceGroq, RawValue: "gsk_1"},
			ValidationResult: types.ValidationResult{Status: types.StatusValid},
		},
		{
			KeyMatch:         types.KeyMatch{Service: types.ServiceGroq, RawValue: "gsk_2"},
			ValidationResult: types.ValidationResult{Status: types.StatusInvalid},
		},
	}
	rec := TestRecord("/proj", results, time.Second)
	assert.Equal(t, EventTest, rec.Event)
	assert.Equal(t, 2, rec.KeysTested)
	assert.Equal(t, 1, rec.StatusCounts[string(types.StatusValid)])
	assert.Equal(t, 1, rec.StatusCounts[string(types.StatusInvalid)])
}

func TestFingerprintStable(t *testing.T) {
	assert.Equal(t, Fingerprint("x"), Fingerprint("x"))
	assert.NotEqual(t, Fingerprint("x"), Fingerprint("y"))
}
