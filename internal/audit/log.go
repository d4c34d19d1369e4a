package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// Record is one line of the append-only run log. Scan runs and test runs
// share the shape; Event tells them apart.
type Record struct {
	Timestamp     time.Time      `json:"timestamp"`
	Event         string         `json:"event"`
	RunID         string         `json:"run_id"`
	Path          string         `json:"path"`
	FilesScanned  int            `json:"files_scanned,omitempty"`
	KeysFound     int            `json:"keys_found,omitempty"`
	KeysTested    int            `json:"keys_tested,omitempty"`
	ServiceCounts map[string]int `json:"service_counts,omitempty"`
	StatusCounts  map[string]int `json:"status_counts,omitempty"`
	Duration      string         `json:"duration,omitempty"`
	Fingerprints  []string       `json:"fingerprints,omitempty"`
}

const (
	EventScan = "scan"
	EventTest = "test"
)

// Log appends JSONL records to a single file next to the database.
type Log struct {
	logPath string
}

// New returns a Log writing to the default location in the user's home
// directory.
func New() (*Log, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return NewAt(filepath.Join(home, ".apigraveyard_audit.jsonl")), nil
}

// NewAt is New with an explicit file location.
func NewAt(path string) *Log {
	return &Log{logPath: path}
}

// LoadHistory returns all records, newest first. Malformed lines are
// skipped.
func (a *Log) LoadHistory() ([]Record, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	// Line-by-line so one bad line cannot stall or poison the rest.
	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// Append writes one record to the log.
func (a *Log) Append(record Record) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", time.Now().Unix())
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	// Owner-only: the log carries paths and key fingerprints.
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("writing audit record: %w", err)
	}
	return nil
}

// ScanRecord summarizes a scan run. Raw key values never enter the log;
// each key is reduced to a short fingerprint.
func ScanRecord(path string, filesScanned int, keys []types.KeyMatch, duration time.Duration) Record {
	serviceCounts := make(map[string]int)
	fps := make([]string, 0, len(keys))
	for _, k := range keys {
		serviceCounts[string(k.Service)]++
		fps = append(fps, Fingerprint(k.RawValue))
	}
	return Record{
		Timestamp:     time.Now().UTC(),
		Event:         EventScan,
		Path:          path,
		FilesScanned:  filesScanned,
		KeysFound:     len(keys),
		ServiceCounts: serviceCounts,
		Duration:      duration.String(),
		Fingerprints:  fps,
	}
}

// TestRecord summarizes a validation run.
func TestRecord(path string, results []types.KeyResult, duration time.Duration) Record {
	statusCounts := make(map[string]int)
	fps := make([]string, 0, len(results))
	for _, r := range results {
		statusCounts[string(r.Status)]++
		fps = append(fps, Fingerprint(r.RawValue))
	}
	return Record{
		Timestamp:    time.Now().UTC(),
		Event:        EventTest,
		Path:         path,
		KeysTested:   len(results),
		StatusCounts: statusCounts,
		Duration:     duration.String(),
		Fingerprints: fps,
	}
}

// Fingerprint reduces a raw key to a short stable hash.
func Fingerprint(raw string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(raw))
}
