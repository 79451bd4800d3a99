// Package history records assessment runs under outDir/history and labels
// the trend against the previous run.
package history

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"security-maturity-assessor/internal/model"
)

// maxEntries caps the index so long-lived installations do not grow it
// unboundedly.
const maxEntries = 200

// Deltas smaller than sameEpsilon label as SAME.
const sameEpsilon = 1e-6

type IndexEntry struct {
	TimestampUTC string  `json:"timestampUtc"`
	RunID        string  `json:"runId"`
	Organization string  `json:"organization,omitempty"`
	Team         string  `json:"team,omitempty"`
	Environment  string  `json:"environment,omitempty"`
	Overall      float64 `json:"overall"`
	Coverage     float64 `json:"coverage"`
	Maturity     string  `json:"maturity"`
	GapCount     int     `json:"gapCount"`
	JSONFile     string  `json:"jsonFile"`
}

type Index struct {
	Entries []IndexEntry `json:"entries"`
}

type Trend struct {
	Previous float64
	Current  float64
	Delta    float64
	Label    string // IMPROVING / DECLINING / SAME / FIRST_RUN
}

// Record archives the assessment under outDir/history, appends it to
// index.json and returns the trend against the previous entry.
func Record(outDir string, a *model.Assessment) (Trend, error) {
	historyDir := filepath.Join(outDir, "history")
	if err := os.MkdirAll(historyDir, 0o755); err != nil {
		return Trend{}, err
	}

	indexPath := filepath.Join(historyDir, "index.json")
	idx, _ := readIndex(indexPath)

	prev := math.NaN()
	if len(idx.Entries) > 0 {
		prev = idx.Entries[len(idx.Entries)-1].Overall
	}

	ts := time.Now().UTC().Format("20060102-150405")
	jsonName := fmt.Sprintf("assessment-%s.json", ts)
	if err := writeJSON(filepath.Join(historyDir, jsonName), a); err != nil {
		return Trend{}, err
	}

	idx.Entries = append(idx.Entries, IndexEntry{
		TimestampUTC: time.Now().UTC().Format(time.RFC3339),
		RunID:        a.Run.RunID,
		Organization: a.Metadata.Organization,
		Team:         a.Metadata.Team,
		Environment:  a.Metadata.Environment,
		Overall:      a.Overall.Score,
		Coverage:     a.Overall.Coverage,
		Maturity:     a.Overall.Maturity.Name,
		GapCount:     len(a.Gaps),
		JSONFile:     filepath.ToSlash(filepath.Join("history", jsonName)),
	})
	if len(idx.Entries) > maxEntries {
		idx.Entries = idx.Entries[len(idx.Entries)-maxEntries:]
	}

	raw, _ := json.MarshalIndent(idx, "", "  ")
	if err := os.WriteFile(indexPath, raw, 0o644); err != nil {
		return Trend{}, err
	}

	tr := Trend{Current: a.Overall.Score, Label: "FIRST_RUN"}
	if !math.IsNaN(prev) {
		tr.Previous = prev
		tr.Delta = tr.Current - prev
		switch {
		case tr.Delta > sameEpsilon:
			tr.Label = "IMPROVING"
		case tr.Delta < -sameEpsilon:
			tr.Label = "DECLINING"
		default:
			tr.Label = "SAME"
		}
	}
	return tr, nil
}

// LastN returns up to n most recent trend points in chronological order,
// for sparkline rendering. Missing history yields nil.
func LastN(outDir string, n int) []model.TrendPoint {
	idx, err := readIndex(filepath.Join(outDir, "history", "index.json"))
	if err != nil || len(idx.Entries) == 0 {
		return nil
	}
	start := 0
	if len(idx.Entries) > n {
		start = len(idx.Entries) - n
	}
	var out []model.TrendPoint
	for _, e := range idx.Entries[start:] {
		out = append(out, model.TrendPoint{
			TimestampUTC: e.TimestampUTC,
			Overall:      e.Overall,
			Maturity:     e.Maturity,
		})
	}
	return out
}

func readIndex(path string) (Index, error) {
	var idx Index
	raw, err := os.ReadFile(path)
	if err != nil {
		return idx, err
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &idx)
	}
	return idx, nil
}

func writeJSON(path string, a *model.Assessment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}
