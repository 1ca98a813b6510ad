package adapter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "splicer.dev/pkg/splicer/internal/model"
)

func sampleReport() *m.BatchReport {
	out := "synthesized_1_mutated.rs"

	report := &m.BatchReport{
		RunID:           "run-1",
		Total:           2,
		Timestamp:       time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		DurationSeconds: 1.5,
	}
	report.Add(m.FileReport{Input: "x/synthesized_1.rs", Output: &out, Status: m.StatusSuccess})
	report.Add(m.FileReport{Input: "x/synthesized_2.rs", Status: m.StatusFailed, Error: "process timed out"})

	return report
}

func TestReportStore_JSON(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "reports", ReportFileName))

	require.NoError(t, store.SaveReport(path, sampleReport()))

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.InDelta(t, 2, generic["total"], 0)
	assert.InDelta(t, 1, generic["success"], 0)
	assert.InDelta(t, 1, generic["failed"], 0)

	files, ok := generic["files"].([]any)
	require.True(t, ok)
	require.Len(t, files, 2)
	assert.Nil(t, files[1].(map[string]any)["output"])

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)

	want := sampleReport()
	assert.True(t, want.Timestamp.Equal(loaded.Timestamp))
	loaded.Timestamp = want.Timestamp
	assert.Equal(t, want, loaded)
}

func TestReportStore_YAML(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "mutation_report.yaml"))

	require.NoError(t, store.SaveReport(path, sampleReport()))

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "status: failed")

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Total)
	assert.Equal(t, "x/synthesized_2.rs", loaded.Files[1].Input)
	assert.Nil(t, loaded.Files[1].Output)
}

func TestReportStore_Errors(t *testing.T) {
	store := NewReportStore()

	require.Error(t, store.SaveReport(m.Path(filepath.Join(t.TempDir(), "r.json")), nil))

	_, err := store.LoadReport(m.Path(filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))

	_, err = store.LoadReport(m.Path(bad))
	require.Error(t, err)
}
