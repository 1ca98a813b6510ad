package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "splicer.dev/pkg/splicer/internal/model"
)

// ReportFileName is the default name of a batch report inside its output
// directory.
const ReportFileName = "mutation_report.json"

// ReportStore persists batch reports. The encoding follows the file
// extension: .yaml/.yml write YAML, anything else writes indented JSON.
type ReportStore interface {
	SaveReport(path m.Path, report *m.BatchReport) error
	LoadReport(path m.Path) (*m.BatchReport, error)
}

type reportStore struct{}

// NewReportStore creates a file-backed ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func isYAML(path m.Path) bool {
	ext := strings.ToLower(filepath.Ext(string(path)))
	return ext == ".yaml" || ext == ".yml"
}

func (s *reportStore) SaveReport(path m.Path, report *m.BatchReport) error {
	if report == nil {
		return fmt.Errorf("nil report")
	}

	var (
		data []byte
		err  error
	)

	if isYAML(path) {
		data, err = yaml.Marshal(report)
	} else {
		data, err = json.MarshalIndent(report, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (s *reportStore) LoadReport(path m.Path) (*m.BatchReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.BatchReport

	if isYAML(path) {
		err = yaml.Unmarshal(data, &report)
	} else {
		err = json.Unmarshal(data, &report)
	}

	if err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}

	return &report, nil
}
