package model

import "time"

// FileStatus is the outcome of mutating one file in a batch.
type FileStatus string

const (
	// StatusSuccess means the child process exited cleanly.
	StatusSuccess FileStatus = "success"
	// StatusFailed means the child process failed or timed out.
	StatusFailed FileStatus = "failed"
)

// FileReport is the per-file entry of a batch report. Output is nil for
// failed files.
type FileReport struct {
	Input  string     `json:"input" yaml:"input"`
	Output *string    `json:"output" yaml:"output"`
	Status FileStatus `json:"status" yaml:"status"`
	Error  string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchReport aggregates the results of one batch run.
type BatchReport struct {
	RunID           string       `json:"run_id" yaml:"run_id"`
	Total           int          `json:"total" yaml:"total"`
	Success         int          `json:"success" yaml:"success"`
	Failed          int          `json:"failed" yaml:"failed"`
	Files           []FileReport `json:"files" yaml:"files"`
	Timestamp       time.Time    `json:"timestamp" yaml:"timestamp"`
	DurationSeconds float64      `json:"duration_seconds" yaml:"duration_seconds"`
}

// Add records a file result and updates the counters.
func (r *BatchReport) Add(file FileReport) {
	r.Files = append(r.Files, file)

	switch file.Status {
	case StatusSuccess:
		r.Success++
	case StatusFailed:
		r.Failed++
	}
}

// OK reports whether no file failed.
func (r *BatchReport) OK() bool {
	return r.Failed == 0
}
