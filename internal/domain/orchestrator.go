package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"splicer.dev/pkg/splicer/internal/adapter"
	m "splicer.dev/pkg/splicer/internal/model"
)

// MutatedSuffix is appended to the stem of every batch output file.
const MutatedSuffix = "_mutated"

// FileJob carries the per-batch settings each file is mutated with.
type FileJob struct {
	Executable string
	OutputDir  m.Path
	Budget     int
	BaseSeed   int64
	Bounds     SnippetBounds
	Timeout    time.Duration
}

// Orchestrator mutates single files of a batch, each one in an isolated
// child process so a crash or a hang only fails that file.
type Orchestrator interface {
	MutateFile(ctx context.Context, file m.File, job FileJob) m.FileReport
}

type orchestrator struct {
	processAdapter adapter.ProcessRunnerAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided process
// runner.
func NewOrchestrator(processAdapter adapter.ProcessRunnerAdapter) Orchestrator {
	return &orchestrator{processAdapter: processAdapter}
}

// FileSeed returns the seed used for the file at 1-based index.
func FileSeed(base int64, index int) int64 {
	return base + int64(index)
}

// MutatedFileName maps synthesized_3.rs to synthesized_3_mutated.rs.
func MutatedFileName(input m.Path) string {
	base := filepath.Base(string(input))
	ext := filepath.Ext(base)

	return strings.TrimSuffix(base, ext) + MutatedSuffix + ext
}

func (o *orchestrator) MutateFile(ctx context.Context, file m.File, job FileJob) m.FileReport {
	outputName := MutatedFileName(file.FullPath)
	output := filepath.Join(string(job.OutputDir), outputName)
	seed := FileSeed(job.BaseSeed, file.Index)

	args := []string{
		"mutate", string(file.FullPath),
		"--mutations", strconv.Itoa(job.Budget),
		"--seed", strconv.FormatInt(seed, 10),
		"--output", output,
		"--min-len", strconv.Itoa(job.Bounds.Min),
		"--max-len", strconv.Itoa(job.Bounds.Max),
	}

	slog.Info("mutating file", "index", file.Index, "input", file.FullPath, "seed", seed, "output", output)

	started := time.Now()

	out, err := o.processAdapter.Run(ctx, job.Timeout, job.Executable, args...)
	if err != nil {
		slog.Error("file mutation failed",
			"input", file.FullPath,
			"elapsed", time.Since(started),
			"error", err,
			"output", lastLine(out))

		return m.FileReport{
			Input:  string(file.ShortPath),
			Status: m.StatusFailed,
			Error:  failureMessage(err, out),
		}
	}

	slog.Debug("file mutation finished", "input", file.FullPath, "elapsed", time.Since(started))

	return m.FileReport{
		Input:  string(file.ShortPath),
		Output: &outputName,
		Status: m.StatusSuccess,
	}
}

func failureMessage(err error, out string) string {
	if line := lastLine(out); line != "" {
		return fmt.Sprintf("%v: %s", err, line)
	}

	return err.Error()
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
