package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"splicer.dev/pkg/splicer/internal/adapter"
	"splicer.dev/pkg/splicer/internal/controller"
	m "splicer.dev/pkg/splicer/internal/model"
)

// ErrBatchFailures is returned by Batch when at least one file failed. The
// report is still written.
var ErrBatchFailures = errors.New("batch finished with failures")

// MutateArgs contains the arguments for mutating a single file.
type MutateArgs struct {
	Input m.Path
	// Output is where the mutated code goes; empty means stdout.
	Output    m.Path
	Budget    int
	Seed      int64
	Bounds    SnippetBounds
	ShowDiff  bool
	ShowPools bool
}

// BatchArgs contains the arguments for mutating every matching file of a
// directory.
type BatchArgs struct {
	DataDir   m.Path
	OutputDir m.Path
	Pattern   string
	Budget    int
	BaseSeed  int64
	Bounds    SnippetBounds
	Timeout   time.Duration
	Parallel  int
	MaxFiles  int
	// Report overrides the report location inside OutputDir.
	Report m.Path
}

// PoolsArgs contains the arguments for dumping the node pools of a file.
type PoolsArgs struct {
	Input  m.Path
	Bounds SnippetBounds
}

// ViewArgs contains the arguments for displaying a saved batch report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Mutate(ctx context.Context, args MutateArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	Pools(ctx context.Context, args PoolsArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.SourceFSAdapter
	adapter.ProcessRunnerAdapter
	adapter.TreeProvider
	controller.UI
	Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	processAdapter adapter.ProcessRunnerAdapter,
	provider adapter.TreeProvider,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		SourceFSAdapter:      fsAdapter,
		ReportStore:          reportStore,
		ProcessRunnerAdapter: processAdapter,
		TreeProvider:         provider,
		UI:                   ui,
		Orchestrator:         orchestrator,
	}
}

func (w *workflow) Mutate(ctx context.Context, args MutateArgs) error {
	if err := w.Start(ctx, controller.WithMutateMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	src, err := w.ReadFile(args.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Input, err)
	}

	engine := NewMutationEngine(w.TreeProvider, WithSnippetBounds(args.Bounds))

	session, err := engine.Mutate(ctx, src, args.Budget, args.Seed)
	if err != nil {
		return fmt.Errorf("mutate %s: %w", args.Input, err)
	}

	slog.Info("session finished",
		"input", args.Input,
		"applied", session.Applied(),
		"budget", args.Budget,
		"iterations", session.Stats.Iterations,
		"rejected", session.Stats.Rejected(),
		"syntax_valid", session.SyntaxValid())

	if args.ShowPools && session.Pool != nil {
		w.DisplayPools(ctx, args.Input, session.Pool.Summary())
	}

	if session.NoResult() {
		w.DisplayNoResult(ctx, args.Input, args.Budget)
		return nil
	}

	if args.Output == "" {
		return w.writeStdout(ctx, args, session)
	}

	if err := w.MkdirAll(m.Path(filepath.Dir(string(args.Output)))); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := w.WriteFile(args.Output, session.Output, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", args.Output, err)
	}

	w.DisplaySession(ctx, session.Summary(args.Input, args.Output))

	if args.ShowDiff {
		return w.showDiff(ctx, args.Input, session)
	}

	return nil
}

// writeStdout keeps stdout pipeable: only the code, or only the diff.
func (w *workflow) writeStdout(ctx context.Context, args MutateArgs, session *Session) error {
	if args.ShowDiff {
		return w.showDiff(ctx, args.Input, session)
	}

	if err := w.DisplayOutput(ctx, session.Output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func (w *workflow) showDiff(ctx context.Context, input m.Path, session *Session) error {
	diff, err := session.Diff(filepath.Base(string(input)))
	if err != nil {
		return fmt.Errorf("render diff: %w", err)
	}

	w.DisplayDiff(ctx, diff)

	return nil
}

func (w *workflow) Pools(ctx context.Context, args PoolsArgs) error {
	src, err := w.ReadFile(args.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Input, err)
	}

	tree, err := w.Parse(ctx, src)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args.Input, err)
	}

	w.DisplayPools(ctx, args.Input, CollectNodePool(tree, args.Bounds).Summary())

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	w.DisplayReport(ctx, report, "")

	return nil
}

func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	executable, err := w.Executable()
	if err != nil {
		return fmt.Errorf("resolve mutator executable: %w", err)
	}

	files, err := w.FindSources(args.DataDir, args.Pattern)
	if err != nil {
		return fmt.Errorf("discover sources: %w", err)
	}

	if args.MaxFiles > 0 && len(files) > args.MaxFiles {
		files = files[:args.MaxFiles]
	}

	if err := w.MkdirAll(args.OutputDir); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	slog.Info("batch started",
		"files", len(files),
		"data_dir", args.DataDir,
		"output_dir", args.OutputDir,
		"budget", args.Budget,
		"base_seed", args.BaseSeed,
		"parallel", args.Parallel)

	if err := w.Start(ctx, controller.WithBatchMode(len(files))); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	started := time.Now()

	job := FileJob{
		Executable: executable,
		OutputDir:  args.OutputDir,
		Budget:     args.Budget,
		BaseSeed:   args.BaseSeed,
		Bounds:     args.Bounds,
		Timeout:    args.Timeout,
	}

	results := w.mutateFiles(ctx, files, job, args.Parallel)

	report := &m.BatchReport{
		RunID:     uuid.NewString(),
		Total:     len(files),
		Files:     make([]m.FileReport, 0, len(files)),
		Timestamp: started.UTC(),
	}

	for _, result := range results {
		report.Add(result)
	}

	report.DurationSeconds = time.Since(started).Seconds()

	reportPath := args.Report
	if reportPath == "" {
		reportPath = w.JoinPath(string(args.OutputDir), adapter.ReportFileName)
	}

	if err := w.SaveReport(reportPath, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	w.DisplayReport(ctx, report, reportPath)

	slog.Info("batch finished",
		"run_id", report.RunID,
		"total", report.Total,
		"success", report.Success,
		"failed", report.Failed,
		"duration_seconds", report.DurationSeconds)

	if !report.OK() {
		return fmt.Errorf("%w: %d of %d file(s) failed", ErrBatchFailures, report.Failed, report.Total)
	}

	return nil
}

// mutateFiles runs the orchestrator over files with at most parallel
// workers. Results keep discovery order.
func (w *workflow) mutateFiles(ctx context.Context, files []m.File, job FileJob, parallel int) []m.FileReport {
	results := make([]m.FileReport, len(files))

	var group errgroup.Group
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, file := range files {
		group.Go(func() error {
			w.DisplayFileStarted(ctx, file)

			result := w.MutateFile(ctx, file, job)
			results[i] = result

			w.DisplayFileCompleted(ctx, file, result)

			return nil
		})
	}

	_ = group.Wait()

	return results
}
