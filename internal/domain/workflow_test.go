package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"splicer.dev/pkg/splicer/internal/adapter"
	adaptermocks "splicer.dev/pkg/splicer/internal/adapter/mocks"
	controllermocks "splicer.dev/pkg/splicer/internal/controller/mocks"
	"splicer.dev/pkg/splicer/internal/domain"
	domainmocks "splicer.dev/pkg/splicer/internal/domain/mocks"
	m "splicer.dev/pkg/splicer/internal/model"
)

type workflowDeps struct {
	ui           *controllermocks.MockUI
	runner       *adaptermocks.MockProcessRunnerAdapter
	orchestrator *domainmocks.MockOrchestrator
	store        adapter.ReportStore
}

func newTestWorkflow(t *testing.T, deps workflowDeps) domain.Workflow {
	t.Helper()

	provider, err := adapter.NewTreeSitterProvider()
	require.NoError(t, err)

	store := deps.store
	if store == nil {
		store = adapter.NewReportStore()
	}

	var runner adapter.ProcessRunnerAdapter = deps.runner
	if deps.runner == nil {
		runner = adapter.NewLocalProcessRunnerAdapter()
	}

	var orchestrator domain.Orchestrator = deps.orchestrator
	if deps.orchestrator == nil {
		orchestrator = domain.NewOrchestrator(runner)
	}

	return domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), store, runner, provider, deps.ui, orchestrator)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func outputOf(path string) *string {
	return &path
}

func TestWorkflow_Batch_RecordsFailuresAndContinues(t *testing.T) {
	dataDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "mutated")

	for _, name := range []string{"synthesized_1.rs", "synthesized_2.rs", "synthesized_3.rs", "other.rs"} {
		writeFile(t, filepath.Join(dataDir, name), "fn main() {}\n")
	}

	ui := controllermocks.NewMockUI(t)
	runner := adaptermocks.NewMockProcessRunnerAdapter(t)
	orchestrator := domainmocks.NewMockOrchestrator(t)

	runner.EXPECT().Executable().Return("/bin/splicer", nil).Once()

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().DisplayFileStarted(mock.Anything, mock.Anything).Return().Times(3)
	ui.EXPECT().DisplayFileCompleted(mock.Anything, mock.Anything, mock.Anything).Return().Times(3)
	ui.EXPECT().DisplayReport(mock.Anything, mock.Anything, m.Path(filepath.Join(outDir, adapter.ReportFileName))).Return().Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()

	jobMatches := mock.MatchedBy(func(job domain.FileJob) bool {
		return job.Executable == "/bin/splicer" && job.BaseSeed == 42 && job.Budget == 5 && job.Timeout == 30*time.Second
	})

	orchestrator.EXPECT().MutateFile(mock.Anything, mock.Anything, jobMatches).
		RunAndReturn(func(_ context.Context, file m.File, _ domain.FileJob) m.FileReport {
			if file.Index == 2 {
				return m.FileReport{Input: string(file.ShortPath), Status: m.StatusFailed, Error: "process timed out after 30s"}
			}

			return m.FileReport{
				Input:  string(file.ShortPath),
				Output: outputOf(domain.MutatedFileName(file.FullPath)),
				Status: m.StatusSuccess,
			}
		}).Times(3)

	wf := newTestWorkflow(t, workflowDeps{ui: ui, runner: runner, orchestrator: orchestrator})

	err := wf.Batch(context.Background(), domain.BatchArgs{
		DataDir:   m.Path(dataDir),
		OutputDir: m.Path(outDir),
		Pattern:   "synthesized*.rs",
		Budget:    5,
		BaseSeed:  42,
		Bounds:    domain.DefaultSnippetBounds(),
		Timeout:   30 * time.Second,
		Parallel:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBatchFailures))

	report, err := adapter.NewReportStore().LoadReport(m.Path(filepath.Join(outDir, adapter.ReportFileName)))
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Success)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Files, 3)

	assert.Equal(t, "synthesized_1.rs", report.Files[0].Input)
	require.NotNil(t, report.Files[0].Output)
	assert.Equal(t, "synthesized_1_mutated.rs", *report.Files[0].Output)
	assert.Equal(t, m.StatusFailed, report.Files[1].Status)
	assert.Nil(t, report.Files[1].Output)
	assert.Equal(t, m.StatusSuccess, report.Files[2].Status)
	assert.GreaterOrEqual(t, report.DurationSeconds, 0.0)
}

func TestWorkflow_Batch_ParallelKeepsDiscoveryOrder(t *testing.T) {
	dataDir := t.TempDir()
	outDir := t.TempDir()

	for _, name := range []string{"synthesized_a.rs", "synthesized_b.rs", "synthesized_c.rs", "synthesized_d.rs"} {
		writeFile(t, filepath.Join(dataDir, name), "fn main() {}\n")
	}

	ui := controllermocks.NewMockUI(t)
	runner := adaptermocks.NewMockProcessRunnerAdapter(t)
	orchestrator := domainmocks.NewMockOrchestrator(t)

	runner.EXPECT().Executable().Return("/bin/splicer", nil).Once()

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().DisplayFileStarted(mock.Anything, mock.Anything).Return().Times(3)
	ui.EXPECT().DisplayFileCompleted(mock.Anything, mock.Anything, mock.Anything).Return().Times(3)
	ui.EXPECT().DisplayReport(mock.Anything, mock.Anything, mock.Anything).Return().Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()

	orchestrator.EXPECT().MutateFile(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, file m.File, _ domain.FileJob) m.FileReport {
			// Earlier files finish last.
			time.Sleep(time.Duration(4-file.Index) * 10 * time.Millisecond)

			return m.FileReport{Input: string(file.ShortPath), Output: outputOf("out"), Status: m.StatusSuccess}
		}).Times(3)

	report := m.Path(filepath.Join(outDir, "report.yaml"))
	wf := newTestWorkflow(t, workflowDeps{ui: ui, runner: runner, orchestrator: orchestrator})

	err := wf.Batch(context.Background(), domain.BatchArgs{
		DataDir:   m.Path(dataDir),
		OutputDir: m.Path(outDir),
		Pattern:   "synthesized*.rs",
		Budget:    5,
		BaseSeed:  42,
		Parallel:  3,
		MaxFiles:  3,
		Report:    report,
	})
	require.NoError(t, err)

	saved, err := adapter.NewReportStore().LoadReport(report)
	require.NoError(t, err)

	require.Len(t, saved.Files, 3)
	assert.Equal(t, []string{"synthesized_a.rs", "synthesized_b.rs", "synthesized_c.rs"},
		[]string{saved.Files[0].Input, saved.Files[1].Input, saved.Files[2].Input})
	assert.True(t, saved.OK())
}

func TestWorkflow_Batch_ExecutableMissing(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	runner := adaptermocks.NewMockProcessRunnerAdapter(t)

	runner.EXPECT().Executable().Return("", errors.New("no binary")).Once()

	wf := newTestWorkflow(t, workflowDeps{ui: ui, runner: runner})

	err := wf.Batch(context.Background(), domain.BatchArgs{DataDir: m.Path(t.TempDir()), Pattern: "*.rs"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no binary")
}

func TestWorkflow_Mutate_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "synthesized_1.rs")
	output := filepath.Join(dir, "out", "synthesized_1_mutated.rs")
	writeFile(t, input, "fn main(){ foo(10000, 20000); }")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().DisplaySession(mock.Anything, mock.MatchedBy(func(s m.SessionSummary) bool {
		return s.Applied() == 1 && s.Output == m.Path(output) && s.Seed == 42
	})).Return().Once()
	ui.EXPECT().DisplayDiff(mock.Anything, mock.MatchedBy(func(diff string) bool {
		return diff != ""
	})).Return().Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()

	wf := newTestWorkflow(t, workflowDeps{ui: ui})

	err := wf.Mutate(context.Background(), domain.MutateArgs{
		Input:    m.Path(input),
		Output:   m.Path(output),
		Budget:   1,
		Seed:     42,
		Bounds:   domain.DefaultSnippetBounds(),
		ShowDiff: true,
	})
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "fn main(){ foo(20000, 20000); }", string(got))
}

func TestWorkflow_Mutate_Stdout(t *testing.T) {
	input := filepath.Join(t.TempDir(), "main.rs")
	writeFile(t, input, "fn main(){ foo(10000, 20000); }")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().DisplayPools(mock.Anything, m.Path(input), mock.Anything).Return().Once()
	ui.EXPECT().DisplayOutput(mock.Anything, []byte("fn main(){ foo(20000, 20000); }")).Return(nil).Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()

	wf := newTestWorkflow(t, workflowDeps{ui: ui})

	err := wf.Mutate(context.Background(), domain.MutateArgs{
		Input:     m.Path(input),
		Budget:    1,
		Seed:      42,
		Bounds:    domain.DefaultSnippetBounds(),
		ShowPools: true,
	})
	require.NoError(t, err)
}

func TestWorkflow_Mutate_NoResult(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.rs")
	output := filepath.Join(dir, "main_mutated.rs")
	writeFile(t, input, `fn main(){ println!("{}", 1); }`)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().DisplayNoResult(mock.Anything, m.Path(input), 16).Return().Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()

	wf := newTestWorkflow(t, workflowDeps{ui: ui})

	err := wf.Mutate(context.Background(), domain.MutateArgs{
		Input:  m.Path(input),
		Output: m.Path(output),
		Budget: 16,
		Seed:   42,
		Bounds: domain.DefaultSnippetBounds(),
	})
	require.NoError(t, err)

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err), "no file is written without a result")
}

func TestWorkflow_Mutate_MissingInput(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()

	wf := newTestWorkflow(t, workflowDeps{ui: ui})

	err := wf.Mutate(context.Background(), domain.MutateArgs{
		Input:  m.Path(filepath.Join(t.TempDir(), "missing.rs")),
		Budget: 1,
		Bounds: domain.DefaultSnippetBounds(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWorkflow_Pools(t *testing.T) {
	input := filepath.Join(t.TempDir(), "main.rs")
	writeFile(t, input, "fn main(){ foo(10000, 20000); }")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayPools(mock.Anything, m.Path(input), mock.MatchedBy(func(pools []m.PoolSummary) bool {
		for _, pool := range pools {
			if pool.Kind == domain.KindIntegerLiteral {
				return pool.Count == 2 && pool.Usable
			}
		}

		return false
	})).Return().Once()

	wf := newTestWorkflow(t, workflowDeps{ui: ui})

	require.NoError(t, wf.Pools(context.Background(), domain.PoolsArgs{
		Input:  m.Path(input),
		Bounds: domain.DefaultSnippetBounds(),
	}))
}

func TestWorkflow_View(t *testing.T) {
	report := &m.BatchReport{RunID: "run-1", Total: 1, Success: 1}

	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().LoadReport(m.Path("report.json")).Return(report, nil).Once()

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayReport(mock.Anything, report, m.Path("")).Return().Once()

	wf := newTestWorkflow(t, workflowDeps{ui: ui, store: store})

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Report: "report.json"}))
}

func TestWorkflow_View_LoadError(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().LoadReport(m.Path("missing.json")).Return(nil, errors.New("not found")).Once()

	wf := newTestWorkflow(t, workflowDeps{ui: controllermocks.NewMockUI(t), store: store})

	err := wf.View(context.Background(), domain.ViewArgs{Report: "missing.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load report")
}
