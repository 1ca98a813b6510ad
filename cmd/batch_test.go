package cmd

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"splicer.dev/pkg/splicer/internal/domain"
)

func TestBatchCmd_Defaults(t *testing.T) {
	cmd, _, mockWorkflow := newTestRoot(t, newBatchCmd())

	mockWorkflow.EXPECT().Batch(mock.Anything, domain.BatchArgs{
		DataDir:   "data",
		OutputDir: "data/mutated_synthesized",
		Pattern:   "synthesized*.rs",
		Budget:    5,
		BaseSeed:  42,
		Bounds:    domain.SnippetBounds{Min: 5, Max: 200},
		Timeout:   30 * time.Second,
		Parallel:  1,
	}).Return(nil)

	cmd.SetArgs([]string{"batch"})
	require.NoError(t, cmd.Execute())
}

func TestBatchCmd_FlagsArePassedThrough(t *testing.T) {
	cmd, _, mockWorkflow := newTestRoot(t, newBatchCmd())

	mockWorkflow.EXPECT().Batch(mock.Anything, domain.BatchArgs{
		DataDir:   "corpus",
		OutputDir: "corpus/out",
		Pattern:   "*.rs",
		Budget:    2,
		BaseSeed:  100,
		Bounds:    domain.SnippetBounds{Min: 3, Max: 40},
		Timeout:   2 * time.Minute,
		Parallel:  4,
		MaxFiles:  10,
		Report:    "run.yaml",
	}).Return(nil)

	cmd.SetArgs([]string{
		"batch",
		"--data-dir", "corpus",
		"--output-dir", "corpus/out",
		"--pattern", "*.rs",
		"-m", "2",
		"-s", "100",
		"--min-len", "3",
		"--max-len", "40",
		"--timeout", "2m",
		"-p", "4",
		"--max-files", "10",
		"--report", "run.yaml",
	})
	require.NoError(t, cmd.Execute())
}

func TestBatchCmd_FailuresFailTheCommand(t *testing.T) {
	cmd, _, mockWorkflow := newTestRoot(t, newBatchCmd())

	mockWorkflow.EXPECT().Batch(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: 1 of 3 file(s) failed", domain.ErrBatchFailures))

	cmd.SetArgs([]string{"batch"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrBatchFailures)
}

func TestBatchCmd_RejectsPositionalArgs(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newBatchCmd())

	cmd.SetArgs([]string{"batch", "data"})
	require.Error(t, cmd.Execute())
}
