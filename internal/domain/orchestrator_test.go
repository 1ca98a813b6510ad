package domain_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"splicer.dev/pkg/splicer/internal/adapter"
	adaptermocks "splicer.dev/pkg/splicer/internal/adapter/mocks"
	"splicer.dev/pkg/splicer/internal/domain"
	m "splicer.dev/pkg/splicer/internal/model"
)

func testJob() domain.FileJob {
	return domain.FileJob{
		Executable: "/bin/splicer",
		OutputDir:  "/out",
		Budget:     16,
		BaseSeed:   42,
		Bounds:     domain.DefaultSnippetBounds(),
		Timeout:    30 * time.Second,
	}
}

func TestOrchestrator_MutateFile_Success(t *testing.T) {
	runner := adaptermocks.NewMockProcessRunnerAdapter(t)
	output := filepath.Join("/out", "synthesized_2_mutated.rs")

	runner.EXPECT().Run(mock.Anything, 30*time.Second, "/bin/splicer",
		"mutate", "/data/synthesized_2.rs",
		"--mutations", "16",
		"--seed", "44",
		"--output", output,
		"--min-len", "5",
		"--max-len", "200",
	).Return("done\n", nil).Once()

	orchestrator := domain.NewOrchestrator(runner)

	report := orchestrator.MutateFile(context.Background(), m.File{
		FullPath:  "/data/synthesized_2.rs",
		ShortPath: "synthesized_2.rs",
		Index:     2,
	}, testJob())

	assert.Equal(t, m.StatusSuccess, report.Status)
	assert.Equal(t, "synthesized_2.rs", report.Input)
	require.NotNil(t, report.Output)
	assert.Equal(t, "synthesized_2_mutated.rs", *report.Output)
	assert.Empty(t, report.Error)
}

func TestOrchestrator_MutateFile_Failures(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		err       error
		wantError string
	}{
		{
			name:      "timeout",
			output:    "",
			err:       fmt.Errorf("%w after 30s", adapter.ErrProcessTimeout),
			wantError: "process timed out after 30s",
		},
		{
			name:      "nonzero exit keeps last output line",
			output:    "parsing\nError: read input: no such file\n",
			err:       fmt.Errorf("exit status 1"),
			wantError: "exit status 1: Error: read input: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := adaptermocks.NewMockProcessRunnerAdapter(t)
			runner.On("Run", anyArgs(15)...).Return(tt.output, tt.err).Once()

			report := domain.NewOrchestrator(runner).MutateFile(context.Background(), m.File{
				FullPath:  "/data/nested/synthesized_1.rs",
				ShortPath: "nested/synthesized_1.rs",
				Index:     1,
			}, testJob())

			assert.Equal(t, m.StatusFailed, report.Status)
			assert.Equal(t, "nested/synthesized_1.rs", report.Input)
			assert.Nil(t, report.Output)
			assert.Equal(t, tt.wantError, report.Error)
		})
	}
}

func TestFileSeedAndOutputName(t *testing.T) {
	assert.Equal(t, int64(43), domain.FileSeed(42, 1))
	assert.Equal(t, int64(47), domain.FileSeed(42, 5))

	assert.Equal(t, "synthesized_3_mutated.rs", domain.MutatedFileName("data/a/synthesized_3.rs"))
	assert.Equal(t, "synthesized_mutated", domain.MutatedFileName("synthesized"))
}

func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = mock.Anything
	}

	return args
}
