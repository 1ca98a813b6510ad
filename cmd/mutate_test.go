package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"splicer.dev/pkg/splicer/internal/domain"
)

func TestMutateCmd_Defaults(t *testing.T) {
	cmd, _, mockWorkflow := newTestRoot(t, newMutateCmd())

	mockWorkflow.EXPECT().Mutate(mock.Anything, domain.MutateArgs{
		Input:  "data/synthesized_1.rs",
		Budget: 16,
		Seed:   42,
		Bounds: domain.SnippetBounds{Min: 5, Max: 200},
	}).Return(nil)

	cmd.SetArgs([]string{"mutate", "data/synthesized_1.rs"})
	require.NoError(t, cmd.Execute())
}

func TestMutateCmd_FlagsArePassedThrough(t *testing.T) {
	cmd, _, mockWorkflow := newTestRoot(t, newMutateCmd())

	mockWorkflow.EXPECT().Mutate(mock.Anything, domain.MutateArgs{
		Input:     "in.rs",
		Output:    "out/in_mutated.rs",
		Budget:    3,
		Seed:      7,
		Bounds:    domain.SnippetBounds{Min: 1, Max: 80},
		ShowDiff:  true,
		ShowPools: true,
	}).Return(nil)

	cmd.SetArgs([]string{
		"mutate", "in.rs",
		"-m", "3",
		"-s", "7",
		"-o", "out/in_mutated.rs",
		"--min-len", "1",
		"--max-len", "80",
		"--diff",
		"--show-pools",
	})
	require.NoError(t, cmd.Execute())
}

func TestMutateCmd_AcceptsChildProcessArguments(t *testing.T) {
	cmd, _, mockWorkflow := newTestRoot(t, newMutateCmd())

	mockWorkflow.EXPECT().Mutate(mock.Anything, mock.MatchedBy(func(args domain.MutateArgs) bool {
		return args.Budget == 5 && args.Seed == 45 && args.Output == "o/synthesized_3_mutated.rs"
	})).Return(nil)

	cmd.SetArgs([]string{
		"mutate", "d/synthesized_3.rs",
		"--mutations", "5",
		"--seed", "45",
		"--output", "o/synthesized_3_mutated.rs",
		"--min-len", "5",
		"--max-len", "200",
	})
	require.NoError(t, cmd.Execute())
}

func TestMutateCmd_RequiresExactlyOneFile(t *testing.T) {
	for _, args := range [][]string{{"mutate"}, {"mutate", "a.rs", "b.rs"}} {
		cmd, _, _ := newTestRoot(t, newMutateCmd())
		cmd.SetArgs(args)

		assert.Error(t, cmd.Execute(), "%v", args)
	}
}

func TestMutateCmd_PropagatesWorkflowError(t *testing.T) {
	cmd, _, mockWorkflow := newTestRoot(t, newMutateCmd())
	boom := errors.New("boom")

	mockWorkflow.EXPECT().Mutate(mock.Anything, mock.Anything).Return(boom)

	cmd.SetArgs([]string{"mutate", "a.rs"})
	require.ErrorIs(t, cmd.Execute(), boom)
}
