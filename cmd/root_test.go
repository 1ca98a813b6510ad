package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"splicer.dev/pkg/splicer/internal/adapter"
	domainmocks "splicer.dev/pkg/splicer/internal/domain/mocks"
)

// newTestRoot returns a fresh root command carrying sub, with the global
// workflow swapped for a mock.
func newTestRoot(t *testing.T, sub *cobra.Command) (*cobra.Command, *bytes.Buffer, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out, mockWorkflow
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "splicer", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{minLenFlagName, maxLenFlagName, logFileFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "same grammar kind")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, processRunner)
	assert.NotNil(t, provider)
	assert.NotNil(t, orchestrator)
	assert.NotNil(t, workflow)
	assert.NoError(t, grammarErr)

	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"mutate", "batch", "pools", "view", "init", "version"})
}

func TestSnippetBounds_FollowsRootFlags(t *testing.T) {
	cmd, _, mockWorkflow := newTestRoot(t, newPoolsCmd())
	mockWorkflow.EXPECT().Pools(mock.Anything, mock.Anything).Return(nil)

	cmd.SetArgs([]string{"pools", "a.rs", "--min-len", "2", "--max-len", "9"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 2, snippetBounds().Min)
	assert.Equal(t, 9, snippetBounds().Max)
}

func TestRequireGrammar(t *testing.T) {
	original := grammarErr
	t.Cleanup(func() { grammarErr = original })

	grammarErr = nil
	require.NoError(t, requireGrammar())

	grammarErr = adapter.ErrGrammarUnavailable
	err := requireGrammar()
	require.Error(t, err)
	assert.True(t, errors.Is(err, adapter.ErrGrammarUnavailable))
}

func TestMutateCmd_RefusesWithoutGrammar(t *testing.T) {
	original := grammarErr
	t.Cleanup(func() { grammarErr = original })
	grammarErr = adapter.ErrGrammarUnavailable

	cmd, _, _ := newTestRoot(t, newMutateCmd())
	cmd.SetArgs([]string{"mutate", "a.rs"})

	err := cmd.Execute()
	require.ErrorIs(t, err, adapter.ErrGrammarUnavailable)
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("SPLICER_TEST_EXECUTE_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "SPLICER_TEST_EXECUTE_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "got %T", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(output), "error occurred")
}
