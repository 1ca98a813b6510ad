package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// ErrProcessTimeout is returned when a child process is killed because its
// wall-clock budget ran out.
var ErrProcessTimeout = errors.New("process timed out")

// ProcessRunnerAdapter runs isolated child processes for per-file work.
type ProcessRunnerAdapter interface {
	// Run executes name with args and waits at most timeout. It returns the
	// combined stdout/stderr output and any error; a timeout is reported as
	// ErrProcessTimeout.
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) (output string, err error)

	// Executable returns the path of the running binary, which is re-invoked
	// for isolated per-file mutation.
	Executable() (string, error)
}

// LocalProcessRunnerAdapter provides a concrete implementation using os/exec.
type LocalProcessRunnerAdapter struct{}

// NewLocalProcessRunnerAdapter constructs a LocalProcessRunnerAdapter.
func NewLocalProcessRunnerAdapter() *LocalProcessRunnerAdapter {
	return &LocalProcessRunnerAdapter{}
}

// Run executes the command. A non-positive timeout means no deadline beyond ctx.
func (a *LocalProcessRunnerAdapter) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return output, fmt.Errorf("%w after %s", ErrProcessTimeout, timeout)
	}

	return output, err
}

// Executable resolves the running binary's path.
func (a *LocalProcessRunnerAdapter) Executable() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}

	return path, nil
}
