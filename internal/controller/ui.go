// Package controller provides output adapters for displaying mutation results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "splicer.dev/pkg/splicer/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeMutate StartMode = iota
	ModeBatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithMutateMode sets the UI to single-file mode.
func WithMutateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMutate
	}
}

// WithBatchMode sets the UI to batch mode over total files.
func WithBatchMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBatch
		c.total = total
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeMutate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying pools, sessions and batch runs.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayPools(ctx context.Context, input m.Path, pools []m.PoolSummary)
	DisplaySession(ctx context.Context, summary m.SessionSummary)
	DisplayNoResult(ctx context.Context, input m.Path, budget int)
	DisplayDiff(ctx context.Context, diff string)
	DisplayOutput(ctx context.Context, code []byte) error
	DisplayFileStarted(ctx context.Context, file m.File)
	DisplayFileCompleted(ctx context.Context, file m.File, report m.FileReport)
	DisplayReport(ctx context.Context, report *m.BatchReport, path m.Path)
}

// NewUI picks the TUI when tty is set and the plain UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
