package controller

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "splicer.dev/pkg/splicer/internal/model"
)

const (
	maxBarWidth   = 60
	recentResults = 8
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI renders batch progress with Bubble Tea. Everything outside a batch run
// is printed by the embedded SimpleUI.
type TUI struct {
	*SimpleUI

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// Start launches the progress program in batch mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeBatch {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.total = cfg.total

	t.program = tea.NewProgram(
		newBatchProgressModel(cfg.total),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Warn("progress display stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the progress program if it is running.
func (t *TUI) Close(_ context.Context) {
	t.stop()
}

func (t *TUI) stop() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(batchDoneMsg{})
	<-done
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program == nil {
		return false
	}

	t.program.Send(msg)

	return true
}

// DisplayFileStarted updates the progress display.
func (t *TUI) DisplayFileStarted(ctx context.Context, file m.File) {
	if !t.send(fileStartedMsg{file: file}) {
		t.SimpleUI.DisplayFileStarted(ctx, file)
	}
}

// DisplayFileCompleted updates the progress display.
func (t *TUI) DisplayFileCompleted(ctx context.Context, file m.File, report m.FileReport) {
	if !t.send(fileCompletedMsg{file: file, report: report}) {
		t.SimpleUI.DisplayFileCompleted(ctx, file, report)
	}
}

// DisplayReport stops the progress display and prints the report.
func (t *TUI) DisplayReport(ctx context.Context, report *m.BatchReport, path m.Path) {
	t.stop()
	t.SimpleUI.DisplayReport(ctx, report, path)
}

type fileStartedMsg struct {
	file m.File
}

type fileCompletedMsg struct {
	file   m.File
	report m.FileReport
}

type batchDoneMsg struct{}

// batchProgressModel is the Bubble Tea model of a running batch.
type batchProgressModel struct {
	total    int
	finished int
	failed   int
	running  map[int]string
	recent   []string
	bar      progress.Model
	quitting bool
}

func newBatchProgressModel(total int) batchProgressModel {
	return batchProgressModel{
		total:   total,
		running: make(map[int]string),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (bm batchProgressModel) Init() tea.Cmd {
	return nil
}

func (bm batchProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.bar.Width = min(maxBarWidth, max(msg.Width-4, 10))
		return bm, nil

	case fileStartedMsg:
		bm.running[msg.file.Index] = string(msg.file.ShortPath)
		return bm, nil

	case fileCompletedMsg:
		return bm.complete(msg), nil

	case batchDoneMsg:
		bm.quitting = true
		return bm, tea.Quit
	}

	return bm, nil
}

func (bm batchProgressModel) complete(msg fileCompletedMsg) batchProgressModel {
	delete(bm.running, msg.file.Index)
	bm.finished++

	line := okStyle.Render("ok  ") + " " + string(msg.file.ShortPath)
	if msg.report.Status != m.StatusSuccess {
		bm.failed++
		line = failStyle.Render("FAIL") + " " + string(msg.file.ShortPath)
	}

	bm.recent = append(append([]string(nil), bm.recent...), line)
	if len(bm.recent) > recentResults {
		bm.recent = bm.recent[len(bm.recent)-recentResults:]
	}

	return bm
}

func (bm batchProgressModel) percent() float64 {
	if bm.total == 0 {
		return 1
	}

	return float64(bm.finished) / float64(bm.total)
}

func (bm batchProgressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("splicer batch"))
	b.WriteString("\n\n")
	b.WriteString(bm.bar.ViewAs(bm.percent()))
	fmt.Fprintf(&b, "  %d/%d", bm.finished, bm.total)

	if bm.failed > 0 {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("%d failed", bm.failed)))
	}

	b.WriteString("\n\n")

	for _, line := range bm.recent {
		b.WriteString("  " + line + "\n")
	}

	if !bm.quitting {
		for _, index := range slices.Sorted(maps.Keys(bm.running)) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ...  %s", bm.running[index])) + "\n")
		}
	}

	return b.String()
}
