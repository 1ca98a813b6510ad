package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "splicer.dev/pkg/splicer/internal/model"
)

const previewWidth = 40

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd   *cobra.Command
	total int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode == ModeBatch {
		s.total = cfg.total
		s.printf("Mutating %d file(s)\n", cfg.total)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayPools prints one row per pooled kind.
func (s *SimpleUI) DisplayPools(ctx context.Context, input m.Path, pools []m.PoolSummary) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Node pools for %s\n\n%s", input, renderPoolTable(pools))
}

func renderPoolTable(pools []m.PoolSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Count", "Usable", "Sample"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	usable := 0

	for _, pool := range pools {
		sample := ""
		if len(pool.Previews) > 0 {
			sample = m.Preview([]byte(pool.Previews[0]), previewWidth)
		}

		mark := "no"
		if pool.Usable {
			mark = "yes"
			usable++
		}

		table.Append([]string{pool.Kind, strconv.Itoa(pool.Count), mark, sample})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Kinds %d", len(pools)),
		"",
		fmt.Sprintf("%d usable", usable),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplaySession prints the audit log of a finished session.
func (s *SimpleUI) DisplaySession(ctx context.Context, summary m.SessionSummary) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Applied %d of %d replacement(s) to %s (seed %d)\n",
		summary.Applied(), summary.Budget, summary.Input, summary.Seed)

	if summary.Output != "" {
		s.printf("Wrote %s\n", summary.Output)
	}

	s.printf("\n%s", renderRecordTable(summary.Records))

	for _, issue := range summary.SyntaxIssues {
		s.printf("warning: syntax issue at %d:%d (%s)\n", issue.Line, issue.Column, issue.Kind)
	}
}

func renderRecordTable(records []m.MutationRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Kind", "Bytes", "Original", "Replacement"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for i, record := range records {
		table.Append([]string{
			strconv.Itoa(i + 1),
			record.Kind,
			fmt.Sprintf("%d-%d", record.Start, record.End),
			m.Preview(record.Original, previewWidth),
			m.Preview(record.Replacement, previewWidth),
		})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayNoResult reports a session that applied nothing.
func (s *SimpleUI) DisplayNoResult(ctx context.Context, input m.Path, budget int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("No replacement applied to %s (budget %d): no result\n", input, budget)
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if ctx.Err() != nil || diff == "" {
		return
	}

	s.printf("\n%s", diff)
}

// DisplayOutput writes mutated code verbatim so it can be piped.
func (s *SimpleUI) DisplayOutput(ctx context.Context, code []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.cmd.OutOrStdout().Write(code)

	return err
}

// DisplayFileStarted announces a file of a batch.
func (s *SimpleUI) DisplayFileStarted(ctx context.Context, file m.File) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%d/%d] %s\n", file.Index, s.total, file.ShortPath)
}

// DisplayFileCompleted prints the outcome of one batch file.
func (s *SimpleUI) DisplayFileCompleted(ctx context.Context, file m.File, report m.FileReport) {
	if ctx.Err() != nil {
		return
	}

	if report.Status == m.StatusSuccess && report.Output != nil {
		s.printf("  ok   %s -> %s\n", file.ShortPath, *report.Output)
		return
	}

	s.printf("  FAIL %s: %s\n", file.ShortPath, report.Error)
}

// DisplayReport prints a batch report table with totals.
func (s *SimpleUI) DisplayReport(ctx context.Context, report *m.BatchReport, path m.Path) {
	if ctx.Err() != nil || report == nil {
		return
	}

	s.printf("\n%s", renderReportTable(report))
	s.printf("Run %s: %d/%d succeeded in %.2fs\n", report.RunID, report.Success, report.Total, report.DurationSeconds)

	if path != "" {
		s.printf("Report saved to %s\n", path)
	}
}

func renderReportTable(report *m.BatchReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Input", "Status", "Output"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, file := range report.Files {
		output := "-"
		if file.Output != nil {
			output = *file.Output
		}

		table.Append([]string{file.Input, string(file.Status), output})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", report.Total),
		fmt.Sprintf("%d ok / %d failed", report.Success, report.Failed),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...any) {
	fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
