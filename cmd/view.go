package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"splicer.dev/pkg/splicer/internal/adapter"
	"splicer.dev/pkg/splicer/internal/domain"
	m "splicer.dev/pkg/splicer/internal/model"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a saved batch report",
		Long: `View a batch report written by "splicer batch". Without an argument the
report in the configured batch output directory is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath := m.Path(filepath.Join(viper.GetString(batchOutputDirKey), adapter.ReportFileName))
			if len(args) == 1 {
				reportPath = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: reportPath})
		},
	}

	return cmd
}
