package cmd

import (
	"github.com/spf13/cobra"

	"splicer.dev/pkg/splicer/internal/domain"
	m "splicer.dev/pkg/splicer/internal/model"
)

func newPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools <file.rs>",
		Short: "Show the node pools of a Rust file",
		Long: `Parse a Rust file and list, per node kind, how many snippets fall within
the --min-len/--max-len bounds. Kinds with fewer than two snippets cannot be
mutated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGrammar(); err != nil {
				return err
			}

			return workflow.Pools(cmd.Context(), domain.PoolsArgs{
				Input:  m.Path(args[0]),
				Bounds: snippetBounds(),
			})
		},
	}
}
