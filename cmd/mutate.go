package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"splicer.dev/pkg/splicer/internal/domain"
	m "splicer.dev/pkg/splicer/internal/model"
)

var (
	mutateCountFlag int
	mutateSeedFlag  int64
	outputFlag      string
	diffFlag        bool
	showPoolsFlag   bool
)

const mutateLongDescription = `Mutate a single Rust file.

Up to --mutations nodes are replaced, one at a time, by other nodes of the
same kind taken from the file itself. Without --output the mutated code is
written to stdout; with --diff only a unified diff is shown there instead.`

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate <file.rs>",
		Short: "Mutate one Rust source file",
		Long:  mutateLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGrammar(); err != nil {
				return err
			}

			return workflow.Mutate(cmd.Context(), domain.MutateArgs{
				Input:     m.Path(args[0]),
				Output:    m.Path(outputFlag),
				Budget:    viper.GetInt(mutateCountKey),
				Seed:      viper.GetInt64(mutateSeedKey),
				Bounds:    snippetBounds(),
				ShowDiff:  diffFlag,
				ShowPools: showPoolsFlag,
			})
		},
	}

	configureMutateFlags(cmd)

	return cmd
}

func configureMutateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&mutateCountFlag, mutationsFlagName, "m", viper.GetInt(mutateCountKey), "maximum number of replacements")
	bindFlagToConfig(cmd.Flags().Lookup(mutationsFlagName), mutateCountKey)

	cmd.Flags().Int64VarP(&mutateSeedFlag, seedFlagName, "s", viper.GetInt64(mutateSeedKey), "random seed")
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), mutateSeedKey)

	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", "", "write mutated code to this file instead of stdout")
	cmd.Flags().BoolVar(&diffFlag, diffFlagName, false, "show a unified diff against the input")
	cmd.Flags().BoolVar(&showPoolsFlag, showPoolsFlagName, false, "show the node pools before mutating")
}
