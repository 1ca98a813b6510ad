package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"splicer.dev/pkg/splicer/internal/domain"
	m "splicer.dev/pkg/splicer/internal/model"
)

var (
	dataDirFlag    string
	outputDirFlag  string
	batchCountFlag int
	batchSeedFlag  int64
	patternFlag    string
	timeoutFlag    time.Duration
	parallelFlag   int
	maxFilesFlag   int
	reportFlag     string
)

const batchLongDescription = `Mutate every matching Rust file under a data directory.

Each file is mutated by a separate splicer process with seed = --seed + n,
where n is the 1-based position of the file in sorted order, and written to
<name>_mutated.rs in --output-dir. A JSON report of the run is saved next to
the outputs unless --report points elsewhere (.yaml/.yml writes YAML).
The command fails when any file failed.`

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "batch",
		Short:        "Mutate every synthesized Rust file of a directory",
		Long:         batchLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireGrammar(); err != nil {
				return err
			}

			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				DataDir:   m.Path(viper.GetString(batchDataDirKey)),
				OutputDir: m.Path(viper.GetString(batchOutputDirKey)),
				Pattern:   viper.GetString(batchPatternKey),
				Budget:    viper.GetInt(batchCountKey),
				BaseSeed:  viper.GetInt64(batchSeedKey),
				Bounds:    snippetBounds(),
				Timeout:   viper.GetDuration(batchTimeoutKey),
				Parallel:  viper.GetInt(batchParallelKey),
				MaxFiles:  viper.GetInt(batchMaxFilesKey),
				Report:    m.Path(reportFlag),
			})
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dataDirFlag, dataDirFlagName, viper.GetString(batchDataDirKey), "directory searched for input files")
	bindFlagToConfig(cmd.Flags().Lookup(dataDirFlagName), batchDataDirKey)

	cmd.Flags().StringVar(&outputDirFlag, outputDirFlagName, viper.GetString(batchOutputDirKey), "directory for mutated files and the report")
	bindFlagToConfig(cmd.Flags().Lookup(outputDirFlagName), batchOutputDirKey)

	cmd.Flags().IntVarP(&batchCountFlag, mutationsFlagName, "m", viper.GetInt(batchCountKey), "maximum number of replacements per file")
	bindFlagToConfig(cmd.Flags().Lookup(mutationsFlagName), batchCountKey)

	cmd.Flags().Int64VarP(&batchSeedFlag, seedFlagName, "s", viper.GetInt64(batchSeedKey), "base seed; file n uses seed+n")
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), batchSeedKey)

	cmd.Flags().StringVar(&patternFlag, patternFlagName, viper.GetString(batchPatternKey), "glob matched against file names")
	bindFlagToConfig(cmd.Flags().Lookup(patternFlagName), batchPatternKey)

	cmd.Flags().DurationVar(&timeoutFlag, timeoutFlagName, viper.GetDuration(batchTimeoutKey), "per-file timeout (e.g. 30s, 2m)")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), batchTimeoutKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(batchParallelKey), "number of files mutated concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), batchParallelKey)

	cmd.Flags().IntVar(&maxFilesFlag, maxFilesFlagName, viper.GetInt(batchMaxFilesKey), "stop after this many files (0 = all)")
	bindFlagToConfig(cmd.Flags().Lookup(maxFilesFlagName), batchMaxFilesKey)

	cmd.Flags().StringVar(&reportFlag, reportFlagName, "", "report path (default <output-dir>/mutation_report.json)")
}
