// Package cmd provides the root command and CLI setup for splicer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"splicer.dev/pkg/splicer/internal/adapter"
	"splicer.dev/pkg/splicer/internal/controller"
	"splicer.dev/pkg/splicer/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var processRunner adapter.ProcessRunnerAdapter
var provider adapter.TreeProvider
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// grammarErr is set when the Rust grammar could not be loaded. Commands that
// parse refuse to start while it is set.
var grammarErr error

// Root-level flags shared by mutate, pools and batch.
var (
	minLenFlag  int
	maxLenFlag  int
	logFileFlag string
	verboseFlag bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd *cobra.Command

func init() {
	initConfig()

	rootCmd = newRootCmd()
	rootCmd.AddCommand(
		newMutateCmd(),
		newBatchCmd(),
		newPoolsCmd(),
		newViewCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	processRunner = adapter.NewLocalProcessRunnerAdapter()

	treeSitter, err := adapter.NewTreeSitterProvider()
	if err != nil {
		grammarErr = err
	}

	provider = treeSitter
	orchestrator = domain.NewOrchestrator(processRunner)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		processRunner,
		provider,
		ui,
		orchestrator,
	)
}

const rootLongDescription = `Splicer mutates Rust sources by splicing syntax-tree fragments.

Every replacement swaps a node for another node of the same grammar kind
taken from the same file, so the output stays close to valid Rust. Runs are
reproducible: the same input, seed and budget always give the same output.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splicer",
		Short: "Rust syntax-tree splicing mutator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&minLenFlag, minLenFlagName, viper.GetInt(poolMinLenKey), "minimum snippet length in bytes")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(minLenFlagName), poolMinLenKey)

	cmd.PersistentFlags().IntVar(&maxLenFlag, maxLenFlagName, viper.GetInt(poolMaxLenKey), "maximum snippet length in bytes")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(maxLenFlagName), poolMaxLenKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func snippetBounds() domain.SnippetBounds {
	return domain.SnippetBounds{
		Min: viper.GetInt(poolMinLenKey),
		Max: viper.GetInt(poolMaxLenKey),
	}
}

func requireGrammar() error {
	if grammarErr != nil {
		return fmt.Errorf("cannot parse Rust sources: %w", grammarErr)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
