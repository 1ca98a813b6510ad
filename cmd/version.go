package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and whether the Rust grammar is available.",
		Run: func(cmd *cobra.Command, _ []string) {
			grammar := "available"
			if grammarErr != nil {
				grammar = grammarErr.Error()
			}

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				cmd.Println("rust grammar\t", grammar)

				return
			}

			cmd.Println("splicer version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
			cmd.Println("rust grammar\t", grammar)
		},
	}
}
