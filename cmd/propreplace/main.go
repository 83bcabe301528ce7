package main

import (
	"context"
	"os"

	"github.com/gzm55/propreplace/cmd/propreplace/commands"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "propreplace",
		Short: "A tool for rewriting property files with declarative replacement rules",
		Long: `propreplace applies an ordered list of replacement rules to Java-style
.properties files, with optional regex matching, expression evaluation
and pre/post transformations.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logging is set up here so the --debug flag is honored.
			logger := setupLogging()
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}
	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewApplyCmd(newRootOpts),
		commands.NewShowCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
