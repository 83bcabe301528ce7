package commands

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/gzm55/propreplace/pkg/props"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewShowCmd creates a new show command
func NewShowCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the properties of a .properties file",
		Long: `Show loads a .properties file and prints its keys and values in file
order, optionally restricted to keys matching a glob pattern.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := props.LoadFile(args[0])
			if err != nil {
				return errors.Errorf("loading %s: %w", args[0], err)
			}

			keyColor := color.New(color.FgCyan)
			for _, key := range store.Keys() {
				if filter != "" {
					matched, err := doublestar.Match(filter, key)
					if err != nil {
						return errors.Errorf("invalid filter pattern %q: %w", filter, err)
					}
					if !matched {
						continue
					}
				}
				value, _ := store.Get(key)
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", keyColor.Sprint(key), value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "glob pattern for keys to show (e.g. 'git.*')")

	return cmd
}
