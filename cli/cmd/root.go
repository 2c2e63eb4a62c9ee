package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "plojo",
		Short:        "plojo",
		SilenceUsage: true,
		Long:         `A chorded-keyboard (steno) translation engine.`,
	}

	directory string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory containing plojo.yaml and the configured dictionary files")
	return rootCmd.Execute()
}

func init() {
}
