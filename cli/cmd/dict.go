package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/stenoproject/plojo/config"
	"github.com/stenoproject/plojo/lookup"
	"github.com/stenoproject/plojo/stroke"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Inspect the dictionaries configured in plojo.yaml",
}

var dictValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the configured dictionaries and report any parse errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(directory)
		if err != nil {
			return err
		}
		dict, err := loadDictionary(cfg)
		if err != nil {
			fmt.Println(err)
			return nil
		}
		fmt.Printf("%d entries loaded across %d dictionaries, no errors\n", dict.Len(), len(cfg.Dicts))
		return nil
	},
}

var dictLookupCmd = &cobra.Command{
	Use:   "lookup <strokes...>",
	Short: "Look up one or more canonical strokes and print the resulting translations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		cfg, err := config.LoadConfig(directory)
		if err != nil {
			return err
		}
		dict, err := loadDictionary(cfg)
		if err != nil {
			return err
		}

		strokes := make([]stroke.Stroke, len(args))
		for i, a := range args {
			strokes[i] = stroke.New(a)
		}

		for _, t := range lookup.Translate(strokes, dict) {
			fmt.Println(repr.String(t, repr.Indent("  ")))
		}
		return nil
	},
}

var dictStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dictionary size and the longest multi-stroke entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(directory)
		if err != nil {
			return err
		}
		dict, err := loadDictionary(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("%d entries, %d multi-stroke, longest entry %d strokes\n",
			dict.Len(), dict.MultiStrokeCount(), dict.MaxStrokeLen())
		return nil
	},
}

func init() {
	dictCmd.AddCommand(dictValidateCmd)
	dictCmd.AddCommand(dictLookupCmd)
	dictCmd.AddCommand(dictStatsCmd)
	rootCmd.AddCommand(dictCmd)
}
