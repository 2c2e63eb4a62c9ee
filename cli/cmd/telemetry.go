package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stenoproject/plojo/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Work with JSONL stroke logs written by telemetry.Logger",
}

var telemetryAnalyzeCmd = &cobra.Command{
	Use:   "analyze <logfile>",
	Short: "Report the most frequent 1-gram and 2-gram stroke sequences in a log",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		entries, err := telemetry.ReadLog(f)
		if err != nil {
			return err
		}

		fmt.Printf("%d strokes logged\n", len(entries))

		grams1 := telemetry.NGramFrequency(entries, 1)
		printTopGrams("Top 1-grams", grams1, 20)

		grams2 := telemetry.NGramFrequency(entries, 2)
		printTopGrams("Top 2-grams", grams2, 20)

		return nil
	},
}

func printTopGrams(title string, grams []telemetry.Gram, limit int) {
	fmt.Println(title + ":")
	if len(grams) > limit {
		grams = grams[:limit]
	}
	for _, g := range grams {
		fmt.Printf("  %3d  %v\n", g.Count, g.Strokes)
	}
}

func init() {
	telemetryCmd.AddCommand(telemetryAnalyzeCmd)
	rootCmd.AddCommand(telemetryCmd)
}
