package cmd

import (
	"fmt"

	"reddit-persona/internal/report"

	"github.com/spf13/cobra"
)

// inspectCmd re-parses a written report and prints its summary.
var inspectCmd = &cobra.Command{
	Use:   "inspect <report_path>",
	Short: "Parse a persona report and print its top interests and subreddits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := report.ParseFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "interests: %d\n", len(sum.Interests))
		for _, f := range sum.Interests {
			fmt.Fprintf(out, "  %s (%d citations)\n", f.Name, f.Citations)
		}
		fmt.Fprintf(out, "subreddits: %d\n", len(sum.Subreddits))
		for _, s := range sum.Subreddits {
			fmt.Fprintf(out, "  r/%s (%d interactions)\n", s.Name, s.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
