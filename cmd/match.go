package cmd

import (
	"fmt"
	"os"

	"arnctl/internal/arn"
	"arnctl/internal/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <arn>...",
	Short: "Matches ARNs against a wildcard ARN pattern",
	Long: `Matches one or more ARNs against an ARN pattern, where * matches any run
of characters and ? exactly one, e.g.

  arnctl match 'arn:aws:s3:::my-bucket/*' arn:aws:s3:::my-bucket/thing-1`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := args[0]
		if !utils.IsWildcardPattern(pattern) {
			fmt.Println("Note: pattern has no wildcards, matching literally")
		}

		misses := 0
		for _, s := range args[1:] {
			if _, err := arn.Parse(s); err != nil {
				er(fmt.Sprintf("Could not parse %q: %v", s, err))
			}
			if utils.MatchesWildcardPattern(pattern, s) {
				color.Green("MATCH %s", s)
			} else {
				color.Red("MISS  %s", s)
				misses++
			}
		}

		if misses > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
