package cmd

import (
	"fmt"
	"os"

	"arnctl/internal/arn"
	"arnctl/internal/rules"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	rulesFile          string
	validateOutputJson string
)

// ValidationResult is the per-ARN outcome of a validate run.
type ValidationResult struct {
	Input      string  `json:"input"`
	Valid      bool    `json:"valid"`
	Registered bool    `json:"registered"`
	Error      string  `json:"error,omitempty"`
	ARN        arn.ARN `json:"arn,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate <arn>...",
	Short: "Validates ARN strings against service format rules",
	Long: `Validates one or more ARN strings: first against the core grammar, then
against per-service format rules defined in a YAML file. ARNs whose
service has no registered rule pass the second stage unconditionally.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ruleSet := rules.Default()
		if rulesFile != "" {
			loaded, err := rules.LoadFile(rulesFile)
			if err != nil {
				er(fmt.Sprintf("Error loading rules: %v", err))
			}
			ruleSet = loaded
		}
		engine := rules.NewEngine(ruleSet)

		results := make([]ValidationResult, 0, len(args))
		failures := 0
		for _, s := range args {
			result := ValidationResult{Input: s}
			a, err := arn.Parse(s)
			if err == nil {
				result.ARN = a
				result.Registered = engine.IsRegistered(a)
				err = engine.Validate(a)
			}
			if err != nil {
				result.Error = err.Error()
				failures++
				color.Red("FAIL %s", s)
				fmt.Printf("     %v\n", err)
			} else {
				result.Valid = true
				color.Green("OK   %s", s)
			}
			results = append(results, result)
		}

		fmt.Printf("\nValidated %d ARNs, %d failures\n", len(args), failures)

		if validateOutputJson != "" {
			if err := exportToJson(results, validateOutputJson); err != nil {
				er(fmt.Sprintf("Failed to export results to JSON: %v", err))
			}
			fmt.Printf("Results exported to %s\n", validateOutputJson)
		}

		if failures > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&rulesFile, "rules", "", "Path to a YAML file with format rules (built-in rules when omitted)")
	validateCmd.Flags().StringVar(&validateOutputJson, "output-json", "", "Export results to JSON file")
}
