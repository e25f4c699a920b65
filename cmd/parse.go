package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"arnctl/internal/arn"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var parseOutputJson string

var parseCmd = &cobra.Command{
	Use:   "parse <arn>...",
	Short: "Parses ARN strings and displays their components",
	Long: `Parses one or more ARN strings into their typed components and displays
partition, service, region, account and resource, plus the resource
sub-structure (path segments, qualifiers, wildcards, variables).`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parsed := make([]arn.ARN, 0, len(args))
		for _, s := range args {
			a, err := arn.Parse(s)
			if err != nil {
				er(fmt.Sprintf("Could not parse %q: %v", s, err))
			}
			parsed = append(parsed, a)
		}

		for i, a := range parsed {
			displayARN(i+1, a)
		}

		if parseOutputJson != "" {
			if err := exportToJson(parsed, parseOutputJson); err != nil {
				er(fmt.Sprintf("Failed to export results to JSON: %v", err))
			}
			fmt.Printf("Results exported to %s\n", parseOutputJson)
		}
	},
}

func displayARN(n int, a arn.ARN) {
	color.Cyan("ARN %d: %s", n, a)
	partition := a.Partition
	if partition == "" {
		partition = arn.PartitionAws
		fmt.Printf("Partition: %s (default)\n", partition)
	} else {
		fmt.Printf("Partition: %s\n", partition)
	}
	fmt.Printf("Service: %s\n", a.Service)
	fmt.Printf("Region: %s\n", orNone(a.Region.String()))
	fmt.Printf("Account: %s\n", orNone(a.AccountID.String()))
	fmt.Printf("Resource: %s\n", a.Resource)

	switch {
	case a.Resource.ContainsQualified():
		fmt.Printf("Qualifiers: ")
		for i, part := range a.Resource.QualifierSplit() {
			if i > 0 {
				fmt.Print(" | ")
			}
			fmt.Print(part)
		}
		fmt.Println()
	case a.Resource.ContainsPath():
		fmt.Printf("Path segments: ")
		for i, part := range a.Resource.PathSplit() {
			if i > 0 {
				fmt.Print(" | ")
			}
			fmt.Print(part)
		}
		fmt.Println()
	}

	if a.HasWildcards() {
		color.Yellow("Contains wildcards")
	}
	if a.Resource.HasVariables() {
		color.Yellow("Contains variables: %v", a.Resource.Variables())
	}
	fmt.Println()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func exportToJson(v interface{}, outputPath string) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(outputPath, jsonData, 0644)
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseOutputJson, "output-json", "", "Export parsed components to JSON file")
}
