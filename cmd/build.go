package cmd

import (
	"fmt"

	"arnctl/internal/arn"

	"github.com/spf13/cobra"
)

var (
	buildService   string
	buildPartition string
	buildRegion    string
	buildAccount   string
	buildResource  []string
	buildQualified bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Constructs a canonical ARN from its components",
	Long: `Constructs an ARN from validated components. Multiple --resource values
are joined into a path; pass --qualified to join them with ':' instead,
as in layer:my-layer:3.`,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := arn.ParseIdentifier(buildService)
		if err != nil {
			er(fmt.Sprintf("Invalid service: %v", err))
		}

		builder := arn.Service(service)

		if buildPartition != "" {
			partition, err := arn.ParseIdentifier(buildPartition)
			if err != nil {
				er(fmt.Sprintf("Invalid partition: %v", err))
			}
			builder.InPartition(partition)
		}
		if buildRegion != "" {
			region, err := arn.ParseIdentifier(buildRegion)
			if err != nil {
				er(fmt.Sprintf("Invalid region: %v", err))
			}
			builder.InRegion(region)
		}
		if buildAccount != "" {
			account, err := arn.ParseAccountID(buildAccount)
			if err != nil {
				er(fmt.Sprintf("Invalid account id: %v", err))
			}
			builder.OwnedBy(account)
		}

		parts := make([]arn.ResourceIdentifier, 0, len(buildResource))
		for _, r := range buildResource {
			part, err := arn.ParseResourceIdentifier(r)
			if err != nil {
				er(fmt.Sprintf("Invalid resource component: %v", err))
			}
			parts = append(parts, part)
		}
		if buildQualified {
			builder.Is(arn.JoinQualified(parts...))
		} else {
			builder.Is(arn.JoinPath(parts...))
		}

		fmt.Println(builder.ARN())
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildService, "service", "", "Service identifier (required)")
	buildCmd.Flags().StringVar(&buildPartition, "partition", "", "Partition identifier (default partition when omitted)")
	buildCmd.Flags().StringVar(&buildRegion, "region", "", "Region identifier")
	buildCmd.Flags().StringVar(&buildAccount, "account", "", "Account id")
	buildCmd.Flags().StringArrayVar(&buildResource, "resource", nil, "Resource component, repeatable (required)")
	buildCmd.Flags().BoolVar(&buildQualified, "qualified", false, "Join resource components with ':' instead of '/'")
	buildCmd.MarkFlagRequired("service")
	buildCmd.MarkFlagRequired("resource")
}
