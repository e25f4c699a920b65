package cmd

import (
	"fmt"
	"os"

	"arnctl/internal/utils"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arnctl",
	Short: "arnctl - toolkit for Amazon Resource Names",
	Long: `Arnctl parses, validates, constructs and matches Amazon Resource Name
(ARN) strings without treating them as opaque text.`,
}

func Execute() error {
	utils.DisplayBanner()

	return rootCmd.Execute()
}

func er(msg interface{}) {
	fmt.Println("Error:", msg)
	os.Exit(1)
}
