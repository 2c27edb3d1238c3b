package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mailforge",
	Short: "Generate on-brand marketing emails from a product page",
	Long: `Mailforge scrapes an ecommerce product page, analyzes the brand,
and generates ready-to-send HTML marketing emails that match the
brand's visual identity.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
