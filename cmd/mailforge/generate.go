package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mailforge-ai/mailforge"
	"github.com/mailforge-ai/mailforge/config"
	"github.com/mailforge-ai/mailforge/emailparse"
	"github.com/spf13/cobra"
)

var (
	generateCount     int
	generatePromotion string
	generateOutDir    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <product-url>",
	Short: "Generate marketing emails for a product page and write them to disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := buildLogger(cfg)

		pipeline, err := buildPipeline(cfg, logger)
		if err != nil {
			return err
		}

		result, err := pipeline.Generate(cmd.Context(), mailforge.Request{
			ProductURL: args[0],
			EmailCount: generateCount,
			Promotion:  generatePromotion,
		})
		if err != nil {
			return err
		}

		if err := os.MkdirAll(generateOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Printf("%s", result.Product.Name)
		if result.Product.Price != "" {
			fmt.Printf("  %s", result.Product.Price)
		}
		fmt.Printf("  (%s)\n", result.Product.Brand)

		for _, email := range result.Emails {
			if !emailparse.LooksLikeHTML(email.HTML) {
				color.Yellow("skipping %q: output does not look like HTML", email.StyleLabel)
				continue
			}
			name := fmt.Sprintf("email-%d.html", email.SequenceIndex)
			path := filepath.Join(generateOutDir, name)
			if err := os.WriteFile(path, []byte(email.HTML), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			color.Green("wrote %s (%s)", path, email.StyleLabel)
		}

		fmt.Printf("\ntokens: %d in / %d out", result.Usage.InputTokens, result.Usage.OutputTokens)
		if result.Usage.EstimatedCostUSD > 0 {
			fmt.Printf("  est. cost: $%.4f", result.Usage.EstimatedCostUSD)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1,
		fmt.Sprintf("number of email variations (%d-%d)", mailforge.MinEmailCount, mailforge.MaxEmailCount))
	generateCmd.Flags().StringVarP(&generatePromotion, "promotion", "p", "",
		`promotion to feature, e.g. "25% off"`)
	generateCmd.Flags().StringVarP(&generateOutDir, "out", "o", "emails",
		"directory to write generated HTML files to")
	rootCmd.AddCommand(generateCmd)
}
