package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careercompass/guidance-engine/internal/taxonomy"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate a career catalog file",
	Long:  "Loads a career catalog JSON file and reports every structural and semantic problem: schema violations, duplicate IDs, unknown education tiers, and missing required fields.",
	RunE:  runValidateCatalog,
}

var validateCatalogPath string

func init() {
	validateCatalogCmd.Flags().StringVarP(&validateCatalogPath, "catalog", "c", "", "Path to career catalog JSON file (required)")

	if err := validateCatalogCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCatalogCmd)
}

func runValidateCatalog(_ *cobra.Command, _ []string) error {
	catalog, err := taxonomy.Load(validateCatalogPath)
	if err != nil {
		return fmt.Errorf("catalog validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Catalog is valid: %d careers\n", len(catalog.Careers))

	return nil
}
