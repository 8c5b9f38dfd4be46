package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careercompass/guidance-engine/internal/enrich"
	"github.com/careercompass/guidance-engine/internal/normalize"
	"github.com/careercompass/guidance-engine/internal/pathway"
	"github.com/careercompass/guidance-engine/internal/taxonomy"
	"github.com/careercompass/guidance-engine/internal/types"
)

var pathwayCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Build the pathway plan for a single career",
	Long:  "Builds the step-by-step pathway plan, timeline, and skill gaps for one career from the catalog, personalized to the student's questionnaire responses. With an API key set, steps are optionally rewritten into richer prose.",
	RunE:  runPathway,
}

var (
	pathwayCatalog   string
	pathwayResponses string
	pathwayCareerID  string
	pathwayEnrich    bool
)

func init() {
	pathwayCmd.Flags().StringVarP(&pathwayCatalog, "catalog", "c", "", "Path to career catalog JSON file (required)")
	pathwayCmd.Flags().StringVarP(&pathwayResponses, "responses", "r", "", "Path to questionnaire responses JSON file (required)")
	pathwayCmd.Flags().StringVar(&pathwayCareerID, "career", "", "Career ID from the catalog (required)")
	pathwayCmd.Flags().BoolVar(&pathwayEnrich, "enrich", false, "Rewrite steps into richer prose with Gemini (requires GEMINI_API_KEY)")

	for _, flag := range []string{"catalog", "responses", "career"} {
		if err := pathwayCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(pathwayCmd)
}

func runPathway(cmd *cobra.Command, _ []string) error {
	catalog, err := taxonomy.Load(pathwayCatalog)
	if err != nil {
		return fmt.Errorf("failed to load career catalog: %w", err)
	}

	career := findCareer(catalog, pathwayCareerID)
	if career == nil {
		return fmt.Errorf("career %q not found in catalog %s", pathwayCareerID, pathwayCatalog)
	}

	raw, err := loadResponses(pathwayResponses)
	if err != nil {
		return err
	}
	profile, _ := normalize.Normalize(raw)

	plan := pathway.BuildPathway(career, profile)

	if pathwayEnrich {
		plan = enrichPlan(cmd.Context(), career, plan)
	}

	jsonOutput, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pathway plan to JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))

	return nil
}

func findCareer(catalog *types.Catalog, id string) *types.Career {
	for i := range catalog.Careers {
		if catalog.Careers[i].ID == id {
			return &catalog.Careers[i]
		}
	}
	return nil
}

// enrichPlan attempts prose enrichment and quietly keeps the rule-based plan
// on any failure.
func enrichPlan(ctx context.Context, career *types.Career, plan types.PathwayPlan) types.PathwayPlan {
	if ctx == nil {
		ctx = context.Background()
	}

	enricher, err := enrich.New(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: enrichment unavailable: %v\n", err)
		return plan
	}
	defer func() { _ = enricher.Close() }()

	enriched, err := enricher.EnrichPathway(ctx, career, plan)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: enrichment failed, using rule-based steps: %v\n", err)
	}
	return enriched
}
