// Package enrich optionally rewrites pathway steps into richer prose using
// Gemini. It sits outside the deterministic core: the rule-based plan is
// always computed first and is the guaranteed fallback. Model output is
// validated against the enriched-pathway schema; anything that fails
// validation is discarded, never repaired.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/careercompass/guidance-engine/internal/schemas"
	"github.com/careercompass/guidance-engine/internal/types"
)

// DefaultModel is the Gemini model used for pathway prose.
const DefaultModel = "gemini-1.5-flash"

// PathwaySchemaPath is the repo-relative path of the output contract schema.
const PathwaySchemaPath = "schemas/enriched_pathway.schema.json"

const promptTemplate = `You are a career counselor for high school students.
Rewrite the following career pathway steps for a future %s (%s sector) into
encouraging, concrete prose a student can act on. Keep the same number of
steps and the same order.

Steps:
%s

Return a JSON object with this exact structure and nothing else:
{"steps": ["...", "..."]}`

// Enricher wraps a Gemini client for pathway prose generation.
type Enricher struct {
	client *genai.Client
	model  string
}

// New creates an Enricher. The API key is required; deployments without a
// key simply skip enrichment.
func New(ctx context.Context, apiKey string) (*Enricher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Enricher{client: client, model: DefaultModel}, nil
}

// Close releases the underlying client.
func (e *Enricher) Close() error {
	return e.client.Close()
}

// EnrichPathway returns the plan with prose-enriched steps. On any failure
// (generation, parsing, or schema validation) the original plan is returned
// alongside the error, so callers always hold a usable plan.
func (e *Enricher) EnrichPathway(ctx context.Context, career *types.Career, plan types.PathwayPlan) (types.PathwayPlan, error) {
	prompt := fmt.Sprintf(promptTemplate, career.Title, career.Sector, strings.Join(plan.Steps, "\n"))

	model := e.client.GenerativeModel(e.model)
	model.SetTemperature(0.4)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return plan, fmt.Errorf("failed to generate enriched pathway: %w", err)
	}

	raw, err := extractText(resp)
	if err != nil {
		return plan, err
	}
	return mergeEnriched(plan, []byte(raw))
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("response contained no text parts")
	}
	return sb.String(), nil
}

// mergeEnriched validates raw model output against the schema and, on
// success, swaps the enriched steps into the plan. Timeline and skill gaps
// always come from the rule-based plan. If the schema document cannot be
// resolved, the output is rejected: unvalidated model output is never
// trusted.
func mergeEnriched(plan types.PathwayPlan, raw []byte) (types.PathwayPlan, error) {
	schemaPath := schemas.ResolveSchemaPath(PathwaySchemaPath)
	if schemaPath == "" {
		return plan, fmt.Errorf("enriched pathway schema not found; keeping rule-based steps")
	}
	if err := schemas.ValidateDocument(schemaPath, raw); err != nil {
		return plan, fmt.Errorf("enriched pathway failed schema validation: %w", err)
	}

	var enriched struct {
		Steps []string `json:"steps"`
	}
	if err := json.Unmarshal(raw, &enriched); err != nil {
		return plan, fmt.Errorf("failed to unmarshal enriched pathway: %w", err)
	}

	plan.Steps = enriched.Steps
	return plan, nil
}
