// Package assemble composes matching and pathway output into the final
// response payload returned to the caller.
package assemble

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/careercompass/guidance-engine/internal/outlook"
	"github.com/careercompass/guidance-engine/internal/pathway"
	"github.com/careercompass/guidance-engine/internal/types"
)

// DefaultTopMatches is how many matches receive full pathway synthesis when
// Options.TopN is unset.
const DefaultTopMatches = 5

// Options configures assembly. The zero value selects defaults.
type Options struct {
	// TopN bounds how many matches get detailed pathway synthesis.
	TopN int
	// Outlook annotates detailed matches with salary bands when set.
	Outlook *outlook.Lookup
}

// Assemble builds the final payload: detailed top-N matches with pathways,
// the remaining matches in summary form, cluster roll-ups, and the
// normalization warnings formatted as suggestions. Everything except the
// generation metadata is deterministic given deterministic inputs.
func Assemble(ctx context.Context, matches []types.MatchResult, profile *types.StudentProfile, warnings []types.FieldWarning, opts Options) (*types.ResultPayload, error) {
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopMatches
	}
	if topN > len(matches) {
		topN = len(matches)
	}

	detailed := make([]types.DetailedMatch, topN)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < topN; i++ {
		i := i
		g.Go(func() error {
			match := matches[i]
			dm := types.DetailedMatch{
				Career:           match.Career.Summary(),
				MatchScore:       match.Score,
				Reasoning:        match.Reasoning,
				FeasibilityNotes: match.FeasibilityNotes,
				Pathway:          pathway.BuildPathway(&match.Career, profile),
			}
			if opts.Outlook != nil {
				dm.SalaryBand = opts.Outlook.SalaryBand(gctx, &match.Career)
			}
			detailed[i] = dm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]types.MatchSummary, 0, len(matches))
	for _, match := range matches {
		summaries = append(summaries, types.MatchSummary{
			CareerID: match.Career.ID,
			Title:    match.Career.Title,
			Score:    match.Score,
		})
	}

	return &types.ResultPayload{
		TopJobMatches:         detailed,
		AllMatches:            summaries,
		TopClusters:           clusterRollup(matches),
		Validation:            types.ValidationSummary{Warnings: formatSuggestions(warnings)},
		StudentProfileSummary: profileSummary(profile),
		GeneratedAt:           time.Now().UTC(),
		GenerationID:          uuid.NewString(),
	}, nil
}

// clusterRollup averages member career scores per cluster. Clusters are
// ordered by score descending, ties broken by first appearance in the
// ranked match list.
func clusterRollup(matches []types.MatchResult) []types.ClusterSummary {
	type rollup struct {
		total int
		count int
		first int
	}

	byCluster := make(map[string]*rollup)
	order := make([]string, 0)
	for i, match := range matches {
		cluster := match.Career.Cluster
		if cluster == "" {
			continue
		}
		r, ok := byCluster[cluster]
		if !ok {
			r = &rollup{first: i}
			byCluster[cluster] = r
			order = append(order, cluster)
		}
		r.total += match.Score
		r.count++
	}

	summaries := make([]types.ClusterSummary, 0, len(order))
	for _, cluster := range order {
		r := byCluster[cluster]
		summaries = append(summaries, types.ClusterSummary{
			Cluster: cluster,
			Score:   (r.total + r.count/2) / r.count,
			Careers: r.count,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Score > summaries[j].Score
	})
	return summaries
}

// formatSuggestions turns normalization warnings into user-facing
// suggestion strings. Pure formatting, no new logic.
func formatSuggestions(warnings []types.FieldWarning) []string {
	suggestions := make([]string, 0, len(warnings))
	for _, w := range warnings {
		suggestions = append(suggestions, fmt.Sprintf("For better results, revisit %s: %s", w.Field, w.Message))
	}
	return suggestions
}

func profileSummary(profile *types.StudentProfile) types.ProfileSummary {
	return types.ProfileSummary{
		Grade:                profile.Grade,
		ZipCode:              profile.ZipCode,
		EducationWillingness: profile.EducationWillingness.String(),
		SubjectStrengths:     profile.SubjectStrengths,
		PersonalTraits:       profile.PersonalTraits,
		Constraints:          profile.Constraints,
	}
}
