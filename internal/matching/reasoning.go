package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/careercompass/guidance-engine/internal/types"
)

// maxReasons is how many contributing factors appear in a result's
// reasoning list.
const maxReasons = 3

// dimension identifies one scoring component for reasoning generation.
// The declaration order doubles as the deterministic tie-break when two
// dimensions contribute equally.
type dimension int

const (
	dimInterest dimension = iota
	dimAcademic
	dimEducation
	dimEnvironment
	dimConstraint
)

// reasoning generates short explanation strings from the sub-scores,
// ordered by weighted contribution (top contributors first). Strings are
// built from the scoring dimensions, never from per-career templates.
func (e *Engine) reasoning(subs types.SubScores, matchedInterest, matchedEnv []string, career *types.Career) []string {
	type contribution struct {
		dim   dimension
		value float64
	}

	contributions := []contribution{
		{dimInterest, e.weights.Interest * subs.Interest},
		{dimAcademic, e.weights.Academic * subs.Academic},
		{dimEducation, e.weights.Education * subs.Education},
		{dimEnvironment, e.weights.Environment * subs.Environment},
		{dimConstraint, e.weights.Constraint * subs.Constraint},
	}

	// Stable sort: equal contributions keep declaration order.
	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].value > contributions[j].value
	})

	reasons := make([]string, 0, maxReasons)
	for _, c := range contributions {
		if len(reasons) == maxReasons {
			break
		}
		if reason := e.describe(c.dim, subs, matchedInterest, matchedEnv, career); reason != "" {
			reasons = append(reasons, reason)
		}
	}
	return reasons
}

func (e *Engine) describe(dim dimension, subs types.SubScores, matchedInterest, matchedEnv []string, career *types.Career) string {
	switch dim {
	case dimInterest:
		if len(matchedInterest) > 0 {
			strength := "Some"
			if subs.Interest >= 70 {
				strength = "Strong"
			} else if subs.Interest >= 40 {
				strength = "Good"
			}
			return fmt.Sprintf("%s alignment between your interests and this career (%s)",
				strength, strings.Join(matchedInterest, ", "))
		}
		if subs.Interest == neutralScore {
			return "Interest alignment could not be assessed from your responses"
		}
		return ""
	case dimAcademic:
		if subs.Academic >= 70 {
			return fmt.Sprintf("Strong academic preparation for %s careers", career.Sector)
		}
		if subs.Academic >= 50 {
			return fmt.Sprintf("Adequate academic preparation for %s careers", career.Sector)
		}
		return ""
	case dimEducation:
		if subs.Education >= 100 {
			return fmt.Sprintf("The %s education requirement fits your plans", career.RequiredEducation)
		}
		if subs.Education >= 70 {
			return fmt.Sprintf("The %s education requirement is a modest stretch beyond your plans", career.RequiredEducation)
		}
		return ""
	case dimEnvironment:
		if len(matchedEnv) > 0 {
			return fmt.Sprintf("Matches your preferred work environment (%s)", strings.Join(matchedEnv, ", "))
		}
		return ""
	case dimConstraint:
		if subs.Constraint >= 100 {
			return "No conflicts with your practical constraints"
		}
		return ""
	default:
		return ""
	}
}
