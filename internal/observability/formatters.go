// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/careercompass/guidance-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the normalized student profile.
func (p *Printer) PrintProfile(profile *types.StudentProfile, warnings []types.FieldWarning) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Grade:      %d\n", profile.Grade))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.EducationWillingness))
	if profile.ZipCode != "" {
		sb.WriteString(fmt.Sprintf("Zip code:   %s\n", profile.ZipCode))
	}

	if len(profile.PersonalTraits) > 0 {
		sb.WriteString("\nTraits:\n")
		count := min(len(profile.PersonalTraits), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.PersonalTraits[i]))
		}
		if len(profile.PersonalTraits) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.PersonalTraits)-maxItemsToShow))
		}
	}

	if len(profile.SubjectStrengths) > 0 {
		sb.WriteString("\nSubject strengths:\n")
		count := min(len(profile.SubjectStrengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.SubjectStrengths[i]))
		}
	}

	if len(profile.WorkEnvironments) > 0 {
		sb.WriteString("\nEnvironment:\n")
		count := min(len(profile.WorkEnvironments), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.WorkEnvironments[i]))
		}
	}

	if len(profile.Constraints) > 0 {
		sb.WriteString(fmt.Sprintf("\nConstraints: %s\n", strings.Join(profile.Constraints, ", ")))
	}

	if len(warnings) > 0 {
		sb.WriteString(fmt.Sprintf("\nWarnings: %d field(s) needed attention\n", len(warnings)))
	}

	p.printBox("NORMALIZED STUDENT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top N scored matches with sub-score breakdowns.
func (p *Printer) PrintMatches(matches []types.MatchResult) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total careers scored: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, match.Career.Title))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", match.Score))
		sb.WriteString(fmt.Sprintf("    Interest %.0f | Academic %.0f | Education %.0f | Environment %.0f | Constraint %.0f\n",
			match.SubScores.Interest,
			match.SubScores.Academic,
			match.SubScores.Education,
			match.SubScores.Environment,
			match.SubScores.Constraint,
		))
		if len(match.FeasibilityNotes) > 0 {
			notes := strings.Join(match.FeasibilityNotes, "; ")
			if len(notes) > 40 {
				notes = notes[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Notes: %s\n", notes))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("SCORED MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPathway outputs the pathway plan for a single career.
func (p *Printer) PrintPathway(title string, plan *types.PathwayPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Timeline: %s\n\n", plan.Timeline))

	for i, step := range plan.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}

	if len(plan.SkillGaps.Immediate) > 0 {
		sb.WriteString(fmt.Sprintf("\nBuild now:   %s\n", strings.Join(plan.SkillGaps.Immediate, ", ")))
	}
	if len(plan.SkillGaps.LongTerm) > 0 {
		sb.WriteString(fmt.Sprintf("Build later: %s\n", strings.Join(plan.SkillGaps.LongTerm, ", ")))
	}

	p.printBox("PATHWAY: "+strings.ToUpper(title), strings.TrimSuffix(sb.String(), "\n"))
}
