// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-pipeline/internal/types"
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

// PrintResolvedSpec outputs a human-readable summary of a resolved job spec.
func (p *Printer) PrintResolvedSpec(spec *types.ResolvedJobSpec) {
	if spec == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", spec.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", spec.Company.Name))
	sb.WriteString(fmt.Sprintf("Where:    %s", spec.WorkArrangement))
	if spec.Location != "" {
		sb.WriteString(fmt.Sprintf(", %s", spec.Location))
	}
	sb.WriteString("\n\n")

	byCategory := spec.RequirementsByCategory()
	for _, category := range []types.RequirementCategory{types.CategoryMust, types.CategoryShould, types.CategoryNice} {
		reqs := byCategory[category]
		if len(reqs) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", categoryLabel(category), len(reqs)))
		count := min(len(reqs), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (weight %d)\n", reqs[i].Description, reqs[i].Weight))
		}
		if len(reqs) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(reqs)-maxItemsToShow))
		}
	}

	p.printBox("RESOLVED JOB SPEC", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchExplanation outputs the fit score breakdown with strengths and gaps.
func (p *Printer) PrintMatchExplanation(explanation *types.MatchExplanation) {
	if explanation == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:      %.1f", explanation.OverallScore))
	if explanation.Gated {
		sb.WriteString("  (capped: must-have missed)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Must-have:    %.1f\n", explanation.MustHaveScore))
	sb.WriteString(fmt.Sprintf("Should-have:  %.1f\n", explanation.ShouldHaveScore))
	sb.WriteString(fmt.Sprintf("Nice-to-have: %.1f\n", explanation.NiceToHaveScore))

	if len(explanation.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(explanation.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", explanation.Strengths[i]))
		}
	}

	if len(explanation.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		count := min(len(explanation.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", explanation.Gaps[i]))
		}
	}

	if len(explanation.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range explanation.Recommendations {
			sb.WriteString(fmt.Sprintf("  → %s\n", rec))
		}
	}

	p.printBox("FIT SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStageHistory outputs an application's stage history, oldest first.
func (p *Printer) PrintStageHistory(app *types.Application, history []types.StageHistoryEntry) {
	if app == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Application: %s\n", app.ID))
	sb.WriteString(fmt.Sprintf("Status:      %s\n", app.Status))
	if app.FitScore != nil {
		sb.WriteString(fmt.Sprintf("Fit score:   %.1f\n", *app.FitScore))
	}

	if len(history) > 0 {
		sb.WriteString("\n")
		for _, entry := range history {
			from := string(entry.FromStage)
			if from == "" {
				from = "—"
			}
			sb.WriteString(fmt.Sprintf("%s  %s → %s", entry.ChangedAt.Format("2006-01-02 15:04"), from, entry.ToStage))
			if entry.Automated {
				sb.WriteString(" (auto)")
			} else if entry.ChangedBy != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.ChangedBy))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("APPLICATION PIPELINE", strings.TrimSuffix(sb.String(), "\n"))
}

func categoryLabel(c types.RequirementCategory) string {
	switch c {
	case types.CategoryMust:
		return "Must-have"
	case types.CategoryShould:
		return "Should-have"
	default:
		return "Nice-to-have"
	}
}
