// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/types"
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

// PrintExtractedKeywords outputs the top weighted keywords pulled from the JD.
func (p *Printer) PrintExtractedKeywords(extracted []types.ExtractedKeyword) {
	if len(extracted) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords extracted: %d\n\n", len(extracted)))

	count := min(len(extracted), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := extracted[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%.2f)\n", i+1, kw.Term, kw.Weight))
	}
	if len(extracted) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(extracted)-maxItemsToShow))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the full generation analysis: focus areas, ATS score
// and keyword coverage.
func (p *Printer) PrintAnalysis(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	if len(analysis.DetectedFocusAreas) > 0 {
		sb.WriteString(fmt.Sprintf("Focus areas: %s\n", strings.Join(analysis.DetectedFocusAreas, ", ")))
	}
	sb.WriteString(fmt.Sprintf("ATS score:   %d/100 (%s)\n", analysis.ATSScore, analysis.ATSGrade))
	sb.WriteString(fmt.Sprintf("Matched:     %d of %d keywords\n", len(analysis.MatchedKeywords), len(analysis.ExtractedKeywords)))

	if len(analysis.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(analysis.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.MissingKeywords[i]))
		}
		if len(analysis.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MissingKeywords)-maxItemsToShow))
		}
	}

	p.printBox("TAILORING ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulletSelections outputs which variant each bullet rendered with,
// skipping bullets that kept their canonical text.
func (p *Printer) PrintBulletSelections(selections map[string]string) {
	var chosen []string
	for id, focus := range selections {
		if focus != "default" {
			chosen = append(chosen, fmt.Sprintf("%s → %s", id, focus))
		}
	}
	if len(chosen) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Variants selected: %d\n\n", len(chosen)))

	sort.Strings(chosen)
	count := min(len(chosen), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %s\n", chosen[i]))
	}
	if len(chosen) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(chosen)-maxItemsToShow))
	}

	p.printBox("BULLET SELECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
