// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/movie-scout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxCastToShow is the number of cast names to display per movie
	maxCastToShow = 3
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidates outputs the candidate set going into the pipeline.
func (p *Printer) PrintCandidates(candidates []types.Candidate, fromFallback bool) {
	var sb strings.Builder
	for i, cand := range candidates {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, cand.Title))
		if cand.Year > 0 {
			sb.WriteString(fmt.Sprintf(" (%d)", cand.Year))
		}
		sb.WriteString("\n")
	}

	title := fmt.Sprintf("Candidates (%d)", len(candidates))
	if fromFallback {
		title += " (fallback keyword search)"
	}
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// PrintRecommendations outputs a human-readable summary of the final result list.
func (p *Printer) PrintRecommendations(recs []types.EnrichedRecommendation) {
	var sb strings.Builder

	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, rec.Title))
		if rec.Year > 0 {
			sb.WriteString(fmt.Sprintf(" (%d)", rec.Year))
		}
		sb.WriteString("\n")

		if !rec.Matched {
			sb.WriteString("   unmatched\n")
			continue
		}

		if len(rec.Genres) > 0 {
			sb.WriteString(fmt.Sprintf("   %s\n", strings.Join(rec.Genres, ", ")))
		}
		if rec.Director != "" {
			sb.WriteString(fmt.Sprintf("   Directed by %s\n", rec.Director))
		}
		if len(rec.Cast) > 0 {
			count := min(len(rec.Cast), maxCastToShow)
			sb.WriteString(fmt.Sprintf("   Starring %s\n", strings.Join(rec.Cast[:count], ", ")))
		}

		sb.WriteString(fmt.Sprintf("   genre match %.0f%%", rec.GenreMatchScore*100))
		if rec.OnPreferredService {
			sb.WriteString(", on a preferred service")
		}
		sb.WriteString("\n")
	}

	p.printBox(fmt.Sprintf("Recommendations (%d)", len(recs)), strings.TrimRight(sb.String(), "\n"))
}
