// Package report composes the Markdown validation report.
package report

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/contractlens/internal/clause"
	"github.com/hyperifyio/contractlens/internal/ner"
)

// Input bundles everything the report needs.
type Input struct {
	TemplateName string
	ContractName string

	TemplateClauses *clause.Set
	ContractClauses *clause.Set
	Deviations      []clause.Deviation

	// Summary is the highlighted contract summary; empty means the summary
	// step was skipped (dry run).
	Summary  string
	Entities []ner.Entity

	// Model names the summarizer/recognizer model for the footer; empty on
	// dry runs.
	Model string
}

// Render produces the full Markdown report. Sections follow the order the
// findings are produced in: extracted clauses, deviations, summary, entities.
func Render(in Input) string {
	var sb strings.Builder
	sb.WriteString("# Business Contract Validation\n\n")
	fmt.Fprintf(&sb, "Template: %s\n\nContract: %s\n", in.TemplateName, in.ContractName)

	sb.WriteString("\n## Extracted Clauses — Template\n\n")
	writeClauses(&sb, in.TemplateClauses)

	sb.WriteString("\n## Extracted Clauses — Contract\n\n")
	writeClauses(&sb, in.ContractClauses)

	sb.WriteString("\n## Deviations\n\n")
	if len(in.Deviations) == 0 {
		sb.WriteString("No deviations detected.\n")
	} else {
		for _, d := range in.Deviations {
			fmt.Fprintf(&sb, "- **%s. %s** — %s\n", d.ID, d.Title, d.String())
		}
	}

	if in.Summary != "" {
		sb.WriteString("\n## Detailed Contract Summary\n\n")
		sb.WriteString(in.Summary)
		sb.WriteString("\n")
	}

	if len(in.Entities) > 0 {
		sb.WriteString("\n## Entities Detected\n\n")
		for _, e := range ner.Unique(in.Entities) {
			fmt.Fprintf(&sb, "- Entity: %s, Label: %s\n", e.Text, e.Label)
		}
	}

	sb.WriteString("\n---\n")
	if in.Model != "" {
		fmt.Fprintf(&sb, "Generated by contractlens (model: %s)\n", in.Model)
	} else {
		sb.WriteString("Generated by contractlens\n")
	}
	return sb.String()
}

func writeClauses(sb *strings.Builder, set *clause.Set) {
	clauses := set.Clauses()
	if len(clauses) == 0 {
		sb.WriteString("No numbered clauses found.\n")
		return
	}
	for _, c := range clauses {
		fmt.Fprintf(sb, "- **%s. %s**\n", c.ID, c.Title)
	}
}
