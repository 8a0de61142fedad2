package clause

import "fmt"

// Kind classifies how a clause deviates between template and contract.
type Kind int

const (
	// KindMissing marks a template clause absent from the contract.
	KindMissing Kind = iota
	// KindDifferent marks an identifier present on both sides with
	// different titles.
	KindDifferent
	// KindExtra marks a contract clause the template does not have.
	KindExtra
)

// Deviation is one structural difference between a template's and a
// contract's clause sets. ID and Title are taken from the side that defines
// the deviation: the template for missing/retitled clauses, the contract for
// extra ones. NewTitle is set only for KindDifferent.
type Deviation struct {
	ID       string
	Title    string
	Kind     Kind
	NewTitle string
}

// String renders the deviation description shown in reports.
func (d Deviation) String() string {
	switch d.Kind {
	case KindMissing:
		return "Missing in Contract"
	case KindDifferent:
		return fmt.Sprintf("Different in Contract: %s", d.NewTitle)
	case KindExtra:
		return "Extra in Contract"
	}
	return "Unknown"
}

// Compare diffs the contract's clause set against the template's. The output
// order is part of the contract: first every template identifier in its own
// order, reported as missing or retitled, then every contract-only identifier
// in contract order, reported as extra. Identifiers with identical titles on
// both sides are not reported. Equality is exact string match.
func Compare(template, contract *Set) []Deviation {
	var deviations []Deviation

	for _, id := range template.IDs() {
		title, _ := template.Title(id)
		contractTitle, ok := contract.Title(id)
		switch {
		case !ok:
			deviations = append(deviations, Deviation{ID: id, Title: title, Kind: KindMissing})
		case contractTitle != title:
			deviations = append(deviations, Deviation{ID: id, Title: title, Kind: KindDifferent, NewTitle: contractTitle})
		}
	}

	for _, id := range contract.IDs() {
		if _, ok := template.Title(id); ok {
			continue
		}
		title, _ := contract.Title(id)
		deviations = append(deviations, Deviation{ID: id, Title: title, Kind: KindExtra})
	}

	return deviations
}
