package clause

// Clause is a single numbered section heading: a dotted numeric identifier
// such as "4.2.1" and the free-text title that follows it on the same line.
type Clause struct {
	ID    string
	Title string
}

// Set is the ordered extraction result for one document. It remembers the
// order in which clauses were found, and offers identifier lookup with
// last-write-wins semantics when a document repeats an identifier.
type Set struct {
	clauses []Clause
	titles  map[string]string
	// order of first appearance per identifier; lookup iteration follows this
	ids []string
}

// NewSet builds a Set from clauses in document order.
func NewSet(clauses []Clause) *Set {
	s := &Set{titles: make(map[string]string, len(clauses))}
	for _, c := range clauses {
		s.add(c)
	}
	return s
}

func (s *Set) add(c Clause) {
	s.clauses = append(s.clauses, c)
	if _, seen := s.titles[c.ID]; !seen {
		s.ids = append(s.ids, c.ID)
	}
	s.titles[c.ID] = c.Title
}

// Clauses returns every extracted clause in document order, including
// repeated identifiers.
func (s *Set) Clauses() []Clause {
	if s == nil {
		return nil
	}
	return s.clauses
}

// Len reports the number of distinct identifiers in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Title returns the title recorded for id. When a document repeats an
// identifier, the last occurrence wins.
func (s *Set) Title(id string) (string, bool) {
	if s == nil {
		return "", false
	}
	t, ok := s.titles[id]
	return t, ok
}

// IDs returns the distinct identifiers in first-appearance order. The
// comparator iterates this to keep deviation output deterministic.
func (s *Set) IDs() []string {
	if s == nil {
		return nil
	}
	return s.ids
}
