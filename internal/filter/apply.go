package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/hackdex/internal/catalog"
)

// Apply returns the hacks matching c, in catalog order. The input slice is
// never modified; the result is always a fresh slice.
func Apply(hacks []catalog.Hack, c Criteria) []catalog.Hack {
	m := newMatcher(c)
	out := make([]catalog.Hack, 0, len(hacks))
	for _, hack := range hacks {
		if m.match(hack) {
			out = append(out, hack)
		}
	}
	return out
}

// Match reports whether a single hack satisfies c.
func Match(hack catalog.Hack, c Criteria) bool {
	return newMatcher(c).match(hack)
}

type constraint struct {
	field    Field
	accepted map[string]struct{}
}

type matcher struct {
	lower       cases.Caser
	needle      string
	constraints []constraint
}

func newMatcher(c Criteria) *matcher {
	m := &matcher{lower: cases.Lower(language.Und)}
	m.needle = m.lower.String(c.Search)
	for _, f := range fields {
		values := c.Selected[f.Name]
		if len(values) == 0 {
			continue
		}
		accepted := make(map[string]struct{}, len(values))
		for _, v := range values {
			accepted[v] = struct{}{}
		}
		m.constraints = append(m.constraints, constraint{field: f, accepted: accepted})
	}
	return m
}

func (m *matcher) match(hack catalog.Hack) bool {
	if m.needle != "" && !strings.Contains(m.lower.String(hack.Title), m.needle) {
		return false
	}
	for _, con := range m.constraints {
		if !con.satisfied(hack) {
			return false
		}
	}
	return true
}

// Absent values never satisfy a constraint: an empty list or an empty
// single value finds nothing in accepted.
func (con constraint) satisfied(hack catalog.Hack) bool {
	for _, v := range con.field.Values(hack) {
		if v == "" {
			continue
		}
		if _, ok := con.accepted[v]; ok {
			return true
		}
	}
	return false
}
