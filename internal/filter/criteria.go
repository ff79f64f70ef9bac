package filter

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SearchKey is the form key of the free-text input.
const SearchKey = "search"

// ErrUnknownGroup reports a query key that names no filter group.
var ErrUnknownGroup = errors.New("unknown filter group")

// Criteria is the active filter state: free text plus, per field name, the
// set of accepted raw values. An empty set imposes no constraint.
type Criteria struct {
	Search   string
	Selected map[string][]string
}

// IsZero reports whether the criteria constrain nothing.
func (c Criteria) IsZero() bool {
	if c.Search != "" {
		return false
	}
	for _, values := range c.Selected {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// Has reports whether value is selected for field.
func (c Criteria) Has(field, value string) bool {
	for _, v := range c.Selected[field] {
		if v == value {
			return true
		}
	}
	return false
}

// Count returns the number of selected values across all fields.
func (c Criteria) Count() int {
	n := 0
	for _, values := range c.Selected {
		n += len(values)
	}
	return n
}

// Clone returns a deep copy.
func (c Criteria) Clone() Criteria {
	out := Criteria{Search: c.Search}
	if len(c.Selected) > 0 {
		out.Selected = make(map[string][]string, len(c.Selected))
		for field, values := range c.Selected {
			out.Selected[field] = append([]string(nil), values...)
		}
	}
	return out
}

// Toggle flips value in the field's selected set.
func (c *Criteria) Toggle(field, value string) {
	if value == "" {
		return
	}
	if c.Selected == nil {
		c.Selected = make(map[string][]string)
	}
	values := c.Selected[field]
	for i, v := range values {
		if v == value {
			c.Selected[field] = append(values[:i:i], values[i+1:]...)
			if len(c.Selected[field]) == 0 {
				delete(c.Selected, field)
			}
			return
		}
	}
	c.Selected[field] = append(values, value)
}

// Clear drops every selection. The search text is kept.
func (c *Criteria) Clear() {
	c.Selected = nil
}

// Values encodes the criteria with form keys ("search", "base[]", ...).
func (c Criteria) Values() url.Values {
	out := url.Values{}
	if c.Search != "" {
		out.Set(SearchKey, c.Search)
	}
	for _, f := range fields {
		if values := c.Selected[f.Name]; len(values) > 0 {
			out[f.FormKey()] = append([]string(nil), values...)
		}
	}
	return out
}

// String renders the criteria as a query string.
func (c Criteria) String() string {
	return c.Values().Encode()
}

// FromValues builds criteria from submitted form values. Unknown keys and
// empty values are ignored; duplicates collapse.
func FromValues(values url.Values) Criteria {
	c := Criteria{Search: values.Get(SearchKey)}
	for _, f := range fields {
		addValues(&c, f, values[f.FormKey()])
	}
	return c
}

// ParseQuery parses a query such as "status=complete&language[]=en,es".
// Keys may be written with or without "[]" and values may be comma
// separated. Unlike FromValues it rejects unknown keys, suggesting the
// closest group name when one is near.
func ParseQuery(raw string) (Criteria, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Criteria{}, nil
	}
	parsed, err := url.ParseQuery(raw)
	if err != nil {
		return Criteria{}, fmt.Errorf("parse filter %q: %w", raw, err)
	}

	keys := make([]string, 0, len(parsed))
	for key := range parsed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var c Criteria
	for _, key := range keys {
		if key == SearchKey {
			c.Search = parsed.Get(key)
			continue
		}
		f, ok := FieldByGroup(key)
		if !ok {
			f, ok = FieldByName(key)
		}
		if !ok {
			if hint := suggestGroup(key); hint != "" {
				return Criteria{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownGroup, key, hint)
			}
			return Criteria{}, fmt.Errorf("%w %q", ErrUnknownGroup, key)
		}
		var values []string
		for _, v := range parsed[key] {
			values = append(values, strings.Split(v, ",")...)
		}
		addValues(&c, f, values)
	}
	return c, nil
}

func addValues(c *Criteria, f Field, values []string) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || c.Has(f.Name, v) {
			continue
		}
		if c.Selected == nil {
			c.Selected = make(map[string][]string)
		}
		c.Selected[f.Name] = append(c.Selected[f.Name], v)
	}
}

func suggestGroup(key string) string {
	key = strings.ToLower(strings.TrimSuffix(key, "[]"))
	if len(key) < 2 {
		return ""
	}
	best, bestDist := "", -1
	candidates := []string{SearchKey}
	for _, f := range fields {
		candidates = append(candidates, f.Group)
	}
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(key, cand)
		if dist > suggestionLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
