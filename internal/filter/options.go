package filter

import (
	"sort"
	"strings"

	"github.com/five82/hackdex/internal/catalog"
)

// Option is one selectable value of a filter group.
type Option struct {
	Value string
	Label string
	// Count is the number of catalog hacks carrying Value.
	Count int
}

// Group is a filter field together with its selectable options.
type Group struct {
	Field   Field
	Options []Option
}

// Options lists the selectable values per field: every key of the
// display-name table for the field's category plus every value present in
// the catalog, sorted by label.
func Options(hacks []catalog.Hack, names catalog.Names) []Group {
	groups := make([]Group, 0, len(fields))
	for _, f := range fields {
		counts := make(map[string]int)
		for _, key := range names.Keys(f.Name) {
			if key != "" {
				counts[key] += 0
			}
		}
		for _, hack := range hacks {
			for _, v := range f.Values(hack) {
				if v != "" {
					counts[v]++
				}
			}
		}

		opts := make([]Option, 0, len(counts))
		for value, count := range counts {
			opts = append(opts, Option{Value: value, Label: names.Format(f.Name, value), Count: count})
		}
		sort.Slice(opts, func(i, j int) bool {
			li, lj := strings.ToLower(opts[i].Label), strings.ToLower(opts[j].Label)
			if li == lj {
				return opts[i].Value < opts[j].Value
			}
			return li < lj
		})
		groups = append(groups, Group{Field: f, Options: opts})
	}
	return groups
}
