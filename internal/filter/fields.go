package filter

import (
	"strings"

	"github.com/five82/hackdex/internal/catalog"
)

// Field describes one filterable item field and the form group feeding it.
type Field struct {
	// Name is the item field and also the display-name category.
	Name string
	// Group is the form group name without the trailing "[]".
	Group string
	// Title labels the group in forms and exports.
	Title string
	// Multi marks array-valued fields.
	Multi bool

	get func(catalog.Hack) []string
}

// FormKey returns the form group key, e.g. "language[]".
func (f Field) FormKey() string {
	return f.Group + "[]"
}

// Values returns the raw values of the field on hack. Absent single-valued
// fields yield nil.
func (f Field) Values(hack catalog.Hack) []string {
	if f.get == nil {
		return nil
	}
	return f.get(hack)
}

func single(get func(catalog.Hack) string) func(catalog.Hack) []string {
	return func(h catalog.Hack) []string {
		if v := get(h); v != "" {
			return []string{v}
		}
		return nil
	}
}

// The form names its language group "language[]" while items carry
// "languages"; the table below is the only place the two meet.
var fields = []Field{
	{Name: "base", Group: "base", Title: "Base", get: single(func(h catalog.Hack) string { return h.Base })},
	{Name: "status", Group: "status", Title: "Status", get: single(func(h catalog.Hack) string { return h.Status })},
	{Name: "pokedex", Group: "pokedex", Title: "Pokédex", Multi: true, get: func(h catalog.Hack) []string { return h.Pokedex }},
	{Name: "story", Group: "story", Title: "Story", get: single(func(h catalog.Hack) string { return h.Story })},
	{Name: "length", Group: "length", Title: "Length", get: single(func(h catalog.Hack) string { return h.Length })},
	{Name: "difficulty", Group: "difficulty", Title: "Difficulty", get: single(func(h catalog.Hack) string { return h.Difficulty })},
	{Name: "features", Group: "features", Title: "Features", Multi: true, get: func(h catalog.Hack) []string { return h.Features }},
	{Name: "languages", Group: "language", Title: "Language", Multi: true, get: func(h catalog.Hack) []string { return h.Languages }},
}

// Fields returns the filterable fields in form order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldByName looks a field up by its item field name.
func FieldByName(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldByGroup looks a field up by form group, with or without "[]".
func FieldByGroup(group string) (Field, bool) {
	group = strings.TrimSuffix(group, "[]")
	for _, f := range fields {
		if f.Group == group {
			return f, true
		}
	}
	return Field{}, false
}
