// Package filter implements the hackdex filter engine.
//
// # Criteria
//
// Criteria hold the free-text search and, per item field, the set of
// accepted raw values. They are derived fresh from the filter form on every
// input event and never persisted:
//
//	c := filter.FromValues(form)           // lenient, from form groups
//	c, err := filter.ParseQuery("status=complete&language=en,es") // strict
//
// Form groups are named base[], status[], pokedex[], story[], length[],
// difficulty[], features[] and language[]. The language[] group feeds the
// item field "languages"; the field table in fields.go maps one to the
// other.
//
// # Matching
//
// Apply is a stable filter over the immutable catalog:
//
//   - the search text is matched first, as a case-insensitive substring of
//     the title only
//   - every field with a non-empty selected set must pass (AND across fields)
//   - a single-valued field passes when its value is selected
//   - an array-valued field passes when any element is selected (OR)
//   - an absent value never satisfies a non-empty set
//
// With no search text and no selections Apply returns every hack, in order.
//
// # Options
//
// Options builds the selectable values for the filter form from the
// display-name table and the catalog itself, so values missing from the
// table still show up with their fallback label.
package filter
