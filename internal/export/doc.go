// Package export writes the filtered catalog to a file.
//
// Two formats are supported, picked by extension:
//
//   - .html / .htm: a standalone page with the same cards as the results
//     fragment, with a <base> pointing at the catalog site so card links
//     and cover images resolve
//   - .xlsx: a "Hacks" worksheet with a frozen header row and one row per
//     hack; display names are formatted and absent optional fields are blank
//
// Both formats go through render.BuildCards, so labels, placeholders and
// the "N/A" date fallback match what the TUI shows.
package export
