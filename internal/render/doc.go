// Package render turns filtered hacks into cards.
//
// BuildCards produces the Card view model shared by every output: the HTML
// fragment and page written here, the XLSX export and the terminal card
// list. Each render pass rebuilds the whole list; there is no incremental
// patching, so rendering the same hacks twice yields identical output.
//
// # Card Contents
//
//   - link "h/<id>" and image "h/<id>/<cover>", or PlaceholderImage
//   - status and base, formatted through the display-name table
//   - creator and the comma-joined raw languages ("N/A" when none)
//   - info blocks Difficulty, Story, Last updated, Length
//   - list blocks Pokédex and Features, formatted and comma-joined
//
// Optional blocks are omitted when the hack lacks the field. A last_update
// that is present but cannot be parsed still gets its block, showing "N/A".
// Missing title, creator or base are replaced by "Untitled" and "Unknown".
//
// # HTML
//
// WriteResults writes the results fragment with html/template, so every
// catalog string is escaped. An empty list renders exactly one
// <p class="no-results"> and no cards. Cover images hide their container
// when they fail to load.
package render
