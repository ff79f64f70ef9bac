// Package ui provides the terminal catalog browser for hackdex.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds every piece of state and
// Update processes one message at a time, so each keystroke runs exactly one
// complete filter and render pass over the catalog before the next input is
// seen. Blocking work (the catalog load, reading the diagnostics log,
// launching the browser) runs in tea.Cmd functions and reports back as
// messages.
//
// # Package Structure
//
//   - model.go: Options, Model, New, Init, Update, View, Run and the commands
//   - form.go: filter panel (one checkbox per option, grouped by field)
//   - results.go: card grid, selection and scrolling
//   - header.go: header, search bar, footer and the Loading/Error screens
//   - diagnostics.go: log tail overlay
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings (bubbles/key), also feeding bubbles/help
//   - theme.go: color themes and lipgloss styles
//
// # Page Lifecycle
//
// The page starts in Loading with a spinner. Options.Load runs once; its
// snapshot moves the page to Ready or Error. Error is terminal: the message
// "Failed to load required data: <err>. Please try again later." is shown and
// only quit is accepted. Later snapshots are ignored.
//
// # Layout
//
//	hackdex  12/240 hacks  2 filters  Nightfox
//	/ crystal
//	╭ filters ─────╮ ╭ card ───────╮ ╭ card ───────╮
//	│ Base         │ │ Title       │ │ Title       │
//	│ [x] Emerald  │ │ Complete .. │ │ Beta ...    │
//	╰──────────────╯ ╰─────────────╯ ╰─────────────╯
//	tab next pane • / search • space toggle • enter open • ? help • q quit
//
// Below LayoutCompactWidth columns the filter panel is hidden unless it has
// focus.
//
// # Key Bindings
//
//   - tab / shift+tab: cycle search, filters and results
//   - /: jump to search; esc or enter leaves it
//   - j/k, g/G, pgup/pgdown: move in the focused pane
//   - space or enter (filters): toggle the option under the cursor
//   - c (filters): clear every filter, keeping the search text
//   - enter or o (results): open the hack's page in the browser
//   - T: cycle theme (persisted to prefs)
//   - D: show the last lines of the diagnostics log
//   - h or ?: help
//   - q or ctrl+c: quit
//
// # External Dependencies
//
//   - filter: criteria, matching and option lists
//   - render: card view models shared with the HTML renderer
//   - state: page lifecycle snapshots
//   - logtail: diagnostics log reading and colorizing
//   - prefs: theme persistence
package ui
