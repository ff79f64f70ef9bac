// Package app provides the orchestration layer for hackdex.
//
// # Overview
//
// This package wires together configuration, logging, the catalog client,
// page state and the UI. It is the composition root: every dependency is
// built here and handed down.
//
// # Architecture
//
//  1. Load configuration from ~/.config/hackdex/config.toml
//  2. Parse the -filter query strictly (unknown groups are an error)
//  3. Open the JSON diagnostics log
//  4. Create the catalog HTTP client
//  5. Either export once and exit, or start the TUI
//
// # Components
//
//   - app.go: Run, export mode
//   - loader.go: Loader, the single catalog load of a TUI session
//   - logging.go: zap file logger
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read hackdex config
//	       ├─────> filter.ParseQuery()  Preselected criteria
//	       ├─────> newLogger()          Diagnostics log file
//	       ├─────> catalog.NewClient()  HTTP client
//	       │
//	       ├─ export ─> catalog.Load() → filter.Apply() → export.WriteFile()
//	       │
//	       └─ tui ────> ui.Run()        Start TUI (blocks)
//	                     └─> Loader.Load()
//	                          ├─> catalog.Load()   db.json + pretty.json
//	                          └─> store.Resolve()  Loading → Ready | Error
//
// # Loading Behavior
//
// The catalog is fetched exactly once per session. There is no polling and
// no retry: a failed load leaves the page in its terminal Error phase, and
// the user restarts hackdex to try again.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Malformed -filter query
//   - Catalog client initialization failure
//   - In export mode: unsupported extension, load failure, write failure
//
// In TUI mode a load failure is not returned; it is logged and shown on the
// error screen.
//
// # Logging
//
// Diagnostics are written as JSON lines (ts, level, msg, fields) to the
// configured log file, because the TUI owns the terminal. The level comes
// from HACKDEX_LOG_LEVEL and defaults to debug. When the file cannot be
// opened the logger silently becomes a no-op.
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	opts := app.Options{
//		Filter:     "status=complete",
//		ExportPath: "complete.xlsx",
//	}
//
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("hackdex failed: %v", err)
//	}
//
// # Dependencies
//
//   - config: Loads and parses hackdex configuration files
//   - catalog: HTTP client and concurrent load
//   - filter: Query parsing and filtering
//   - export: HTML and XLSX output
//   - state: Page lifecycle store
//   - ui: Terminal user interface
package app
