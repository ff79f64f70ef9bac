// Package logtail reads and colorizes the hackdex diagnostics log.
//
// # Overview
//
// hackdex owns the terminal while it runs, so diagnostics go to a log file
// instead of stderr. The TUI shows the tail of that file in an overlay; this
// package does the reading and the styling.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines, so the last N lines of an
// arbitrarily large file cost O(maxLines) memory and one sequential scan.
// A non-positive maxLines returns the whole file. A missing file is not an
// error; it simply has no lines yet.
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//	if err != nil {
//		logger.Warn("read diagnostics log", zap.Error(err))
//	}
//
// # Colorizing
//
// The log is written by zap's JSON encoder. Parse turns a record into an
// Entry (time, level, message, sorted extra fields); ColorizeLine renders it
// as a single line with lipgloss styles from a Palette:
//
//	{"level":"info","ts":"...","msg":"catalog loaded","hacks":12}
//	→ <ts> INFO catalog loaded hacks=12
//
// Lines that are not JSON records (stack traces, panics) pass through
// unchanged.
package logtail
