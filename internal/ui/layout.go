package ui

// Layout dimensions.
const (
	// LayoutCompactWidth is the threshold below which the filter panel is
	// hidden unless it has focus.
	LayoutCompactWidth = 90

	// FilterPanelWidth is the width of the filter panel including borders.
	FilterPanelWidth = 34

	// chromeHeight is the rows used by header, search bar and footer.
	chromeHeight = 4
)

// Diagnostics limits.
const (
	// DiagnosticsLines is how many trailing log lines the overlay shows.
	DiagnosticsLines = 200
)
