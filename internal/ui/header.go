package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// loadErrorText is the terminal message shown when the catalog fails to load.
func loadErrorText(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf("Failed to load required data: %s. Please try again later.", msg)
}

// renderHeader renders the status bar: name, match count and theme.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("hackdex", styles.Logo),
		bg.Render(fmt.Sprintf("%d/%d hacks", len(m.cards), len(m.snapshot.Hacks)), styles.Text.Bold(true)),
	}
	if n := m.criteria.Count(); n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d filters", n), styles.WarningText))
	}
	if m.formatter != nil && m.formatter.Misses() > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d unnamed values", m.formatter.Misses()), styles.FaintText))
	}
	parts = append(parts, bg.Render(m.theme.Name, styles.MutedText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderSearchBar renders the search input line.
func (m Model) renderSearchBar() string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if m.focus != focusSearch && m.search.Value() == "" {
		return style.Render(m.theme.Styles().FaintText.Render("/ to search titles"))
	}
	return style.Render(m.search.View())
}

// renderFooter renders the short help or the last status message.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if status := m.statusLine(); status != "" {
		return styles.Footer.Width(m.width).Render(truncate(status, maxInt(1, m.width-2)))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(m.help.View(m.keys))
}

// renderMain composes header, search bar, panes and footer.
func (m Model) renderMain() string {
	var body string
	results := m.resultsView.View()
	if m.showForm() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewForm(), results)
	} else {
		body = results
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderSearchBar(),
		body,
		m.renderFooter(),
	)
}

// renderLoading shows the spinner while the catalog is fetched.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	content := m.spinner.View() + " " + styles.Text.Render("Loading catalog…")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderError shows the terminal load failure.
func (m Model) renderError() string {
	styles := m.theme.Styles()
	width := maxInt(20, minInt(m.width-4, 80))
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.DangerText.Width(width).Align(lipgloss.Center).Render(loadErrorText(m.snapshot.Err)),
		"",
		styles.FaintText.Render("press q to quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
