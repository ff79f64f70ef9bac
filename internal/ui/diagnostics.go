package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hackdex/internal/logtail"
)

// diagnosticsCmd reads the tail of the diagnostics log off the update loop.
func diagnosticsCmd(path string, theme Theme) tea.Cmd {
	palette := theme.LogPalette()
	return func() tea.Msg {
		if path == "" {
			return diagnosticsMsg{err: errors.New("no log file configured")}
		}
		lines, err := logtail.Read(path, DiagnosticsLines)
		if err != nil {
			return diagnosticsMsg{err: err}
		}
		return diagnosticsMsg{lines: logtail.ColorizeLines(lines, palette)}
	}
}

// diagnosticsModal shows recent log lines in a scrollable overlay.
type diagnosticsModal struct {
	path   string
	lines  []string
	err    error
	view   viewport.Model
	sized  bool
	follow bool
}

func newDiagnosticsModal(path string, lines []string, err error) *diagnosticsModal {
	return &diagnosticsModal{path: path, lines: lines, err: err, view: viewport.New(0, 0), follow: true}
}

// Update implements Modal.
func (d *diagnosticsModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch {
	case key.Matches(km, keys.Escape), key.Matches(km, keys.Quit), key.Matches(km, keys.Diagnostics):
		return d, nil, true
	case key.Matches(km, keys.Up):
		d.view.LineUp(1)
	case key.Matches(km, keys.Down):
		d.view.LineDown(1)
	case key.Matches(km, keys.Top):
		d.view.GotoTop()
	case key.Matches(km, keys.Bottom):
		d.view.GotoBottom()
	case key.Matches(km, keys.PageUp):
		d.view.ViewUp()
	case key.Matches(km, keys.PageDown):
		d.view.ViewDown()
	}
	d.follow = false
	return d, nil, false
}

// View implements Modal.
func (d *diagnosticsModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	w := maxInt(20, width-6)
	h := maxInt(3, height-6)

	if !d.sized || d.view.Width != w || d.view.Height != h {
		d.view.Width = w
		d.view.Height = h
		d.view.SetContent(d.content(styles))
		if d.follow {
			d.view.GotoBottom()
		}
		d.sized = true
	}

	title := styles.AccentText.Bold(true).Render("Diagnostics") + "  " +
		styles.FaintText.Render(truncate(d.path, maxInt(1, w-14)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, d.view.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (d *diagnosticsModal) content(styles Styles) string {
	if d.err != nil {
		return styles.DangerText.Render("Could not read log: " + d.err.Error())
	}
	if len(d.lines) == 0 {
		return styles.MutedText.Render("No log entries yet.")
	}
	return strings.Join(d.lines, "\n")
}
