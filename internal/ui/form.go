package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hackdex/internal/filter"
)

// formRow is one selectable option in the filter panel.
type formRow struct {
	group  int
	option int
	// line is the row's line index within the rendered panel.
	line int
}

// buildFormRows flattens the option groups into cursor rows.
func (m *Model) buildFormRows() {
	m.formRows = m.formRows[:0]
	line := 0
	for gi, g := range m.groups {
		line++ // group title
		if len(g.Options) == 0 {
			line++
		}
		for oi := range g.Options {
			m.formRows = append(m.formRows, formRow{group: gi, option: oi, line: line})
			line++
		}
		line++ // spacer
	}
	if m.formCursor >= len(m.formRows) {
		m.formCursor = maxInt(0, len(m.formRows)-1)
	}
}

// currentOption returns the field and option under the cursor.
func (m Model) currentOption() (filter.Field, filter.Option, bool) {
	if m.formCursor < 0 || m.formCursor >= len(m.formRows) {
		return filter.Field{}, filter.Option{}, false
	}
	row := m.formRows[m.formCursor]
	g := m.groups[row.group]
	return g.Field, g.Options[row.option], true
}

// handleFormKey handles keys while the filter panel has focus.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveFormCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFormCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.moveFormCursor(-len(m.formRows))
	case key.Matches(msg, m.keys.Bottom):
		m.moveFormCursor(len(m.formRows))
	case key.Matches(msg, m.keys.PageUp):
		m.moveFormCursor(-maxInt(1, m.formView.Height/2))
	case key.Matches(msg, m.keys.PageDown):
		m.moveFormCursor(maxInt(1, m.formView.Height/2))
	case key.Matches(msg, m.keys.Toggle):
		field, opt, ok := m.currentOption()
		if !ok {
			return m, nil
		}
		m.criteria.Toggle(field.Name, opt.Value)
		m.refilter()
		m.renderForm()
	case key.Matches(msg, m.keys.Clear):
		if m.criteria.Count() == 0 {
			return m, nil
		}
		m.criteria.Clear()
		m.refilter()
		m.renderForm()
	case key.Matches(msg, m.keys.Escape):
		return m, m.setFocus(focusResults)
	}
	return m, nil
}

func (m *Model) moveFormCursor(delta int) {
	if len(m.formRows) == 0 {
		return
	}
	m.formCursor = maxInt(0, minInt(len(m.formRows)-1, m.formCursor+delta))
	m.renderForm()
}

// renderForm rebuilds the filter panel content and keeps the cursor row in
// view.
func (m *Model) renderForm() {
	styles := m.theme.Styles()
	width := m.formView.Width
	focused := m.focus == focusFilters

	var b strings.Builder
	cursorRow := -1
	if m.formCursor < len(m.formRows) {
		cursorRow = m.formCursor
	}
	row := 0
	for gi, g := range m.groups {
		title := g.Field.Title
		if n := len(m.criteria.Selected[g.Field.Name]); n > 0 {
			title = fmt.Sprintf("%s (%d)", title, n)
		}
		b.WriteString(styles.AccentText.Bold(true).Render(truncate(title, width)))
		b.WriteString("\n")

		if len(g.Options) == 0 {
			b.WriteString(styles.FaintText.Render("  none"))
			b.WriteString("\n")
		}
		for _, opt := range g.Options {
			checked := m.criteria.Has(g.Field.Name, opt.Value)
			count := fmt.Sprintf(" %d", opt.Count)
			label := truncate(opt.Label, maxInt(1, width-4-len(count)))
			line := ternary(checked, "[x] ", "[ ] ") + padRight(label, maxInt(0, width-4-len(count))) + count

			style := styles.Text
			switch {
			case row == cursorRow && focused:
				style = styles.Selected
			case checked:
				style = styles.SuccessText
			case opt.Count == 0:
				style = styles.FaintText
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
			row++
		}
		if gi < len(m.groups)-1 {
			b.WriteString("\n")
		}
	}

	m.formView.SetContent(strings.TrimRight(b.String(), "\n"))

	if cursorRow >= 0 && m.formView.Height > 0 {
		line := m.formRows[cursorRow].line
		switch {
		case line < m.formView.YOffset:
			m.formView.SetYOffset(line)
		case line >= m.formView.YOffset+m.formView.Height:
			m.formView.SetYOffset(line - m.formView.Height + 1)
		}
	}
}

// viewForm renders the bordered filter panel.
func (m Model) viewForm() string {
	border := m.theme.BorderMuted
	if m.focus == focusFilters {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(m.formView.Width).
		Height(m.formView.Height).
		Render(m.formView.View())
}
