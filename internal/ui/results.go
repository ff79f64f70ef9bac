package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hackdex/internal/filter"
	"github.com/five82/hackdex/internal/render"
)

// refilter runs one complete filter and render pass over the catalog.
func (m *Model) refilter() {
	visible := filter.Apply(m.snapshot.Hacks, m.criteria)
	m.cards = render.BuildCards(visible, m.formatter)
	m.selected = 0
	m.resultsView.GotoTop()
	m.renderResults()
}

// columns returns how many cards fit side by side.
func (m Model) columns() int {
	return maxInt(1, m.resultsView.Width/(m.cardWidth+1))
}

// renderResults rebuilds the card grid and keeps the selected card in view.
func (m *Model) renderResults() {
	styles := m.theme.Styles()
	m.rowOffsets = m.rowOffsets[:0]

	if len(m.cards) == 0 {
		m.resultsView.SetContent(styles.MutedText.Padding(1, 2).Render(render.NoResultsMessage))
		return
	}

	cols := m.columns()
	rows := make([]string, 0, len(m.cards)/cols+1)
	line := 0
	for start := 0; start < len(m.cards); start += cols {
		end := minInt(start+cols, len(m.cards))
		boxes := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			boxes = append(boxes, m.renderCard(m.cards[i], i == m.selected), " ")
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
		m.rowOffsets = append(m.rowOffsets, line)
		line += lipgloss.Height(row)
		rows = append(rows, row)
	}
	m.resultsView.SetContent(strings.Join(rows, "\n"))
	m.ensureSelectedVisible()
}

// renderCard draws one hack as a bordered box.
func (m Model) renderCard(card render.Card, selected bool) string {
	styles := m.theme.Styles()
	inner := maxInt(8, m.cardWidth-4)

	var lines []string
	lines = append(lines, styles.Text.Bold(true).Render(truncate(card.Title, inner)))

	badge := styles.StatusStyle(card.Status).Render(truncate(card.StatusLabel, inner/2))
	base := styles.MutedText.Render(truncate(card.BaseLabel, maxInt(1, inner-lipgloss.Width(badge)-1)))
	lines = append(lines, badge+" "+base)
	lines = append(lines, styles.MutedText.Render(truncate("by "+card.Creator, inner)))
	lines = append(lines, labelled(styles, "Languages", card.Languages))

	for _, in := range card.Info {
		lines = append(lines, labelled(styles, in.Label, in.Value))
	}
	for _, in := range card.Lists {
		lines = append(lines, labelled(styles, in.Label, in.Value))
	}

	if !card.HasCover {
		lines = append(lines, styles.FaintText.Render("no cover"))
	}
	lines = append(lines, styles.FaintText.Render(truncate(m.resolveLink(card.Link), inner)))

	box := styles.Card
	if selected {
		box = styles.CardSelected
	}
	return box.Width(m.cardWidth - 2).Render(strings.Join(lines, "\n"))
}

func labelled(styles Styles, label, value string) string {
	return styles.FaintText.Render(label+":") + " " + styles.Text.Render(value)
}

// handleResultsKey handles keys while the card list has focus.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.columns()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selectCard(m.selected - cols)
	case key.Matches(msg, m.keys.Down):
		m.selectCard(m.selected + cols)
	case msg.String() == "left":
		m.selectCard(m.selected - 1)
	case msg.String() == "right":
		m.selectCard(m.selected + 1)
	case key.Matches(msg, m.keys.Top):
		m.selectCard(0)
	case key.Matches(msg, m.keys.Bottom):
		m.selectCard(len(m.cards) - 1)
	case key.Matches(msg, m.keys.PageUp):
		m.selectCard(m.selected - cols*m.rowsPerPage())
	case key.Matches(msg, m.keys.PageDown):
		m.selectCard(m.selected + cols*m.rowsPerPage())
	case key.Matches(msg, m.keys.Open):
		card, ok := m.selectedCard()
		if !ok {
			return m, nil
		}
		return m, openCmd(m.open, m.resolveLink(card.Link))
	case key.Matches(msg, m.keys.Escape):
		return m, m.setFocus(focusSearch)
	}
	return m, nil
}

// selectedCard returns the card under the cursor.
func (m Model) selectedCard() (render.Card, bool) {
	if m.selected < 0 || m.selected >= len(m.cards) {
		return render.Card{}, false
	}
	return m.cards[m.selected], true
}

// selectCard moves the cursor, clamped to the card list.
func (m *Model) selectCard(idx int) {
	if len(m.cards) == 0 {
		return
	}
	idx = maxInt(0, minInt(len(m.cards)-1, idx))
	if idx == m.selected {
		return
	}
	m.selected = idx
	m.renderResults()
}

// rowsPerPage estimates how many card rows fill the viewport.
func (m Model) rowsPerPage() int {
	if len(m.rowOffsets) < 2 {
		return 1
	}
	rowHeight := m.rowOffsets[1] - m.rowOffsets[0]
	return maxInt(1, m.resultsView.Height/maxInt(1, rowHeight))
}

// ensureSelectedVisible scrolls so the selected card's row is in view. A row
// taller than the viewport is pinned to its top.
func (m *Model) ensureSelectedVisible() {
	if len(m.rowOffsets) == 0 || m.resultsView.Height <= 0 {
		return
	}
	row := m.selected / m.columns()
	if row >= len(m.rowOffsets) {
		return
	}
	top := m.rowOffsets[row]
	bottom := m.resultsView.TotalLineCount()
	if row+1 < len(m.rowOffsets) {
		bottom = m.rowOffsets[row+1]
	}

	switch {
	case top < m.resultsView.YOffset:
		m.resultsView.SetYOffset(top)
	case bottom > m.resultsView.YOffset+m.resultsView.Height:
		if bottom-top > m.resultsView.Height {
			m.resultsView.SetYOffset(top)
		} else {
			m.resultsView.SetYOffset(bottom - m.resultsView.Height)
		}
	}
}
