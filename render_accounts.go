package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Accounts tab
// ---------------------------------------------------------------------------

func (m model) accountsView() string {
	cards := make([]string, 0, m.cardCount())
	cards = append(cards, renderAccountCard(
		"All Accounts",
		fmt.Sprintf("%d accounts", len(m.accounts)),
		m.totalBalance(),
		colorAccent,
		m.acctCursor == 0,
		m.sectionContentWidth(),
	))
	for i, a := range m.accounts {
		cards = append(cards, renderAccountCard(
			a.name,
			a.number,
			a.balance,
			accountAccent(i),
			m.acctCursor == i+1,
			m.sectionContentWidth(),
		))
	}

	content := strings.Join(cards, "\n")
	hint := statusStyle.Render("enter opens the account's transactions")
	return m.renderSection("Accounts", content+"\n"+hint)
}

// renderAccountCard draws one selectable row: accent bar, name, number, and
// a colored balance.
func renderAccountCard(name, detail string, balance float64, accent lipgloss.Color, selected bool, width int) string {
	accentBar := lipgloss.NewStyle().Foreground(accent).Render("▎")
	nameStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)
	balanceStyle := creditStyle
	if balance < 0 {
		balanceStyle = debitStyle
	}

	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}

	nameWidth := 20
	detailWidth := 18
	line := prefix + accentBar + " " +
		nameStyle.Render(padRight(truncate(name, nameWidth), nameWidth)) + " " +
		fieldLabelStyle.Render(padRight(truncate(detail, detailWidth), detailWidth)) + " " +
		balanceStyle.Render(fmt.Sprintf("%14s", formatAmount(balance)))
	return padRight(line, width)
}

// ---------------------------------------------------------------------------
// Account transaction modal
// ---------------------------------------------------------------------------

func (m model) accountModalView() string {
	title := titleStyle.Render(m.modal.title) + "  " + statusStyle.Render(m.modalSubtitle())
	chips := renderChips(presetLabels, m.modal.preset)

	var body string
	switch {
	case m.modal.loading:
		body = statusStyle.Render("Loading transactions...")
	default:
		rows := m.modalRows()
		body = renderTxTable(rows, -1, 0, modalVisibleRows, m.modalTableWidth(), nil, m.cfg.UI.DateFormat)
		if len(rows) > 0 {
			totals := summarize(rows)
			body += "\n" + fieldLabelStyle.Render(fmt.Sprintf("%d transactions · net %s", len(rows), formatAmount(totals.net)))
		}
	}

	hint := statusStyle.Render("p / 1-4 change range · esc close")
	return strings.Join([]string{title, chips, "", body, "", hint}, "\n")
}

const modalVisibleRows = 12

func (m model) modalTableWidth() int {
	width := m.width - 16
	if width < 48 {
		width = 48
	}
	if width > 90 {
		width = 90
	}
	return width
}
