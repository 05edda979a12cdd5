package main

import "strings"

// ---------------------------------------------------------------------------
// Filter popup
// ---------------------------------------------------------------------------

func (m model) filterPopupView() string {
	f := m.form

	accountLabels := make([]string, 0, len(m.accounts)+1)
	accountLabels = append(accountLabels, "All accounts")
	for _, a := range m.accounts {
		accountLabels = append(accountLabels, a.name)
	}

	lines := []string{
		titleStyle.Render("Filters"),
		"",
		filterFieldLabel("Account", f.focus == fieldAccount) + renderChips(accountLabels, f.accountCursor),
		filterFieldLabel("Type", f.focus == fieldType) + renderChips(txTypeLabels, f.typeCursor),
		filterFieldLabel("Min amount", f.focus == fieldMin) + f.minInput.View(),
		filterFieldLabel("Max amount", f.focus == fieldMax) + f.maxInput.View(),
		filterFieldLabel("Search", f.focus == fieldSearch) + f.searchInput.View(),
		"",
		statusStyle.Render("tab next field · ←/→ choose · enter apply · esc cancel"),
	}
	return strings.Join(lines, "\n")
}

func filterFieldLabel(name string, focused bool) string {
	text := padRight(name, 12)
	if focused {
		return fieldFocusStyle.Render("› "+text) + " "
	}
	return fieldLabelStyle.Render("  "+text) + " "
}
