package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Budget tab view
// ---------------------------------------------------------------------------

var budgetStatusStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(colorGreen),
	lipgloss.NewStyle().Foreground(colorYellow),
	lipgloss.NewStyle().Foreground(colorRed),
}

func (m model) budgetView() string {
	lines := m.budgetLines()
	totalBudgeted, totalSpent := budgetTotals(lines)
	remaining := totalBudgeted - totalSpent

	remainingStyle := creditStyle
	if remaining < 0 {
		remainingStyle = debitStyle
	}

	out := []string{
		renderChips(budgetPeriodLabels, m.budget.period) + "  " +
			titleStyle.Render(budgetWindowLabel(m.budget.period, m.budget.offset, m.now())),
		"",
		fieldLabelStyle.Render("Budgeted ") + titleStyle.Render(formatAmount(totalBudgeted)) +
			fieldLabelStyle.Render("   Spent ") + debitStyle.Render(formatAmount(totalSpent)) +
			fieldLabelStyle.Render("   Remaining ") + remainingStyle.Render(formatAmount(remaining)),
		"",
		tableHeaderStyle.Render(fmt.Sprintf("  %-20s  %12s  %12s  %12s  %s",
			"Category", "Budgeted", "Spent", "Remaining", "Status")),
	}

	if len(lines) == 0 {
		out = append(out, statusStyle.Render("  No budgets set. Press enter to add one."))
	}
	for i, l := range lines {
		prefix := "  "
		if i == m.budget.cursor {
			prefix = cursorStyle.Render("> ")
		}
		catField := lipgloss.NewStyle().Foreground(categoryColor(l.category)).
			Render(padRight(truncate(l.category, 20), 20))
		remField := fmt.Sprintf("%12s", formatAmount(l.remaining))
		if l.remaining < 0 {
			remField = debitStyle.Render(remField)
		}
		row := prefix + catField +
			fmt.Sprintf("  %12s", formatAmount(l.budgeted)) +
			fmt.Sprintf("  %12s", formatAmount(l.spent)) +
			"  " + remField +
			"  " + budgetStatusStyles[l.status].Render(budgetStatusLabels[l.status])
		out = append(out, row)
	}

	out = append(out, "")
	if m.budget.editing && m.budget.cursor < len(lines) {
		out = append(out,
			fieldLabelStyle.Render("Monthly limit for ")+
				titleStyle.Render(lines[m.budget.cursor].category)+
				fieldLabelStyle.Render(": ")+m.budget.editInput.View(),
			statusStyle.Render("enter save · esc cancel"))
	} else {
		out = append(out, statusStyle.Render("←/→ period · [/] earlier/later · enter edit limit · ctrl+r reset"))
	}

	return m.renderSection("Budget", strings.Join(out, "\n"))
}
