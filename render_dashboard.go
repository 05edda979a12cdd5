package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Dashboard view
// ---------------------------------------------------------------------------

func (m model) dashboardView() string {
	greeting := m.greetingLine()
	summary := m.renderSection("Overview", renderSummary(summarize(m.filtered), m.totalBalance(), m.sectionContentWidth()))
	chart := m.renderSection("Spending by Category", renderCategoryChart(aggregateSpending(m.filtered), m.sectionContentWidth()))
	trend := m.renderSection("Spending Trend", renderSpendingTrend(m.filtered, m.criteria, m.sectionContentWidth()))
	table := m.renderSection(m.transactionsTitle(), renderTxTable(m.filtered, m.cursor, m.topIndex, m.visibleRows(), m.sectionContentWidth(), m.accountNames(), m.cfg.UI.DateFormat))
	return greeting + "\n" + summary + "\n" + chart + "\n" + trend + "\n" + table
}

func (m model) accountNames() map[string]string {
	names := make(map[string]string, len(m.accounts))
	for _, a := range m.accounts {
		names[a.id] = a.name
	}
	return names
}

func greetingFor(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (m model) greetingLine() string {
	name := m.sess.DisplayName
	if name == "" {
		name = "there"
	}
	line := titleStyle.Render(greetingFor(m.now())+", "+name) + statusStyle.Render("  Here's where your money went.")
	if m.width == 0 {
		return line
	}
	return lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Top, line)
}

// transactionsTitle folds the active criteria into the section title so the
// current date window and filter count stay visible without the modal.
func (m model) transactionsTitle() string {
	var window string
	switch {
	case m.criteria.startDate.IsZero() && m.criteria.endDate.IsZero():
		window = "All time"
	case m.criteria.endDate.IsZero():
		window = "From " + formatDisplayDate(m.criteria.startDate)
	case m.criteria.startDate.IsZero():
		window = "Until " + formatDisplayDate(m.criteria.endDate)
	default:
		window = formatDisplayDate(m.criteria.startDate) + " – " + formatDisplayDate(m.criteria.endDate)
	}
	title := "Transactions · " + window
	if m.criteria.txType != txTypeAll {
		title += " · " + txTypeLabel(m.criteria.txType)
	}
	if n := activeFilterCount(m.criteria); n > 0 {
		title += fmt.Sprintf(" · %d filters", n)
	}
	return title
}

// ---------------------------------------------------------------------------
// Summary
// ---------------------------------------------------------------------------

func renderSummary(totals summaryTotals, balance float64, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(colorSubtext0)

	netStyle := creditStyle
	if totals.net < 0 {
		netStyle = debitStyle
	}
	balanceStyle := creditStyle
	if balance < 0 {
		balanceStyle = debitStyle
	}
	lines := []string{
		labelStyle.Render(fmt.Sprintf("%-12s", "Balance")) + " " + balanceStyle.Render(fmt.Sprintf("%12s", formatAmount(balance))),
		labelStyle.Render(fmt.Sprintf("%-12s", "Income")) + " " + creditStyle.Render(fmt.Sprintf("%12s", formatAmount(totals.income))),
		labelStyle.Render(fmt.Sprintf("%-12s", "Expenses")) + " " + debitStyle.Render(fmt.Sprintf("%12s", formatAmount(-totals.expenses))),
		labelStyle.Render(fmt.Sprintf("%-12s", "Net")) + " " + netStyle.Render(fmt.Sprintf("%12s", formatAmount(totals.net))),
	}
	for i, line := range lines {
		lines[i] = padRight(line, width)
	}
	return strings.Join(lines, "\n")
}

func summaryLineCount() int {
	return 4
}

// ---------------------------------------------------------------------------
// Category chart
// ---------------------------------------------------------------------------

const chartMaxBars = 6

// renderCategoryChart draws one bar per bucket, widest bucket filling the
// available bar width, with amount and share on the right.
func renderCategoryChart(buckets []categoryBucket, width int) string {
	if len(buckets) == 0 {
		return statusStyle.Render("No spending in this range.")
	}
	if len(buckets) > chartMaxBars {
		buckets = buckets[:chartMaxBars]
	}

	labelWidth := 20
	amountWidth := 18
	barWidth := width - labelWidth - amountWidth - 2
	if barWidth < 8 {
		barWidth = 8
	}

	lines := make([]string, 0, len(buckets))
	for _, b := range buckets {
		filled := int(b.barPct / 100 * float64(barWidth))
		if filled < 1 {
			filled = 1
		}
		barStyle := lipgloss.NewStyle().Foreground(categoryColor(b.name))
		bar := barStyle.Render(strings.Repeat("█", filled)) + strings.Repeat(" ", barWidth-filled)
		label := padRight(truncate(b.name, labelWidth), labelWidth)
		amount := fmt.Sprintf("%10s %5.1f%%", formatAmount(b.amount), b.percent)
		lines = append(lines, fieldLabelStyle.Render(label)+" "+bar+" "+statusStyle.Render(amount))
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Transaction table
// ---------------------------------------------------------------------------

// renderTxTable draws the shared transaction table. accountNames maps
// account ids to display names; nil hides the account column entirely.
// dateFormat is a Go reference layout; empty means ISO dates.
func renderTxTable(rows []transaction, cursor, topIndex, visible, width int, accountNames map[string]string, dateFormat string) string {
	showAccount := accountNames != nil
	cursorWidth := 2
	dateWidth := 12
	amountWidth := 12
	accountWidth := 0
	if showAccount {
		accountWidth = 10
	}
	catWidth := 16
	descWidth := width - dateWidth - amountWidth - accountWidth - catWidth - cursorWidth - 10
	if descWidth < 5 {
		descWidth = 5
	}

	header := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s", dateWidth, "Date", amountWidth, "Amount", descWidth, "Description", catWidth, "Category")
	if showAccount {
		header += fmt.Sprintf("  %-*s", accountWidth, "Account")
	}
	lines := []string{tableHeaderStyle.Render(header)}

	if len(rows) == 0 {
		lines = append(lines, statusStyle.Render("  No transactions match the current filters."))
		return strings.Join(lines, "\n")
	}

	end := topIndex + visible
	if end > len(rows) {
		end = len(rows)
	}
	for i := topIndex; i < end; i++ {
		row := rows[i]
		amountField := padRight(formatAmount(row.amount), amountWidth)
		if row.amount > 0 {
			amountField = creditStyle.Render(amountField)
		} else if row.amount < 0 {
			amountField = debitStyle.Render(amountField)
		}
		prefix := "  "
		if i == cursor {
			prefix = cursorStyle.Render("> ")
		}
		dateField := padRight(formatTableDate(row.date, dateFormat), dateWidth)
		descField := padRight(truncate(row.description, descWidth), descWidth)
		catField := lipgloss.NewStyle().Foreground(categoryColor(row.category)).
			Render(padRight(truncate(row.category, catWidth), catWidth))
		line := prefix + dateField + "  " + amountField + "  " + descField + "  " + catField
		if showAccount {
			name := accountNames[row.accountID]
			if name == "" {
				name = row.accountID
			}
			line += "  " + padRight(truncate(name, accountWidth), accountWidth)
		}
		lines = append(lines, line)
	}

	// Scroll indicator
	total := len(rows)
	if total > 0 && visible > 0 {
		start := topIndex + 1
		endIdx := topIndex + visible
		if endIdx > total {
			endIdx = total
		}
		indicator := scrollStyle.Render(fmt.Sprintf("── showing %d-%d of %d ──", start, endIdx, total))
		lines = append(lines, indicator)
	}

	return strings.Join(lines, "\n")
}

func formatTableDate(date time.Time, layout string) string {
	if date.IsZero() {
		return "—"
	}
	if layout == "" {
		layout = dateISOFormat
	}
	return date.Format(layout)
}
