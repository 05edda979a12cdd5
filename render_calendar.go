package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Date range picker popup
// ---------------------------------------------------------------------------

var (
	calHeaderStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	calWeekdayStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	calDayStyle     = lipgloss.NewStyle().Foreground(colorText)
	calFillerStyle  = lipgloss.NewStyle().Foreground(colorSurface2)
	calTodayStyle   = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	calPickedStyle  = lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Bold(true)
	calInRangeStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1)
	calCursorStyle  = lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus).Bold(true)
)

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func (m model) calendarPopupView() string {
	c := m.cal
	now := m.now()

	title := calHeaderStyle.Render(fmt.Sprintf("%s %d", c.visibleMonth, c.visibleYear))
	nav := statusStyle.Render("[ prev   ] next")
	header := title + "   " + nav

	heads := make([]string, len(weekdayHeader))
	for i, w := range weekdayHeader {
		heads[i] = calWeekdayStyle.Render(fmt.Sprintf("%3s", w))
	}
	weekLine := strings.Join(heads, " ")

	grid := c.monthGrid(now)
	var weeks []string
	for row := 0; row < calendarGridCells/7; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			cells = append(cells, renderCalCell(grid[idx], idx == c.cursor))
		}
		weeks = append(weeks, strings.Join(cells, " "))
	}

	rangeLine := m.pendingRangeLine()
	phaseLine := statusStyle.Render("Picking: start date")
	if c.phase == selectingEnd {
		phaseLine = statusStyle.Render("Picking: end date")
	}
	chips := renderChips(quickRangeLabels, -1)
	hint := statusStyle.Render("enter pick · a apply · 1-4 quick range · esc cancel")

	return strings.Join([]string{
		header,
		"",
		weekLine,
		strings.Join(weeks, "\n"),
		"",
		rangeLine,
		phaseLine,
		chips,
		hint,
	}, "\n")
}

func renderCalCell(cell calendarCell, underCursor bool) string {
	text := fmt.Sprintf("%3d", cell.day)
	switch {
	case underCursor && !cell.filler:
		return calCursorStyle.Render(text)
	case cell.filler:
		return calFillerStyle.Render(text)
	case cell.selected:
		return calPickedStyle.Render(text)
	case cell.inRange:
		return calInRangeStyle.Render(text)
	case cell.isToday:
		return calTodayStyle.Render(text)
	default:
		return calDayStyle.Render(text)
	}
}

func (m model) pendingRangeLine() string {
	start := m.cal.pendingStart
	end := m.cal.pendingEnd
	switch {
	case start.IsZero() && end.IsZero():
		return fieldLabelStyle.Render("Range: ") + statusStyle.Render("all time")
	case end.IsZero():
		return fieldLabelStyle.Render("Range: ") + calDayStyle.Render(formatDisplayDate(start)+" – ...")
	default:
		return fieldLabelStyle.Render("Range: ") + calDayStyle.Render(formatDisplayDate(start)+" – "+formatDisplayDate(end))
	}
}
