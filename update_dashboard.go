package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Dashboard keys
// ---------------------------------------------------------------------------

func (m model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.ensureCursorInWindow()
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorInWindow()
		}
		return m, nil
	case "g", "home":
		m.cursor = 0
		m.topIndex = 0
		return m, nil
	case "G", "end":
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
			m.ensureCursorInWindow()
		}
		return m, nil
	case "f":
		m.form.seedFrom(m.criteria, m.accounts)
		m.showFilter = true
		return m, nil
	case "d":
		m.cal = openCalendar(m.criteria.startDate, m.criteria.endDate, m.now())
		m.showCal = true
		return m, nil
	case "c":
		m.criteria = defaultCriteria(m.now())
		m.refilter()
		m.setStatus("Filters reset to the last 30 days.")
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Filter form keys
// ---------------------------------------------------------------------------

func (m model) updateFilterForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showFilter = false
		return m, nil
	case "enter":
		m.criteria = m.form.readCriteria(m.criteria, m.accounts)
		m.showFilter = false
		m.refilter()
		m.setStatus(fmt.Sprintf("%d transactions match.", len(m.filtered)))
		return m, nil
	case "tab", "down":
		if m.form.focus == fieldMin || m.form.focus == fieldMax || m.form.focus == fieldSearch {
			if msg.String() == "down" {
				break
			}
		}
		m.form.nextField()
		return m, nil
	case "shift+tab", "up":
		if msg.String() == "up" && m.textFieldFocused() {
			break
		}
		m.form.prevField()
		return m, nil
	case "left":
		switch m.form.focus {
		case fieldAccount:
			m.form.cycleAccount(-1, len(m.accounts))
			return m, nil
		case fieldType:
			m.form.cycleType(-1)
			return m, nil
		}
	case "right":
		switch m.form.focus {
		case fieldAccount:
			m.form.cycleAccount(1, len(m.accounts))
			return m, nil
		case fieldType:
			m.form.cycleType(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldMin:
		m.form.minInput, cmd = m.form.minInput.Update(msg)
	case fieldMax:
		m.form.maxInput, cmd = m.form.maxInput.Update(msg)
	case fieldSearch:
		m.form.searchInput, cmd = m.form.searchInput.Update(msg)
	}
	return m, cmd
}

func (m *model) textFieldFocused() bool {
	return m.form.focus == fieldMin || m.form.focus == fieldMax || m.form.focus == fieldSearch
}

// ---------------------------------------------------------------------------
// Calendar keys
// ---------------------------------------------------------------------------

func (m model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel; pending selections are discarded with the popup.
		m.showCal = false
		return m, nil
	case "a":
		return m.applyCalendar()
	case "enter", " ":
		m.cal.selectCursor(m.now())
		// Selecting the second endpoint completes the range; apply right away
		// so a plain start-then-end flow needs no extra keypress.
		if !m.cal.pendingStart.IsZero() && !m.cal.pendingEnd.IsZero() && m.cal.phase == selectingStart {
			return m.applyCalendar()
		}
		return m, nil
	case "left", "h":
		m.cal.moveCursor(-1)
		return m, nil
	case "right", "l":
		m.cal.moveCursor(1)
		return m, nil
	case "up", "k":
		m.cal.moveCursor(-7)
		return m, nil
	case "down", "j":
		m.cal.moveCursor(7)
		return m, nil
	case "[":
		m.cal.prevMonth()
		return m, nil
	case "]":
		m.cal.nextMonth()
		return m, nil
	case "1", "2", "3", "4":
		preset := int(msg.String()[0] - '1')
		m.cal.applyQuickRange(preset, m.now())
		return m, nil
	}
	return m, nil
}

// applyCalendar copies the pending bounds into the criteria verbatim. The
// click logic already guarantees ordering, so nothing is reordered here; a
// missing bound commits as no bound, which is how the All time shortcut and
// a lone start date land.
func (m model) applyCalendar() (tea.Model, tea.Cmd) {
	start := m.cal.pendingStart
	end := m.cal.pendingEnd
	m.criteria.startDate = start
	m.criteria.endDate = end
	m.showCal = false
	m.refilter()
	switch {
	case start.IsZero() && end.IsZero():
		m.setStatus("Showing all dates.")
	case end.IsZero():
		m.setStatus(fmt.Sprintf("Showing %s onward.", formatDisplayDate(start)))
	default:
		m.setStatus(fmt.Sprintf("Showing %s to %s.", formatDisplayDate(start), formatDisplayDate(end)))
	}
	return m, nil
}
