package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloomfi/bloomfi/internal/config"
)

// ---------------------------------------------------------------------------
// Budget tab
// ---------------------------------------------------------------------------

// budgetState drives the budget tab: the period switcher, the period offset
// ([ and ] walk to earlier and later periods, 0 is the current one), the row
// cursor, and the inline allocation editor.
type budgetState struct {
	period    int
	offset    int
	cursor    int
	editing   bool
	editInput textinput.Model
}

func newBudgetState() budgetState {
	input := textinput.New()
	input.CharLimit = 10
	input.Width = 12
	input.Placeholder = "0.00"
	return budgetState{editInput: input}
}

// budgetLines computes the table for the selected period. Spend comes from
// the full transaction list, not the dashboard's filtered view.
func (m model) budgetLines() []budgetLine {
	start, end := budgetWindow(m.budget.period, m.budget.offset, m.now())
	return buildBudgetLines(m.allTransactions, m.cfg.Budgets, m.budget.period, start, end)
}

func (m model) updateBudget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.budget.editing {
		return m.updateBudgetEdit(msg)
	}

	lines := m.budgetLines()
	switch msg.String() {
	case "left", "h":
		m.budget.period = (m.budget.period - 1 + budgetPeriodCount) % budgetPeriodCount
		m.budget.offset = 0
		m.budget.cursor = 0
		return m, nil
	case "right", "l":
		m.budget.period = (m.budget.period + 1) % budgetPeriodCount
		m.budget.offset = 0
		m.budget.cursor = 0
		return m, nil
	case "[":
		m.budget.offset--
		return m, nil
	case "]":
		m.budget.offset++
		return m, nil
	case "j", "down":
		if m.budget.cursor < len(lines)-1 {
			m.budget.cursor++
		}
		return m, nil
	case "k", "up":
		if m.budget.cursor > 0 {
			m.budget.cursor--
		}
		return m, nil
	case "enter":
		if m.budget.cursor >= len(lines) {
			return m, nil
		}
		current := m.cfg.Budgets[lines[m.budget.cursor].key]
		if current > 0 {
			m.budget.editInput.SetValue(fmt.Sprintf("%.2f", current))
		} else {
			m.budget.editInput.SetValue("")
		}
		m.budget.editing = true
		m.budget.editInput.Focus()
		return m, textinput.Blink
	case "ctrl+r":
		m.cfg.Budgets = config.DefaultBudgets()
		m.setStatus("Budgets reset to defaults.")
		return m, saveSettingsCmd(m.cfg)
	}
	return m, nil
}

// updateBudgetEdit handles keys while the allocation editor is open. The
// edited value is always the monthly allocation; weekly and yearly views
// scale it for display.
func (m model) updateBudgetEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.budget.editing = false
		m.budget.editInput.Blur()
		return m, nil
	case "enter":
		lines := m.budgetLines()
		if m.budget.cursor >= len(lines) {
			m.budget.editing = false
			m.budget.editInput.Blur()
			return m, nil
		}
		amount := parseAmountBound(m.budget.editInput.Value())
		if amount == nil {
			m.setStatus("Enter a dollar amount.")
			return m, nil
		}
		if m.cfg.Budgets == nil {
			m.cfg.Budgets = map[string]float64{}
		}
		m.cfg.Budgets[lines[m.budget.cursor].key] = *amount
		m.budget.editing = false
		m.budget.editInput.Blur()
		m.setStatus("Budget saved.")
		return m, saveSettingsCmd(m.cfg)
	}
	var cmd tea.Cmd
	m.budget.editInput, cmd = m.budget.editInput.Update(msg)
	return m, cmd
}
