package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Accounts tab keys
// ---------------------------------------------------------------------------

// Card 0 is the combined "All Accounts" card; cards 1..n are the individual
// accounts in fetch order.
func (m model) cardCount() int {
	return len(m.accounts) + 1
}

func (m model) totalBalance() float64 {
	var total float64
	for _, a := range m.accounts {
		total += a.balance
	}
	return total
}

func (m model) updateAccounts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.acctCursor < m.cardCount()-1 {
			m.acctCursor++
		}
		return m, nil
	case "k", "up":
		if m.acctCursor > 0 {
			m.acctCursor--
		}
		return m, nil
	case "enter":
		return m.openAccountModal(m.acctCursor)
	}
	return m, nil
}

// openAccountModal opens the transaction modal for the card at index and
// kicks off one fetch. The fetch result is cached for the life of the modal;
// preset changes only re-filter that cache.
func (m model) openAccountModal(index int) (tea.Model, tea.Cmd) {
	modal := accountModal{
		open:        true,
		preset:      presetLast30,
		loading:     true,
		requestSeq:  m.modal.requestSeq + 1,
		returnFocus: index,
	}
	if index == 0 {
		modal.accountID = accountAll
		modal.title = "All Accounts"
		modal.balance = m.totalBalance()
	} else if index-1 < len(m.accounts) {
		a := m.accounts[index-1]
		modal.accountID = a.id
		modal.title = a.name
		modal.number = a.number
		modal.balance = a.balance
	} else {
		return m, nil
	}
	m.modal = modal
	return m, loadModalTxCmd(m.source, modal.accountID, modal.requestSeq)
}

// ---------------------------------------------------------------------------
// Modal keys
// ---------------------------------------------------------------------------

func (m model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		// Close drops the cache and restores the card cursor the modal
		// opened from.
		m.acctCursor = m.modal.returnFocus
		m.modal = accountModal{requestSeq: m.modal.requestSeq}
		return m, nil
	case "p", "right", "l":
		m.modal.preset = (m.modal.preset + 1) % presetCount
		m.setStatus("Showing " + presetLabel(m.modal.preset) + ".")
		return m, nil
	case "P", "left", "h":
		m.modal.preset = (m.modal.preset - 1 + presetCount) % presetCount
		m.setStatus("Showing " + presetLabel(m.modal.preset) + ".")
		return m, nil
	case "1", "2", "3", "4":
		m.modal.preset = int(msg.String()[0] - '1')
		m.setStatus("Showing " + presetLabel(m.modal.preset) + ".")
		return m, nil
	}
	return m, nil
}

// modalRows is the modal's visible list: the cached fetch filtered by the
// active preset and sorted newest first. Recomputed per render, never stored.
func (m model) modalRows() []transaction {
	return sortForDisplay(filterByPreset(m.modal.cache, m.modal.preset, m.now()))
}

func (m model) modalSubtitle() string {
	if m.modal.number != "" {
		return fmt.Sprintf("%s  %s", m.modal.number, formatAmount(m.modal.balance))
	}
	return formatAmount(m.modal.balance)
}
