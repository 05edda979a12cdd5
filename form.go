package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// ---------------------------------------------------------------------------
// Filter form
// ---------------------------------------------------------------------------

const (
	fieldAccount = iota
	fieldType
	fieldMin
	fieldMax
	fieldSearch
	fieldCount
)

// filterForm is the modal's working copy of the filter controls. Nothing in
// it touches the committed criteria until the user applies; esc throws the
// whole thing away.
type filterForm struct {
	minInput    textinput.Model
	maxInput    textinput.Model
	searchInput textinput.Model

	accountCursor int // 0 is all accounts, 1..n indexes m.accounts
	typeCursor    int
	focus         int
}

func newFilterForm() filterForm {
	minIn := textinput.New()
	minIn.Placeholder = "0.00"
	minIn.CharLimit = 12
	minIn.Width = 12

	maxIn := textinput.New()
	maxIn.Placeholder = "0.00"
	maxIn.CharLimit = 12
	maxIn.Width = 12

	search := textinput.New()
	search.Placeholder = "search descriptions"
	search.CharLimit = 64
	search.Width = 28

	return filterForm{
		minInput:    minIn,
		maxInput:    maxIn,
		searchInput: search,
	}
}

// seedFrom loads the committed criteria into the form each time the modal
// opens, so a cancelled edit never leaks into the next one.
func (f *filterForm) seedFrom(c filterCriteria, accounts []account) {
	f.accountCursor = 0
	if c.account != accountAll {
		for i, a := range accounts {
			if a.id == c.account {
				f.accountCursor = i + 1
				break
			}
		}
	}
	f.typeCursor = c.txType
	f.minInput.SetValue(formatAmountBound(c.minAmount))
	f.maxInput.SetValue(formatAmountBound(c.maxAmount))
	f.searchInput.SetValue(c.searchTerm)
	f.focus = fieldAccount
	f.syncFocus()
}

func formatAmountBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func (f *filterForm) nextField() {
	f.focus = (f.focus + 1) % fieldCount
	f.syncFocus()
}

func (f *filterForm) prevField() {
	f.focus = (f.focus - 1 + fieldCount) % fieldCount
	f.syncFocus()
}

func (f *filterForm) syncFocus() {
	f.minInput.Blur()
	f.maxInput.Blur()
	f.searchInput.Blur()
	switch f.focus {
	case fieldMin:
		f.minInput.Focus()
	case fieldMax:
		f.maxInput.Focus()
	case fieldSearch:
		f.searchInput.Focus()
	}
}

func (f *filterForm) cycleAccount(delta, accountCount int) {
	n := accountCount + 1
	f.accountCursor = (f.accountCursor + delta + n) % n
}

func (f *filterForm) cycleType(delta int) {
	f.typeCursor = (f.typeCursor + delta + len(txTypeLabels)) % len(txTypeLabels)
}

// readCriteria folds the form back into criteria. Date bounds are not edited
// here, so they carry over from current untouched. Unparseable amounts are
// treated as blank rather than rejected.
func (f *filterForm) readCriteria(current filterCriteria, accounts []account) filterCriteria {
	next := current
	if f.accountCursor == 0 || f.accountCursor > len(accounts) {
		next.account = accountAll
	} else {
		next.account = accounts[f.accountCursor-1].id
	}
	next.txType = f.typeCursor
	next.minAmount = parseAmountBound(f.minInput.Value())
	next.maxAmount = parseAmountBound(f.maxInput.Value())
	next.searchTerm = strings.ToLower(strings.TrimSpace(f.searchInput.Value()))
	return next
}

func parseAmountBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
