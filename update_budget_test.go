package main

import (
	"strings"
	"testing"

	"github.com/bloomfi/bloomfi/internal/config"
)

func budgetTabModel(t *testing.T) model {
	t.Helper()
	m := dashboardModel(t)
	m.cfg.Budgets = config.DefaultBudgets()
	m.activeTab = tabBudget
	return m
}

func TestBudgetPeriodSwitchResetsOffset(t *testing.T) {
	m := budgetTabModel(t)

	next, _ := m.Update(keyMsg("]"))
	m = next.(model)
	if m.budget.offset != 1 {
		t.Fatalf("offset = %d", m.budget.offset)
	}

	next, _ = m.Update(keyMsg("right"))
	m = next.(model)
	if m.budget.period != budgetWeekly {
		t.Fatalf("period = %d", m.budget.period)
	}
	if m.budget.offset != 0 {
		t.Fatalf("switching period should reset the offset, got %d", m.budget.offset)
	}

	next, _ = m.Update(keyMsg("left"))
	m = next.(model)
	if m.budget.period != budgetMonthly {
		t.Fatalf("period = %d", m.budget.period)
	}
}

func TestBudgetEditCommitsMonthlyAllocation(t *testing.T) {
	m := budgetTabModel(t)

	// The fixture's only June expense is Groceries, so it sorts first.
	next, _ := m.Update(keyMsg("enter"))
	m = next.(model)
	if !m.budget.editing {
		t.Fatal("enter should open the allocation editor")
	}
	if m.budget.editInput.Value() != "300.00" {
		t.Fatalf("editor seeded with %q", m.budget.editInput.Value())
	}

	m.budget.editInput.SetValue("450")
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(model)
	if m.budget.editing {
		t.Fatal("commit should close the editor")
	}
	if m.cfg.Budgets["groceries"] != 450 {
		t.Fatalf("groceries allocation = %v", m.cfg.Budgets["groceries"])
	}
	if cmd == nil {
		t.Fatal("commit should persist the config")
	}
}

func TestBudgetEditRejectsGarbage(t *testing.T) {
	m := budgetTabModel(t)
	next, _ := m.Update(keyMsg("enter"))
	m = next.(model)

	m.budget.editInput.SetValue("lots")
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(model)
	if !m.budget.editing {
		t.Fatal("a bad amount should keep the editor open")
	}
	if cmd != nil {
		t.Fatal("nothing should be persisted")
	}
	if m.cfg.Budgets["groceries"] != 300 {
		t.Fatalf("allocation changed to %v", m.cfg.Budgets["groceries"])
	}
}

func TestBudgetEditTypingDoesNotTriggerGlobalKeys(t *testing.T) {
	m := budgetTabModel(t)
	next, _ := m.Update(keyMsg("enter"))
	m = next.(model)

	m.budget.editInput.SetValue("")
	next, _ = m.Update(keyMsg("q"))
	m = next.(model)
	if !m.budget.editing {
		t.Fatal("q typed into the editor must not quit")
	}
	if got := m.budget.editInput.Value(); got != "q" {
		t.Fatalf("editor value = %q", got)
	}
}

func TestSettingsFieldTypingDoesNotTriggerGlobalKeys(t *testing.T) {
	m := dashboardModel(t)
	m.activeTab = tabSettings
	m.settings.focus = settingBaseURL
	m.settings.syncFocus()

	next, _ := m.Update(keyMsg("q"))
	m = next.(model)
	if !strings.HasSuffix(m.settings.baseURL.Value(), "q") {
		t.Fatalf("base url field = %q", m.settings.baseURL.Value())
	}
}

func TestBudgetResetRestoresDefaults(t *testing.T) {
	m := budgetTabModel(t)
	m.cfg.Budgets = map[string]float64{"groceries": 10}

	next, cmd := m.Update(keyMsg("ctrl+r"))
	m = next.(model)
	if m.cfg.Budgets["groceries"] != 300 {
		t.Fatalf("groceries allocation = %v", m.cfg.Budgets["groceries"])
	}
	if cmd == nil {
		t.Fatal("reset should persist the config")
	}
}

func TestBudgetViewShowsTable(t *testing.T) {
	m := budgetTabModel(t)
	view := m.View()
	for _, want := range []string{"June 2025", "Monthly", "Groceries", "Under Budget", "Budgeted"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
